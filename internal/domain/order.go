// Package domain holds the host order model as seen by the Laybuy integration
// and the pure rules (currency eligibility, item derivation) applied to it.
package domain

import (
	"errors"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the host's fulfilment status of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusComplete   OrderStatus = "COMPLETE"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// PaymentStatus is the host's payment status of an order.
type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "PENDING"
	PaymentStatusAuthorized        PaymentStatus = "AUTHORIZED"
	PaymentStatusPaid              PaymentStatus = "PAID"
	PaymentStatusPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
	PaymentStatusRefunded          PaymentStatus = "REFUNDED"
	PaymentStatusVoided            PaymentStatus = "VOIDED"
)

var ErrCannotMarkPaid = errors.New("order cannot be marked as paid")

type Order struct {
	ID                int64
	CustomOrderNumber string
	CustomerID        int64

	BillingAddressID  int64
	ShippingAddressID *int64
	PickupAddressID   *int64

	OrderTotal           decimal.Decimal
	OrderTax             decimal.Decimal
	OrderShippingExclTax decimal.Decimal
	ShippingMethod       string
	RefundedAmount       decimal.Decimal

	OrderStatus   OrderStatus
	PaymentStatus PaymentStatus
	PaidAt        *time.Time

	Items              []OrderItem
	CheckoutAttributes []CheckoutAttributeValue

	CreatedAt time.Time
}

type OrderItem struct {
	ID               int64
	ProductID        int64
	SKU              string
	ProductName      string
	Quantity         int
	UnitPriceExclTax decimal.Decimal
}

// CheckoutAttributeValue is a priced option selected at checkout (gift wrapping and the like).
type CheckoutAttributeValue struct {
	Attribute string
	Value     string
	Price     decimal.Decimal
}

type Customer struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Phone     string
}

type Address struct {
	ID            int64
	FirstName     string
	LastName      string
	Phone         string
	Address1      string
	Address2      string
	City          string
	County        string
	StateProvince string
	ZipPostalCode string
	Country       string
}

// DeliveryAddressID returns the pickup address when set, otherwise the shipping address.
func (o *Order) DeliveryAddressID() (int64, bool) {
	if o.PickupAddressID != nil {
		return *o.PickupAddressID, true
	}
	if o.ShippingAddressID != nil {
		return *o.ShippingAddressID, true
	}
	return 0, false
}

func (o *Order) CanMarkPaid() bool {
	if o.OrderStatus == OrderStatusCancelled {
		return false
	}
	return !slices.Contains([]PaymentStatus{
		PaymentStatusPaid,
		PaymentStatusPartiallyRefunded,
		PaymentStatusRefunded,
		PaymentStatusVoided,
	}, o.PaymentStatus)
}

func (o *Order) MarkPaid(paidAt time.Time) error {
	if !o.CanMarkPaid() {
		return ErrCannotMarkPaid
	}
	o.PaymentStatus = PaymentStatusPaid
	o.PaidAt = &paidAt
	if o.OrderStatus == OrderStatusPending {
		o.OrderStatus = OrderStatusProcessing
	}
	return nil
}

// ApplyRefundedAmount overwrites the locally recorded refunded amount.
// It reports false, leaving the order untouched, when the amounts already match.
func (o *Order) ApplyRefundedAmount(amount decimal.Decimal) bool {
	if amount.Equal(o.RefundedAmount) {
		return false
	}
	o.RefundedAmount = amount
	return true
}

// IsPartialRefund reports whether refunding amount leaves part of the order total unrefunded.
func (o *Order) IsPartialRefund(amount decimal.Decimal) bool {
	return o.RefundedAmount.Add(amount).LessThan(o.OrderTotal)
}

// EntityRef addresses a host entity in the generic attribute store.
type EntityRef struct {
	Group string
	ID    int64
}

const GroupOrder = "Order"

func OrderRef(id int64) EntityRef {
	return EntityRef{Group: GroupOrder, ID: id}
}
