package postgres

import (
	"time"
)

// Numeric columns are selected as text and parsed with shopspring/decimal so
// no precision is lost on the way in.

type OrderModel struct {
	ID                   int64
	CustomOrderNumber    string
	CustomerID           int64
	BillingAddressID     int64
	ShippingAddressID    *int64
	PickupAddressID      *int64
	OrderTotal           string
	OrderTax             string
	OrderShippingExclTax string
	ShippingMethod       string
	RefundedAmount       string
	OrderStatus          string
	PaymentStatus        string
	PaidAt               *time.Time
	CreatedAt            time.Time
}

type OrderItemModel struct {
	ID               int64
	ProductID        int64
	SKU              string
	ProductName      string
	Quantity         int
	UnitPriceExclTax string
}

type CheckoutAttributeModel struct {
	Attribute string
	Value     string
	Price     string
}
