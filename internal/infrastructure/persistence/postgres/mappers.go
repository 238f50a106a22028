package postgres

import (
	"fmt"

	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// toDomainOrder maps the order row to the domain entity; items and checkout
// attributes are attached by the caller.
func toDomainOrder(m OrderModel) (*domain.Order, error) {
	total, err := parseDecimal("order_total", m.OrderTotal)
	if err != nil {
		return nil, err
	}
	tax, err := parseDecimal("order_tax", m.OrderTax)
	if err != nil {
		return nil, err
	}
	shipping, err := parseDecimal("order_shipping_excl_tax", m.OrderShippingExclTax)
	if err != nil {
		return nil, err
	}
	refunded, err := parseDecimal("refunded_amount", m.RefundedAmount)
	if err != nil {
		return nil, err
	}

	return &domain.Order{
		ID:                   m.ID,
		CustomOrderNumber:    m.CustomOrderNumber,
		CustomerID:           m.CustomerID,
		BillingAddressID:     m.BillingAddressID,
		ShippingAddressID:    m.ShippingAddressID,
		PickupAddressID:      m.PickupAddressID,
		OrderTotal:           total,
		OrderTax:             tax,
		OrderShippingExclTax: shipping,
		ShippingMethod:       m.ShippingMethod,
		RefundedAmount:       refunded,
		OrderStatus:          domain.OrderStatus(m.OrderStatus),
		PaymentStatus:        domain.PaymentStatus(m.PaymentStatus),
		PaidAt:               m.PaidAt,
		CreatedAt:            m.CreatedAt,
	}, nil
}

func toDomainItem(m OrderItemModel) (domain.OrderItem, error) {
	price, err := parseDecimal("unit_price_excl_tax", m.UnitPriceExclTax)
	if err != nil {
		return domain.OrderItem{}, err
	}
	return domain.OrderItem{
		ID:               m.ID,
		ProductID:        m.ProductID,
		SKU:              m.SKU,
		ProductName:      m.ProductName,
		Quantity:         m.Quantity,
		UnitPriceExclTax: price,
	}, nil
}

func toDomainCheckoutAttribute(m CheckoutAttributeModel) (domain.CheckoutAttributeValue, error) {
	price, err := parseDecimal("price", m.Price)
	if err != nil {
		return domain.CheckoutAttributeValue{}, err
	}
	return domain.CheckoutAttributeValue{
		Attribute: m.Attribute,
		Value:     m.Value,
		Price:     price,
	}, nil
}

func parseDecimal(column, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s %q: %w", column, value, err)
	}
	return d, nil
}
