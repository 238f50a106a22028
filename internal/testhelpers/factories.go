package testhelpers

import (
	"time"

	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultCustomerID       int64 = 7
	DefaultBillingAddressID int64 = 11
)

// ScenarioOrder is the reference order: 1500 AUD total with 100 tax, 50
// shipping and a single line of two 600 items.
func ScenarioOrder(id int64) *domain.Order {
	return &domain.Order{
		ID:                   id,
		CustomOrderNumber:    "ORD-1500",
		CustomerID:           DefaultCustomerID,
		BillingAddressID:     DefaultBillingAddressID,
		OrderTotal:           decimal.RequireFromString("1500"),
		OrderTax:             decimal.RequireFromString("100"),
		OrderShippingExclTax: decimal.RequireFromString("50"),
		ShippingMethod:       "Ground",
		RefundedAmount:       decimal.Zero,
		OrderStatus:          domain.OrderStatusPending,
		PaymentStatus:        domain.PaymentStatusPending,
		Items: []domain.OrderItem{
			{
				ID:               1,
				ProductID:        101,
				SKU:              "LAPTOP-15",
				ProductName:      "Laptop 15\"",
				Quantity:         2,
				UnitPriceExclTax: decimal.RequireFromString("600"),
			},
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func DefaultCustomer() *domain.Customer {
	return &domain.Customer{
		ID:        DefaultCustomerID,
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Citizen",
		Phone:     "+61400000000",
	}
}

func DefaultAddress(id int64) *domain.Address {
	return &domain.Address{
		ID:            id,
		FirstName:     "Jane",
		LastName:      "Citizen",
		Phone:         "+61400000000",
		Address1:      "1 George St",
		City:          "Sydney",
		County:        "The Rocks",
		StateProvince: "NSW",
		ZipPostalCode: "2000",
		Country:       "Australia",
	}
}
