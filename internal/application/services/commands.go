package services

import (
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

// ConfirmCommand carries an inbound provider callback.
type ConfirmCommand struct {
	OrderID int64
	Status  string
	Token   string
}

type RefundCommand struct {
	OrderID int64
	Amount  decimal.Decimal
	Note    string
}

// Zone is a storefront location where the price breakdown may be shown.
type Zone string

const (
	ZoneProductPage  Zone = "product_page"
	ZoneProductBox   Zone = "product_box"
	ZoneShoppingCart Zone = "shopping_cart"
)

// BreakdownQuery asks for an installment preview. A nil Price means the
// customer's current cart total.
type BreakdownQuery struct {
	Price           *decimal.Decimal
	WorkingCurrency string
	Zone            Zone
	CustomerID      int64
}

type Breakdown struct {
	Applicable   bool
	InitialPrice string
	Price        string
}

// AttributeWrite is a pending attribute change the caller must apply.
type AttributeWrite struct {
	Ref   domain.EntityRef
	Key   string
	Value string
}

// Redirect tells the HTTP boundary where to send the customer after payment
// post-processing. Notice, when set, is shown to the customer.
type Redirect struct {
	URL    string
	Notice string
	Writes []AttributeWrite
}

type ConfirmResult struct {
	Order           *domain.Order
	ProviderOrderID int64
	MarkedPaid      bool
}

type RefundResult struct {
	RefundID        *int64
	RefundReference string
	Amount          decimal.Decimal
	Partial         bool
}
