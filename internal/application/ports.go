package application

import (
	"context"

	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/laybuy"
	"github.com/shopspring/decimal"
)

// ProviderClient is the port for the Laybuy merchant API.
type ProviderClient interface {
	CreateOrder(ctx context.Context, req laybuy.CreateRequest) (*laybuy.CreateResponse, error)
	ConfirmOrder(ctx context.Context, req laybuy.ConfirmRequest) (*laybuy.ConfirmResponse, error)
	GetOrder(ctx context.Context, req laybuy.GetRequest) (*laybuy.GetResponse, error)
	RefundOrder(ctx context.Context, req laybuy.RefundRequest) (*laybuy.RefundResponse, error)
	CancelOrder(ctx context.Context, req laybuy.CancelRequest) (*laybuy.CancelResponse, error)
}

// OrderStore is the port for the host's order, customer and address records.
// Lookups of missing rows return domain.ErrNotFound.
type OrderStore interface {
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	FindCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	FindAddress(ctx context.Context, id int64) (*domain.Address, error)
}

// AttributeStore keeps string values against host entities. An absent key
// reads as "" and writing "" removes the key.
type AttributeStore interface {
	GetAttribute(ctx context.Context, ref domain.EntityRef, key string) (string, error)
	SetAttribute(ctx context.Context, ref domain.EntityRef, key, value string) error
	FindEntityIDsWithAttribute(ctx context.Context, group, key string, afterID int64, limit int) ([]int64, error)
}

// TransactionManager runs fn with stores bound to a single transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, orders OrderStore, attributes AttributeStore) error) error
}

type CurrencyService interface {
	PrimaryCurrency(ctx context.Context) (string, error)
	ConvertToPrimary(ctx context.Context, amount decimal.Decimal, fromCurrency string) (decimal.Decimal, error)
	ConvertFromPrimary(ctx context.Context, amount decimal.Decimal, toCurrency string) (decimal.Decimal, error)
}

// CartStore returns the current cart total of a customer in primary currency.
type CartStore interface {
	CartTotal(ctx context.Context, customerID int64) (decimal.Decimal, error)
}

type PriceFormatter interface {
	FormatPrice(amount decimal.Decimal, currencyCode string) string
}

// OrderLocker provides mutual exclusion per key across callers.
type OrderLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
