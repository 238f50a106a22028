package handlers

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/laybuy-gateway/internal/api"
	"github.com/DanielPopoola/laybuy-gateway/internal/application/services"
	"github.com/DanielPopoola/laybuy-gateway/internal/config"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
)

// PaymentService is the subset of services.PaymentService the HTTP layer drives.
type PaymentService interface {
	PostProcessPayment(ctx context.Context, orderID int64) services.Redirect
	ApplyWrites(ctx context.Context, writes []services.AttributeWrite) error
	ConfirmOrder(ctx context.Context, cmd services.ConfirmCommand) (*services.ConfirmResult, error)
	RefundOrder(ctx context.Context, cmd services.RefundCommand) (*services.RefundResult, error)
	CheckRefunds(ctx context.Context, orderID int64) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID int64) error
	PriceBreakdown(ctx context.Context, q services.BreakdownQuery) (*services.Breakdown, error)
	PrimaryCurrencySupported(ctx context.Context) (bool, string, error)
	Configured() bool
	CheckoutCompletedURL(orderID int64) string
	OrderDetailsURL(orderID int64) string
}

// Handlers implements api.ServerInterface
type Handlers struct {
	payments PaymentService
	laybuy   config.LaybuyConfig
	logger   *slog.Logger
}

func NewHandlers(payments PaymentService, laybuy config.LaybuyConfig, logger *slog.Logger) *Handlers {
	return &Handlers{
		payments: payments,
		laybuy:   laybuy,
		logger:   logger,
	}
}

var _ api.ServerInterface = (*Handlers)(nil)
var _ PaymentService = (*services.PaymentService)(nil)
