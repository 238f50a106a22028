package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/DanielPopoola/laybuy-gateway/internal/application"
	"github.com/DanielPopoola/laybuy-gateway/internal/config"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/laybuy"
)

// Attribute keys stored against orders.
const (
	AttrOrderToken = "LaybuyOrderToken"
	AttrOrderID    = "LaybuyOrderId"
)

const orderIDPlaceholder = "{orderId}"

// Dependencies are the host collaborators the payment service works through.
type Dependencies struct {
	Orders       application.OrderStore
	Attributes   application.AttributeStore
	Transactions application.TransactionManager
	Currencies   application.CurrencyService
	Carts        application.CartStore
	Formatter    application.PriceFormatter
	Provider     application.ProviderClient
	Locker       application.OrderLocker
}

type PaymentService struct {
	orders       application.OrderStore
	attributes   application.AttributeStore
	transactions application.TransactionManager
	currencies   application.CurrencyService
	carts        application.CartStore
	formatter    application.PriceFormatter
	provider     application.ProviderClient
	locker       application.OrderLocker

	laybuy     config.LaybuyConfig
	storefront config.StorefrontConfig
	logger     *slog.Logger
	now        func() time.Time
}

func NewPaymentService(
	deps Dependencies,
	laybuyCfg config.LaybuyConfig,
	storefront config.StorefrontConfig,
	logger *slog.Logger,
) *PaymentService {
	return &PaymentService{
		orders:       deps.Orders,
		attributes:   deps.Attributes,
		transactions: deps.Transactions,
		currencies:   deps.Currencies,
		carts:        deps.Carts,
		formatter:    deps.Formatter,
		provider:     deps.Provider,
		locker:       deps.Locker,
		laybuy:       laybuyCfg,
		storefront:   storefront,
		logger:       logger,
		now:          time.Now,
	}
}

// PrimaryCurrencySupported reports whether the store's primary currency can be
// used with Laybuy, together with that currency code.
func (s *PaymentService) PrimaryCurrencySupported(ctx context.Context) (bool, string, error) {
	code, err := s.currencies.PrimaryCurrency(ctx)
	if err != nil {
		return false, "", application.NewInternalError(err)
	}
	return domain.IsSupportedCurrency(code), code, nil
}

// Configured reports whether the provider credentials allow any call at all.
func (s *PaymentService) Configured() bool {
	return s.laybuy.Configured()
}

// handle runs a provider-facing operation. It refuses to start when the
// credentials or the primary currency rule it out, turns a panic into an
// error and logs every failure with the acting customer.
func handle[T any](
	ctx context.Context,
	s *PaymentService,
	operation string,
	orderID int64,
	fn func(ctx context.Context, currency string) (T, error),
) (result T, err error) {
	logger := s.logger.With(
		"operation", operation,
		"actor", application.ActorFrom(ctx),
		"order_id", orderID,
	)

	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = domain.NewInternalError(fmt.Errorf("panic: %v", r))
		}
		if err != nil {
			logger.Error("Payments.Laybuy error",
				"error", err,
				"category", application.CategorizeError(err),
			)
		}
	}()

	if !s.laybuy.Configured() {
		return result, domain.NewNotConfiguredError()
	}

	supported, currency, err := s.PrimaryCurrencySupported(ctx)
	if err != nil {
		return result, err
	}
	if !supported {
		return result, domain.NewUnsupportedCurrencyError(currency)
	}

	return fn(ctx, strings.ToUpper(currency))
}

// checkOutcome rejects any reply whose envelope is not a success.
func checkOutcome(resp laybuy.Envelope) error {
	outcome := resp.Outcome()
	if outcome.Result != laybuy.ResultSuccess {
		return domain.NewProviderRejectedError(outcome.Result.String(), outcome.Error)
	}
	return nil
}

func (s *PaymentService) loadOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, notFoundOr("order", err)
	}
	return order, nil
}

func notFoundOr(resource string, err error) error {
	if domain.IsErrorCode(err, domain.ErrCodeResourceNotFound) {
		return err
	}
	if isNotFound(err) {
		return domain.NewResourceNotFoundError(resource, err)
	}
	return application.NewInternalError(err)
}

func (s *PaymentService) providerOrderID(ctx context.Context, orderID int64) (int64, error) {
	value, err := s.attributes.GetAttribute(ctx, domain.OrderRef(orderID), AttrOrderID)
	if err != nil {
		return 0, application.NewInternalError(err)
	}
	if value == "" {
		return 0, domain.NewMissingCorrelationIDError("order identifier")
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, domain.NewInternalError(fmt.Errorf("stored %s %q: %w", AttrOrderID, value, err))
	}
	return id, nil
}

func storefrontURL(template string, orderID int64) string {
	return strings.ReplaceAll(template, orderIDPlaceholder, strconv.FormatInt(orderID, 10))
}

func (s *PaymentService) CallbackURL(orderID int64) string {
	return storefrontURL(s.storefront.CallbackURL, orderID)
}

func (s *PaymentService) CheckoutCompletedURL(orderID int64) string {
	return storefrontURL(s.storefront.CheckoutCompletedURL, orderID)
}

func (s *PaymentService) OrderDetailsURL(orderID int64) string {
	return storefrontURL(s.storefront.OrderDetailsURL, orderID)
}
