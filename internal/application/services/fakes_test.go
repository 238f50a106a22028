package services_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/DanielPopoola/laybuy-gateway/internal/application"
	"github.com/DanielPopoola/laybuy-gateway/internal/application/services"
	"github.com/DanielPopoola/laybuy-gateway/internal/config"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/mocks"
	"github.com/DanielPopoola/laybuy-gateway/internal/testhelpers"
	"github.com/shopspring/decimal"
)

// fakeOrderStore
type fakeOrderStore struct {
	mu        sync.Mutex
	orders    map[int64]*domain.Order
	customers map[int64]*domain.Customer
	addresses map[int64]*domain.Address
	updates   int

	FindByIDFn func(ctx context.Context, id int64) (*domain.Order, error)
	UpdateFn   func(ctx context.Context, order *domain.Order) error
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		orders:    make(map[int64]*domain.Order),
		customers: make(map[int64]*domain.Customer),
		addresses: make(map[int64]*domain.Address),
	}
}

func (f *fakeOrderStore) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (f *fakeOrderStore) Update(ctx context.Context, order *domain.Order) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, order)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderStore) FindCustomer(_ context.Context, id int64) (*domain.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	customer, ok := f.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

func (f *fakeOrderStore) FindAddress(_ context.Context, id int64) (*domain.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	address, ok := f.addresses[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return address, nil
}

func (f *fakeOrderStore) updateCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updates
}

// fakeAttributeStore
type fakeAttributeStore struct {
	mu     sync.Mutex
	values map[string]string
	writes int

	SetAttributeFn func(ctx context.Context, ref domain.EntityRef, key, value string) error
}

func newFakeAttributeStore() *fakeAttributeStore {
	return &fakeAttributeStore{values: make(map[string]string)}
}

func attrKey(ref domain.EntityRef, key string) string {
	return fmt.Sprintf("%s:%d:%s", ref.Group, ref.ID, key)
}

func (f *fakeAttributeStore) GetAttribute(_ context.Context, ref domain.EntityRef, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[attrKey(ref, key)], nil
}

func (f *fakeAttributeStore) SetAttribute(ctx context.Context, ref domain.EntityRef, key, value string) error {
	if f.SetAttributeFn != nil {
		return f.SetAttributeFn(ctx, ref, key, value)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes++
	if value == "" {
		delete(f.values, attrKey(ref, key))
		return nil
	}
	f.values[attrKey(ref, key)] = value
	return nil
}

func (f *fakeAttributeStore) FindEntityIDsWithAttribute(_ context.Context, group, key string, afterID int64, limit int) ([]int64, error) {
	return nil, nil
}

func (f *fakeAttributeStore) get(orderID int64, key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[attrKey(domain.OrderRef(orderID), key)]
}

func (f *fakeAttributeStore) set(orderID int64, key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[attrKey(domain.OrderRef(orderID), key)] = value
}

// fakeTransactions runs fn directly against the fake stores.
type fakeTransactions struct {
	orders     *fakeOrderStore
	attributes *fakeAttributeStore
}

func (f *fakeTransactions) WithTransaction(ctx context.Context, fn func(ctx context.Context, orders application.OrderStore, attributes application.AttributeStore) error) error {
	return fn(ctx, f.orders, f.attributes)
}

// fakeCurrencies converts with a fixed rate per currency, expressed as units
// of that currency per unit of the primary currency.
type fakeCurrencies struct {
	primary string
	rates   map[string]decimal.Decimal
}

func (f *fakeCurrencies) PrimaryCurrency(context.Context) (string, error) {
	return f.primary, nil
}

func (f *fakeCurrencies) rate(code string) decimal.Decimal {
	if r, ok := f.rates[code]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

func (f *fakeCurrencies) ConvertToPrimary(_ context.Context, amount decimal.Decimal, from string) (decimal.Decimal, error) {
	return amount.Div(f.rate(from)), nil
}

func (f *fakeCurrencies) ConvertFromPrimary(_ context.Context, amount decimal.Decimal, to string) (decimal.Decimal, error) {
	return amount.Mul(f.rate(to)), nil
}

type fakeCartStore struct {
	totals map[int64]decimal.Decimal
}

func (f *fakeCartStore) CartTotal(_ context.Context, customerID int64) (decimal.Decimal, error) {
	total, ok := f.totals[customerID]
	if !ok {
		return decimal.Zero, domain.ErrNotFound
	}
	return total, nil
}

type fakeFormatter struct{}

func (fakeFormatter) FormatPrice(amount decimal.Decimal, currencyCode string) string {
	return currencyCode + " " + amount.StringFixed(2)
}

// fakeLocker
type fakeLocker struct {
	mu    sync.Mutex
	locks int

	LockFn func(ctx context.Context, key string) (func(), error)
}

func (f *fakeLocker) Lock(ctx context.Context, key string) (func(), error) {
	if f.LockFn != nil {
		return f.LockFn(ctx, key)
	}
	f.mu.Lock()
	f.locks++
	f.mu.Unlock()
	return func() {}, nil
}

type fixture struct {
	orders     *fakeOrderStore
	attributes *fakeAttributeStore
	currencies *fakeCurrencies
	carts      *fakeCartStore
	locker     *fakeLocker
	provider   *mocks.MockProviderClient
	laybuy     config.LaybuyConfig
	service    *services.PaymentService
}

var testStorefront = config.StorefrontConfig{
	CallbackURL:          "https://shop.example/laybuy/callback/{orderId}",
	CheckoutCompletedURL: "https://shop.example/checkout/completed/{orderId}",
	OrderDetailsURL:      "https://shop.example/orders/{orderId}",
	Locale:               "en-AU",
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFixture wires a PaymentService against fakes seeded with the scenario
// order (id 1) in AUD.
func newFixture(t *testing.T, opts ...func(*fixture)) *fixture {
	t.Helper()

	orders := newFakeOrderStore()
	orders.orders[1] = testhelpers.ScenarioOrder(1)
	orders.customers[testhelpers.DefaultCustomerID] = testhelpers.DefaultCustomer()
	orders.addresses[testhelpers.DefaultBillingAddressID] = testhelpers.DefaultAddress(testhelpers.DefaultBillingAddressID)

	f := &fixture{
		orders:     orders,
		attributes: newFakeAttributeStore(),
		currencies: &fakeCurrencies{primary: "AUD", rates: map[string]decimal.Decimal{}},
		carts:      &fakeCartStore{totals: map[int64]decimal.Decimal{}},
		locker:     &fakeLocker{},
		provider:   mocks.NewMockProviderClient(t),
		laybuy: config.LaybuyConfig{
			MerchantID:            "100000",
			AuthenticationKey:     "secret",
			DisplayOnProductPage:  true,
			DisplayOnProductBox:   true,
			DisplayOnShoppingCart: true,
			RequestTimeout:        10,
		},
	}

	for _, opt := range opts {
		opt(f)
	}

	f.service = services.NewPaymentService(
		services.Dependencies{
			Orders:       f.orders,
			Attributes:   f.attributes,
			Transactions: &fakeTransactions{orders: f.orders, attributes: f.attributes},
			Currencies:   f.currencies,
			Carts:        f.carts,
			Formatter:    fakeFormatter{},
			Provider:     f.provider,
			Locker:       f.locker,
		},
		f.laybuy,
		testStorefront,
		discardLogger(),
	)
	return f
}

func withPrimaryCurrency(code string) func(*fixture) {
	return func(f *fixture) { f.currencies.primary = code }
}

func withLaybuy(mutate func(*config.LaybuyConfig)) func(*fixture) {
	return func(f *fixture) { mutate(&f.laybuy) }
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decimalFromInt(i int) decimal.Decimal {
	return decimal.NewFromInt(int64(i))
}
