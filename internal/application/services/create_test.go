package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/laybuy-gateway/internal/application/services"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/laybuy"
	"github.com/DanielPopoola/laybuy-gateway/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func successfulCreate(f *fixture, capture *laybuy.CreateRequest) {
	f.provider.EXPECT().
		CreateOrder(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, req laybuy.CreateRequest) (*laybuy.CreateResponse, error) {
			if capture != nil {
				*capture = req
			}
			return &laybuy.CreateResponse{
				Response:   laybuy.Response{Result: laybuy.ResultSuccess},
				Token:      "Tok-XyZ",
				PaymentURL: "https://sandbox-payment.laybuy.com/pay/Tok-XyZ",
			}, nil
		}).
		Once()
}

func TestCreateOrder(t *testing.T) {
	t.Run("maps the order into a create request", func(t *testing.T) {
		f := newFixture(t)
		var sent laybuy.CreateRequest
		successfulCreate(f, &sent)

		resp, err := f.service.CreateOrder(context.Background(), 1, "https://shop.example/return")

		require.NoError(t, err)
		assert.Equal(t, "Tok-XyZ", resp.Token)

		assert.True(t, dec("1500").Equal(sent.Amount.Decimal))
		assert.True(t, dec("100").Equal(sent.Tax.Decimal))
		assert.Equal(t, "AUD", sent.Currency)
		assert.Equal(t, "ORD-1500", sent.MerchantReference)
		assert.Equal(t, "https://shop.example/return", sent.ReturnURL)
		assert.Equal(t, "jane@example.com", sent.Customer.Email)
		require.NotNil(t, sent.BillingAddress)
		assert.Equal(t, "Jane Citizen", sent.BillingAddress.Name)
		assert.Equal(t, "The Rocks", sent.BillingAddress.Suburb)
		assert.Equal(t, "2000", sent.BillingAddress.Postcode)
		assert.Nil(t, sent.ShippingAddress)
		assert.Len(t, sent.Items, 4)
	})

	t.Run("prefers the pickup address for shipping", func(t *testing.T) {
		f := newFixture(t)
		shippingID, pickupID := int64(20), int64(30)
		f.orders.orders[1].ShippingAddressID = &shippingID
		f.orders.orders[1].PickupAddressID = &pickupID
		f.orders.addresses[shippingID] = testhelpers.DefaultAddress(shippingID)
		pickup := testhelpers.DefaultAddress(pickupID)
		pickup.Address1 = "Store pickup counter"
		f.orders.addresses[pickupID] = pickup

		var sent laybuy.CreateRequest
		successfulCreate(f, &sent)

		_, err := f.service.CreateOrder(context.Background(), 1, "https://shop.example/return")

		require.NoError(t, err)
		require.NotNil(t, sent.ShippingAddress)
		assert.Equal(t, "Store pickup counter", sent.ShippingAddress.Address1)
	})

	t.Run("missing customer fails without a call", func(t *testing.T) {
		f := newFixture(t)
		delete(f.orders.customers, testhelpers.DefaultCustomerID)

		_, err := f.service.CreateOrder(context.Background(), 1, "https://shop.example/return")

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeResourceNotFound))
		assert.Contains(t, err.Error(), "customer cannot be loaded")
	})

	t.Run("missing billing address fails without a call", func(t *testing.T) {
		f := newFixture(t)
		delete(f.orders.addresses, testhelpers.DefaultBillingAddressID)

		_, err := f.service.CreateOrder(context.Background(), 1, "https://shop.example/return")

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeResourceNotFound))
		assert.Contains(t, err.Error(), "billing address cannot be loaded")
	})

	t.Run("rejected create", func(t *testing.T) {
		f := newFixture(t)
		f.provider.EXPECT().
			CreateOrder(mock.Anything, mock.Anything).
			Return(&laybuy.CreateResponse{Response: laybuy.Response{Result: laybuy.ResultError, Error: "Invalid merchant"}}, nil).
			Once()

		_, err := f.service.CreateOrder(context.Background(), 1, "https://shop.example/return")

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeProviderRejected))
		assert.Equal(t, "request result - error. Invalid merchant", err.Error())
	})
}

func TestPostProcessPayment(t *testing.T) {
	t.Run("redirects to the payment page and stores the token", func(t *testing.T) {
		f := newFixture(t)
		var sent laybuy.CreateRequest
		successfulCreate(f, &sent)

		redirect := f.service.PostProcessPayment(context.Background(), 1)

		assert.Equal(t, "https://sandbox-payment.laybuy.com/pay/Tok-XyZ", redirect.URL)
		assert.Empty(t, redirect.Notice)
		assert.Equal(t, "https://shop.example/laybuy/callback/1", sent.ReturnURL)
		require.Len(t, redirect.Writes, 1)

		require.NoError(t, f.service.ApplyWrites(context.Background(), redirect.Writes))
		assert.Equal(t, "Tok-XyZ", f.attributes.get(1, services.AttrOrderToken))
	})

	t.Run("failure lands on order details with a notice", func(t *testing.T) {
		f := newFixture(t)
		f.provider.EXPECT().
			CreateOrder(mock.Anything, mock.Anything).
			Return(nil, domain.NewTransportFailureError(context.DeadlineExceeded)).
			Once()

		redirect := f.service.PostProcessPayment(context.Background(), 1)

		assert.Equal(t, "https://shop.example/orders/1", redirect.URL)
		assert.Contains(t, redirect.Notice, "provider unreachable")
		assert.Empty(t, redirect.Writes)
	})

	incomplete := []struct {
		name   string
		resp   *laybuy.CreateResponse
		notice string
	}{
		{
			name:   "success without payment url or token",
			resp:   &laybuy.CreateResponse{Response: laybuy.Response{Result: laybuy.ResultSuccess}},
			notice: "laybuy order token not set",
		},
		{
			name: "success without payment url",
			resp: &laybuy.CreateResponse{
				Response: laybuy.Response{Result: laybuy.ResultSuccess},
				Token:    "Tok-XyZ",
			},
			notice: "laybuy payment url not set",
		},
		{
			name: "success without token",
			resp: &laybuy.CreateResponse{
				Response:   laybuy.Response{Result: laybuy.ResultSuccess},
				PaymentURL: "https://sandbox-payment.laybuy.com/pay/",
			},
			notice: "laybuy order token not set",
		},
	}
	for _, tt := range incomplete {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.provider.EXPECT().
				CreateOrder(mock.Anything, mock.Anything).
				Return(tt.resp, nil).
				Once()

			redirect := f.service.PostProcessPayment(context.Background(), 1)

			assert.Equal(t, "https://shop.example/orders/1", redirect.URL)
			assert.Equal(t, tt.notice, redirect.Notice)
			assert.Empty(t, redirect.Writes)
			assert.Empty(t, f.attributes.get(1, services.AttrOrderToken))
		})
	}
}

// TestScenario_1500AUD walks the reference order through preview, create and confirm.
func TestScenario_1500AUD(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	breakdown, err := f.service.PriceBreakdown(ctx, services.BreakdownQuery{Price: price("1500")})
	require.NoError(t, err)
	assert.Equal(t, "AUD 300.00", breakdown.InitialPrice)
	assert.Equal(t, "AUD 240.00", breakdown.Price)

	var created laybuy.CreateRequest
	successfulCreate(f, &created)

	redirect := f.service.PostProcessPayment(ctx, 1)
	require.NoError(t, f.service.ApplyWrites(ctx, redirect.Writes))

	require.Len(t, created.Items, 4)
	assert.Equal(t, "LAPTOP-15", created.Items[0].ID)
	assert.Equal(t, 2, created.Items[0].Quantity)
	assert.True(t, dec("600").Equal(created.Items[0].Price.Decimal))
	assert.Equal(t, domain.ItemIDShipping, created.Items[1].ID)
	assert.Equal(t, domain.ItemIDTax, created.Items[2].ID)
	assert.Equal(t, domain.ItemIDDiscount, created.Items[3].ID)
	assert.True(t, dec("150").Equal(created.Items[3].Price.Decimal))

	f.provider.EXPECT().
		ConfirmOrder(mock.Anything, mock.MatchedBy(func(req laybuy.ConfirmRequest) bool {
			return req.Token == "Tok-XyZ" && req.Amount.Equal(dec("1500"))
		})).
		Return(&laybuy.ConfirmResponse{
			Response: laybuy.Response{Result: laybuy.ResultSuccess},
			OrderID:  providerOrderID(9001),
		}, nil).
		Once()

	result, err := f.service.ConfirmOrder(ctx, services.ConfirmCommand{OrderID: 1, Status: "success", Token: "tok-xyz"})
	require.NoError(t, err)
	assert.Equal(t, int64(9001), result.ProviderOrderID)
	assert.Equal(t, "9001", f.attributes.get(1, services.AttrOrderID))
	assert.Empty(t, f.attributes.get(1, services.AttrOrderToken))
}
