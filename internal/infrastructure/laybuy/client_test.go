package laybuy_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanielPopoola/laybuy-gateway/internal/config"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/laybuy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = config.LaybuyConfig{
	MerchantID:        "100000",
	AuthenticationKey: "secret",
	RequestTimeout:    2,
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *laybuy.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return laybuy.NewClientWithBaseURL(testConfig, server.URL)
}

func TestClient_CreateOrder(t *testing.T) {
	var captured map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/order/create", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("100000:secret"))
		assert.Equal(t, expected, r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"SUCCESS","token":"a1B2c3D4-Token","paymentUrl":"https://payment.laybuy.com/pay/a1B2c3D4-Token?x=1&y=2"}`))
	})

	resp, err := client.CreateOrder(context.Background(), laybuy.CreateRequest{
		Amount:            laybuy.NewAmount(decimal.RequireFromString("1500.00")),
		Currency:          "AUD",
		ReturnURL:         "https://shop.example/laybuy/callback/1",
		MerchantReference: "ORD-1",
		Tax:               laybuy.NewAmount(decimal.RequireFromString("100")),
		Items: []laybuy.ItemDetails{
			{ID: "SKU-1", Description: "Laptop", Quantity: 2, Price: laybuy.NewAmount(decimal.RequireFromString("600"))},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, laybuy.ResultSuccess, resp.Result)
	assert.Equal(t, "a1B2c3D4-Token", resp.Token)
	assert.Equal(t, "https://payment.laybuy.com/pay/a1B2c3D4-Token?x=1&y=2", resp.PaymentURL)

	assert.Equal(t, 1500.0, captured["amount"])
	assert.Equal(t, "ORD-1", captured["merchantReference"])
	assert.Equal(t, "https://shop.example/laybuy/callback/1", captured["returnUrl"])
	items := captured["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, 600.0, items[0].(map[string]any)["price"])
}

func TestClient_GetOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/order/merchant/ORD 7", r.URL.Path)
		assert.Empty(t, r.Header.Get("Content-Type"))

		_, _ = w.Write([]byte(`{
			"result": "success",
			"orderId": 5521,
			"merchantReference": "ORD 7",
			"amount": 200.00,
			"refunds": [
				{"refundId": 1, "amount": 25.50, "refundReference": "r-1"},
				{"refundId": 2, "amount": "4.50"}
			]
		}`))
	})

	resp, err := client.GetOrder(context.Background(), laybuy.GetRequest{MerchantReference: "ORD 7"})

	require.NoError(t, err)
	require.NotNil(t, resp.OrderID)
	assert.Equal(t, int64(5521), *resp.OrderID)
	require.Len(t, resp.Refunds, 2)
	assert.True(t, decimal.RequireFromString("25.5").Equal(resp.Refunds[0].Amount.Decimal))
	assert.True(t, decimal.RequireFromString("4.5").Equal(resp.Refunds[1].Amount.Decimal))
}

func TestClient_CancelOrder(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/order/cancel/tok-1", r.URL.Path)
		_, _ = w.Write([]byte(`{"result":"success"}`))
	})

	resp, err := client.CancelOrder(context.Background(), laybuy.CancelRequest{Token: "tok-1"})

	require.NoError(t, err)
	assert.Equal(t, laybuy.ResultSuccess, resp.Outcome().Result)
}

func TestClient_ErrorEnvelopeIsDecodedRegardlessOfStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"result":"ERROR","error":"Amount does not match items total"}`))
	})

	resp, err := client.ConfirmOrder(context.Background(), laybuy.ConfirmRequest{Token: "t"})

	require.NoError(t, err)
	assert.Equal(t, laybuy.ResultError, resp.Result)
	assert.Equal(t, "Amount does not match items total", resp.Error)
	assert.Nil(t, resp.OrderID)
}

func TestClient_UnrecognizedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	})

	_, err := client.RefundOrder(context.Background(), laybuy.RefundRequest{OrderID: 1})

	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeUnrecognizedResponse))
	assert.Contains(t, err.Error(), "<html>bad gateway</html>")

	respErr, ok := laybuy.IsResponseError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, respErr.StatusCode)
}

func TestClient_TransportFailure(t *testing.T) {
	t.Run("server unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := laybuy.NewClientWithBaseURL(testConfig, url)
		_, err := client.CreateOrder(context.Background(), laybuy.CreateRequest{})

		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeTransportFailure))
	})

	t.Run("context deadline", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.GetOrder(ctx, laybuy.GetRequest{MerchantReference: "x"})
		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeTransportFailure))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestNewClient_SelectsEnvironment(t *testing.T) {
	assert.NotNil(t, laybuy.NewClient(config.LaybuyConfig{UseSandbox: true, RequestTimeout: 10}))
}
