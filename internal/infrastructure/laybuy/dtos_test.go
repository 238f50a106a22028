package laybuy

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_MarshalsAsNumber(t *testing.T) {
	data, err := json.Marshal(ItemDetails{
		ID:       "Discount",
		Quantity: 1,
		Price:    NewAmount(decimal.RequireFromString("-12.50")),
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"Discount","description":"","quantity":1,"price":-12.5}`, string(data))
}

func TestResult(t *testing.T) {
	t.Run("serializes lowercase", func(t *testing.T) {
		data, err := json.Marshal(Response{Result: ResultCancelled})
		require.NoError(t, err)
		assert.JSONEq(t, `{"result":"cancelled"}`, string(data))
	})

	t.Run("parses case-insensitively", func(t *testing.T) {
		for _, s := range []string{"success", "SUCCESS", "Success"} {
			r, err := ParseResult(s)
			require.NoError(t, err)
			assert.Equal(t, ResultSuccess, r)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := ParseResult("approved")
		assert.Error(t, err)

		var resp Response
		assert.Error(t, json.Unmarshal([]byte(`{"result":"approved"}`), &resp))
	})
}

func TestRequestPaths(t *testing.T) {
	tests := []struct {
		req    Request
		method string
		path   string
	}{
		{CreateRequest{}, "POST", "order/create"},
		{ConfirmRequest{}, "POST", "order/confirm"},
		{GetRequest{MerchantReference: "ORD-1"}, "GET", "order/merchant/ORD-1"},
		{RefundRequest{}, "POST", "order/refund"},
		{CancelRequest{Token: "tok"}, "GET", "order/cancel/tok"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.method, tt.req.Method())
			assert.Equal(t, tt.path, tt.req.Path())
		})
	}
}
