//go:build integration

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/laybuy"
	"github.com/shopspring/decimal"
)

// FakeLaybuy is an in-memory stand-in for the Laybuy merchant API covering
// one order at a time.
type FakeLaybuy struct {
	*httptest.Server

	mu                sync.Mutex
	token             string
	merchantReference string
	orderID           int64
	refunds           []laybuy.RefundDetails
	nextRefundID      int64
}

const fakeToken = "FAKE-TOKEN-1"

func NewFakeLaybuy() *FakeLaybuy {
	f := &FakeLaybuy{nextRefundID: 900}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /order/create", f.create)
	mux.HandleFunc("POST /order/confirm", f.confirm)
	mux.HandleFunc("GET /order/merchant/{reference}", f.get)
	mux.HandleFunc("POST /order/refund", f.refund)
	mux.HandleFunc("GET /order/cancel/{token}", f.cancel)

	f.Server = httptest.NewServer(mux)
	return f
}

func (f *FakeLaybuy) create(w http.ResponseWriter, r *http.Request) {
	var req laybuy.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, map[string]any{"result": "ERROR", "error": err.Error()})
		return
	}

	f.mu.Lock()
	f.token = fakeToken
	f.merchantReference = req.MerchantReference
	f.mu.Unlock()

	writeEnvelope(w, map[string]any{
		"result":     "SUCCESS",
		"token":      fakeToken,
		"paymentUrl": "https://sandbox-payment.laybuy.com/pay/" + fakeToken,
	})
}

func (f *FakeLaybuy) confirm(w http.ResponseWriter, r *http.Request) {
	var req laybuy.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, map[string]any{"result": "ERROR", "error": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if req.Token != f.token {
		writeEnvelope(w, map[string]any{"result": "ERROR", "error": "unknown token"})
		return
	}
	f.orderID = 7001
	writeEnvelope(w, map[string]any{"result": "SUCCESS", "orderId": f.orderID})
}

func (f *FakeLaybuy) get(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.PathValue("reference") != f.merchantReference {
		writeEnvelope(w, map[string]any{"result": "ERROR", "error": "order not found"})
		return
	}
	writeEnvelope(w, map[string]any{
		"result":            "SUCCESS",
		"orderId":           f.orderID,
		"merchantReference": f.merchantReference,
		"amount":            1500,
		"currency":          "AUD",
		"refunds":           f.refunds,
	})
}

func (f *FakeLaybuy) refund(w http.ResponseWriter, r *http.Request) {
	var req laybuy.RefundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeEnvelope(w, map[string]any{"result": "ERROR", "error": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if req.OrderID != f.orderID {
		writeEnvelope(w, map[string]any{"result": "ERROR", "error": "unknown order"})
		return
	}

	f.nextRefundID++
	f.refunds = append(f.refunds, laybuy.RefundDetails{
		RefundID:        f.nextRefundID,
		Amount:          laybuy.NewAmount(req.Amount.Decimal),
		RefundReference: req.RefundReference,
		UserNote:        req.Note,
	})
	writeEnvelope(w, map[string]any{
		"result":            "SUCCESS",
		"refundId":          f.nextRefundID,
		"merchantReference": f.merchantReference,
	})
}

func (f *FakeLaybuy) cancel(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.PathValue("token") != f.token {
		writeEnvelope(w, map[string]any{"result": "ERROR", "error": "unknown token"})
		return
	}
	f.token = ""
	writeEnvelope(w, map[string]any{"result": "SUCCESS"})
}

// RecordPortalRefund simulates a refund issued from the Laybuy merchant portal.
func (f *FakeLaybuy) RecordPortalRefund(amount decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextRefundID++
	f.refunds = append(f.refunds, laybuy.RefundDetails{
		RefundID: f.nextRefundID,
		Amount:   laybuy.NewAmount(amount),
	})
}

func writeEnvelope(w http.ResponseWriter, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
