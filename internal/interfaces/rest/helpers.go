package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/DanielPopoola/laybuy-gateway/internal/api"
	"github.com/DanielPopoola/laybuy-gateway/internal/application/services"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Warn("failed to encode response", "error", err)
	}
}

// RespondOK writes a 200 JSON response.
func RespondOK(w http.ResponseWriter, payload any, logger *slog.Logger) {
	respondWithJSON(w, http.StatusOK, payload, logger)
}

// WithNotice appends the notice as an "error" query parameter so the storefront can display it.
func WithNotice(target, notice string) string {
	if notice == "" {
		return target
	}
	u, err := url.Parse(target)
	if err != nil {
		return target
	}
	q := u.Query()
	q.Set("error", notice)
	u.RawQuery = q.Encode()
	return u.String()
}

func ToAPIRefund(r *services.RefundResult) api.Refund {
	return api.Refund{
		RefundId:        r.RefundID,
		RefundReference: r.RefundReference,
		Amount:          r.Amount.String(),
		Partial:         r.Partial,
	}
}

// ToAPIReconciliation reports updated=false for a nil order, meaning the ledger already matched.
func ToAPIReconciliation(o *domain.Order) api.Reconciliation {
	if o == nil {
		return api.Reconciliation{Updated: false}
	}
	refunded := o.RefundedAmount.String()
	status := string(o.PaymentStatus)
	return api.Reconciliation{
		Updated:        true,
		RefundedAmount: &refunded,
		PaymentStatus:  &status,
	}
}

func ToAPIBreakdown(b *services.Breakdown) api.Breakdown {
	return api.Breakdown{
		Applicable:   b.Applicable,
		InitialPrice: b.InitialPrice,
		Price:        b.Price,
	}
}
