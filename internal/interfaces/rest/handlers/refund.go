package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DanielPopoola/laybuy-gateway/internal/api"
	"github.com/DanielPopoola/laybuy-gateway/internal/application/services"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/interfaces/rest"
)

func (h *Handlers) RefundOrder(w http.ResponseWriter, r *http.Request, orderId int64) {
	var body api.RefundOrderJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		rest.WriteError(w, domain.NewInvalidInputError("request body is not valid JSON"), h.logger)
		return
	}

	cmd := services.RefundCommand{
		OrderID: orderId,
		Amount:  body.Amount,
	}
	if body.Note != nil {
		cmd.Note = *body.Note
	}

	result, err := h.payments.RefundOrder(r.Context(), cmd)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.RespondOK(w, api.RefundResponse{
		Success: true,
		Data:    rest.ToAPIRefund(result),
	}, h.logger)
}

func (h *Handlers) ReconcileRefunds(w http.ResponseWriter, r *http.Request, orderId int64) {
	order, err := h.payments.CheckRefunds(r.Context(), orderId)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.RespondOK(w, api.ReconcileResponse{
		Success: true,
		Data:    rest.ToAPIReconciliation(order),
	}, h.logger)
}
