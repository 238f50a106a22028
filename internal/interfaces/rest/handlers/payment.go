package handlers

import (
	"net/http"

	"github.com/DanielPopoola/laybuy-gateway/internal/api"
	"github.com/DanielPopoola/laybuy-gateway/internal/application/services"
	"github.com/DanielPopoola/laybuy-gateway/internal/interfaces/rest"
)

// PostProcessPayment sends the customer to the Laybuy payment page, or back
// to the order with a notice when the order could not be created.
func (h *Handlers) PostProcessPayment(w http.ResponseWriter, r *http.Request, orderId int64) {
	ctx := r.Context()

	redirect := h.payments.PostProcessPayment(ctx, orderId)
	if err := h.payments.ApplyWrites(ctx, redirect.Writes); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	http.Redirect(w, r, rest.WithNotice(redirect.URL, redirect.Notice), http.StatusSeeOther)
}

// LaybuyCallback is where Laybuy returns the customer after payment.
func (h *Handlers) LaybuyCallback(w http.ResponseWriter, r *http.Request, orderId int64, params api.LaybuyCallbackParams) {
	cmd := services.ConfirmCommand{OrderID: orderId}
	if params.Status != nil {
		cmd.Status = *params.Status
	}
	if params.Token != nil {
		cmd.Token = *params.Token
	}

	if _, err := h.payments.ConfirmOrder(r.Context(), cmd); err != nil {
		http.Redirect(w, r, rest.WithNotice(h.payments.OrderDetailsURL(orderId), err.Error()), http.StatusFound)
		return
	}

	http.Redirect(w, r, h.payments.CheckoutCompletedURL(orderId), http.StatusFound)
}

func (h *Handlers) CancelOrder(w http.ResponseWriter, r *http.Request, orderId int64) {
	if err := h.payments.CancelOrder(r.Context(), orderId); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.RespondOK(w, api.CancelResponse{
		Success: true,
		Data:    api.Cancellation{OrderId: orderId},
	}, h.logger)
}
