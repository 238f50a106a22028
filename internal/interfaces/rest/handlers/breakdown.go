package handlers

import (
	"net/http"

	"github.com/DanielPopoola/laybuy-gateway/internal/api"
	"github.com/DanielPopoola/laybuy-gateway/internal/application/services"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/interfaces/rest"
	"github.com/shopspring/decimal"
)

func (h *Handlers) GetPriceBreakdown(w http.ResponseWriter, r *http.Request, params api.GetPriceBreakdownParams) {
	q := services.BreakdownQuery{}

	if params.Price != nil {
		price, err := decimal.NewFromString(*params.Price)
		if err != nil {
			rest.WriteError(w, domain.NewInvalidInputError("price must be a decimal number"), h.logger)
			return
		}
		q.Price = &price
	}
	if params.Currency != nil {
		q.WorkingCurrency = *params.Currency
	}
	if params.Zone != nil {
		q.Zone = services.Zone(*params.Zone)
	}
	if params.CustomerId != nil {
		q.CustomerID = *params.CustomerId
	}

	breakdown, err := h.payments.PriceBreakdown(r.Context(), q)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.RespondOK(w, api.BreakdownResponse{
		Success: true,
		Data:    rest.ToAPIBreakdown(breakdown),
	}, h.logger)
}

// GetStatus backs the admin warning shown when the store currency is not one Laybuy accepts.
func (h *Handlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	supported, primary, err := h.payments.PrimaryCurrencySupported(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.RespondOK(w, api.StatusResponse{
		Success: true,
		Data: api.Status{
			Configured:            h.payments.Configured(),
			Sandbox:               h.laybuy.UseSandbox,
			PrimaryCurrency:       primary,
			CurrencySupported:     supported,
			DisplayOnProductPage:  h.laybuy.DisplayOnProductPage,
			DisplayOnProductBox:   h.laybuy.DisplayOnProductBox,
			DisplayOnShoppingCart: h.laybuy.DisplayOnShoppingCart,
		},
	}, h.logger)
}
