package api

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Start the hosted Laybuy payment for an order
	// (POST /orders/{orderId}/payment)
	PostProcessPayment(w http.ResponseWriter, r *http.Request, orderId int64)
	// Provider return URL; verifies and confirms the payment
	// (GET /laybuy/callback/{orderId})
	LaybuyCallback(w http.ResponseWriter, r *http.Request, orderId int64, params LaybuyCallbackParams)
	// Refund part or all of a confirmed order
	// (POST /orders/{orderId}/refunds)
	RefundOrder(w http.ResponseWriter, r *http.Request, orderId int64)
	// Align the local refunded amount with the Laybuy refund ledger
	// (POST /orders/{orderId}/refunds/reconcile)
	ReconcileRefunds(w http.ResponseWriter, r *http.Request, orderId int64)
	// Cancel an unconfirmed Laybuy order
	// (POST /orders/{orderId}/cancel)
	CancelOrder(w http.ResponseWriter, r *http.Request, orderId int64)
	// Installment preview for a price or the customer's cart
	// (GET /price-breakdown)
	GetPriceBreakdown(w http.ResponseWriter, r *http.Request, params GetPriceBreakdownParams)
	// Configuration and currency eligibility of the integration
	// (GET /laybuy/status)
	GetStatus(w http.ResponseWriter, r *http.Request)
}

type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler              ServerInterface
	HandlerMiddlewares   []MiddlewareFunc
	OperationMiddlewares map[string][]MiddlewareFunc
	ErrorHandlerFunc     func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *ServerInterfaceWrapper) PostProcessPayment(w http.ResponseWriter, r *http.Request) {
	orderId, ok := siw.bindOrderID(w, r)
	if !ok {
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PostProcessPayment(w, r, orderId)
	}))

	siw.wrap(OperationPostProcessPayment, handler).ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) LaybuyCallback(w http.ResponseWriter, r *http.Request) {
	orderId, ok := siw.bindOrderID(w, r)
	if !ok {
		return
	}

	var params LaybuyCallbackParams

	if err := runtime.BindQueryParameter("form", true, false, "status", r.URL.Query(), &params.Status); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "status", Err: err})
		return
	}

	if err := runtime.BindQueryParameter("form", true, false, "token", r.URL.Query(), &params.Token); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "token", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.LaybuyCallback(w, r, orderId, params)
	}))

	siw.wrap(OperationLaybuyCallback, handler).ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) RefundOrder(w http.ResponseWriter, r *http.Request) {
	orderId, ok := siw.bindOrderID(w, r)
	if !ok {
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.RefundOrder(w, r, orderId)
	}))

	siw.wrap(OperationRefundOrder, handler).ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) ReconcileRefunds(w http.ResponseWriter, r *http.Request) {
	orderId, ok := siw.bindOrderID(w, r)
	if !ok {
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ReconcileRefunds(w, r, orderId)
	}))

	siw.wrap(OperationReconcileRefunds, handler).ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) CancelOrder(w http.ResponseWriter, r *http.Request) {
	orderId, ok := siw.bindOrderID(w, r)
	if !ok {
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CancelOrder(w, r, orderId)
	}))

	siw.wrap(OperationCancelOrder, handler).ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) GetPriceBreakdown(w http.ResponseWriter, r *http.Request) {
	var params GetPriceBreakdownParams
	query := r.URL.Query()

	if err := runtime.BindQueryParameter("form", true, false, "price", query, &params.Price); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "price", Err: err})
		return
	}

	if err := runtime.BindQueryParameter("form", true, false, "currency", query, &params.Currency); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "currency", Err: err})
		return
	}

	if err := runtime.BindQueryParameter("form", true, false, "zone", query, &params.Zone); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "zone", Err: err})
		return
	}

	if err := runtime.BindQueryParameter("form", true, false, "customerId", query, &params.CustomerId); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "customerId", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetPriceBreakdown(w, r, params)
	}))

	siw.wrap(OperationGetPriceBreakdown, handler).ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) GetStatus(w http.ResponseWriter, r *http.Request) {
	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetStatus(w, r)
	}))

	siw.wrap(OperationGetStatus, handler).ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) bindOrderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var orderId int64

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", r.PathValue("orderId"), &orderId, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "orderId", Err: err})
		return 0, false
	}
	return orderId, true
}

// wrap applies operation middlewares first, so they run inside the handler-wide ones.
func (siw *ServerInterfaceWrapper) wrap(operationID string, handler http.Handler) http.Handler {
	for _, middleware := range siw.OperationMiddlewares[operationID] {
		handler = middleware(handler)
	}
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	return handler
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

type StdHTTPServerOptions struct {
	BaseURL              string
	BaseRouter           *http.ServeMux
	Middlewares          []MiddlewareFunc
	OperationMiddlewares map[string][]MiddlewareFunc
	ErrorHandlerFunc     func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, m *http.ServeMux) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{
		BaseRouter: m,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options StdHTTPServerOptions) http.Handler {
	m := options.BaseRouter

	if m == nil {
		m = http.NewServeMux()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:              si,
		HandlerMiddlewares:   options.Middlewares,
		OperationMiddlewares: options.OperationMiddlewares,
		ErrorHandlerFunc:     options.ErrorHandlerFunc,
	}

	m.HandleFunc("POST "+options.BaseURL+"/orders/{orderId}/payment", wrapper.PostProcessPayment)
	m.HandleFunc("GET "+options.BaseURL+"/laybuy/callback/{orderId}", wrapper.LaybuyCallback)
	m.HandleFunc("POST "+options.BaseURL+"/orders/{orderId}/refunds", wrapper.RefundOrder)
	m.HandleFunc("POST "+options.BaseURL+"/orders/{orderId}/refunds/reconcile", wrapper.ReconcileRefunds)
	m.HandleFunc("POST "+options.BaseURL+"/orders/{orderId}/cancel", wrapper.CancelOrder)
	m.HandleFunc("GET "+options.BaseURL+"/price-breakdown", wrapper.GetPriceBreakdown)
	m.HandleFunc("GET "+options.BaseURL+"/laybuy/status", wrapper.GetStatus)

	return m
}
