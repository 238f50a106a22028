package api

import (
	"github.com/shopspring/decimal"
)

// Operation ids as declared in openapi.yaml.
const (
	OperationPostProcessPayment = "PostProcessPayment"
	OperationLaybuyCallback     = "LaybuyCallback"
	OperationRefundOrder        = "RefundOrder"
	OperationReconcileRefunds   = "ReconcileRefunds"
	OperationCancelOrder        = "CancelOrder"
	OperationGetPriceBreakdown  = "GetPriceBreakdown"
	OperationGetStatus          = "GetStatus"
)

type LaybuyCallbackParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
	Token  *string `form:"token,omitempty" json:"token,omitempty"`
}

type GetPriceBreakdownParams struct {
	Price      *string `form:"price,omitempty" json:"price,omitempty"`
	Currency   *string `form:"currency,omitempty" json:"currency,omitempty"`
	Zone       *string `form:"zone,omitempty" json:"zone,omitempty"`
	CustomerId *int64  `form:"customerId,omitempty" json:"customerId,omitempty"`
}

type RefundRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   *string         `json:"note,omitempty"`
}

// RefundOrderJSONRequestBody defines body for RefundOrder for application/json ContentType.
type RefundOrderJSONRequestBody = RefundRequest

type Refund struct {
	RefundId        *int64 `json:"refundId,omitempty"`
	RefundReference string `json:"refundReference"`
	Amount          string `json:"amount"`
	Partial         bool   `json:"partial"`
}

type RefundResponse struct {
	Success bool   `json:"success"`
	Data    Refund `json:"data"`
}

type Reconciliation struct {
	Updated        bool    `json:"updated"`
	RefundedAmount *string `json:"refundedAmount,omitempty"`
	PaymentStatus  *string `json:"paymentStatus,omitempty"`
}

type ReconcileResponse struct {
	Success bool           `json:"success"`
	Data    Reconciliation `json:"data"`
}

type Cancellation struct {
	OrderId int64 `json:"orderId"`
}

type CancelResponse struct {
	Success bool         `json:"success"`
	Data    Cancellation `json:"data"`
}

type Breakdown struct {
	Applicable   bool   `json:"applicable"`
	InitialPrice string `json:"initialPrice"`
	Price        string `json:"price"`
}

type BreakdownResponse struct {
	Success bool      `json:"success"`
	Data    Breakdown `json:"data"`
}

type Status struct {
	Configured            bool   `json:"configured"`
	Sandbox               bool   `json:"sandbox"`
	PrimaryCurrency       string `json:"primaryCurrency"`
	CurrencySupported     bool   `json:"currencySupported"`
	DisplayOnProductPage  bool   `json:"displayOnProductPage"`
	DisplayOnProductBox   bool   `json:"displayOnProductBox"`
	DisplayOnShoppingCart bool   `json:"displayOnShoppingCart"`
}

type StatusResponse struct {
	Success bool   `json:"success"`
	Data    Status `json:"data"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}
