package laybuy

import (
	"net/http"
	"net/url"
)

// Request is implemented only by the request types of this package. Each one
// names the endpoint it is sent to.
type Request interface {
	Path() string
	Method() string
	request()
}

// Response is the envelope shared by every reply.
type Response struct {
	Result Result `json:"result"`
	Error  string `json:"error,omitempty"`
}

func (r Response) Outcome() Response {
	return r
}

// Envelope is satisfied by every response type through the embedded Response.
type Envelope interface {
	Outcome() Response
}

type ItemDetails struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Price       Amount `json:"price"`
}

type AddressDetails struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	Suburb   string `json:"suburb,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Postcode string `json:"postcode,omitempty"`
	Country  string `json:"country,omitempty"`
}

type CustomerDetails struct {
	CustomerID string `json:"customerid,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address1   string `json:"address1,omitempty"`
	Address2   string `json:"address2,omitempty"`
	Suburb     string `json:"suburb,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Postcode   string `json:"postcode,omitempty"`
	Country    string `json:"country,omitempty"`
}

type RefundDetails struct {
	RefundID        int64  `json:"refundId"`
	DateTime        string `json:"dateTime,omitempty"`
	Amount          Amount `json:"amount"`
	RefundReference string `json:"refundReference,omitempty"`
	User            string `json:"user,omitempty"`
	UserNote        string `json:"userNote,omitempty"`
}

type CreateRequest struct {
	Amount            Amount          `json:"amount"`
	Currency          string          `json:"currency"`
	ReturnURL         string          `json:"returnUrl"`
	MerchantReference string          `json:"merchantReference"`
	Tax               Amount          `json:"tax"`
	Customer          CustomerDetails `json:"customer"`
	BillingAddress    *AddressDetails `json:"billingAddress,omitempty"`
	ShippingAddress   *AddressDetails `json:"shippingAddress,omitempty"`
	Items             []ItemDetails   `json:"items"`
}

func (CreateRequest) Path() string   { return "order/create" }
func (CreateRequest) Method() string { return http.MethodPost }
func (CreateRequest) request()       {}

type CreateResponse struct {
	Response
	Token      string `json:"token,omitempty"`
	PaymentURL string `json:"paymentUrl,omitempty"`
}

type ConfirmRequest struct {
	Token    string        `json:"token"`
	Amount   Amount        `json:"amount"`
	Currency string        `json:"currency"`
	Items    []ItemDetails `json:"items"`
}

func (ConfirmRequest) Path() string   { return "order/confirm" }
func (ConfirmRequest) Method() string { return http.MethodPost }
func (ConfirmRequest) request()       {}

type ConfirmResponse struct {
	Response
	OrderID *int64 `json:"orderId,omitempty"`
}

// GetRequest looks an order up by the merchant's own reference. It has no body.
type GetRequest struct {
	MerchantReference string `json:"-"`
}

func (r GetRequest) Path() string {
	return "order/merchant/" + url.PathEscape(r.MerchantReference)
}
func (GetRequest) Method() string { return http.MethodGet }
func (GetRequest) request()       {}

type GetResponse struct {
	Response
	OrderID           *int64          `json:"orderId,omitempty"`
	Token             string          `json:"token,omitempty"`
	Amount            Amount          `json:"amount"`
	Currency          string          `json:"currency,omitempty"`
	MerchantReference string          `json:"merchantReference,omitempty"`
	Processed         string          `json:"processed,omitempty"`
	Customer          CustomerDetails `json:"customer"`
	Refunds           []RefundDetails `json:"refunds,omitempty"`
}

type RefundRequest struct {
	OrderID         int64  `json:"orderId"`
	Amount          Amount `json:"amount"`
	RefundReference string `json:"refundReference,omitempty"`
	Note            string `json:"note,omitempty"`
}

func (RefundRequest) Path() string   { return "order/refund" }
func (RefundRequest) Method() string { return http.MethodPost }
func (RefundRequest) request()       {}

type RefundResponse struct {
	Response
	RefundID          *int64 `json:"refundId,omitempty"`
	MerchantReference string `json:"merchantReference,omitempty"`
}

// CancelRequest abandons an unconfirmed order by its token. It has no body.
type CancelRequest struct {
	Token string `json:"-"`
}

func (r CancelRequest) Path() string {
	return "order/cancel/" + url.PathEscape(r.Token)
}
func (CancelRequest) Method() string { return http.MethodGet }
func (CancelRequest) request()       {}

type CancelResponse struct {
	Response
}
