package services

import (
	"context"

	"github.com/DanielPopoola/laybuy-gateway/internal/application"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/laybuy"
)

// CreateOrder registers the order with Laybuy. The returned token must be
// stored against the order before the customer is sent to the payment URL.
func (s *PaymentService) CreateOrder(ctx context.Context, orderID int64, returnURL string) (*laybuy.CreateResponse, error) {
	return handle(ctx, s, "create_order", orderID, func(ctx context.Context, currency string) (*laybuy.CreateResponse, error) {
		req, err := s.buildCreateRequest(ctx, orderID, currency, returnURL)
		if err != nil {
			return nil, err
		}

		resp, err := s.provider.CreateOrder(ctx, *req)
		if err != nil {
			return nil, err
		}
		if err := checkOutcome(resp); err != nil {
			return nil, err
		}
		// the callback is verified against the token, so a redirect without one can never complete
		if resp.Token == "" {
			return nil, domain.NewMissingCorrelationIDError("laybuy order token")
		}
		if resp.PaymentURL == "" {
			return nil, domain.NewMissingCorrelationIDError("laybuy payment url")
		}
		return resp, nil
	})
}

func (s *PaymentService) buildCreateRequest(ctx context.Context, orderID int64, currency, returnURL string) (*laybuy.CreateRequest, error) {
	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	customer, err := s.orders.FindCustomer(ctx, order.CustomerID)
	if err != nil {
		return nil, notFoundOr("customer", err)
	}

	billing, err := s.orders.FindAddress(ctx, order.BillingAddressID)
	if err != nil {
		return nil, notFoundOr("billing address", err)
	}

	req := &laybuy.CreateRequest{
		Amount:            laybuy.NewAmount(order.OrderTotal),
		Currency:          currency,
		ReturnURL:         returnURL,
		MerchantReference: order.CustomOrderNumber,
		Tax:               laybuy.NewAmount(order.OrderTax),
		Customer: laybuy.CustomerDetails{
			FirstName: customer.FirstName,
			LastName:  customer.LastName,
			Email:     customer.Email,
			Phone:     customer.Phone,
		},
		BillingAddress: toAddressDetails(billing),
		Items:          toItemDetails(domain.PrepareItems(order)),
	}

	if addressID, ok := order.DeliveryAddressID(); ok {
		shipping, err := s.orders.FindAddress(ctx, addressID)
		switch {
		case err == nil:
			req.ShippingAddress = toAddressDetails(shipping)
		case !isNotFound(err):
			return nil, application.NewInternalError(err)
		}
	}

	return req, nil
}

// PostProcessPayment starts the hosted payment for an order. It never fails:
// errors become a redirect to the order details page with a notice.
func (s *PaymentService) PostProcessPayment(ctx context.Context, orderID int64) Redirect {
	resp, err := s.CreateOrder(ctx, orderID, s.CallbackURL(orderID))
	if err != nil {
		return Redirect{
			URL:    s.OrderDetailsURL(orderID),
			Notice: err.Error(),
		}
	}

	return Redirect{
		URL: resp.PaymentURL,
		Writes: []AttributeWrite{
			{Ref: domain.OrderRef(orderID), Key: AttrOrderToken, Value: resp.Token},
		},
	}
}

// ApplyWrites persists the attribute changes carried by a Redirect.
func (s *PaymentService) ApplyWrites(ctx context.Context, writes []AttributeWrite) error {
	for _, w := range writes {
		if err := s.attributes.SetAttribute(ctx, w.Ref, w.Key, w.Value); err != nil {
			return application.NewInternalError(err)
		}
	}
	return nil
}
