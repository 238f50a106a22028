package services

import (
	"context"

	"github.com/DanielPopoola/laybuy-gateway/internal/application"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/laybuy"
)

// CancelOrder abandons an unconfirmed Laybuy order and forgets its token.
func (s *PaymentService) CancelOrder(ctx context.Context, orderID int64) error {
	_, err := handle(ctx, s, "cancel_order", orderID, func(ctx context.Context, _ string) (struct{}, error) {
		order, err := s.loadOrder(ctx, orderID)
		if err != nil {
			return struct{}{}, err
		}

		ref := domain.OrderRef(order.ID)
		token, err := s.attributes.GetAttribute(ctx, ref, AttrOrderToken)
		if err != nil {
			return struct{}{}, application.NewInternalError(err)
		}
		if token == "" {
			return struct{}{}, domain.NewMissingCorrelationIDError("order token")
		}

		resp, err := s.provider.CancelOrder(ctx, laybuy.CancelRequest{Token: token})
		if err != nil {
			return struct{}{}, err
		}
		if err := checkOutcome(resp); err != nil {
			return struct{}{}, err
		}

		if err := s.attributes.SetAttribute(ctx, ref, AttrOrderToken, ""); err != nil {
			return struct{}{}, application.NewInternalError(err)
		}
		return struct{}{}, nil
	})
	return err
}
