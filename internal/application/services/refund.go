package services

import (
	"context"

	"github.com/DanielPopoola/laybuy-gateway/internal/application"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/laybuy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundOrder asks Laybuy to refund part or all of a confirmed order. The
// local refunded amount is left alone; CheckRefunds brings it in line.
func (s *PaymentService) RefundOrder(ctx context.Context, cmd RefundCommand) (*RefundResult, error) {
	return handle(ctx, s, "refund_order", cmd.OrderID, func(ctx context.Context, _ string) (*RefundResult, error) {
		if !cmd.Amount.IsPositive() {
			return nil, domain.NewInvalidInputError("refund amount must be positive")
		}

		order, err := s.loadOrder(ctx, cmd.OrderID)
		if err != nil {
			return nil, err
		}

		providerOrderID, err := s.providerOrderID(ctx, order.ID)
		if err != nil {
			return nil, err
		}

		reference := uuid.New().String()
		resp, err := s.provider.RefundOrder(ctx, laybuy.RefundRequest{
			OrderID:         providerOrderID,
			Amount:          laybuy.NewAmount(cmd.Amount),
			RefundReference: reference,
			Note:            cmd.Note,
		})
		if err != nil {
			return nil, err
		}
		if err := checkOutcome(resp); err != nil {
			return nil, err
		}

		return &RefundResult{
			RefundID:        resp.RefundID,
			RefundReference: reference,
			Amount:          cmd.Amount,
			Partial:         order.IsPartialRefund(cmd.Amount),
		}, nil
	})
}

// CheckRefunds pulls the provider's refund ledger for an order and overwrites
// the local refunded amount when the two disagree. It returns the updated
// order, or nil when nothing had to change.
func (s *PaymentService) CheckRefunds(ctx context.Context, orderID int64) (*domain.Order, error) {
	return handle(ctx, s, "check_refunds", orderID, func(ctx context.Context, _ string) (*domain.Order, error) {
		order, err := s.loadOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}

		resp, err := s.provider.GetOrder(ctx, laybuy.GetRequest{MerchantReference: order.CustomOrderNumber})
		if err != nil {
			return nil, err
		}
		if err := checkOutcome(resp); err != nil {
			return nil, err
		}

		if resp.Refunds == nil {
			return nil, nil
		}

		refunded := decimal.Zero
		for _, refund := range resp.Refunds {
			refunded = refunded.Add(refund.Amount.Decimal)
		}

		if !order.ApplyRefundedAmount(refunded) {
			return nil, nil
		}

		if err := s.orders.Update(ctx, order); err != nil {
			return nil, application.NewInternalError(err)
		}

		s.logger.Info("refunded amount reconciled",
			"order_id", order.ID,
			"refunded_amount", refunded.String(),
		)
		return order, nil
	})
}
