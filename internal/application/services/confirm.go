package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/DanielPopoola/laybuy-gateway/internal/application"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/DanielPopoola/laybuy-gateway/internal/infrastructure/laybuy"
)

func confirmLockKey(orderID int64) string {
	return fmt.Sprintf("laybuy:confirm:%d", orderID)
}

// ConfirmOrder verifies a provider callback and confirms the order with
// Laybuy. Both the status and the token must check out before anything is
// sent. Any failure leaves the order and its stored token untouched.
func (s *PaymentService) ConfirmOrder(ctx context.Context, cmd ConfirmCommand) (*ConfirmResult, error) {
	return handle(ctx, s, "confirm_order", cmd.OrderID, func(ctx context.Context, currency string) (*ConfirmResult, error) {
		unlock, err := s.locker.Lock(ctx, confirmLockKey(cmd.OrderID))
		if err != nil {
			if errors.Is(err, application.ErrLockNotAcquired) {
				return nil, application.NewOperationInProgressError(err)
			}
			return nil, application.NewInternalError(err)
		}
		defer unlock()

		order, err := s.loadOrder(ctx, cmd.OrderID)
		if err != nil {
			return nil, err
		}

		if status, err := laybuy.ParseResult(cmd.Status); err != nil || status != laybuy.ResultSuccess {
			return nil, domain.NewProviderRejectedError(cmd.Status, "payment was not completed")
		}

		ref := domain.OrderRef(order.ID)
		storedToken, err := s.attributes.GetAttribute(ctx, ref, AttrOrderToken)
		if err != nil {
			return nil, application.NewInternalError(err)
		}
		if !tokensMatch(cmd.Token, storedToken) {
			return nil, domain.NewTokenMismatchError(cmd.Token)
		}

		resp, err := s.provider.ConfirmOrder(ctx, laybuy.ConfirmRequest{
			Token:    storedToken,
			Amount:   laybuy.NewAmount(order.OrderTotal),
			Currency: currency,
			Items:    toItemDetails(domain.PrepareItems(order)),
		})
		if err != nil {
			return nil, err
		}
		if err := checkOutcome(resp); err != nil {
			return nil, err
		}
		if resp.OrderID == nil {
			return nil, domain.NewMissingCorrelationIDError("order identifier")
		}

		result := &ConfirmResult{Order: order, ProviderOrderID: *resp.OrderID}

		err = s.transactions.WithTransaction(ctx, func(ctx context.Context, orders application.OrderStore, attributes application.AttributeStore) error {
			if err := attributes.SetAttribute(ctx, ref, AttrOrderToken, ""); err != nil {
				return err
			}
			if err := attributes.SetAttribute(ctx, ref, AttrOrderID, strconv.FormatInt(*resp.OrderID, 10)); err != nil {
				return err
			}
			if !order.CanMarkPaid() {
				return nil
			}
			if err := order.MarkPaid(s.now()); err != nil {
				return err
			}
			result.MarkedPaid = true
			return orders.Update(ctx, order)
		})
		if err != nil {
			return nil, application.NewInternalError(err)
		}

		return result, nil
	})
}

// tokensMatch compares case-insensitively. An empty value on either side never matches.
func tokensMatch(received, stored string) bool {
	if received == "" || stored == "" {
		return false
	}
	a := []byte(strings.ToLower(received))
	b := []byte(strings.ToLower(stored))
	return subtle.ConstantTimeCompare(a, b) == 1
}
