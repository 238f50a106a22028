package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/laybuy-gateway/internal/application"
	"github.com/DanielPopoola/laybuy-gateway/internal/application/services"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
)

const defaultBatchSize = 50

type RefundChecker interface {
	CheckRefunds(ctx context.Context, orderID int64) (*domain.Order, error)
}

// OrderLister pages through the ids of entities that carry an attribute.
type OrderLister interface {
	FindEntityIDsWithAttribute(ctx context.Context, group, key string, afterID int64, limit int) ([]int64, error)
}

// RefundReconciler periodically pulls the Laybuy refund ledger for every
// confirmed order so refunds issued from the Laybuy merchant portal show up locally.
type RefundReconciler struct {
	orders    OrderLister
	checker   RefundChecker
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

func NewRefundReconciler(
	orders OrderLister,
	checker RefundChecker,
	interval time.Duration,
	batchSize int,
	logger *slog.Logger,
) *RefundReconciler {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &RefundReconciler{
		orders:    orders,
		checker:   checker,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger,
	}
}

func (r *RefundReconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("starting refund reconciler", "interval", r.interval, "batch_size", r.batchSize)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping refund reconciler")
			return
		case <-ticker.C:
			r.RunOnce(ctx)
		}
	}
}

// RunOnce walks all confirmed orders once. It returns the number of orders
// whose refunded amount changed.
func (r *RefundReconciler) RunOnce(ctx context.Context) int {
	var afterID int64
	updated := 0

	for {
		ids, err := r.orders.FindEntityIDsWithAttribute(ctx, domain.GroupOrder, services.AttrOrderID, afterID, r.batchSize)
		if err != nil {
			r.logger.Error("failed to list confirmed orders", "after_id", afterID, "error", err)
			return updated
		}

		for _, id := range ids {
			if ctx.Err() != nil {
				return updated
			}

			order, err := r.checker.CheckRefunds(ctx, id)
			if err != nil {
				// every other order would fail the same way
				if domain.IsErrorCode(err, domain.ErrCodeNotConfigured) || domain.IsErrorCode(err, domain.ErrCodeUnsupportedCurrency) {
					r.logger.Warn("refund reconciliation skipped", "error", err)
					return updated
				}
				r.logger.Error("refund reconciliation failed",
					"order_id", id,
					"error", err,
					"category", application.CategorizeError(err),
				)
				continue
			}
			if order != nil {
				updated++
			}
		}

		if len(ids) < r.batchSize {
			break
		}
		afterID = ids[len(ids)-1]
	}

	if updated > 0 {
		r.logger.Info("refund reconciliation cycle complete", "updated", updated)
	}
	return updated
}
