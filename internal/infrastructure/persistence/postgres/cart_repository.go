package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type CartRepository struct {
	q Executor
}

func NewCartRepository(db *DB) *CartRepository {
	return &CartRepository{q: db.Pool}
}

// CartTotal returns the customer's cart total in primary currency, zero when there is no cart.
func (r *CartRepository) CartTotal(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	var raw string
	err := r.q.QueryRow(ctx, `SELECT total::text FROM carts WHERE customer_id = $1`, customerID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("query cart total: %w", err)
	}
	return parseDecimal("total", raw)
}

func (r *CartRepository) SetCartTotal(ctx context.Context, customerID int64, total decimal.Decimal) error {
	query := `
		INSERT INTO carts (customer_id, total)
		VALUES ($1, $2)
		ON CONFLICT (customer_id)
		DO UPDATE SET total = EXCLUDED.total, updated_at = NOW()
	`
	if _, err := r.q.Exec(ctx, query, customerID, total.String()); err != nil {
		return fmt.Errorf("set cart total: %w", err)
	}
	return nil
}
