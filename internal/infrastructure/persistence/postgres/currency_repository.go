package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CurrencyRepository converts amounts using the rates stored per currency.
// A rate is the number of units of that currency per one unit of the primary currency.
type CurrencyRepository struct {
	q Executor
}

func NewCurrencyRepository(db *DB) *CurrencyRepository {
	return &CurrencyRepository{q: db.Pool}
}

func (r *CurrencyRepository) PrimaryCurrency(ctx context.Context) (string, error) {
	var code string
	err := r.q.QueryRow(ctx, `SELECT code FROM currencies WHERE is_primary`).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("query primary currency: %w", err)
	}
	return strings.TrimSpace(code), nil
}

func (r *CurrencyRepository) ConvertToPrimary(ctx context.Context, amount decimal.Decimal, fromCurrency string) (decimal.Decimal, error) {
	rate, err := r.rate(ctx, fromCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Div(rate), nil
}

func (r *CurrencyRepository) ConvertFromPrimary(ctx context.Context, amount decimal.Decimal, toCurrency string) (decimal.Decimal, error) {
	rate, err := r.rate(ctx, toCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

// Upsert stores a currency rate. Marking a currency primary demotes the previous one.
func (r *CurrencyRepository) Upsert(ctx context.Context, code string, rate decimal.Decimal, primary bool) error {
	code = strings.ToUpper(code)
	if primary {
		if _, err := r.q.Exec(ctx, `UPDATE currencies SET is_primary = FALSE WHERE is_primary AND code <> $1`, code); err != nil {
			return fmt.Errorf("demote primary currency: %w", err)
		}
	}

	query := `
		INSERT INTO currencies (code, rate, is_primary)
		VALUES ($1, $2, $3)
		ON CONFLICT (code)
		DO UPDATE SET rate = EXCLUDED.rate, is_primary = EXCLUDED.is_primary
	`
	if _, err := r.q.Exec(ctx, query, code, rate.String(), primary); err != nil {
		return fmt.Errorf("upsert currency %s: %w", code, err)
	}
	return nil
}

func (r *CurrencyRepository) rate(ctx context.Context, code string) (decimal.Decimal, error) {
	var raw string
	err := r.q.QueryRow(ctx, `SELECT rate::text FROM currencies WHERE code = $1`, strings.ToUpper(code)).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("currency %s: %w", code, domain.ErrNotFound)
		}
		return decimal.Zero, fmt.Errorf("query currency rate: %w", err)
	}
	return parseDecimal("rate", raw)
}
