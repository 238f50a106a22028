package services

import (
	"context"

	"github.com/DanielPopoola/laybuy-gateway/internal/application"
	"github.com/DanielPopoola/laybuy-gateway/internal/domain"
	"github.com/shopspring/decimal"
)

func notApplicable() *Breakdown {
	return &Breakdown{}
}

func (s *PaymentService) zoneEnabled(zone Zone) bool {
	switch zone {
	case ZoneProductPage:
		return s.laybuy.DisplayOnProductPage
	case ZoneProductBox:
		return s.laybuy.DisplayOnProductBox
	case ZoneShoppingCart:
		return s.laybuy.DisplayOnShoppingCart
	case "":
		return true
	}
	return false
}

// PriceBreakdown previews how a price splits into installments. Anything
// that makes the preview irrelevant (unsupported currency, disabled zone,
// no price) yields a non-applicable result rather than an error.
func (s *PaymentService) PriceBreakdown(ctx context.Context, q BreakdownQuery) (*Breakdown, error) {
	if !s.zoneEnabled(q.Zone) {
		return notApplicable(), nil
	}

	supported, primary, err := s.PrimaryCurrencySupported(ctx)
	if err != nil {
		return nil, err
	}
	if !supported {
		return notApplicable(), nil
	}

	working := q.WorkingCurrency
	if working == "" {
		working = primary
	}

	price, err := s.breakdownPrice(ctx, q, working)
	if err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return notApplicable(), nil
	}

	rule, _ := domain.BoostRuleFor(primary)

	inPrimary, err := s.currencies.ConvertToPrimary(ctx, price, working)
	if err != nil {
		return nil, application.NewInternalError(err)
	}

	result := &Breakdown{Applicable: true}
	regular := price.Div(decimal.NewFromInt(domain.InstallmentCount))

	if rule.Applies(inPrimary) {
		initial, err := s.currencies.ConvertFromPrimary(ctx, rule.InitialInstallment(inPrimary), working)
		if err != nil {
			return nil, application.NewInternalError(err)
		}
		result.InitialPrice = s.formatter.FormatPrice(initial, working)

		regular, err = s.currencies.ConvertFromPrimary(ctx, rule.FirstInstallment, working)
		if err != nil {
			return nil, application.NewInternalError(err)
		}
	}

	if regular.IsPositive() {
		result.Price = s.formatter.FormatPrice(regular, working)
	}
	return result, nil
}

func (s *PaymentService) breakdownPrice(ctx context.Context, q BreakdownQuery, working string) (decimal.Decimal, error) {
	if q.Price != nil {
		return *q.Price, nil
	}
	if q.CustomerID == 0 {
		return decimal.Zero, nil
	}

	total, err := s.carts.CartTotal(ctx, q.CustomerID)
	if err != nil {
		if isNotFound(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, application.NewInternalError(err)
	}
	if total.IsZero() {
		return decimal.Zero, nil
	}

	converted, err := s.currencies.ConvertFromPrimary(ctx, total, working)
	if err != nil {
		return decimal.Zero, application.NewInternalError(err)
	}
	return converted, nil
}
