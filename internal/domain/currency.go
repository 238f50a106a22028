package domain

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// InstallmentCount is the number of equal payments a purchase is split into.
const InstallmentCount = 6

var supportedCurrencies = []string{"AUD", "GBP", "NZD"}

// IsSupportedCurrency reports whether Laybuy accepts the ISO currency code.
func IsSupportedCurrency(code string) bool {
	return slices.ContainsFunc(supportedCurrencies, func(c string) bool {
		return strings.EqualFold(c, code)
	})
}

// BoostRule describes the "Laybuy Boost" breakdown: above Threshold the first
// installment absorbs everything over it, on top of the regular FirstInstallment.
type BoostRule struct {
	Threshold        decimal.Decimal
	FirstInstallment decimal.Decimal
}

// BoostRuleFor returns the rule for a supported currency.
func BoostRuleFor(code string) (BoostRule, bool) {
	switch strings.ToUpper(code) {
	case "AUD", "NZD":
		return BoostRule{
			Threshold:        decimal.NewFromInt(1440),
			FirstInstallment: decimal.NewFromInt(240),
		}, true
	case "GBP":
		return BoostRule{
			Threshold:        decimal.NewFromInt(720),
			FirstInstallment: decimal.NewFromInt(120),
		}, true
	}
	return BoostRule{}, false
}

// Applies reports whether the price (in primary store currency) is strictly over the threshold.
func (r BoostRule) Applies(price decimal.Decimal) bool {
	return price.GreaterThan(r.Threshold)
}

// InitialInstallment is the boosted first payment for a price over the threshold.
func (r BoostRule) InitialInstallment(price decimal.Decimal) decimal.Decimal {
	return r.FirstInstallment.Add(price.Sub(r.Threshold))
}
