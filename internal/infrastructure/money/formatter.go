// Package money renders amounts the way the storefront shows prices.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter prints amounts with the locale's currency symbol and two decimals.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Formatter{printer: message.NewPrinter(tag)}, nil
}

func (f *Formatter) FormatPrice(amount decimal.Decimal, currencyCode string) string {
	rounded := amount.Round(2)

	unit, err := currency.ParseISO(strings.ToUpper(currencyCode))
	if err != nil {
		return fmt.Sprintf("%s %s", currencyCode, rounded.StringFixed(2))
	}

	value, _ := rounded.Float64()
	return f.printer.Sprint(currency.Symbol(unit.Amount(value)))
}
