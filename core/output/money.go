package output

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"cdn-cost/core/types"
)

// Money formats amounts for one locale and currency
type Money struct {
	printer *message.Printer
	unit    currency.Unit
	symbol  string
	scale   int
}

// NewMoney creates a formatter for a BCP 47 locale, an ISO 4217 currency
// and the symbol printed in front of amounts. An empty symbol prints the
// currency code instead.
func NewMoney(locale string, code types.Currency, symbol string) (*Money, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	unit, err := currency.ParseISO(string(code))
	if err != nil {
		return nil, err
	}
	if symbol == "" {
		symbol = unit.String() + " "
	}

	scale, _ := currency.Standard.Rounding(unit)
	return &Money{
		printer: message.NewPrinter(tag),
		unit:    unit,
		symbol:  symbol,
		scale:   scale,
	}, nil
}

// Currency returns the ISO code
func (m *Money) Currency() string {
	return m.unit.String()
}

// Amount formats a currency amount with grouping, e.g. "$1,234.57"
func (m *Money) Amount(d decimal.Decimal) string {
	rounded := d.Round(int32(m.scale))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return sign + m.symbol + m.Fixed(rounded, m.scale)
}

// Fixed formats d with exactly places decimals and locale grouping
func (m *Money) Fixed(d decimal.Decimal, places int) string {
	f, _ := d.Round(int32(places)).Float64()
	return m.printer.Sprint(number.Decimal(f, number.Scale(places)))
}

// Integer formats d rounded to a whole number with locale grouping
func (m *Money) Integer(d decimal.Decimal) string {
	return strings.TrimSpace(m.Fixed(d, 0))
}
