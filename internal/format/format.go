// Package format renders prices, quantities and percentages for display.
package format

import (
	"github.com/shopspring/decimal"
)

// Unknown is rendered for a missing value.
const Unknown = "—"

var (
	cent        = decimal.RequireFromString("0.01")
	one         = decimal.NewFromInt(1)
	integerOnly = decimal.NewFromInt(100000)
)

// Money formats a price or value in dollars, with fewer decimals as the
// magnitude grows: 6 below 0.01, 4 below 1, 2 below 100000, none above.
func Money(v decimal.NullDecimal) string {
	if !v.Valid {
		return Unknown
	}
	return "$" + v.Decimal.StringFixed(moneyPlaces(v.Decimal.Abs()))
}

func moneyPlaces(abs decimal.Decimal) int32 {
	switch {
	case abs.GreaterThanOrEqual(integerOnly):
		return 0
	case abs.GreaterThanOrEqual(one):
		return 2
	case abs.GreaterThanOrEqual(cent):
		return 4
	default:
		return 6
	}
}

// Quantity formats a held amount: 4 decimals from 1 upwards, 8 below.
func Quantity(v decimal.NullDecimal) string {
	if !v.Valid {
		return Unknown
	}
	if v.Decimal.Abs().GreaterThanOrEqual(one) {
		return v.Decimal.StringFixed(4)
	}
	return v.Decimal.StringFixed(8)
}

// Percent formats a percentage with 2 decimals.
func Percent(v decimal.NullDecimal) string {
	if !v.Valid {
		return Unknown
	}
	return v.Decimal.StringFixed(2) + "%"
}

// Known wraps a present value for the formatters.
func Known(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NewNullDecimal(d)
}
