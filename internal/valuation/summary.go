package valuation

import (
	"github.com/shopspring/decimal"

	"coinfolio/internal/models"
)

var hundred = decimal.NewFromInt(100)

// CurrentValue is last price times amount.
func CurrentValue(h models.Holding) decimal.Decimal {
	return h.LastPrice.Mul(h.Amount)
}

// Pnl is current value minus cost basis.
func Pnl(h models.Holding) decimal.Decimal {
	return CurrentValue(h).Sub(h.TotalCost)
}

// PnlPercent is (current - basis) / basis * 100. A zero basis has no
// percentage and yields an invalid NullDecimal.
func PnlPercent(current, basis decimal.Decimal) decimal.NullDecimal {
	if basis.IsZero() {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(current.Sub(basis).Div(basis).Mul(hundred))
}

// Value derives the itemized view of one holding.
func Value(h models.Holding) models.HoldingValue {
	current := CurrentValue(h)
	return models.HoldingValue{
		ID:           h.ID,
		Name:         h.Name,
		Symbol:       h.Symbol,
		BuyPrice:     h.BuyPrice,
		Amount:       h.Amount,
		TotalCost:    h.TotalCost,
		LastPrice:    h.LastPrice,
		LastUpdated:  h.LastUpdated,
		CurrentValue: current,
		Pnl:          Pnl(h),
		PnlPercent:   PnlPercent(current, h.TotalCost),
	}
}

// ValueAll derives the itemized view of every holding, in order.
func ValueAll(holdings []models.Holding) []models.HoldingValue {
	out := make([]models.HoldingValue, len(holdings))
	for i, h := range holdings {
		out[i] = Value(h)
	}
	return out
}

// Summarize folds holdings into portfolio totals.
func Summarize(holdings []models.Holding) models.Totals {
	totals := models.Totals{Holdings: len(holdings)}
	for _, h := range holdings {
		totals.TotalCost = totals.TotalCost.Add(h.TotalCost)
		totals.TotalValue = totals.TotalValue.Add(CurrentValue(h))
	}
	totals.TotalPnl = totals.TotalValue.Sub(totals.TotalCost)
	totals.TotalPnlPercent = PnlPercent(totals.TotalValue, totals.TotalCost)
	return totals
}
