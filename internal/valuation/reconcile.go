// Package valuation matches holdings against a market snapshot and derives
// their value and profit/loss.
//
// Matching is deliberately naive: a quote matches a holding when its symbol
// or its name equals the holding's, ignoring case, and the first matching
// quote in snapshot order wins. Two unrelated assets sharing a ticker are
// therefore priced from whichever comes first. Changing this changes P/L
// for ambiguous tickers.
package valuation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"coinfolio/internal/models"
)

// Match returns the first quote in snap matching symbol or name.
func Match(symbol, name string, snap models.Snapshot) (models.MarketQuote, bool) {
	for _, q := range snap {
		if strings.EqualFold(q.Symbol, symbol) || strings.EqualFold(q.Name, name) {
			return q, true
		}
	}
	return models.MarketQuote{}, false
}

// QuoteFor returns the current market price for h, or false when no quote
// in snap matches.
func QuoteFor(h models.Holding, snap models.Snapshot) (decimal.Decimal, bool) {
	q, ok := Match(h.Symbol, h.Name, snap)
	if !ok {
		return decimal.Decimal{}, false
	}
	return q.CurrentPrice, true
}

// Reconcile returns a copy of h priced from snap at time now. A holding
// without a matching quote comes back unchanged.
func Reconcile(h models.Holding, snap models.Snapshot, now time.Time) models.Holding {
	price, ok := QuoteFor(h, snap)
	if !ok {
		return h
	}
	h.LastPrice = price
	h.LastUpdated = stamp(now)
	return h
}

// ReconcileAll reconciles every holding independently, preserving order and
// ids. An empty snapshot leaves every holding untouched.
func ReconcileAll(holdings []models.Holding, snap models.Snapshot, now time.Time) []models.Holding {
	out := make([]models.Holding, len(holdings))
	if snap.Empty() {
		copy(out, holdings)
		return out
	}
	for i, h := range holdings {
		out[i] = Reconcile(h, snap, now)
	}
	return out
}

// stamp normalizes reconciliation timestamps to whole seconds in UTC.
func stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
