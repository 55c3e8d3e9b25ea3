package models

import "github.com/shopspring/decimal"

// MarketQuote is one tradable asset in a market snapshot.
type MarketQuote struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	CurrentPrice decimal.Decimal `json:"current_price"`
}

// Snapshot is a point-in-time list of market quotes, in provider order.
// It is replaced wholesale on every successful fetch.
type Snapshot []MarketQuote

// Empty reports whether the snapshot carries no quotes.
func (s Snapshot) Empty() bool { return len(s) == 0 }

// Find returns the quote with the given provider id.
func (s Snapshot) Find(id string) (MarketQuote, bool) {
	for _, q := range s {
		if q.ID == id {
			return q, true
		}
	}
	return MarketQuote{}, false
}
