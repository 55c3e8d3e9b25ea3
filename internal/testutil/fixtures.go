package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"coinfolio/internal/models"
)

// FixedTime is the clock value fixtures are stamped with.
var FixedTime = time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

// Dec parses a decimal literal, failing the test on bad input.
func Dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// NewTestHolding builds a holding the way the tracker creates one when no
// quote matched: last price equals buy price.
func NewTestHolding(t *testing.T, id, name, symbol, buyPrice, amount string) models.Holding {
	t.Helper()
	buy := Dec(t, buyPrice)
	amt := Dec(t, amount)
	return models.Holding{
		ID:          id,
		Name:        name,
		Symbol:      symbol,
		BuyPrice:    buy,
		Amount:      amt,
		TotalCost:   buy.Mul(amt),
		LastPrice:   buy,
		LastUpdated: FixedTime,
	}
}

// TestSnapshot returns a small snapshot in market-cap order with lowercase
// symbols, as the provider delivers them.
func TestSnapshot(t *testing.T) models.Snapshot {
	t.Helper()
	return models.Snapshot{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", CurrentPrice: Dec(t, "45000")},
		{ID: "ethereum", Name: "Ethereum", Symbol: "eth", CurrentPrice: Dec(t, "3000")},
		{ID: "tether", Name: "Tether", Symbol: "usdt", CurrentPrice: Dec(t, "1.0001")},
	}
}

// MarketRow is one element of a /coins/markets response.
type MarketRow struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Symbol       string   `json:"symbol"`
	CurrentPrice *float64 `json:"current_price"`
}

// Price returns a pointer for MarketRow.CurrentPrice.
func Price(v float64) *float64 { return &v }

// NewMarketServer starts a fake /coins/markets endpoint serving rows.
// The server is closed when the test ends.
func NewMarketServer(t *testing.T, rows []MarketRow) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rows)
	}))
	t.Cleanup(server.Close)
	return server
}

// NewFailingMarketServer starts a market endpoint that always answers with status.
func NewFailingMarketServer(t *testing.T, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server
}
