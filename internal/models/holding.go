package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is a user's recorded purchase of a quantity of an asset.
// TotalCost is fixed at creation; only LastPrice and LastUpdated change afterwards.
// The JSON form is the persisted blob layout.
type Holding struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Symbol      string          `json:"symbol"`
	BuyPrice    decimal.Decimal `json:"buyPrice"`
	Amount      decimal.Decimal `json:"amount"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	LastPrice   decimal.Decimal `json:"lastPrice"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// HoldingValue is a holding together with its derived valuation, as shown
// in the itemized view.
type HoldingValue struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Symbol       string              `json:"symbol"`
	BuyPrice     decimal.Decimal     `json:"buy_price"`
	Amount       decimal.Decimal     `json:"amount"`
	TotalCost    decimal.Decimal     `json:"total_cost"`
	LastPrice    decimal.Decimal     `json:"last_price"`
	LastUpdated  time.Time           `json:"last_updated"`
	CurrentValue decimal.Decimal     `json:"current_value"`
	Pnl          decimal.Decimal     `json:"pnl"`
	PnlPercent   decimal.NullDecimal `json:"pnl_percent"`
}

// Totals are the portfolio-wide figures. They are derived on every read and
// never stored.
type Totals struct {
	Holdings        int                 `json:"holdings"`
	TotalCost       decimal.Decimal     `json:"total_cost"`
	TotalValue      decimal.Decimal     `json:"total_value"`
	TotalPnl        decimal.Decimal     `json:"total_pnl"`
	TotalPnlPercent decimal.NullDecimal `json:"total_pnl_percent"`
}
