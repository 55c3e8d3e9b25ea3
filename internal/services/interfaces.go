package services

import (
	"context"

	"github.com/shopspring/decimal"

	"coinfolio/internal/models"
)

// HoldingInput is the add-holding form as submitted.
type HoldingInput struct {
	Name     string
	Symbol   string
	BuyPrice string
	Amount   string
}

// QuickSelect is the add-form prefill taken from a market quote.
type QuickSelect struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Symbol   string          `json:"symbol"`
	BuyPrice decimal.Decimal `json:"buy_price"`
}

// TrackerServicer defines the contract for the holdings tracker.
type TrackerServicer interface {
	LoadMarkets(ctx context.Context) error
	Markets() models.Snapshot
	QuickSelect(id string) (*QuickSelect, error)
	AddHolding(ctx context.Context, input HoldingInput) (*models.HoldingValue, error)
	DeleteHolding(ctx context.Context, id string) error
	RefreshPrices(ctx context.Context) ([]models.HoldingValue, error)
	Holdings() []models.HoldingValue
	Summary() models.Totals
}
