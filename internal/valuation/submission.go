package valuation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"coinfolio/internal/models"
)

// ErrInvalidSubmission is returned for an add-holding submission that must
// be rejected without any state change.
var ErrInvalidSubmission = errors.New("invalid holding submission")

// Submission is the raw add-holding form input.
type Submission struct {
	Name     string
	Symbol   string
	BuyPrice string
	Amount   string
}

// Bounds on accepted numbers. Prices and amounts are stored as exact
// decimals, so an unbounded exponent would make every later read huge.
const (
	maxIntegerDigits  = 15
	maxFractionDigits = 18
)

// ParsePositive parses a user-entered number. Anything that is not a finite
// number strictly greater than zero is rejected, as is anything with more
// than 15 integer digits or 18 decimal places.
func ParsePositive(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", ErrInvalidSubmission, s)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q must be greater than zero", ErrInvalidSubmission, s)
	}
	if int64(d.NumDigits())+int64(d.Exponent()) > maxIntegerDigits {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is too large", ErrInvalidSubmission, s)
	}
	if d.Exponent() < -maxFractionDigits {
		return decimal.Decimal{}, fmt.Errorf("%w: %q has more than %d decimal places", ErrInvalidSubmission, s, maxFractionDigits)
	}
	return d, nil
}

// NewHolding validates sub and builds a holding priced from snap. The id is
// left for the store to assign. Without a matching quote the last price is
// the buy price, so the initial P/L reads as zero.
func NewHolding(sub Submission, snap models.Snapshot, now time.Time) (models.Holding, error) {
	name := strings.TrimSpace(sub.Name)
	symbol := strings.ToUpper(strings.TrimSpace(sub.Symbol))
	if name == "" || symbol == "" {
		return models.Holding{}, fmt.Errorf("%w: name and symbol are required", ErrInvalidSubmission)
	}

	buy, err := ParsePositive(sub.BuyPrice)
	if err != nil {
		return models.Holding{}, fmt.Errorf("buy price: %w", err)
	}
	amount, err := ParsePositive(sub.Amount)
	if err != nil {
		return models.Holding{}, fmt.Errorf("amount: %w", err)
	}

	h := models.Holding{
		Name:        name,
		Symbol:      symbol,
		BuyPrice:    buy,
		Amount:      amount,
		TotalCost:   buy.Mul(amount),
		LastPrice:   buy,
		LastUpdated: stamp(now),
	}
	if price, ok := QuoteFor(h, snap); ok {
		h.LastPrice = price
	}
	return h, nil
}
