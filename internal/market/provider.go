// Package market fetches point-in-time market snapshots from external data sources.
//
// Quotes without a price are dropped while decoding, so when the first quote
// matching a holding is unpriced, a later matching quote prices it instead.
package market

import (
	"context"

	"coinfolio/internal/models"
)

// Provider fetches the current list of tradable assets with their prices.
type Provider interface {
	// Name returns the provider's display name (e.g., "CoinGecko").
	Name() string

	// FetchSnapshot performs one request. Any failure, including a non-2xx
	// response, returns an empty snapshot alongside the error.
	FetchSnapshot(ctx context.Context) (models.Snapshot, error)
}
