package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"coinfolio/internal/models"
)

const coinGeckoUA = "coinfolio/1.0"

// coinGeckoMarket is one element of the /coins/markets response.
type coinGeckoMarket struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Symbol       string              `json:"symbol"`
	CurrentPrice decimal.NullDecimal `json:"current_price"`
}

// CoinGeckoProvider fetches the top coins by market cap from CoinGecko.
type CoinGeckoProvider struct {
	httpClient *http.Client
	baseURL    string
	vsCurrency string
	perPage    int
}

// NewCoinGeckoProvider creates a provider for the /coins/markets endpoint at baseURL.
func NewCoinGeckoProvider(httpClient *http.Client, baseURL, vsCurrency string, perPage int) *CoinGeckoProvider {
	return &CoinGeckoProvider{
		httpClient: httpClient,
		baseURL:    baseURL,
		vsCurrency: vsCurrency,
		perPage:    perPage,
	}
}

// Name returns the provider's display name.
func (p *CoinGeckoProvider) Name() string { return "CoinGecko" }

func (p *CoinGeckoProvider) requestURL() string {
	q := url.Values{}
	q.Set("vs_currency", p.vsCurrency)
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(p.perPage))
	q.Set("page", "1")
	q.Set("sparkline", "false")
	return p.baseURL + "?" + q.Encode()
}

// FetchSnapshot fetches one page of markets. Coins without a price are
// left out, so every quote in the snapshot carries one.
func (p *CoinGeckoProvider) FetchSnapshot(ctx context.Context) (models.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.requestURL(), nil)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", coinGeckoUA)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Snapshot{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var rows []coinGeckoMarket
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return models.Snapshot{}, fmt.Errorf("decoding response: %w", err)
	}

	snap := make(models.Snapshot, 0, len(rows))
	for _, r := range rows {
		if !r.CurrentPrice.Valid {
			continue
		}
		snap = append(snap, models.MarketQuote{
			ID:           r.ID,
			Name:         r.Name,
			Symbol:       r.Symbol,
			CurrentPrice: r.CurrentPrice.Decimal,
		})
	}
	return snap, nil
}
