package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/models"
	"coinfolio/internal/services"
)

func fiveQuotes() models.Snapshot {
	snap := models.Snapshot{}
	for i, id := range []string{"bitcoin", "ethereum", "tether", "solana", "cardano"} {
		snap = append(snap, models.MarketQuote{ID: id, Name: id, Symbol: id[:3], CurrentPrice: decimal.NewFromInt(int64(i + 1))})
	}
	return snap
}

func TestMarketHandler_ListMarkets(t *testing.T) {
	svc := &mockTrackerService{marketsFn: fiveQuotes}
	r := setupRouter(svc)

	t.Run("returns_requested_page", func(t *testing.T) {
		rec := doRequest(r, "GET", "/markets?page=2&page_size=2", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 || data[0].(map[string]interface{})["id"] != "tether" {
			t.Errorf("unexpected page %v", data)
		}
		if result["total_items"].(float64) != 5 || result["total_pages"].(float64) != 3 {
			t.Errorf("unexpected page metadata %v", result)
		}
	})

	t.Run("returns_400_on_huge_page", func(t *testing.T) {
		rec := doRequest(r, "GET", "/markets?page=4611686018427387905&page_size=2", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns_400_on_oversized_page", func(t *testing.T) {
		rec := doRequest(r, "GET", "/markets?page_size=1000", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestMarketHandler_QuickSelect(t *testing.T) {
	t.Run("returns_prefill", func(t *testing.T) {
		svc := &mockTrackerService{
			quickSelectFn: func(id string) (*services.QuickSelect, error) {
				return &services.QuickSelect{ID: id, Name: "Bitcoin", Symbol: "BTC", BuyPrice: decimal.NewFromInt(45000)}, nil
			},
		}
		r := setupRouter(svc)

		rec := doRequest(r, "GET", "/markets/bitcoin", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		prefill := parseJSON(t, rec)["prefill"].(map[string]interface{})
		if prefill["symbol"] != "BTC" || prefill["buy_price"] != "45000" {
			t.Errorf("unexpected prefill %v", prefill)
		}
	})

	t.Run("returns_404_for_unknown_id", func(t *testing.T) {
		svc := &mockTrackerService{
			quickSelectFn: func(string) (*services.QuickSelect, error) { return nil, apperrors.ErrMarketNotFound },
		}
		r := setupRouter(svc)

		rec := doRequest(r, "GET", "/markets/nope", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MARKET_NOT_FOUND")
	})
}

func TestMarketHandler_ReloadMarkets(t *testing.T) {
	t.Run("returns_quote_count", func(t *testing.T) {
		svc := &mockTrackerService{marketsFn: fiveQuotes}
		r := setupRouter(svc)

		rec := doRequest(r, "POST", "/markets/reload", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["quotes"].(float64) != 5 {
			t.Errorf("expected 5 quotes, got %s", rec.Body.String())
		}
	})

	t.Run("returns_503_when_provider_fails", func(t *testing.T) {
		svc := &mockTrackerService{
			loadMarketsFn: func(context.Context) error {
				return apperrors.Wrap(apperrors.ErrMarketUnavailable, errors.New("status 429"))
			},
		}
		r := setupRouter(svc)

		rec := doRequest(r, "POST", "/markets/reload", "")

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "MARKET_UNAVAILABLE")
	})
}
