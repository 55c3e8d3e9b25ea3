package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"coinfolio/internal/logger"
	"coinfolio/internal/models"
	"coinfolio/internal/services"
	"coinfolio/internal/validator"
)

// --- mock tracker service ---

type mockTrackerService struct {
	loadMarketsFn   func(ctx context.Context) error
	marketsFn       func() models.Snapshot
	quickSelectFn   func(id string) (*services.QuickSelect, error)
	addHoldingFn    func(ctx context.Context, input services.HoldingInput) (*models.HoldingValue, error)
	deleteHoldingFn func(ctx context.Context, id string) error
	refreshPricesFn func(ctx context.Context) ([]models.HoldingValue, error)
	holdingsFn      func() []models.HoldingValue
	summaryFn       func() models.Totals
}

var _ services.TrackerServicer = (*mockTrackerService)(nil)

func (m *mockTrackerService) LoadMarkets(ctx context.Context) error {
	if m.loadMarketsFn != nil {
		return m.loadMarketsFn(ctx)
	}
	return nil
}

func (m *mockTrackerService) Markets() models.Snapshot {
	if m.marketsFn != nil {
		return m.marketsFn()
	}
	return models.Snapshot{}
}

func (m *mockTrackerService) QuickSelect(id string) (*services.QuickSelect, error) {
	if m.quickSelectFn != nil {
		return m.quickSelectFn(id)
	}
	return &services.QuickSelect{}, nil
}

func (m *mockTrackerService) AddHolding(ctx context.Context, input services.HoldingInput) (*models.HoldingValue, error) {
	if m.addHoldingFn != nil {
		return m.addHoldingFn(ctx, input)
	}
	return &models.HoldingValue{}, nil
}

func (m *mockTrackerService) DeleteHolding(ctx context.Context, id string) error {
	if m.deleteHoldingFn != nil {
		return m.deleteHoldingFn(ctx, id)
	}
	return nil
}

func (m *mockTrackerService) RefreshPrices(ctx context.Context) ([]models.HoldingValue, error) {
	if m.refreshPricesFn != nil {
		return m.refreshPricesFn(ctx)
	}
	return []models.HoldingValue{}, nil
}

func (m *mockTrackerService) Holdings() []models.HoldingValue {
	if m.holdingsFn != nil {
		return m.holdingsFn()
	}
	return []models.HoldingValue{}
}

func (m *mockTrackerService) Summary() models.Totals {
	if m.summaryFn != nil {
		return m.summaryFn()
	}
	return models.Totals{}
}

// --- helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

func setupRouter(tracker services.TrackerServicer) *gin.Engine {
	r := gin.New()
	holdings := NewHoldingHandler(tracker)
	markets := NewMarketHandler(tracker)

	r.GET("/holdings", holdings.ListHoldings)
	r.POST("/holdings", holdings.AddHolding)
	r.POST("/holdings/refresh", holdings.RefreshPrices)
	r.DELETE("/holdings/:id", holdings.DeleteHolding)
	r.GET("/summary", holdings.GetSummary)

	r.GET("/markets", markets.ListMarkets)
	r.GET("/markets/:id", markets.QuickSelect)
	r.POST("/markets/reload", markets.ReloadMarkets)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
