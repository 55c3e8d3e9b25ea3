package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/format"
	"coinfolio/internal/models"
	"coinfolio/internal/services"
	"coinfolio/internal/uuid"
)

// HoldingHandler handles holding-related requests.
type HoldingHandler struct {
	tracker services.TrackerServicer
}

// NewHoldingHandler creates a new HoldingHandler.
func NewHoldingHandler(tracker services.TrackerServicer) *HoldingHandler {
	return &HoldingHandler{tracker: tracker}
}

// AddHoldingRequest represents the add-holding form. Numbers are sent as
// strings so they reach the decimal parser untouched.
type AddHoldingRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Symbol   string `json:"symbol" binding:"required,max=20"`
	BuyPrice string `json:"buy_price" binding:"required,positive_number" example:"42000"`
	Amount   string `json:"amount" binding:"required,positive_number" example:"0.25"`
}

// SummaryDisplay carries the totals rendered for display.
type SummaryDisplay struct {
	TotalCost       string `json:"total_cost" example:"$10500.00"`
	TotalValue      string `json:"total_value" example:"$11250.00"`
	TotalPnl        string `json:"total_pnl" example:"$750.00"`
	TotalPnlPercent string `json:"total_pnl_percent" example:"7.14%"`
}

// SummaryResponse is the summarized view of the portfolio.
type SummaryResponse struct {
	Summary models.Totals  `json:"summary"`
	Display SummaryDisplay `json:"display"`
}

// ListHoldings returns the itemized view.
// @Summary     List holdings
// @Description List every holding in insertion order with its current value and P/L
// @Tags        holdings
// @Produce     json
// @Success     200 {array}  models.HoldingValue "Holdings"
// @Router      /holdings [get]
func (h *HoldingHandler) ListHoldings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"holdings": h.tracker.Holdings()})
}

// AddHolding handles the add-holding form.
// @Summary     Add a holding
// @Description Record a purchase. The last price comes from the market snapshot when a quote matches by symbol or name.
// @Tags        holdings
// @Accept      json
// @Produce     json
// @Param       request body AddHoldingRequest true "Holding details"
// @Success     201 {object} models.HoldingValue "Holding created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings [post]
func (h *HoldingHandler) AddHolding(c *gin.Context) {
	var req AddHoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	holding, err := h.tracker.AddHolding(c.Request.Context(), services.HoldingInput{
		Name:     req.Name,
		Symbol:   req.Symbol,
		BuyPrice: req.BuyPrice,
		Amount:   req.Amount,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"holding": holding})
}

// DeleteHolding removes a holding. Unknown ids succeed without change.
// @Summary     Delete a holding
// @Tags        holdings
// @Param       id path string true "Holding ID"
// @Success     204 "Holding removed"
// @Router      /holdings/{id} [delete]
func (h *HoldingHandler) DeleteHolding(c *gin.Context) {
	id := c.Param("id")
	// ids written by older clients are not UUIDs and pass through as-is
	if canonical, err := uuid.Parse(id); err == nil {
		id = canonical
	}

	if err := h.tracker.DeleteHolding(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RefreshPrices reconciles every holding against the market snapshot.
// @Summary     Refresh prices
// @Description Update last prices from the market snapshot already in memory
// @Tags        holdings
// @Produce     json
// @Success     200 {array}  models.HoldingValue "Refreshed holdings"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /holdings/refresh [post]
func (h *HoldingHandler) RefreshPrices(c *gin.Context) {
	holdings, err := h.tracker.RefreshPrices(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"holdings": holdings})
}

// GetSummary returns portfolio totals.
// @Summary     Portfolio summary
// @Description Totals across all holdings. The percentage is null when the total cost is zero.
// @Tags        holdings
// @Produce     json
// @Success     200 {object} SummaryResponse "Portfolio totals"
// @Router      /summary [get]
func (h *HoldingHandler) GetSummary(c *gin.Context) {
	totals := h.tracker.Summary()
	c.JSON(http.StatusOK, SummaryResponse{
		Summary: totals,
		Display: SummaryDisplay{
			TotalCost:       format.Money(format.Known(totals.TotalCost)),
			TotalValue:      format.Money(format.Known(totals.TotalValue)),
			TotalPnl:        format.Money(format.Known(totals.TotalPnl)),
			TotalPnlPercent: format.Percent(totals.TotalPnlPercent),
		},
	})
}
