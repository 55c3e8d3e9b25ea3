package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/pagination"
	"coinfolio/internal/services"
)

// MarketHandler serves the market snapshot.
type MarketHandler struct {
	tracker services.TrackerServicer
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(tracker services.TrackerServicer) *MarketHandler {
	return &MarketHandler{tracker: tracker}
}

// ListMarkets returns a page of the snapshot in provider order.
// @Summary     List market quotes
// @Tags        markets
// @Produce     json
// @Param       page      query int false "Page number"
// @Param       page_size query int false "Items per page (max 250)"
// @Success     200 {object} pagination.PageResponse[models.MarketQuote] "Quotes"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /markets [get]
func (h *MarketHandler) ListMarkets(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	c.JSON(http.StatusOK, pagination.Slice(h.tracker.Markets(), page))
}

// QuickSelect returns the add-form prefill for one quote.
// @Summary     Quick select a quote
// @Tags        markets
// @Produce     json
// @Param       id path string true "Provider asset id"
// @Success     200 {object} services.QuickSelect "Prefill"
// @Failure     404 {object} ErrorResponse "Quote not in snapshot"
// @Router      /markets/{id} [get]
func (h *MarketHandler) QuickSelect(c *gin.Context) {
	prefill, err := h.tracker.QuickSelect(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prefill": prefill})
}

// ReloadMarkets fetches a fresh snapshot.
// @Summary     Reload market snapshot
// @Description Fetch quotes again. On failure the previous snapshot stays in place.
// @Tags        markets
// @Produce     json
// @Success     200 {object} map[string]int "Number of quotes loaded"
// @Failure     503 {object} ErrorResponse "Market data unavailable"
// @Router      /markets/reload [post]
func (h *MarketHandler) ReloadMarkets(c *gin.Context) {
	if err := h.tracker.LoadMarkets(c.Request.Context()); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": len(h.tracker.Markets())})
}
