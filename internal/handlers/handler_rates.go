package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/unit_converter_app/internal/core/ports/services"
	"github.com/SscSPs/unit_converter_app/internal/dto"
	"github.com/SscSPs/unit_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to exchange rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRateStatus)
		rates.POST("/:base/refresh", h.refreshRates)
	}
}

// getRateStatus godoc
// @Summary Show cached exchange rates
// @Description Reports the cached live rates, when they were fetched and whether they are stale
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateStatusResponse
// @Router /rates [get]
func (h *rateHandler) getRateStatus(c *gin.Context) {
	status := h.rateService.GetRateStatus(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToRateStatusResponse(status))
}

// refreshRates godoc
// @Summary Refresh exchange rates
// @Description Fetches rates for a base currency unless the cache is still fresh. A failed fetch is reported in the outcome, not as an error.
// @Tags rates
// @Produce  json
// @Param   base path string true "Base Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.RefreshRatesResponse
// @Failure 400 {object} map[string]string "Unsupported base currency"
// @Failure 500 {object} map[string]string "Failed to refresh rates"
// @Router /rates/{base}/refresh [post]
func (h *rateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	base := strings.ToUpper(c.Param("base"))

	if len(base) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("base_currency", base))
	logger.Info("Received request to refresh exchange rates")

	outcome, err := h.rateService.RefreshRates(c.Request.Context(), base)
	if err != nil {
		respondError(c, logger, err, "Failed to refresh rates")
		return
	}

	logger.Info("Exchange rate refresh finished", slog.String("outcome", string(outcome)))
	c.JSON(http.StatusOK, dto.RefreshRatesResponse{BaseCurrency: base, Outcome: string(outcome)})
}
