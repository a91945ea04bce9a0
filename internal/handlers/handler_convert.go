package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/unit_converter_app/internal/core/ports/services"
	"github.com/SscSPs/unit_converter_app/internal/dto"
	"github.com/SscSPs/unit_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// convertHandler handles HTTP requests that convert values.
type convertHandler struct {
	converter portssvc.ConversionSvc
}

// newConvertHandler creates a new convertHandler.
func newConvertHandler(cs portssvc.ConversionSvc) *convertHandler {
	return &convertHandler{
		converter: cs,
	}
}

// registerConvertRoutes registers routes related to conversions.
func registerConvertRoutes(rg *gin.RouterGroup, converter portssvc.ConversionSvc) {
	h := newConvertHandler(converter)

	convert := rg.Group("/convert")
	{
		convert.POST("", h.convert)
		convert.POST("/swap", h.swap)
	}
}

// convert godoc
// @Summary Convert a value
// @Description Converts a value between two units of a category. Non-numeric input yields an empty output.
// @Tags convert
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertRequest true "Value, category and units"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid request or unknown unit"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Router /convert [post]
func (h *convertHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(
		slog.String("category", req.Category),
		slog.String("from", req.From),
		slog.String("to", req.To),
	)

	conversion, err := h.converter.Convert(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to convert value")
		return
	}

	logger.Debug("Conversion completed", slog.String("output", conversion.Output), slog.Bool("empty", conversion.Empty))
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// swap godoc
// @Summary Swap units and convert
// @Description Swaps the from/to units and converts the previous output back
// @Tags convert
// @Accept  json
// @Produce  json
// @Param   request body dto.SwapRequest true "Current form state"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid request or unknown unit"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Router /convert/swap [post]
func (h *convertHandler) swap(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.SwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Swap", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	conversion, err := h.converter.Swap(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to convert value")
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}
