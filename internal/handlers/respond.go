package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/unit_converter_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError writes err with the status apperrors.StatusCode picks for it.
// Client errors echo the cause; server errors only show fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.StatusCode(err)
	if status < http.StatusInternalServerError {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	logger.Error(fallback, slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": fallback})
}
