package handlers

import (
	"net/http"

	"github.com/SscSPs/unit_converter_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Describe the converter
// @Description Names the service and the categories it converts.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(c *gin.Context) {
	categories := make([]string, 0, len(domain.AllCategories))
	for _, category := range domain.AllCategories {
		categories = append(categories, category.String())
	}
	c.JSON(http.StatusOK, gin.H{
		"service":    "unit-converter",
		"version":    "v1",
		"categories": categories,
	})
}
