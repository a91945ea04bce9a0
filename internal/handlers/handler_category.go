package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/unit_converter_app/internal/core/ports/services"
	"github.com/SscSPs/unit_converter_app/internal/dto"
	"github.com/SscSPs/unit_converter_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler serves the unit catalog the page renders its option lists from.
type categoryHandler struct {
	catalog portssvc.CatalogSvc
}

// newCategoryHandler creates a new categoryHandler.
func newCategoryHandler(cs portssvc.CatalogSvc) *categoryHandler {
	return &categoryHandler{
		catalog: cs,
	}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, catalog portssvc.CatalogSvc) {
	h := newCategoryHandler(catalog)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/:category", h.activateCategory)
	}
}

// listCategories godoc
// @Summary List converter categories
// @Description Lists every category with its title, units and default selections
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	infos := h.catalog.ListCategories(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(infos))
}

// activateCategory godoc
// @Summary Switch to a category
// @Description Returns one category. Switching to currency refreshes the exchange rates when they are stale.
// @Tags categories
// @Produce  json
// @Param   category path string true "Category name"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string "Category not found"
// @Failure 500 {object} map[string]string "Failed to load category"
// @Router /categories/{category} [get]
func (h *categoryHandler) activateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	name := c.Param("category")

	activation, err := h.catalog.ActivateCategory(c.Request.Context(), name)
	if err != nil {
		respondError(c, logger.With(slog.String("category", name)), err, "Failed to load category")
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryActivationResponse(activation))
}
