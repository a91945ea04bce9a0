package services

import (
	"context"

	"github.com/SscSPs/unit_converter_app/internal/core/domain"
	"github.com/SscSPs/unit_converter_app/internal/dto"
)

// ConversionSvc defines the conversion operations
type ConversionSvc interface {
	// Convert converts a value between two units of a category. Input that is
	// not a finite number yields an empty conversion, not an error.
	Convert(ctx context.Context, req dto.ConvertRequest) (*domain.Conversion, error)

	// Swap exchanges the units, feeds the previous output back in and converts again.
	Swap(ctx context.Context, req dto.SwapRequest) (*domain.Conversion, error)
}

// CatalogSvc defines read operations for categories and their units
type CatalogSvc interface {
	ListCategories(ctx context.Context) []domain.CategoryInfo

	// ActivateCategory switches the converter into a category. Activating
	// currency refreshes the rate cache for the default base currency.
	ActivateCategory(ctx context.Context, name string) (*domain.CategoryActivation, error)
}

// ConverterSvcFacade combines all converter-related service interfaces
type ConverterSvcFacade interface {
	ConversionSvc
	CatalogSvc
}
