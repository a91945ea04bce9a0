package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/unit_converter_app/internal/apperrors"
)

// Category is one of the converter modes offered by the UI.
type Category string

const (
	CategoryLength      Category = "length"
	CategoryWeight      Category = "weight"
	CategoryTemperature Category = "temperature"
	CategoryVolume      Category = "volume"
	CategoryCurrency    Category = "currency"
)

// AllCategories lists the categories in navigation order.
var AllCategories = []Category{
	CategoryLength,
	CategoryWeight,
	CategoryTemperature,
	CategoryVolume,
	CategoryCurrency,
}

// ParseCategory resolves a category name, case-insensitively.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrUnknownCategory, name)
}

// IsLinear reports whether the category converts through a fixed factor table.
// Temperature is piecewise and currency goes through the rate cache.
func (c Category) IsLinear() bool {
	return c != CategoryTemperature && c != CategoryCurrency
}

func (c Category) String() string {
	return string(c)
}
