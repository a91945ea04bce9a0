package domain

import (
	"fmt"

	"github.com/SscSPs/unit_converter_app/internal/apperrors"
)

// Unit is a selectable unit within a category.
// Factor converts one unit into the category's base unit; for currency it is
// the static USD-relative rate used when no live rate is cached.
type Unit struct {
	Code   string  `json:"code"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol,omitempty"`
	Factor float64 `json:"-"`
}

// CategoryInfo describes a category's title and its fixed unit table.
type CategoryInfo struct {
	Category Category
	Title    string
	units    []Unit
}

// Units returns a copy of the category's units in display order.
func (ci CategoryInfo) Units() []Unit {
	out := make([]Unit, len(ci.units))
	copy(out, ci.units)
	return out
}

// Unit looks up a unit by its exact code.
func (ci CategoryInfo) Unit(code string) (Unit, error) {
	for _, u := range ci.units {
		if u.Code == code {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%w: %q is not a %s unit", apperrors.ErrUnknownUnit, code, ci.Category)
}

// DefaultFrom is the unit preselected in the "from" list.
func (ci CategoryInfo) DefaultFrom() Unit {
	return ci.units[0]
}

// DefaultTo is the unit preselected in the "to" list (the last option).
func (ci CategoryInfo) DefaultTo() Unit {
	return ci.units[len(ci.units)-1]
}

var catalog = map[Category]CategoryInfo{
	CategoryLength: {
		Category: CategoryLength,
		Title:    "Length Converter",
		units: []Unit{
			{Code: "m", Name: "Meters", Factor: 1},
			{Code: "km", Name: "Kilometers", Factor: 1000},
			{Code: "cm", Name: "Centimeters", Factor: 0.01},
			{Code: "mm", Name: "Millimeters", Factor: 0.001},
			{Code: "mi", Name: "Miles", Factor: 1609.34},
			{Code: "yd", Name: "Yards", Factor: 0.9144},
			{Code: "ft", Name: "Feet", Factor: 0.3048},
			{Code: "in", Name: "Inches", Factor: 0.0254},
		},
	},
	CategoryWeight: {
		Category: CategoryWeight,
		Title:    "Weight Converter",
		units: []Unit{
			{Code: "kg", Name: "Kilograms", Factor: 1},
			{Code: "g", Name: "Grams", Factor: 0.001},
			{Code: "mg", Name: "Milligrams", Factor: 0.000001},
			{Code: "lb", Name: "Pounds", Factor: 0.453592},
			{Code: "oz", Name: "Ounces", Factor: 0.0283495},
		},
	},
	CategoryTemperature: {
		Category: CategoryTemperature,
		Title:    "Temperature Converter",
		units: []Unit{
			{Code: Celsius, Name: "Celsius", Symbol: "°C"},
			{Code: Fahrenheit, Name: "Fahrenheit", Symbol: "°F"},
			{Code: Kelvin, Name: "Kelvin", Symbol: "K"},
		},
	},
	CategoryVolume: {
		Category: CategoryVolume,
		Title:    "Volume Converter",
		units: []Unit{
			{Code: "l", Name: "Liters", Factor: 1},
			{Code: "ml", Name: "Milliliters", Factor: 0.001},
			{Code: "gal", Name: "Gallons", Factor: 3.78541},
			{Code: "qt", Name: "Quarts", Factor: 0.946353},
			{Code: "pt", Name: "Pints", Factor: 0.473176},
			{Code: "cup", Name: "Cups", Factor: 0.236588},
			{Code: "floz", Name: "Fluid Ounces", Factor: 0.0295735},
		},
	},
	CategoryCurrency: {
		Category: CategoryCurrency,
		Title:    "Currency Converter",
		units: []Unit{
			{Code: "USD", Name: "US Dollar", Symbol: "$", Factor: 1},
			{Code: "EUR", Name: "Euro", Symbol: "€", Factor: 0.92},
			{Code: "GBP", Name: "British Pound", Symbol: "£", Factor: 0.79},
			{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Factor: 149.5},
			{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Factor: 1.36},
			{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Factor: 1.52},
			{Code: "CHF", Name: "Swiss Franc", Symbol: "Fr", Factor: 0.88},
			{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Factor: 7.24},
			{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Factor: 83.1},
			{Code: "MXN", Name: "Mexican Peso", Symbol: "MX$", Factor: 17.1},
		},
	},
}

// LookupCategory returns the unit table for a category.
func LookupCategory(c Category) (CategoryInfo, error) {
	info, ok := catalog[c]
	if !ok {
		return CategoryInfo{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownCategory, c)
	}
	return info, nil
}

// ListCategories returns every category in navigation order.
func ListCategories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(AllCategories))
	for _, c := range AllCategories {
		out = append(out, catalog[c])
	}
	return out
}

// ConvertLinear converts value between two units of a factor-table category.
func (ci CategoryInfo) ConvertLinear(value float64, from, to string) (float64, error) {
	if !ci.Category.IsLinear() {
		return 0, fmt.Errorf("%w: %s has no conversion factors", apperrors.ErrValidation, ci.Category)
	}
	fromUnit, err := ci.Unit(from)
	if err != nil {
		return 0, err
	}
	toUnit, err := ci.Unit(to)
	if err != nil {
		return 0, err
	}
	return value * fromUnit.Factor / toUnit.Factor, nil
}

// CategoryActivation is the result of switching the converter into a category.
// Refresh is only set for the currency category.
type CategoryActivation struct {
	Info    CategoryInfo
	Refresh *RefreshOutcome
}
