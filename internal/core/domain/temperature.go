package domain

import (
	"fmt"

	"github.com/SscSPs/unit_converter_app/internal/apperrors"
)

const (
	Celsius    = "C"
	Fahrenheit = "F"
	Kelvin     = "K"
)

const absoluteZeroOffset = 273.15

// ConvertTemperature converts between Celsius, Fahrenheit and Kelvin using
// Celsius as the pivot.
func ConvertTemperature(value float64, from, to string) (float64, error) {
	var celsius float64
	switch from {
	case Celsius:
		celsius = value
	case Fahrenheit:
		celsius = (value - 32) * (5.0 / 9.0)
	case Kelvin:
		celsius = value - absoluteZeroOffset
	default:
		return 0, fmt.Errorf("%w: %q is not a temperature unit", apperrors.ErrUnknownUnit, from)
	}

	switch to {
	case Celsius:
		return celsius, nil
	case Fahrenheit:
		return celsius*9/5 + 32, nil
	case Kelvin:
		return celsius + absoluteZeroOffset, nil
	default:
		return 0, fmt.Errorf("%w: %q is not a temperature unit", apperrors.ErrUnknownUnit, to)
	}
}
