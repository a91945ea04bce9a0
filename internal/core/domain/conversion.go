package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/SscSPs/unit_converter_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// OutputPrecision is the number of decimal places results are rounded to.
const OutputPrecision = 6

// Conversion is the outcome of converting one value. When Empty is set the
// input was not a usable number and the UI shows no output.
type Conversion struct {
	Category Category
	From     string
	To       string
	Input    float64
	Result   float64
	Output   string
	Empty    bool
	Rate     *RateInfo
}

// ParseValue parses raw user input into a finite number.
func ParseValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", apperrors.ErrInvalidNumericInput)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidNumericInput, raw)
	}
	return v, nil
}

// RoundOutput rounds half away from zero to OutputPrecision places and returns
// the numeric value together with its display form without trailing zeros.
func RoundOutput(v float64) (float64, string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, "", fmt.Errorf("%w: result is not finite", apperrors.ErrInvalidNumericInput)
	}
	d := decimal.NewFromFloat(v).Round(OutputPrecision)
	f, _ := d.Float64()
	return f, d.String(), nil
}

// NewConversion builds a rounded conversion result. A non-finite result
// (overflow on extreme input) yields an empty conversion.
func NewConversion(category Category, from, to string, input, result float64, rate *RateInfo) *Conversion {
	c := &Conversion{Category: category, From: from, To: to, Input: input, Rate: rate}
	rounded, output, err := RoundOutput(result)
	if err != nil {
		c.Empty = true
		return c
	}
	c.Result = rounded
	c.Output = output
	return c
}

// EmptyConversion is returned when the input could not be parsed.
func EmptyConversion(category Category, from, to string) *Conversion {
	return &Conversion{Category: category, From: from, To: to, Empty: true}
}
