package dto

import (
	"bytes"
	"encoding/json"

	"github.com/SscSPs/unit_converter_app/internal/core/domain"
)

// InputValue is the raw content of the input field. It accepts both JSON
// numbers and strings so that non-numeric entries reach the service and are
// suppressed there instead of failing request binding.
type InputValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *InputValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = InputValue(s)
	default:
		*v = InputValue(data)
	}
	return nil
}

// ConvertRequest defines the structure for converting a value.
type ConvertRequest struct {
	Value    InputValue `json:"value"`
	Category string     `json:"category" binding:"required,converter_category"`
	From     string     `json:"from" binding:"required"`
	To       string     `json:"to" binding:"required"`
}

// SwapRequest carries the current form state. The previous output becomes the
// new input, so the old input value is not needed.
type SwapRequest struct {
	Output   InputValue `json:"output"`
	Category string     `json:"category" binding:"required,converter_category"`
	From     string     `json:"from" binding:"required"`
	To       string     `json:"to" binding:"required"`
}

// ConversionResponse defines the structure for API responses containing a conversion.
type ConversionResponse struct {
	Category string   `json:"category"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Input    *float64 `json:"input,omitempty"`
	Result   *float64 `json:"result,omitempty"`
	Output   string   `json:"output"`
	Empty    bool     `json:"empty"`
	RateInfo string   `json:"rateInfo,omitempty"`
	Source   string   `json:"source,omitempty"`
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	resp := ConversionResponse{
		Category: c.Category.String(),
		From:     c.From,
		To:       c.To,
		Output:   c.Output,
		Empty:    c.Empty,
	}
	if !c.Empty {
		input, result := c.Input, c.Result
		resp.Input = &input
		resp.Result = &result
	}
	if c.Rate != nil {
		resp.RateInfo = c.Rate.String()
		resp.Source = string(c.Rate.Source)
	}
	return resp
}
