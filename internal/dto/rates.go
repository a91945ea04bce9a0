package dto

import (
	"time"

	"github.com/SscSPs/unit_converter_app/internal/core/domain"
)

// RefreshRatesResponse defines the structure returned after a refresh request.
type RefreshRatesResponse struct {
	BaseCurrency string `json:"baseCurrency"`
	Outcome      string `json:"outcome"`
}

// RateStatusResponse defines the structure for reporting the rate cache state.
type RateStatusResponse struct {
	Bases       []string                      `json:"bases"`
	Rates       map[string]map[string]float64 `json:"rates"`
	LastUpdated *time.Time                    `json:"lastUpdated,omitempty"`
	Stale       bool                          `json:"stale"`
}

// ToRateStatusResponse converts a domain.RateSnapshot to RateStatusResponse DTO
func ToRateStatusResponse(s domain.RateSnapshot) RateStatusResponse {
	resp := RateStatusResponse{
		Bases: s.Bases(),
		Rates: s.Rates,
		Stale: s.Stale,
	}
	if !s.LastUpdated.IsZero() {
		lu := s.LastUpdated
		resp.LastUpdated = &lu
	}
	return resp
}
