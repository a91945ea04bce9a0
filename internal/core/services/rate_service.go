package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/unit_converter_app/internal/apperrors"
	"github.com/SscSPs/unit_converter_app/internal/core/domain"
	"github.com/SscSPs/unit_converter_app/internal/core/ports"
	portssvc "github.com/SscSPs/unit_converter_app/internal/core/ports/services"
)

// RateService exposes the rate cache to the API.
type RateService struct {
	cache portssvc.RateCacheSvc
	clock ports.Clock
}

// NewRateService creates a new RateService.
func NewRateService(cache portssvc.RateCacheSvc, clock ports.Clock) *RateService {
	return &RateService{cache: cache, clock: clock}
}

// RefreshRates refreshes the cache for a supported base currency.
func (s *RateService) RefreshRates(ctx context.Context, baseCurrency string) (domain.RefreshOutcome, error) {
	currency, err := domain.LookupCurrency(baseCurrency)
	if err != nil {
		return "", apperrors.NewValidationError(fmt.Sprintf("unsupported base currency %q", baseCurrency))
	}
	return s.cache.Refresh(ctx, currency.Code, s.clock.Now()), nil
}

// GetRateStatus reports what the cache currently holds.
func (s *RateService) GetRateStatus(ctx context.Context) domain.RateSnapshot {
	return s.cache.Snapshot(s.clock.Now())
}

var _ portssvc.RateSvcFacade = (*RateService)(nil)
