package services

import (
	"context"
	"time"

	"github.com/SscSPs/unit_converter_app/internal/core/domain"
)

// RateCacheSvc is the contract of the in-memory currency rate cache.
type RateCacheSvc interface {
	// GetRate returns the live rate for from→to if one has been fetched.
	GetRate(from, to string) (float64, bool)

	// IsStale reports whether the freshness window has elapsed at now.
	IsStale(now time.Time) bool

	// Refresh fetches rates for baseCurrency unless the cache is still fresh.
	// Failures are reported through the outcome, never as an error.
	Refresh(ctx context.Context, baseCurrency string, now time.Time) domain.RefreshOutcome

	// Snapshot copies the cache contents.
	Snapshot(now time.Time) domain.RateSnapshot
}

// RateSvcFacade defines the rate operations exposed over the API
type RateSvcFacade interface {
	// RefreshRates validates the base currency and refreshes the cache for it.
	RefreshRates(ctx context.Context, baseCurrency string) (domain.RefreshOutcome, error)

	// GetRateStatus reports what the cache currently holds.
	GetRateStatus(ctx context.Context) domain.RateSnapshot
}
