package services

import (
	"context"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/unit_converter_app/internal/core/domain"
	"github.com/SscSPs/unit_converter_app/internal/core/ports"
	portssvc "github.com/SscSPs/unit_converter_app/internal/core/ports/services"
)

// DefaultRateTTL is how long fetched rates count as fresh.
const DefaultRateTTL = 3_600_000 * time.Millisecond

// RateCache holds the most recently fetched exchange rates keyed by base
// currency. One lastUpdated timestamp is shared by all bases. Stale entries are
// never evicted: they keep serving lookups until a refresh replaces them.
//
// Concurrent refreshes are not de-duplicated; each one performs its own fetch.
type RateCache struct {
	fetcher ports.RateFetcher
	ttl     time.Duration
	logger  *slog.Logger

	mu          sync.RWMutex
	rates       map[string]map[string]float64
	lastUpdated time.Time
}

// NewRateCache creates an empty RateCache.
func NewRateCache(fetcher ports.RateFetcher, ttl time.Duration, logger *slog.Logger) *RateCache {
	if ttl <= 0 {
		ttl = DefaultRateTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RateCache{
		fetcher: fetcher,
		ttl:     ttl,
		logger:  logger,
		rates:   make(map[string]map[string]float64),
	}
}

// GetRate returns the live rate for from→to if one has been fetched.
func (c *RateCache) GetRate(from, to string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rate, ok := c.rates[from][to]
	return rate, ok
}

// IsStale reports whether the cache was never filled or the freshness window has elapsed.
func (c *RateCache) IsStale(now time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.isStaleLocked(now)
}

func (c *RateCache) isStaleLocked(now time.Time) bool {
	return c.lastUpdated.IsZero() || now.Sub(c.lastUpdated) >= c.ttl
}

// Refresh fetches the rates for baseCurrency unless the cache is still fresh.
// A failed fetch leaves the cache untouched so earlier data remains usable.
func (c *RateCache) Refresh(ctx context.Context, baseCurrency string, now time.Time) domain.RefreshOutcome {
	base := strings.ToUpper(strings.TrimSpace(baseCurrency))
	logger := c.logger.With(slog.String("base_currency", base))

	if !c.IsStale(now) {
		logger.Debug("Exchange rates still fresh, skipping fetch")
		return domain.RefreshSkippedFresh
	}

	fetched, err := c.fetcher.FetchRates(ctx, base)
	if err != nil {
		logger.Warn("Failed to fetch exchange rates, using fallback rates", slog.String("error", err.Error()))
		return domain.RefreshFetchedFailure
	}

	valid := make(map[string]float64, len(fetched))
	for code, rate := range fetched {
		if rate > 0 {
			valid[strings.ToUpper(code)] = rate
		}
	}
	if len(valid) == 0 {
		logger.Warn("Exchange rate response contained no usable rates")
		return domain.RefreshFetchedFailure
	}

	c.mu.Lock()
	if c.rates[base] == nil {
		c.rates[base] = make(map[string]float64, len(valid))
	}
	maps.Copy(c.rates[base], valid)
	c.lastUpdated = now
	c.mu.Unlock()

	logger.Info("Exchange rates refreshed", slog.Int("count", len(valid)))
	return domain.RefreshFetchedSuccess
}

// Snapshot copies the cache contents.
func (c *RateCache) Snapshot(now time.Time) domain.RateSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rates := make(map[string]map[string]float64, len(c.rates))
	for base, targets := range c.rates {
		rates[base] = maps.Clone(targets)
	}
	return domain.RateSnapshot{
		Rates:       rates,
		LastUpdated: c.lastUpdated,
		Stale:       c.isStaleLocked(now),
	}
}

var _ portssvc.RateCacheSvc = (*RateCache)(nil)
