package domain

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// RateSource tells whether a currency rate came from the remote API or the static table.
type RateSource string

const (
	RateSourceLive    RateSource = "Live"
	RateSourceOffline RateSource = "Offline"
)

// RefreshOutcome is the result of asking the rate cache to refresh a base currency.
type RefreshOutcome string

const (
	RefreshSkippedFresh   RefreshOutcome = "skipped_fresh"
	RefreshFetchedSuccess RefreshOutcome = "fetched_success"
	RefreshFetchedFailure RefreshOutcome = "fetched_failure"
)

// RateInfo annotates a currency conversion with the rate that was applied.
type RateInfo struct {
	From       string
	To         string
	Rate       float64
	Source     RateSource
	FromSymbol string
	ToSymbol   string
}

// String renders e.g. "1 USD = 0.9200 EUR (Offline) ($ → €)".
func (r RateInfo) String() string {
	return fmt.Sprintf("1 %s = %s %s (%s) (%s → %s)",
		r.From, decimal.NewFromFloat(r.Rate).StringFixed(4), r.To, r.Source, r.FromSymbol, r.ToSymbol)
}

// RateSnapshot is a point-in-time copy of the rate cache contents.
type RateSnapshot struct {
	Rates       map[string]map[string]float64
	LastUpdated time.Time
	Stale       bool
}

// Bases lists the base currencies that have cached rates, sorted.
func (s RateSnapshot) Bases() []string {
	return slices.Sorted(maps.Keys(s.Rates))
}
