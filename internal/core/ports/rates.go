package ports

import (
	"context"
	"time"
)

// RateFetcher retrieves the latest conversion rates for a base currency from a
// remote source. The returned map is keyed by target currency code.
type RateFetcher interface {
	FetchRates(ctx context.Context, baseCurrency string) (map[string]float64, error)
}

// Clock supplies the current time, so freshness checks can be driven by tests.
type Clock interface {
	Now() time.Time
}
