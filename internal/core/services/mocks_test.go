package services_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/unit_converter_app/internal/core/ports"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateFetcher ---
type MockRateFetcher struct {
	mock.Mock
}

func (m *MockRateFetcher) FetchRates(ctx context.Context, baseCurrency string) (map[string]float64, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

var _ ports.RateFetcher = (*MockRateFetcher)(nil)

// fixedClock is a settable clock for freshness tests.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
