package services

import (
	"log/slog"

	"github.com/SscSPs/unit_converter_app/internal/core/ports"
	portssvc "github.com/SscSPs/unit_converter_app/internal/core/ports/services"
	"github.com/SscSPs/unit_converter_app/internal/platform/config"
)

// NewServiceContainer wires the rate cache and the services that share it
func NewServiceContainer(cfg *config.Config, fetcher ports.RateFetcher, logger *slog.Logger) *portssvc.ServiceContainer {
	clock := SystemClock{}
	cache := NewRateCache(fetcher, cfg.RateCacheTTL, logger)

	return &portssvc.ServiceContainer{
		Converter: NewConversionService(
			cache,
			WithClock(clock),
			WithDefaultBaseCurrency(cfg.DefaultBaseCurrency),
		),
		Rates: NewRateService(cache, clock),
	}
}
