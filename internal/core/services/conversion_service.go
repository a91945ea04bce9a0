package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/unit_converter_app/internal/apperrors"
	"github.com/SscSPs/unit_converter_app/internal/core/domain"
	"github.com/SscSPs/unit_converter_app/internal/core/ports"
	portssvc "github.com/SscSPs/unit_converter_app/internal/core/ports/services"
	"github.com/SscSPs/unit_converter_app/internal/dto"
)

// conversionService implements the ConverterSvcFacade interface
type conversionService struct {
	BaseService
	rates       portssvc.RateCacheSvc
	clock       ports.Clock
	defaultBase string
	runAsync    func(func())
}

// ConversionOption is a functional option for configuring the conversion service
type ConversionOption func(*conversionService)

// WithClock overrides the wall clock
func WithClock(clock ports.Clock) ConversionOption {
	return func(s *conversionService) {
		s.clock = clock
	}
}

// WithDefaultBaseCurrency sets the base refreshed when currency mode is activated
func WithDefaultBaseCurrency(code string) ConversionOption {
	return func(s *conversionService) {
		s.defaultBase = code
	}
}

// WithAsyncRunner replaces how opportunistic background refreshes are started
func WithAsyncRunner(run func(func())) ConversionOption {
	return func(s *conversionService) {
		s.runAsync = run
	}
}

// NewConversionService creates a new conversion service backed by the given rate cache
func NewConversionService(rates portssvc.RateCacheSvc, options ...ConversionOption) portssvc.ConverterSvcFacade {
	svc := &conversionService{
		rates:       rates,
		clock:       SystemClock{},
		defaultBase: "USD",
		runAsync:    func(f func()) { go f() },
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ConverterSvcFacade = (*conversionService)(nil)

func (s *conversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*domain.Conversion, error) {
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}
	info, err := domain.LookupCategory(category)
	if err != nil {
		return nil, err
	}
	if _, err := info.Unit(req.From); err != nil {
		return nil, err
	}
	if _, err := info.Unit(req.To); err != nil {
		return nil, err
	}

	value, err := domain.ParseValue(string(req.Value))
	if err != nil {
		s.LogDebug(ctx, "Suppressing output for non-numeric input", slog.String("value", string(req.Value)))
		return domain.EmptyConversion(category, req.From, req.To), nil
	}

	switch category {
	case domain.CategoryTemperature:
		result, err := domain.ConvertTemperature(value, req.From, req.To)
		if err != nil {
			return nil, err
		}
		return domain.NewConversion(category, req.From, req.To, value, result, nil), nil
	case domain.CategoryCurrency:
		return s.convertCurrency(ctx, value, req.From, req.To)
	default:
		result, err := info.ConvertLinear(value, req.From, req.To)
		if err != nil {
			return nil, err
		}
		return domain.NewConversion(category, req.From, req.To, value, result, nil), nil
	}
}

func (s *conversionService) convertCurrency(ctx context.Context, value float64, from, to string) (*domain.Conversion, error) {
	fromCurrency, err := domain.LookupCurrency(from)
	if err != nil {
		return nil, err
	}
	toCurrency, err := domain.LookupCurrency(to)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if s.rates.IsStale(now) {
		bg := context.WithoutCancel(ctx)
		s.runAsync(func() {
			s.rates.Refresh(bg, fromCurrency.Code, now)
		})
	}

	rateInfo := &domain.RateInfo{
		From:       fromCurrency.Code,
		To:         toCurrency.Code,
		FromSymbol: fromCurrency.Symbol,
		ToSymbol:   toCurrency.Symbol,
	}

	var result float64
	if rate, ok := s.rates.GetRate(fromCurrency.Code, toCurrency.Code); ok {
		result = value * rate
		rateInfo.Rate = rate
		rateInfo.Source = domain.RateSourceLive
	} else {
		result = fromCurrency.ConvertStatic(value, toCurrency)
		rateInfo.Rate = fromCurrency.StaticRate(toCurrency)
		rateInfo.Source = domain.RateSourceOffline
	}

	return domain.NewConversion(domain.CategoryCurrency, fromCurrency.Code, toCurrency.Code, value, result, rateInfo), nil
}

func (s *conversionService) Swap(ctx context.Context, req dto.SwapRequest) (*domain.Conversion, error) {
	return s.Convert(ctx, dto.ConvertRequest{
		Value:    req.Output,
		Category: req.Category,
		From:     req.To,
		To:       req.From,
	})
}

func (s *conversionService) ListCategories(ctx context.Context) []domain.CategoryInfo {
	return domain.ListCategories()
}

func (s *conversionService) ActivateCategory(ctx context.Context, name string) (*domain.CategoryActivation, error) {
	category, err := domain.ParseCategory(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrNotFound, err)
	}
	info, err := domain.LookupCategory(category)
	if err != nil {
		return nil, err
	}

	activation := &domain.CategoryActivation{Info: info}
	s.LogInfo(ctx, "Converter category activated", slog.String("category", category.String()))
	if category == domain.CategoryCurrency {
		outcome := s.rates.Refresh(ctx, s.defaultBase, s.clock.Now())
		if outcome == domain.RefreshFetchedFailure {
			s.GetLogger(ctx).Warn("Currency mode activated without live rates",
				slog.String("base_currency", s.defaultBase))
		}
		activation.Refresh = &outcome
	}
	return activation, nil
}
