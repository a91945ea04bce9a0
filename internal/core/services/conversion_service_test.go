package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/SscSPs/unit_converter_app/internal/apperrors"
	"github.com/SscSPs/unit_converter_app/internal/core/domain"
	portssvc "github.com/SscSPs/unit_converter_app/internal/core/ports/services"
	"github.com/SscSPs/unit_converter_app/internal/core/services"
	"github.com/SscSPs/unit_converter_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	fetcher *MockRateFetcher
	clock   *fixedClock
	cache   *services.RateCache
	pending []func()
	service portssvc.ConverterSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.fetcher = new(MockRateFetcher)
	suite.clock = &fixedClock{now: t0}
	suite.cache = newTestCache(suite.fetcher)
	suite.pending = nil
	suite.service = services.NewConversionService(
		suite.cache,
		services.WithClock(suite.clock),
		services.WithDefaultBaseCurrency("USD"),
		services.WithAsyncRunner(func(f func()) { suite.pending = append(suite.pending, f) }),
	)
}

func (suite *ConversionServiceTestSuite) TearDownTest() {
	suite.fetcher.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) runPending() {
	for _, f := range suite.pending {
		f()
	}
	suite.pending = nil
}

func (suite *ConversionServiceTestSuite) convert(category, value, from, to string) *domain.Conversion {
	conv, err := suite.service.Convert(context.Background(), dto.ConvertRequest{
		Value: dto.InputValue(value), Category: category, From: from, To: to,
	})
	suite.Require().NoError(err)
	suite.Require().NotNil(conv)
	return conv
}

func (suite *ConversionServiceTestSuite) TestLinear() {
	conv := suite.convert("length", "1", "km", "m")
	suite.Equal("1000", conv.Output)
	suite.InDelta(1000, conv.Result, 1e-9)
	suite.Nil(conv.Rate)

	conv = suite.convert("weight", "1", "lb", "kg")
	suite.Equal("0.453592", conv.Output)

	conv = suite.convert("volume", "1", "gal", "l")
	suite.Equal("3.78541", conv.Output)
}

func (suite *ConversionServiceTestSuite) TestIdentity() {
	conv := suite.convert("length", "3.5", "m", "m")
	suite.Equal("3.5", conv.Output)
}

func (suite *ConversionServiceTestSuite) TestRoundsToSixPlaces() {
	conv := suite.convert("length", "1", "in", "mi")
	// 0.0254 / 1609.34 = 0.0000157829...
	suite.Equal("0.000016", conv.Output)
}

func (suite *ConversionServiceTestSuite) TestRoundTripThroughRoundedOutput() {
	cases := []struct {
		category, from, to string
	}{
		{"length", "m", "ft"},
		{"length", "m", "yd"},
		{"weight", "kg", "lb"},
		{"volume", "l", "cup"},
	}
	for _, tc := range cases {
		there := suite.convert(tc.category, "123.456", tc.from, tc.to)
		back := suite.convert(tc.category, there.Output, tc.to, tc.from)
		suite.InDelta(123.456, back.Result, 1e-6, "%s %s -> %s -> %s", tc.category, tc.from, tc.to, tc.from)
	}
}

func (suite *ConversionServiceTestSuite) TestRoundingLimitsRoundTripForTinyIntermediates() {
	// 123.456 in is 0.00194849... mi; six decimals keep only 0.001948.
	there := suite.convert("length", "123.456", "in", "mi")
	suite.Equal("0.001948", there.Output)

	back := suite.convert("length", there.Output, "mi", "in")
	suite.Equal("123.424973", back.Output)
}

func (suite *ConversionServiceTestSuite) TestTemperature() {
	cases := []struct {
		value, from, to, want string
	}{
		{"0", "C", "F", "32"},
		{"100", "C", "F", "212"},
		{"0", "K", "C", "-273.15"},
		{"32", "F", "C", "0"},
		{"0", "C", "K", "273.15"},
		{"25", "C", "C", "25"},
	}
	for _, tc := range cases {
		conv := suite.convert("temperature", tc.value, tc.from, tc.to)
		suite.Equal(tc.want, conv.Output, "%s %s -> %s", tc.value, tc.from, tc.to)
	}
}

func (suite *ConversionServiceTestSuite) TestUnknownUnitInEveryCategory() {
	for _, category := range domain.AllCategories {
		_, err := suite.service.Convert(context.Background(), dto.ConvertRequest{
			Value: "1", Category: category.String(), From: "bogus", To: "bogus",
		})
		suite.ErrorIs(err, apperrors.ErrUnknownUnit, "category %s", category)
	}
}

func (suite *ConversionServiceTestSuite) TestUnknownCategory() {
	_, err := suite.service.Convert(context.Background(), dto.ConvertRequest{
		Value: "1", Category: "energy", From: "J", To: "kJ",
	})
	suite.ErrorIs(err, apperrors.ErrUnknownCategory)
}

func (suite *ConversionServiceTestSuite) TestNonNumericInputIsEmpty() {
	for _, value := range []string{"", "   ", "abc", "NaN", "Infinity"} {
		conv := suite.convert("length", value, "m", "km")
		suite.True(conv.Empty, "value %q", value)
		suite.Equal("", conv.Output)
	}
}

func (suite *ConversionServiceTestSuite) TestCurrencyFallbackWithEmptyCache() {
	conv := suite.convert("currency", "10", "USD", "EUR")

	suite.Equal("9.2", conv.Output)
	suite.Require().NotNil(conv.Rate)
	suite.Equal(domain.RateSourceOffline, conv.Rate.Source)
	suite.Equal("1 USD = 0.9200 EUR (Offline) ($ → €)", conv.Rate.String())

	// The stale cache queues a background refresh for the source currency.
	suite.Require().Len(suite.pending, 1)
	suite.fetcher.On("FetchRates", mock.Anything, "USD").Return(map[string]float64{"EUR": 0.90}, nil).Once()
	suite.runPending()

	rate, ok := suite.cache.GetRate("USD", "EUR")
	suite.True(ok)
	suite.InDelta(0.90, rate, 1e-12)
}

func (suite *ConversionServiceTestSuite) TestCurrencyCrossRateFallback() {
	conv := suite.convert("currency", "10", "EUR", "GBP")
	suite.Equal("8.586957", conv.Output)
	suite.Equal(domain.RateSourceOffline, conv.Rate.Source)
}

func (suite *ConversionServiceTestSuite) TestCurrencyLiveRate() {
	suite.fetcher.On("FetchRates", mock.Anything, "USD").Return(map[string]float64{"EUR": 0.90}, nil).Once()
	suite.Require().Equal(domain.RefreshFetchedSuccess, suite.cache.Refresh(context.Background(), "USD", t0))

	conv := suite.convert("currency", "10", "USD", "EUR")

	suite.Equal("9", conv.Output)
	suite.Require().NotNil(conv.Rate)
	suite.Equal(domain.RateSourceLive, conv.Rate.Source)
	suite.Contains(conv.Rate.String(), "(Live)")
	suite.Empty(suite.pending, "fresh cache must not trigger a refresh")
}

func (suite *ConversionServiceTestSuite) TestCurrencyStaleLiveRateStillUsed() {
	suite.fetcher.On("FetchRates", mock.Anything, "USD").Return(map[string]float64{"EUR": 0.90}, nil).Once()
	suite.Require().Equal(domain.RefreshFetchedSuccess, suite.cache.Refresh(context.Background(), "USD", t0))
	suite.clock.Advance(services.DefaultRateTTL)

	conv := suite.convert("currency", "10", "USD", "EUR")

	suite.Equal("9", conv.Output)
	suite.Equal(domain.RateSourceLive, conv.Rate.Source)
	suite.Len(suite.pending, 1)
}

func (suite *ConversionServiceTestSuite) TestCurrencyEmptyInputSkipsRefresh() {
	conv := suite.convert("currency", "", "USD", "EUR")
	suite.True(conv.Empty)
	suite.Empty(suite.pending)
}

func (suite *ConversionServiceTestSuite) TestSwap() {
	conv, err := suite.service.Swap(context.Background(), dto.SwapRequest{
		Output: "1000", Category: "length", From: "km", To: "m",
	})
	suite.Require().NoError(err)
	suite.Equal("m", conv.From)
	suite.Equal("km", conv.To)
	suite.Equal("1", conv.Output)
}

func (suite *ConversionServiceTestSuite) TestSwapWithEmptyOutput() {
	conv, err := suite.service.Swap(context.Background(), dto.SwapRequest{
		Output: "", Category: "weight", From: "kg", To: "g",
	})
	suite.Require().NoError(err)
	suite.True(conv.Empty)
	suite.Equal("g", conv.From)
}

func (suite *ConversionServiceTestSuite) TestListCategories() {
	infos := suite.service.ListCategories(context.Background())
	suite.Len(infos, len(domain.AllCategories))
	suite.Equal("Length Converter", infos[0].Title)
}

func (suite *ConversionServiceTestSuite) TestActivateCurrencyRefreshesDefaultBase() {
	suite.fetcher.On("FetchRates", mock.Anything, "USD").Return(map[string]float64{"EUR": 0.90}, nil).Once()

	activation, err := suite.service.ActivateCategory(context.Background(), "currency")

	suite.Require().NoError(err)
	suite.Equal(domain.CategoryCurrency, activation.Info.Category)
	suite.Require().NotNil(activation.Refresh)
	suite.Equal(domain.RefreshFetchedSuccess, *activation.Refresh)

	activation, err = suite.service.ActivateCategory(context.Background(), "Currency")
	suite.Require().NoError(err)
	suite.Equal(domain.RefreshSkippedFresh, *activation.Refresh)
}

func (suite *ConversionServiceTestSuite) TestActivateCurrencyFetchFailure() {
	suite.fetcher.On("FetchRates", mock.Anything, "USD").Return(nil, apperrors.ErrRateFetchFailure).Once()

	activation, err := suite.service.ActivateCategory(context.Background(), "currency")

	suite.Require().NoError(err)
	suite.Equal(domain.RefreshFetchedFailure, *activation.Refresh)
}

func (suite *ConversionServiceTestSuite) TestActivateLinearCategoryDoesNotRefresh() {
	activation, err := suite.service.ActivateCategory(context.Background(), "length")

	suite.Require().NoError(err)
	suite.Nil(activation.Refresh)
	suite.Equal("m", activation.Info.DefaultFrom().Code)
	suite.Equal("in", activation.Info.DefaultTo().Code)
	suite.fetcher.AssertNotCalled(suite.T(), "FetchRates", mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestActivateUnknownCategory() {
	_, err := suite.service.ActivateCategory(context.Background(), "energy")
	suite.ErrorIs(err, apperrors.ErrUnknownCategory)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(http.StatusNotFound, apperrors.StatusCode(err))
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
