package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/unit_converter_app/internal/core/domain"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// offline configures the CLI without an API key, so currency uses the static table.
func offline(t *testing.T) {
	t.Setenv("EXCHANGE_RATE_API_KEY", "")
	t.Setenv("LOG_LEVEL", "error")
}

func liveRates(t *testing.T, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("EXCHANGE_RATE_API_URL", srv.URL)
	t.Setenv("EXCHANGE_RATE_API_KEY", "test-key")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRun_Usage(t *testing.T) {
	code, stdout, stderr := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage: converter_cli")

	code, _, _ = runCLI(t, "length")
	assert.Equal(t, 2, code)
}

func TestRun_ConvertLength(t *testing.T) {
	offline(t)

	code, stdout, _ := runCLI(t, "length", "1", "km", "m")

	assert.Equal(t, 0, code)
	assert.Equal(t, "1 km = 1000 m\n", stdout)
}

func TestRun_ConvertTemperature(t *testing.T) {
	offline(t)

	code, stdout, _ := runCLI(t, "temperature", "100", "C", "F")

	assert.Equal(t, 0, code)
	assert.Equal(t, "100 C = 212 F\n", stdout)
}

func TestRun_ConvertCurrencyOffline(t *testing.T) {
	offline(t)

	code, stdout, _ := runCLI(t, "currency", "10", "USD", "EUR")

	assert.Equal(t, 0, code)
	assert.Equal(t, "10 USD = 9.2 EUR\n1 USD = 0.9200 EUR (Offline) ($ → €)\n", stdout)
}

func TestRun_ConvertCurrencyLive(t *testing.T) {
	liveRates(t, `{"result":"success","base_code":"USD","conversion_rates":{"USD":1,"EUR":0.90}}`)

	code, stdout, _ := runCLI(t, "currency", "10", "USD", "EUR")

	assert.Equal(t, 0, code)
	assert.Equal(t, "10 USD = 9 EUR\n1 USD = 0.9000 EUR (Live) ($ → €)\n", stdout)
}

func TestRun_ConvertCurrencyFetchFailureFallsBack(t *testing.T) {
	liveRates(t, `{"result":"error","error-type":"invalid-key"}`)

	code, stdout, _ := runCLI(t, "currency", "10", "USD", "EUR")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "(Offline)")
}

func TestRun_NonNumericInputPrintsNothing(t *testing.T) {
	offline(t)

	code, stdout, _ := runCLI(t, "length", "abc", "m", "km")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
}

func TestRun_UnknownUnit(t *testing.T) {
	offline(t)

	code, stdout, stderr := runCLI(t, "length", "1", "parsec", "m")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unknown unit")
}

func TestRun_UnknownCategoryShowsUsage(t *testing.T) {
	offline(t)

	code, _, stderr := runCLI(t, "energy", "1", "J", "kJ")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown category")
	assert.Contains(t, stderr, "Usage: converter_cli")
}

func TestRun_Refresh(t *testing.T) {
	liveRates(t, `{"result":"success","base_code":"EUR","conversion_rates":{"USD":1.08}}`)

	code, stdout, _ := runCLI(t, "refresh", "eur")
	assert.Equal(t, 0, code)
	assert.Equal(t, "fetched_success\n", stdout)

	code, _, stderr := runCLI(t, "refresh", "XYZ")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unsupported base currency")
}

func TestRun_Units(t *testing.T) {
	offline(t)

	code, stdout, _ := runCLI(t, "units", "volume")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Volume Converter\n")
	assert.Contains(t, stdout, "  floz  Fluid Ounces\n")
}

func TestListUnits(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, listUnits(&stdout, &stderr, "Currency"))
	assert.Contains(t, stdout.String(), "  USD   US Dollar ($)\n")

	assert.Equal(t, 1, listUnits(&stdout, &stderr, "energy"))
	assert.Contains(t, stderr.String(), "unknown category")
}

func TestOutcomeColor(t *testing.T) {
	assert.Equal(t, "fetched_success", outcomeColor(domain.RefreshFetchedSuccess).Sprint(domain.RefreshFetchedSuccess))
	assert.Equal(t, "skipped_fresh", outcomeColor(domain.RefreshSkippedFresh).Sprint(domain.RefreshSkippedFresh))
}
