package exchangerate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/unit_converter_app/internal/apperrors"
	"github.com/SscSPs/unit_converter_app/internal/core/ports"
	"github.com/go-resty/resty/v2"
)

const resultSuccess = "success"

// Client fetches latest rates from exchangerate-api.com (v6).
type Client struct {
	apiKey  string
	baseURL string
	http    *resty.Client
	logger  *slog.Logger
}

// LatestResponse is the body of GET {base}/{key}/latest/{code}.
// See: https://www.exchangerate-api.com/docs/standard-requests
type LatestResponse struct {
	Result             string             `json:"result"`
	BaseCode           string             `json:"base_code"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
	TimeNextUpdateUnix int64              `json:"time_next_update_unix"`
	ConversionRates    map[string]float64 `json:"conversion_rates"`
	ErrorType          string             `json:"error-type,omitempty"`
}

// NewClient creates a new Client. baseURL should look like https://v6.exchangerate-api.com/v6.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		logger: logger,
	}
}

// FetchRates fetches every conversion rate for baseCurrency.
func (c *Client) FetchRates(ctx context.Context, baseCurrency string) (map[string]float64, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: no API key configured", apperrors.ErrRateFetchFailure)
	}

	// The key is part of the path, so only the base is logged.
	c.logger.Debug("Fetching exchange rates from API", slog.String("base_currency", baseCurrency))

	var apiResp LatestResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"apiKey": c.apiKey,
			"base":   baseCurrency,
		}).
		ForceContentType("application/json").
		SetResult(&apiResp).
		Get(c.baseURL + "/{apiKey}/latest/{base}")
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", apperrors.ErrRateFetchFailure, err)
	}
	if resp.IsError() {
		body := resp.String()
		if len(body) > 512 {
			body = body[:512]
		}
		return nil, fmt.Errorf("%w: API returned status %d: %s", apperrors.ErrRateFetchFailure, resp.StatusCode(), strings.TrimSpace(body))
	}

	if apiResp.Result != resultSuccess {
		return nil, fmt.Errorf("%w: API returned result=%s error-type=%s", apperrors.ErrRateFetchFailure, apiResp.Result, apiResp.ErrorType)
	}
	if len(apiResp.ConversionRates) == 0 {
		return nil, fmt.Errorf("%w: response has no conversion_rates", apperrors.ErrRateFetchFailure)
	}

	return apiResp.ConversionRates, nil
}

// Name returns the provider's name
func (c *Client) Name() string {
	return "exchangerate-api"
}

var _ ports.RateFetcher = (*Client)(nil)
