// SPDX-License-Identifier: LGPL-3.0-or-later

package grid

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"caco/domain"
	"caco/logger"
)

// CarbonIntensityClient fetches a 24h-forward carbon intensity forecast from
// the upstream carbon-intensity API, falling back to a synthetic series on
// any failure.
type CarbonIntensityClient struct {
	baseURL string
	client  *http.Client
	log     logger.Logger
}

// NewCarbonIntensityClient creates a client for the carbon-intensity upstream.
func NewCarbonIntensityClient(baseURL string, log logger.Logger) *CarbonIntensityClient {
	if baseURL == "" {
		baseURL = "https://api.carbonintensity.org.uk"
	}
	return &CarbonIntensityClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

type carbonAPIResponse struct {
	Data []struct {
		From      string `json:"from"`
		Timestamp string `json:"timestamp"`
		Intensity struct {
			Forecast *float64 `json:"forecast"`
			Index    string   `json:"index"`
		} `json:"intensity"`
		ForecastGPerKWh *float64 `json:"forecast_g_per_kwh"`
		Actual          *float64 `json:"actual"`
		Index           string   `json:"index"`
	} `json:"data"`
}

// FetchCarbon returns the 24h-forward forecast starting at from. On any
// upstream failure it logs a warning and returns the deterministic fallback
// series instead of an error.
func (c *CarbonIntensityClient) FetchCarbon(ctx context.Context, from time.Time, _ string) ([]domain.CarbonPoint, error) {
	reqURL := fmt.Sprintf("%s/intensity/%s/fw24h", c.baseURL, url.PathEscape(domain.ISOFormat(from)))

	points, err := c.fetch(ctx, reqURL)
	if err != nil {
		c.log.Warn("carbon intensity upstream failed, using fallback series", "error", err)
		return fallbackCarbonSeries(from), nil
	}
	if len(points) == 0 {
		c.log.Warn("carbon intensity upstream returned no data, using fallback series")
		return fallbackCarbonSeries(from), nil
	}
	return points, nil
}

func (c *CarbonIntensityClient) fetch(ctx context.Context, reqURL string) ([]domain.CarbonPoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("carbon intensity API returned status %d", resp.StatusCode)
	}

	var payload carbonAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode carbon intensity response: %w", err)
	}

	points := make([]domain.CarbonPoint, 0, len(payload.Data))
	for _, entry := range payload.Data {
		rawTS := entry.From
		if rawTS == "" {
			rawTS = entry.Timestamp
		}
		ts, err := domain.ParseTime(rawTS)
		if err != nil {
			continue
		}

		forecast := entry.Intensity.Forecast
		if forecast == nil {
			forecast = entry.ForecastGPerKWh
		}
		if forecast == nil {
			forecast = entry.Actual
		}
		if forecast == nil {
			continue
		}

		index := entry.Intensity.Index
		if index == "" {
			index = entry.Index
		}
		if index == "" {
			index = "unknown"
		}

		points = append(points, domain.CarbonPoint{
			Timestamp:       ts,
			ForecastGPerKWh: *forecast,
			Index:           index,
		})
	}
	return points, nil
}

// ImbalancePriceClient fetches the system imbalance price series from the
// Elexon-style DISEBSP dataset upstream, tolerating multiple field spellings.
type ImbalancePriceClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     logger.Logger
}

// NewImbalancePriceClient creates a client for the imbalance-price upstream.
func NewImbalancePriceClient(baseURL, apiKey string, log logger.Logger) *ImbalancePriceClient {
	if baseURL == "" {
		baseURL = "https://data.elexon.co.uk/bmrs/api/v1/datasets/DISEBSP"
	}
	return &ImbalancePriceClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

type priceAPIResponse struct {
	Data     []priceRecord `json:"data"`
	Response struct {
		Data []priceRecord `json:"data"`
	} `json:"response"`
}

type priceRecord struct {
	SettlementPeriodStart string   `json:"settlementPeriodStart"`
	Time                  string   `json:"time"`
	Timestamp             string   `json:"timestamp"`
	StartTime             string   `json:"startTime"`
	SystemBuyPrice        *float64 `json:"systemBuyPrice"`
	BuyPrice              *float64 `json:"buyPrice"`
	Price                 *float64 `json:"price"`
	SystemSellPrice       *float64 `json:"systemSellPrice"`
	SellPrice             *float64 `json:"sellPrice"`
}

// FetchPrice returns system buy/sell prices covering [from, to]. On any
// upstream failure (network, status, decode, empty data) it logs a warning
// and returns the deterministic fallback series instead of an error.
func (c *ImbalancePriceClient) FetchPrice(ctx context.Context, from, to time.Time) ([]domain.PricePoint, error) {
	reqURL := fmt.Sprintf("%s?from=%s&to=%s", c.baseURL, url.QueryEscape(domain.ISOFormat(from)), url.QueryEscape(domain.ISOFormat(to)))

	points, err := c.fetch(ctx, reqURL)
	if err != nil {
		c.log.Warn("imbalance price upstream failed, using fallback series", "error", err)
		return fallbackPriceSeries(from, to), nil
	}
	if len(points) == 0 {
		c.log.Warn("imbalance price upstream returned no data, using fallback series")
		return fallbackPriceSeries(from, to), nil
	}
	return points, nil
}

func (c *ImbalancePriceClient) fetch(ctx context.Context, reqURL string) ([]domain.PricePoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("imbalance price API returned status %d", resp.StatusCode)
	}

	var payload priceAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode imbalance price response: %w", err)
	}

	records := payload.Data
	if len(records) == 0 {
		records = payload.Response.Data
	}

	points := make([]domain.PricePoint, 0, len(records))
	for _, rec := range records {
		rawTS := rec.SettlementPeriodStart
		for _, candidate := range []string{rec.Time, rec.Timestamp, rec.StartTime} {
			if rawTS != "" {
				break
			}
			rawTS = candidate
		}
		ts, err := domain.ParseTime(rawTS)
		if err != nil {
			continue
		}

		points = append(points, domain.PricePoint{
			Timestamp:                 ts,
			SystemBuyPriceGBPPerMWh:  firstNonNil(0, rec.SystemBuyPrice, rec.BuyPrice, rec.Price),
			SystemSellPriceGBPPerMWh: firstNonNil(0, rec.SystemSellPrice, rec.SellPrice),
		})
	}
	return points, nil
}

func firstNonNil(fallback float64, values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return fallback
}
