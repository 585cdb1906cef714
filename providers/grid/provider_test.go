// SPDX-License-Identifier: LGPL-3.0-or-later

package grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"caco/domain"
)

func TestProvider_FansOutConcurrently(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)

	carbon := &MockCarbonSource{Series: []domain.CarbonPoint{
		{Timestamp: from, ForecastGPerKWh: 100, Index: "moderate"},
	}}
	price := &MockPriceSource{Series: []domain.PricePoint{
		{Timestamp: from, SystemBuyPriceGBPPerMWh: 50, SystemSellPriceGBPPerMWh: 20},
	}}

	provider := NewProvider(carbon, price)
	forecast, err := provider.GetGridForecast(context.Background(), from, to, "GB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forecast.CarbonSeries) != 1 || len(forecast.PriceSeries) != 1 {
		t.Fatalf("expected one point in each series, got carbon=%d price=%d", len(forecast.CarbonSeries), len(forecast.PriceSeries))
	}
}

func TestProvider_FilterFallsBackToFullSeriesOnEmpty(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)
	outside := from.Add(-2 * time.Hour)

	carbon := &MockCarbonSource{Series: []domain.CarbonPoint{
		{Timestamp: outside, ForecastGPerKWh: 100, Index: "moderate"},
	}}
	price := &MockPriceSource{Series: []domain.PricePoint{}}

	provider := NewProvider(carbon, price)
	forecast, err := provider.GetGridForecast(context.Background(), from, to, "GB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forecast.CarbonSeries) != 1 {
		t.Fatalf("expected fallback-to-full-series of 1 point, got %d", len(forecast.CarbonSeries))
	}
}

func TestProvider_PropagatesUpstreamError(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	carbon := &MockCarbonSource{Err: errors.New("boom")}
	price := &MockPriceSource{}

	provider := NewProvider(carbon, price)
	_, err := provider.GetGridForecast(context.Background(), from, to, "GB")
	if err == nil {
		t.Fatal("expected error to propagate from CarbonSource")
	}
}
