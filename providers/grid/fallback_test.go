// SPDX-License-Identifier: LGPL-3.0-or-later

package grid

import (
	"testing"
	"time"
)

func TestFallbackCarbonSeries(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 17, 0, 0, time.UTC)
	series := fallbackCarbonSeries(from)

	if len(series) != fallbackCarbonPeriods {
		t.Fatalf("expected %d points, got %d", fallbackCarbonPeriods, len(series))
	}

	if !series[0].Timestamp.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected first point at hour floor, got %v", series[0].Timestamp)
	}

	for _, p := range series {
		if p.ForecastGPerKWh < 0 {
			t.Errorf("fallback carbon value must be non-negative, got %f", p.ForecastGPerKWh)
		}
		if p.ForecastGPerKWh < 100 && p.Index != "low" {
			t.Errorf("expected index 'low' for %f, got %s", p.ForecastGPerKWh, p.Index)
		}
		if p.ForecastGPerKWh >= 100 && p.Index != "moderate" {
			t.Errorf("expected index 'moderate' for %f, got %s", p.ForecastGPerKWh, p.Index)
		}
	}
}

func TestFallbackPriceSeries(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 2, 0, 0, 0, time.UTC)

	series := fallbackPriceSeries(from, to)

	// Hour floor to hour floor inclusive at 30-minute steps: 00:00..02:00 -> 5 points
	if len(series) != 5 {
		t.Fatalf("expected 5 points, got %d", len(series))
	}

	for _, p := range series {
		if p.SystemSellPriceGBPPerMWh != p.SystemBuyPriceGBPPerMWh-30 {
			t.Errorf("sell price should be buy - 30, got buy=%f sell=%f", p.SystemBuyPriceGBPPerMWh, p.SystemSellPriceGBPPerMWh)
		}
	}
}
