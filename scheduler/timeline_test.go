// SPDX-License-Identifier: LGPL-3.0-or-later

package scheduler

import (
	"testing"
	"time"

	"caco/domain"
)

func TestBuildTimeline_ForwardFillsAcrossGaps(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	carbon := []domain.CarbonPoint{
		{Timestamp: base, ForecastGPerKWh: 100},
	}
	price := []domain.PricePoint{
		{Timestamp: base, SystemBuyPriceGBPPerMWh: 100},
		{Timestamp: base.Add(30 * time.Minute), SystemBuyPriceGBPPerMWh: 200},
	}

	tl := buildTimeline(carbon, price)

	if len(tl.slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(tl.slots))
	}
	// carbon has no point at base+30m; must carry forward the last known value.
	if tl.carbon[base.Add(30*time.Minute)] != 100 {
		t.Errorf("expected forward-filled carbon 100, got %v", tl.carbon[base.Add(30*time.Minute)])
	}
	if tl.price[base.Add(30*time.Minute)] != 0.2 {
		t.Errorf("expected price 0.2 GBP/kWh, got %v", tl.price[base.Add(30*time.Minute)])
	}
}

func TestBuildTimeline_EmptyInputsYieldEmptyTimeline(t *testing.T) {
	tl := buildTimeline(nil, nil)
	if !tl.empty() {
		t.Error("expected empty timeline for no input series")
	}
}
