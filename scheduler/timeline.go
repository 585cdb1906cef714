// SPDX-License-Identifier: LGPL-3.0-or-later

// Package scheduler implements the constrained, multi-objective greedy
// placement engine: timeline construction over forward-filled carbon and
// price series, per-job placement under deadline/power-cap constraints,
// and flex-offer derivation from the resulting schedule.
package scheduler

import (
	"sort"
	"time"

	"caco/domain"
)

// timeline is the sorted union of carbon and price timestamps for one
// planning window, with both series forward-filled across every slot.
type timeline struct {
	slots  []time.Time
	price  map[time.Time]float64 // GBP/kWh
	carbon map[time.Time]float64 // g/kWh
}

// buildTimeline merges carbon_series and price_series into an ordered
// slot sequence, forward-filling gaps in either series. A series' first
// gap (before its first observed point) is seeded with that series' own
// first value, per spec §3.
func buildTimeline(carbonSeries []domain.CarbonPoint, priceSeries []domain.PricePoint) *timeline {
	seen := make(map[time.Time]struct{})
	priceAt := make(map[time.Time]float64, len(priceSeries))
	carbonAt := make(map[time.Time]float64, len(carbonSeries))

	for _, p := range priceSeries {
		seen[p.Timestamp] = struct{}{}
		priceAt[p.Timestamp] = p.SystemBuyPriceGBPPerMWh / 1000
	}
	for _, c := range carbonSeries {
		seen[c.Timestamp] = struct{}{}
		carbonAt[c.Timestamp] = c.ForecastGPerKWh
	}

	if len(seen) == 0 {
		return &timeline{}
	}

	slots := make([]time.Time, 0, len(seen))
	for ts := range seen {
		slots = append(slots, ts)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })

	var lastPrice, lastCarbon float64
	if len(priceSeries) > 0 {
		lastPrice = priceAt[slots[firstIndexIn(slots, priceAt)]]
	}
	if len(carbonSeries) > 0 {
		lastCarbon = carbonAt[slots[firstIndexIn(slots, carbonAt)]]
	}

	price := make(map[time.Time]float64, len(slots))
	carbon := make(map[time.Time]float64, len(slots))
	for _, ts := range slots {
		if v, ok := priceAt[ts]; ok {
			lastPrice = v
		}
		if v, ok := carbonAt[ts]; ok {
			lastCarbon = v
		}
		price[ts] = lastPrice
		carbon[ts] = lastCarbon
	}

	return &timeline{slots: slots, price: price, carbon: carbon}
}

// firstIndexIn returns the index into slots of the earliest timestamp
// present in lookup, used to seed forward-fill with a series' own first
// observed value rather than zero.
func firstIndexIn(slots []time.Time, lookup map[time.Time]float64) int {
	for i, ts := range slots {
		if _, ok := lookup[ts]; ok {
			return i
		}
	}
	return 0
}

func (tl *timeline) empty() bool { return len(tl.slots) == 0 }
