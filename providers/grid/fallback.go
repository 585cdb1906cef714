// SPDX-License-Identifier: LGPL-3.0-or-later

package grid

import (
	"time"

	"caco/domain"
)

const fallbackCarbonPeriods = 48
const fallbackCarbonBase = 80.0
const fallbackCarbonSpread = 20.0
const fallbackCarbonModerateThreshold = 100.0

// fallbackCarbonSeries builds the deterministic 48-point half-hourly series
// used when the carbon-intensity upstream is unavailable.
func fallbackCarbonSeries(from time.Time) []domain.CarbonPoint {
	base := domain.HourFloor(from)
	series := make([]domain.CarbonPoint, 0, fallbackCarbonPeriods)
	for i := 0; i < fallbackCarbonPeriods; i++ {
		ts := base.Add(time.Duration(i) * domain.SlotDuration)
		value := fallbackCarbonBase + fallbackCarbonSpread*(float64(i%16)/16.0)
		index := "moderate"
		if value < fallbackCarbonModerateThreshold {
			index = "low"
		}
		series = append(series, domain.CarbonPoint{
			Timestamp:       ts,
			ForecastGPerKWh: value,
			Index:           index,
		})
	}
	return series
}

const fallbackPricePeriodMod = 12
const fallbackPriceBase = 100.0
const fallbackPriceSpread = 20.0
const fallbackPriceSellDiscount = 30.0

// fallbackPriceSeries builds the deterministic half-hourly price series
// spanning [hourFloor(from), hourFloor(to)] inclusive.
func fallbackPriceSeries(from, to time.Time) []domain.PricePoint {
	start := domain.HourFloor(from)
	end := domain.HourFloor(to)

	var series []domain.PricePoint
	slot := 0
	for ts := start; !ts.After(end); ts = ts.Add(domain.SlotDuration) {
		buy := fallbackPriceBase + fallbackPriceSpread*(float64(slot%fallbackPricePeriodMod)/float64(fallbackPricePeriodMod))
		series = append(series, domain.PricePoint{
			Timestamp:                ts,
			SystemBuyPriceGBPPerMWh:  buy,
			SystemSellPriceGBPPerMWh: buy - fallbackPriceSellDiscount,
		})
		slot++
	}
	return series
}
