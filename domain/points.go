// SPDX-License-Identifier: LGPL-3.0-or-later

package domain

import "time"

// CarbonPoint is one forecasted grid-carbon-intensity sample.
type CarbonPoint struct {
	Timestamp       time.Time `json:"timestamp"`
	ForecastGPerKWh float64   `json:"forecast_g_per_kwh"`
	Index           string    `json:"index"`
}

// PricePoint is one system imbalance-price sample. Prices may be negative.
type PricePoint struct {
	Timestamp                 time.Time `json:"timestamp"`
	SystemBuyPriceGBPPerMWh   float64   `json:"system_buy_price_gbp_per_mwh"`
	SystemSellPriceGBPPerMWh  float64   `json:"system_sell_price_gbp_per_mwh"`
}
