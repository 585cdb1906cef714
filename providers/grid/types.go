// SPDX-License-Identifier: LGPL-3.0-or-later

// Package grid fetches carbon-intensity and imbalance-price forecasts for a
// planning window, falling back to a deterministic synthetic series when
// either upstream provider is unavailable.
package grid

import (
	"context"
	"time"

	"caco/domain"
)

// Forecast is the combined result of one get_grid_forecast call.
type Forecast struct {
	CarbonSeries []domain.CarbonPoint `json:"carbon_series"`
	PriceSeries  []domain.PricePoint  `json:"price_series"`
}

// CarbonSource fetches a carbon-intensity forecast for a region.
type CarbonSource interface {
	FetchCarbon(ctx context.Context, from time.Time, region string) ([]domain.CarbonPoint, error)
}

// PriceSource fetches a system imbalance-price series for a window.
type PriceSource interface {
	FetchPrice(ctx context.Context, from, to time.Time) ([]domain.PricePoint, error)
}
