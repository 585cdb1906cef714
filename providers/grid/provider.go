// SPDX-License-Identifier: LGPL-3.0-or-later

package grid

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"caco/domain"
)

// Provider fetches a combined carbon + price Forecast for a window,
// fanning the two upstream fetches out concurrently.
type Provider struct {
	carbon CarbonSource
	price  PriceSource
}

// NewProvider composes a carbon source and a price source into one Grid
// provider. Each source is expected to apply its own fallback internally
// (see CarbonIntensityClient / ImbalancePriceClient) so Provider itself
// never needs to substitute data.
func NewProvider(carbon CarbonSource, price PriceSource) *Provider {
	return &Provider{carbon: carbon, price: price}
}

// GetGridForecast fetches carbon and price series covering [from, to]
// concurrently. Returned carbon points are filtered to the window; if
// filtering would yield an empty result the unfiltered series is returned
// instead, tolerating off-by-one slot boundaries from upstream providers.
func (p *Provider) GetGridForecast(ctx context.Context, from, to time.Time, region string) (Forecast, error) {
	group, gctx := errgroup.WithContext(ctx)

	var carbonSeries []domain.CarbonPoint
	var priceSeries []domain.PricePoint

	group.Go(func() error {
		series, err := p.carbon.FetchCarbon(gctx, from, region)
		if err != nil {
			return err
		}
		carbonSeries = series
		return nil
	})
	group.Go(func() error {
		series, err := p.price.FetchPrice(gctx, from, to)
		if err != nil {
			return err
		}
		priceSeries = series
		return nil
	})

	if err := group.Wait(); err != nil {
		return Forecast{}, err
	}

	filtered := make([]domain.CarbonPoint, 0, len(carbonSeries))
	for _, point := range carbonSeries {
		if !point.Timestamp.Before(from) && !point.Timestamp.After(to) {
			filtered = append(filtered, point)
		}
	}
	if len(filtered) == 0 {
		filtered = carbonSeries
	}

	return Forecast{CarbonSeries: filtered, PriceSeries: priceSeries}, nil
}
