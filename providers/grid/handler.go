// SPDX-License-Identifier: LGPL-3.0-or-later

package grid

import (
	"context"
	"encoding/json"
	"fmt"

	"caco/agent"
	"caco/domain"
)

type forecastRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Region string `json:"region"`
}

type forecastResponse struct {
	CarbonSeries []domain.CarbonPoint `json:"carbon_series"`
	PriceSeries  []domain.PricePoint  `json:"price_series"`
}

// Registry exposes the Grid agent's one operation, get_grid_forecast, as
// an agent.Registry dispatch table. The response carries no "status"
// field per spec §4.1 — the caller distinguishes success by shape.
func Registry(provider *Provider) *agent.Registry {
	return agent.NewRegistry(map[string]agent.Handler{
		"get_grid_forecast": func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req forecastRequest
			if err := json.Unmarshal(payload, &req); err != nil {
				return nil, fmt.Errorf("invalid window: %w", err)
			}

			from, err := domain.ParseTime(req.From)
			if err != nil {
				return nil, fmt.Errorf("Invalid window: %w", err)
			}
			to, err := domain.ParseTime(req.To)
			if err != nil {
				return nil, fmt.Errorf("Invalid window: %w", err)
			}

			forecast, err := provider.GetGridForecast(ctx, from, to, req.Region)
			if err != nil {
				return nil, err
			}

			return forecastResponse{CarbonSeries: forecast.CarbonSeries, PriceSeries: forecast.PriceSeries}, nil
		},
	})
}
