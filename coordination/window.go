// SPDX-License-Identifier: LGPL-3.0-or-later

package coordination

import (
	"fmt"
	"time"

	"caco/domain"
)

type windowRequest struct {
	From         string              `json:"from,omitempty"`
	To           string              `json:"to,omitempty"`
	HorizonHours *int                `json:"horizon_hours,omitempty"`
	Region       string              `json:"region,omitempty"`
	ClusterID    string              `json:"cluster_id,omitempty"`
	Endpoints    *endpointOverrides  `json:"endpoints,omitempty"`
	Optimization *optimizationInput  `json:"optimization,omitempty"`
}

type endpointOverrides struct {
	ComputeAgentURL string `json:"compute_agent_url,omitempty"`
	GridAgentURL    string `json:"grid_agent_url,omitempty"`
}

type optimizationInput struct {
	CarbonPenaltyWeight *float64 `json:"carbon_penalty_weight,omitempty"`
	SLAPenaltyWeight    *float64 `json:"sla_penalty_weight,omitempty"`
	MaxPowerKW          *float64 `json:"max_power_kw,omitempty"`
}

const defaultHorizonHours = 24

func nowUTC() time.Time {
	return time.Now().UTC()
}

// resolveWindow computes [window_start, window_end] from a request payload,
// defaulting the start to now and the end to start + horizon_hours (24h
// default) when not supplied explicitly.
func resolveWindow(req windowRequest, now time.Time) (time.Time, time.Time, error) {
	start := now
	if req.From != "" {
		parsed, err := domain.ParseTime(req.From)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("Invalid window: %w", err)
		}
		start = parsed
	}

	horizon := defaultHorizonHours
	if req.HorizonHours != nil {
		horizon = *req.HorizonHours
	}

	end := start.Add(time.Duration(horizon) * time.Hour)
	if req.To != "" {
		parsed, err := domain.ParseTime(req.To)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("Invalid window: %w", err)
		}
		end = parsed
	}

	return start, end, nil
}
