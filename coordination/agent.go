// SPDX-License-Identifier: LGPL-3.0-or-later

package coordination

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"caco/agent"
	"caco/domain"
	"caco/logger"
	"caco/metrics"
	"caco/oracle"
	"caco/scheduler"
)

// Agent orchestrates one planning cycle: fan out to the Grid and Compute
// agents, resolve scheduling weights, invoke the engine, and cache the
// result for export_beckn_catalog.
type Agent struct {
	grid    agent.Transport
	compute agent.Transport
	oracle  oracle.WeightOracle
	log     logger.Logger
	cache   *cache
}

// NewAgent wires default transports for the Grid and Compute agents. A nil
// oracle disables weight-oracle consultation entirely — resolution then
// relies solely on defaults and payload overrides.
func NewAgent(grid, compute agent.Transport, weightOracle oracle.WeightOracle, log logger.Logger) *Agent {
	return &Agent{
		grid:    grid,
		compute: compute,
		oracle:  weightOracle,
		log:     log,
		cache:   newCache(),
	}
}

// Registry exposes run_caco_planning and export_beckn_catalog as an
// agent.Registry dispatch table.
func (a *Agent) Registry() *agent.Registry {
	return agent.NewRegistry(map[string]agent.Handler{
		"run_caco_planning":    a.handleRunPlanning,
		"export_beckn_catalog": a.handleExportCatalog,
	})
}

func (a *Agent) handleExportCatalog(ctx context.Context, payload json.RawMessage) (any, error) {
	return map[string]any{
		"status":      "ok",
		"flex_offers": a.cache.flexOffers(),
	}, nil
}

type forecastPayload struct {
	CarbonSeries []domain.CarbonPoint `json:"carbon_series"`
	PriceSeries  []domain.PricePoint  `json:"price_series"`
}

type profilePayload struct {
	Status  string                      `json:"status"`
	Message string                      `json:"message,omitempty"`
	Jobs    []domain.FlexibilityProfile `json:"jobs"`
}

func (a *Agent) handleRunPlanning(ctx context.Context, payload json.RawMessage) (any, error) {
	var req windowRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("Invalid window: %w", err)
	}

	windowStart, windowEnd, err := resolveWindow(req, nowUTC())
	if err != nil {
		return nil, err
	}

	region := req.Region
	if region == "" {
		region = "GB"
	}
	clusterID := req.ClusterID
	if clusterID == "" {
		clusterID = "default"
	}

	gridTransport := a.grid
	computeTransport := a.compute
	if req.Endpoints != nil {
		if req.Endpoints.GridAgentURL != "" {
			gridTransport = agent.NewHTTPTransport(req.Endpoints.GridAgentURL)
		}
		if req.Endpoints.ComputeAgentURL != "" {
			computeTransport = agent.NewHTTPTransport(req.Endpoints.ComputeAgentURL)
		}
	}

	var forecast forecastPayload
	var profile profilePayload

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		timer := prometheus.NewTimer(metrics.AgentRPCDuration.WithLabelValues("get_grid_forecast"))
		defer timer.ObserveDuration()

		raw, err := gridTransport.Invoke(gctx, "get_grid_forecast", map[string]any{
			"from":   domain.ISOFormat(windowStart),
			"to":     domain.ISOFormat(windowEnd),
			"region": region,
		})
		if err != nil {
			return fmt.Errorf("grid agent: %w", err)
		}
		return json.Unmarshal(raw, &forecast)
	})
	group.Go(func() error {
		timer := prometheus.NewTimer(metrics.AgentRPCDuration.WithLabelValues("get_flexibility_profile"))
		defer timer.ObserveDuration()

		raw, err := computeTransport.Invoke(gctx, "get_flexibility_profile", map[string]any{
			"from":       domain.ISOFormat(windowStart),
			"to":         domain.ISOFormat(windowEnd),
			"cluster_id": clusterID,
		})
		if err != nil {
			return fmt.Errorf("compute agent: %w", err)
		}
		return json.Unmarshal(raw, &profile)
	})
	if err := group.Wait(); err != nil {
		metrics.PlanningCyclesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if profile.Status != "ok" {
		metrics.PlanningCyclesTotal.WithLabelValues("error").Inc()
		return map[string]any{
			"status":           "error",
			"message":          "Compute agent error",
			"compute_response": profile,
		}, nil
	}

	weights := a.resolveWeights(ctx, req.Optimization, forecast, profile)

	jobs := make([]domain.Job, 0, len(profile.Jobs))
	for _, p := range profile.Jobs {
		jobs = append(jobs, p.Job)
	}

	result := scheduler.Schedule(jobs, forecast.CarbonSeries, forecast.PriceSeries, weights)
	a.cache.replace(result.ScheduledJobs, result.FlexOffers)

	metrics.PlanningCyclesTotal.WithLabelValues("success").Inc()
	metrics.ScheduledJobsTotal.Add(float64(len(result.ScheduledJobs)))
	metrics.DroppedJobsTotal.Add(float64(len(jobs) - len(result.ScheduledJobs)))

	return map[string]any{
		"status": "success",
		"window": map[string]any{
			"from":   domain.ISOFormat(windowStart),
			"to":     domain.ISOFormat(windowEnd),
			"region": region,
		},
		"scheduled_jobs": result.ScheduledJobs,
		"flex_offers":    result.FlexOffers,
		"strategy": map[string]any{
			"carbon_penalty_weight": weights.CarbonPenaltyWeight,
			"sla_penalty_weight":    weights.SLAPenaltyWeight,
			"max_power_kw":          weights.MaxPowerKW,
		},
	}, nil
}

// resolveWeights layers default weights, payload overrides, and an
// optional oracle consultation. Oracle failures are logged and fall back
// to the override-applied defaults, never propagated as a cycle failure.
func (a *Agent) resolveWeights(ctx context.Context, override *optimizationInput, forecast forecastPayload, profile profilePayload) scheduler.Weights {
	base := oracle.DefaultWeights()
	if override != nil {
		if override.CarbonPenaltyWeight != nil {
			base.CarbonPenaltyWeight = *override.CarbonPenaltyWeight
		}
		if override.SLAPenaltyWeight != nil {
			base.SLAPenaltyWeight = *override.SLAPenaltyWeight
		}
		if override.MaxPowerKW != nil {
			base.MaxPowerKW = *override.MaxPowerKW
		}
	}

	if a.oracle == nil {
		return toSchedulerWeights(base)
	}

	gridSummary := oracle.GridSummary(fmt.Sprintf("%d carbon points, %d price points", len(forecast.CarbonSeries), len(forecast.PriceSeries)))
	demandSummary := oracle.DemandSummary(fmt.Sprintf("%d jobs in window", len(profile.Jobs)))

	suggestion, err := a.oracle.SuggestWeights(ctx, gridSummary, demandSummary)
	if err != nil {
		a.log.Warn("weight oracle unavailable, using static weights", "error", err)
		return toSchedulerWeights(base)
	}

	return toSchedulerWeights(oracle.Clamp(suggestion.Weights))
}

func toSchedulerWeights(w oracle.Weights) scheduler.Weights {
	return scheduler.Weights{
		CarbonPenaltyWeight: w.CarbonPenaltyWeight,
		SLAPenaltyWeight:    w.SLAPenaltyWeight,
		MaxPowerKW:          w.MaxPowerKW,
	}
}
