// SPDX-License-Identifier: LGPL-3.0-or-later

package compute

import (
	"context"
	"encoding/json"
	"fmt"

	"caco/agent"
	"caco/domain"
)

type ingestRequest struct {
	Jobs []domain.Job `json:"jobs"`
}

type ingestResponse struct {
	Status           string `json:"status"`
	NumJobsIngested  int    `json:"num_jobs_ingested"`
	TotalJobs        int    `json:"total_jobs"`
}

type profileRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	ClusterID string `json:"cluster_id"`
}

type profileResponse struct {
	Status string                       `json:"status"`
	Jobs   []domain.FlexibilityProfile `json:"jobs"`
}

// Registry exposes the Compute agent's two operations, ingest_jobs and
// get_flexibility_profile, as an agent.Registry dispatch table.
func Registry(ledger *Ledger) *agent.Registry {
	return agent.NewRegistry(map[string]agent.Handler{
		"ingest_jobs": func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req ingestRequest
			if err := json.Unmarshal(payload, &req); err != nil {
				return nil, err
			}
			ingested := ledger.Ingest(req.Jobs)
			return ingestResponse{Status: "ok", NumJobsIngested: ingested, TotalJobs: ledger.TotalJobs()}, nil
		},

		"get_flexibility_profile": func(ctx context.Context, payload json.RawMessage) (any, error) {
			var req profileRequest
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

			profiles := ledger.Profile(from, to, req.ClusterID)
			return profileResponse{Status: "ok", Jobs: profiles}, nil
		},
	})
}
