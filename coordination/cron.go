// SPDX-License-Identifier: LGPL-3.0-or-later

package coordination

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/robfig/cron/v3"

	"caco/logger"
)

// AutoPlanner runs the Coordination agent's run_caco_planning handler on a
// cron schedule, keeping the cached flex-offer list warm for
// export_beckn_catalog without requiring a caller to drive every cycle by
// hand. It is entirely additive: manual run_caco_planning calls behave
// identically whether or not a planner is running, and no planner is
// started unless CACO_AUTO_PLAN_CRON is configured.
type AutoPlanner struct {
	agent     *Agent
	cron      *cron.Cron
	region    string
	clusterID string
	horizon   int
	log       logger.Logger
}

// NewAutoPlanner schedules a, running with the given default region,
// cluster, and horizon_hours, according to schedule (standard 5-field cron
// expression). It does not start until Start is called.
func NewAutoPlanner(a *Agent, schedule, region, clusterID string, horizonHours int, log logger.Logger) (*AutoPlanner, error) {
	p := &AutoPlanner{
		agent:     a,
		cron:      cron.New(),
		region:    region,
		clusterID: clusterID,
		horizon:   horizonHours,
		log:       log,
	}

	if _, err := p.cron.AddFunc(schedule, p.runCycle); err != nil {
		return nil, fmt.Errorf("invalid auto-plan cron schedule: %w", err)
	}
	return p, nil
}

// Start begins the cron loop. Non-blocking.
func (p *AutoPlanner) Start() {
	p.log.Info("starting auto-plan cron loop")
	p.cron.Start()
}

// Stop drains any in-flight cron tick before returning.
func (p *AutoPlanner) Stop() {
	<-p.cron.Stop().Done()
}

func (p *AutoPlanner) runCycle() {
	payload, err := json.Marshal(windowRequest{
		HorizonHours: &p.horizon,
		Region:       p.region,
		ClusterID:    p.clusterID,
	})
	if err != nil {
		p.log.Error("auto-plan cycle: failed to build payload", "error", err)
		return
	}

	result, err := p.agent.handleRunPlanning(context.Background(), payload)
	if err != nil {
		p.log.Error("auto-plan cycle failed", "error", err)
		return
	}

	if body, ok := result.(map[string]any); ok && body["status"] != "success" {
		p.log.Warn("auto-plan cycle did not succeed", "response", body)
		return
	}
	p.log.Info("auto-plan cycle completed")
}
