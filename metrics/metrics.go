// SPDX-License-Identifier: LGPL-3.0-or-later

// Package metrics exposes the Prometheus counters and histograms that
// give ambient operational visibility into planning cycles and agent RPC
// calls. This is distinct from the out-of-scope per-LLM-call CSV
// telemetry: these are small, fixed-cardinality operational gauges, not
// an event log.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlanningCyclesTotal counts run_caco_planning cycles by outcome.
	PlanningCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "caco_planning_cycles_total",
			Help: "Total number of planning cycles by status",
		},
		[]string{"status"},
	)

	// ScheduledJobsTotal counts jobs successfully placed across all cycles.
	ScheduledJobsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "caco_scheduled_jobs_total",
			Help: "Total number of jobs placed by the scheduling engine",
		},
	)

	// DroppedJobsTotal counts jobs for which no feasible placement existed.
	DroppedJobsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "caco_dropped_jobs_total",
			Help: "Total number of jobs dropped as infeasible by the scheduling engine",
		},
	)

	// AgentRPCDuration tracks agent RPC call latency by command.
	AgentRPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "caco_agent_rpc_duration_seconds",
			Help:    "Agent RPC call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)
)
