// SPDX-License-Identifier: LGPL-3.0-or-later

package domain

import (
	"math"
	"time"
)

// Job is a unit of deferrable compute work retained by the Compute ledger.
type Job struct {
	JobID              string         `json:"job_id"`
	ClusterID          string         `json:"cluster_id"`
	WorkloadType       string         `json:"workload_type"`
	ArrivalTime        time.Time      `json:"arrival_time"`
	Deadline           time.Time      `json:"deadline"`
	DurationHours      float64        `json:"duration_hours"`
	PowerKW            float64        `json:"power_kw"`
	MaxDeferralHours   float64        `json:"max_deferral_hours"`
	Priority           int            `json:"priority"`
	SLAPenaltyPerHour  float64        `json:"sla_penalty_per_hour"`
	Metadata           map[string]any `json:"metadata,omitempty"`
}

// IsFlexible reports whether the job tolerates lateness past its deadline.
func (j Job) IsFlexible() bool {
	return j.MaxDeferralHours > 0
}

// DurationSlots is the number of half-hour slots the job occupies once
// placed, rounded to the nearest slot with a floor of one.
func (j Job) DurationSlots() int {
	slots := int(math.Round(j.DurationHours * 2))
	if slots < 1 {
		return 1
	}
	return slots
}

// Feasible reports whether the job's duration fits within its permitted
// window. A MaxDeferralHours of exactly 0 is unbounded tolerance (see
// DESIGN.md Open Questions), so such jobs are always feasible here; the
// scheduler's own timeline-capacity check still drops a job with no
// placeable slot. Infeasible jobs are still ingested; the scheduler
// skips them and drops them silently.
func (j Job) Feasible() bool {
	if j.MaxDeferralHours <= 0 {
		return true
	}
	window := j.Deadline.Add(time.Duration(j.MaxDeferralHours*float64(time.Hour))).Sub(j.ArrivalTime)
	return j.DurationHours <= window.Hours()
}

// FlexibilityProfile is a Job enriched with the window-relative slack
// computed by get_flexibility_profile.
type FlexibilityProfile struct {
	Job
	EarliestStart time.Time `json:"earliest_start"`
	LatestEnd     time.Time `json:"latest_end"`
	SlackHours    float64   `json:"slack_hours"`
	IsFlexible    bool      `json:"is_flexible"`
}
