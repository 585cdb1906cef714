// SPDX-License-Identifier: LGPL-3.0-or-later

package domain

import "time"

// ScheduledJob is a placement decision emitted by the scheduling engine.
type ScheduledJob struct {
	JobID             string         `json:"job_id"`
	StartTime         time.Time      `json:"start_time"`
	EndTime           time.Time      `json:"end_time"`
	PowerKW           float64        `json:"power_kw"`
	ExpectedCostGBP   float64        `json:"expected_cost_gbp"`
	ExpectedCarbonKG  float64        `json:"expected_carbon_kg"`
	IsFlexibleOffer   bool           `json:"is_flexible_offer"`
	Metadata          map[string]any `json:"metadata"`
}

// FlexOffer is a marketable capacity window derived from a flexible
// scheduled job, publishable to an external Beckn catalog facade.
type FlexOffer struct {
	OfferID                     string         `json:"offer_id"`
	ClusterID                   string         `json:"cluster_id"`
	PowerKW                     float64        `json:"power_kw"`
	DurationHours               float64        `json:"duration_hours"`
	EarliestStart               time.Time      `json:"earliest_start"`
	LatestEnd                   time.Time      `json:"latest_end"`
	MinActivationNoticeMinutes  int            `json:"min_activation_notice_minutes"`
	PriceGBPPerMWh               float64        `json:"price_gbp_per_mwh"`
	CarbonIntensityCapGPerKWh    float64        `json:"carbon_intensity_cap_g_per_kwh"`
	Tags                         map[string]any `json:"tags"`
}
