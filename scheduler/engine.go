// SPDX-License-Identifier: LGPL-3.0-or-later

package scheduler

import (
	"math"
	"sort"

	"caco/domain"
)

// Weights parameterizes one scheduling run.
type Weights struct {
	CarbonPenaltyWeight float64
	SLAPenaltyWeight    float64
	MaxPowerKW          float64
}

// Result is the output of one Schedule call: the committed placements and
// the flex offers derived from the flexible ones among them.
type Result struct {
	ScheduledJobs []domain.ScheduledJob
	FlexOffers    []domain.FlexOffer
}

// Schedule places jobs against carbonSeries and priceSeries under weights,
// returning a committed schedule and derived flex offers. Jobs that have
// no feasible placement are silently dropped, never errored — per spec
// §4.4/§7, infeasibility is not a failure.
func Schedule(jobs []domain.Job, carbonSeries []domain.CarbonPoint, priceSeries []domain.PricePoint, weights Weights) Result {
	if len(jobs) == 0 {
		return Result{}
	}

	tl := buildTimeline(carbonSeries, priceSeries)
	if tl.empty() {
		return Result{}
	}

	ordered := append([]domain.Job(nil), jobs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.DurationHours != b.DurationHours {
			return a.DurationHours < b.DurationHours
		}
		return a.ArrivalTime.Before(b.ArrivalTime)
	})

	powerUsage := make([]float64, len(tl.slots))
	var scheduled []domain.ScheduledJob

	for _, job := range ordered {
		if !job.Feasible() {
			continue
		}

		idx, lateness, ok := selectStartIndex(job, tl, powerUsage, weights)
		if !ok {
			continue
		}

		slotCount := job.DurationSlots()
		startTime := tl.slots[idx]
		endTime := tl.slots[idx+slotCount-1].Add(domain.SlotDuration)

		var priceCost, carbonCost float64
		for offset := 0; offset < slotCount; offset++ {
			at := idx + offset
			ts := tl.slots[at]
			slotEnergy := job.PowerKW * domain.SlotHours
			priceCost += tl.price[ts] * slotEnergy
			carbonCost += tl.carbon[ts] * slotEnergy / 1000
			powerUsage[at] += job.PowerKW
		}

		scheduled = append(scheduled, domain.ScheduledJob{
			JobID:            job.JobID,
			StartTime:        startTime,
			EndTime:          endTime,
			PowerKW:          job.PowerKW,
			ExpectedCostGBP:  round(priceCost, 2),
			ExpectedCarbonKG: round(carbonCost, 3),
			IsFlexibleOffer:  job.IsFlexible(),
			Metadata: map[string]any{
				"lateness_hours": lateness,
				"cluster_id":     job.ClusterID,
				"priority":       job.Priority,
			},
		})
	}

	return Result{
		ScheduledJobs: scheduled,
		FlexOffers:    flexOffersFromSchedule(scheduled, tl, weights.CarbonPenaltyWeight),
	}
}

// selectStartIndex scans every feasible start slot for job and returns the
// index with the strictly smallest score (earliest start wins exact ties,
// since slots are scanned in order and a later slot must beat, not just
// match, the running best).
func selectStartIndex(job domain.Job, tl *timeline, powerUsage []float64, weights Weights) (int, float64, bool) {
	slotCount := job.DurationSlots()
	bestIndex := -1
	bestScore := math.Inf(1)
	var bestLateness float64

	for idx := 0; idx+slotCount <= len(tl.slots); idx++ {
		slotStart := tl.slots[idx]
		if slotStart.Before(job.ArrivalTime) {
			continue
		}

		slotEnd := tl.slots[idx+slotCount-1].Add(domain.SlotDuration)
		latenessHours := math.Max(0, slotEnd.Sub(job.Deadline).Hours())

		// A max_deferral_hours of exactly 0 is treated as unbounded
		// deferral tolerance here, reproducing the source engine's
		// filter condition verbatim (see DESIGN.md Open Questions).
		if latenessHours > job.MaxDeferralHours && job.MaxDeferralHours > 0 {
			continue
		}

		capExceeded := false
		for offset := 0; offset < slotCount; offset++ {
			if powerUsage[idx+offset]+job.PowerKW > weights.MaxPowerKW {
				capExceeded = true
				break
			}
		}
		if capExceeded {
			continue
		}

		var score float64
		for offset := 0; offset < slotCount; offset++ {
			ts := tl.slots[idx+offset]
			slotEnergy := job.PowerKW * domain.SlotHours
			score += tl.price[ts] * slotEnergy
			score += weights.CarbonPenaltyWeight * tl.carbon[ts] * slotEnergy / 1000
		}
		score += (weights.SLAPenaltyWeight + job.SLAPenaltyPerHour) * latenessHours

		if score < bestScore {
			bestScore = score
			bestIndex = idx
			bestLateness = latenessHours
		}
	}

	if bestIndex == -1 {
		return 0, 0, false
	}
	return bestIndex, bestLateness, true
}

func round(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}
