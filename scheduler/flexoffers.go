// SPDX-License-Identifier: LGPL-3.0-or-later

package scheduler

import (
	"math"
	"time"

	"caco/domain"
)

// flexOffersFromSchedule derives one FlexOffer per scheduled job flagged
// flexible. duration_hours is taken from the committed (end − start)
// window rather than the source job's duration_hours — preserved as-is
// per spec §9 Open Questions, since 30-minute rounding can make the two
// differ by up to one slot.
func flexOffersFromSchedule(scheduled []domain.ScheduledJob, tl *timeline, carbonPenaltyWeight float64) []domain.FlexOffer {
	var offers []domain.FlexOffer
	for _, job := range scheduled {
		if !job.IsFlexibleOffer {
			continue
		}

		avgPrice := averageBetween(tl.price, job.StartTime, job.EndTime)
		avgCarbon := averageBetween(tl.carbon, job.StartTime, job.EndTime)
		clusterID, _ := job.Metadata["cluster_id"].(string)

		offers = append(offers, domain.FlexOffer{
			OfferID:                   "flex-" + job.JobID,
			ClusterID:                 clusterID,
			PowerKW:                   job.PowerKW,
			DurationHours:             job.EndTime.Sub(job.StartTime).Hours(),
			EarliestStart:             job.StartTime,
			LatestEnd:                 job.EndTime,
			MinActivationNoticeMinutes: 60,
			PriceGBPPerMWh:            math.Max(1.0, avgPrice*1000*(1+carbonPenaltyWeight/10)),
			CarbonIntensityCapGPerKWh: avgCarbon,
			Tags: map[string]any{
				"job_id":         job.JobID,
				"scheduled_start": domain.ISOFormat(job.StartTime),
			},
		})
	}
	return offers
}

// averageBetween means values whose timestamp falls in [start, end]
// inclusive; if none fall in range, it falls back to the value at the
// earliest timestamp in the map (or 0 if the map itself is empty), matching
// the source engine's _average_value_between.
func averageBetween(values map[time.Time]float64, start, end time.Time) float64 {
	var sum float64
	var count int
	for ts, v := range values {
		if !ts.Before(start) && !ts.After(end) {
			sum += v
			count++
		}
	}
	if count == 0 {
		var first time.Time
		var firstValue float64
		found := false
		for ts, v := range values {
			if !found || ts.Before(first) {
				first, firstValue, found = ts, v, true
			}
		}
		return firstValue
	}
	return sum / float64(count)
}
