// SPDX-License-Identifier: LGPL-3.0-or-later

// Package coordination orchestrates one CACO planning cycle: fanning out
// concurrent RPCs to the Grid and Compute agents, resolving and clamping
// scheduling weights (optionally via a weight oracle), invoking the
// scheduling engine, and caching the result for catalog export.
package coordination

import (
	"sync/atomic"

	"caco/domain"
)

// snapshot is the Coordination agent's only cross-request mutable state.
// It is replaced wholesale, never mutated in place, so a concurrent
// export_beckn_catalog read always observes a complete pre- or
// post-update view.
type snapshot struct {
	scheduledJobs []domain.ScheduledJob
	flexOffers    []domain.FlexOffer
}

var emptySnapshot = &snapshot{scheduledJobs: []domain.ScheduledJob{}, flexOffers: []domain.FlexOffer{}}

type cache struct {
	current atomic.Pointer[snapshot]
}

func newCache() *cache {
	c := &cache{}
	c.current.Store(emptySnapshot)
	return c
}

func (c *cache) replace(scheduledJobs []domain.ScheduledJob, flexOffers []domain.FlexOffer) {
	c.current.Store(&snapshot{scheduledJobs: scheduledJobs, flexOffers: flexOffers})
}

func (c *cache) flexOffers() []domain.FlexOffer {
	return c.current.Load().flexOffers
}
