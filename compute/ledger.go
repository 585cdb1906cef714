// SPDX-License-Identifier: LGPL-3.0-or-later

// Package compute implements the Compute agent's workload ledger: job
// ingestion and flexibility-profile projection over a planning window.
package compute

import (
	"encoding/json"
	"math"
	"os"
	"sync"
	"time"

	"caco/domain"
	"caco/logger"
)

// Ledger holds Job records in memory, keyed by JobID. Mutations (Ingest)
// and reads (Profile) are serialized by a single mutex — there is no
// concurrent-mutation path within one Compute agent.
type Ledger struct {
	mu   sync.RWMutex
	jobs map[string]domain.Job
	log  logger.Logger
}

// NewLedger creates an empty ledger, optionally seeded from a bootstrap
// JSON file. A missing bootstrap file is not an error.
func NewLedger(log logger.Logger, bootstrapPath string) *Ledger {
	l := &Ledger{
		jobs: make(map[string]domain.Job),
		log:  log,
	}
	if bootstrapPath != "" {
		if err := l.LoadFile(bootstrapPath); err != nil {
			log.Warn("bootstrap jobs file not loaded", "path", bootstrapPath, "error", err)
		}
	}
	return l
}

type bootstrapFile struct {
	Jobs []domain.Job `json:"jobs"`
}

// LoadFile re-ingests the jobs described by a bootstrap JSON file. A
// missing file is treated as "nothing to load", not an error.
func (l *Ledger) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var payload bootstrapFile
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}

	ingested := l.Ingest(payload.Jobs)
	l.log.Info("loaded bootstrap jobs file", "path", path, "num_jobs_ingested", ingested)
	return nil
}

// Ingest merges jobs into the ledger keyed by JobID; the last write for a
// given JobID wins. It returns the number of jobs ingested (not
// necessarily distinct from the total, since overwrites still count).
func (l *Ledger) Ingest(jobs []domain.Job) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, job := range jobs {
		l.jobs[job.JobID] = job
	}
	return len(jobs)
}

// TotalJobs returns the number of distinct jobs currently retained.
func (l *Ledger) TotalJobs() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.jobs)
}

// Profile computes the flexibility profile for every retained job that
// overlaps [from, to], optionally filtered to one cluster. A job overlaps
// the window when its deadline is not before "from" and its arrival is not
// after "to".
func (l *Ledger) Profile(from, to time.Time, clusterID string) []domain.FlexibilityProfile {
	l.mu.RLock()
	defer l.mu.RUnlock()

	profiles := make([]domain.FlexibilityProfile, 0)
	for _, job := range l.jobs {
		if clusterID != "" && job.ClusterID != clusterID {
			continue
		}
		if job.Deadline.Before(from) || job.ArrivalTime.After(to) {
			continue
		}

		earliestStart := job.ArrivalTime
		if from.After(earliestStart) {
			earliestStart = from
		}
		latestEnd := job.Deadline
		if to.Before(latestEnd) {
			latestEnd = to
		}

		slackHours := latestEnd.Sub(earliestStart).Hours() - job.DurationHours
		if slackHours < 0 {
			slackHours = 0
		}
		slackHours = math.Round(slackHours*100) / 100

		profiles = append(profiles, domain.FlexibilityProfile{
			Job:           job,
			EarliestStart: earliestStart,
			LatestEnd:     latestEnd,
			SlackHours:    slackHours,
			IsFlexible:    job.IsFlexible(),
		})
	}
	return profiles
}
