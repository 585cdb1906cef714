// SPDX-License-Identifier: LGPL-3.0-or-later

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestScheduledJobsTotal_Increments(t *testing.T) {
	before := testutil.ToFloat64(ScheduledJobsTotal)
	ScheduledJobsTotal.Add(3)
	after := testutil.ToFloat64(ScheduledJobsTotal)

	if after-before != 3 {
		t.Errorf("expected counter to increase by 3, got delta %v", after-before)
	}
}

func TestPlanningCyclesTotal_LabeledByStatus(t *testing.T) {
	PlanningCyclesTotal.WithLabelValues("success").Inc()
	if got := testutil.ToFloat64(PlanningCyclesTotal.WithLabelValues("success")); got < 1 {
		t.Errorf("expected success counter >= 1, got %v", got)
	}
}
