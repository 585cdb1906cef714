// SPDX-License-Identifier: LGPL-3.0-or-later

package oracle

import (
	"context"
	"errors"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		name string
		in   Weights
		want Weights
	}{
		{"within range", Weights{5, 5, 5000}, Weights{5, 5, 5000}},
		{"negative carbon and sla clamp to zero", Weights{-1, -1, 2000}, Weights{0, 0, 2000}},
		{"over max clamps to ten", Weights{20, 20, 2000}, Weights{10, 10, 2000}},
		{"power floor at 1000", Weights{1, 1, 0}, Weights{1, 1, 1000}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Clamp(tc.in)
			if got != tc.want {
				t.Errorf("Clamp(%+v) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestMockOracle_ReturnsConfiguredSuggestion(t *testing.T) {
	m := &MockOracle{Suggestion: Suggestion{Weights: Weights{CarbonPenaltyWeight: 2}, Reason: "test"}}

	got, err := m.SuggestWeights(context.Background(), "grid summary", "demand summary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Reason != "test" || got.Weights.CarbonPenaltyWeight != 2 {
		t.Fatalf("unexpected suggestion: %+v", got)
	}
}

func TestMockOracle_PropagatesErr(t *testing.T) {
	m := &MockOracle{Err: errors.New("unavailable")}
	if _, err := m.SuggestWeights(context.Background(), "", ""); err == nil {
		t.Fatal("expected error to propagate")
	}
}
