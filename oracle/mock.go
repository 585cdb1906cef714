// SPDX-License-Identifier: LGPL-3.0-or-later

package oracle

import "context"

// MockOracle is a deterministic stand-in for tests and local development:
// it returns a fixed Suggestion (or Err, if set) regardless of input,
// grounded on the same fixed-response mock pattern used for the grid
// provider's upstream clients.
type MockOracle struct {
	Suggestion Suggestion
	Err        error
}

func (m *MockOracle) SuggestWeights(ctx context.Context, grid GridSummary, demand DemandSummary) (Suggestion, error) {
	if m.Err != nil {
		return Suggestion{}, m.Err
	}
	return m.Suggestion, nil
}
