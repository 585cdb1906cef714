// SPDX-License-Identifier: LGPL-3.0-or-later

package grid

import (
	"context"
	"time"

	"caco/domain"
)

// MockCarbonSource returns a fixed carbon series for deterministic tests,
// falling back to the synthetic series when no fixed series is configured.
type MockCarbonSource struct {
	Series []domain.CarbonPoint
	Err    error
}

// FetchCarbon implements CarbonSource.
func (m *MockCarbonSource) FetchCarbon(_ context.Context, from time.Time, _ string) ([]domain.CarbonPoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Series != nil {
		return m.Series, nil
	}
	return fallbackCarbonSeries(from), nil
}

// MockPriceSource returns a fixed price series for deterministic tests,
// falling back to the synthetic series when no fixed series is configured.
type MockPriceSource struct {
	Series []domain.PricePoint
	Err    error
}

// FetchPrice implements PriceSource.
func (m *MockPriceSource) FetchPrice(_ context.Context, from, to time.Time) ([]domain.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Series != nil {
		return m.Series, nil
	}
	return fallbackPriceSeries(from, to), nil
}
