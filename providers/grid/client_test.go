// SPDX-License-Identifier: LGPL-3.0-or-later

package grid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"caco/logger"
)

func TestCarbonIntensityClient_NonOKStatusFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCarbonIntensityClient(server.URL, logger.NewTestLogger(t))
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	points, err := client.FetchCarbon(context.Background(), from, "GB")
	if err != nil {
		t.Fatalf("expected fallback, not error, got: %v", err)
	}
	if len(points) != fallbackCarbonPeriods {
		t.Fatalf("expected fallback series of %d points, got %d", fallbackCarbonPeriods, len(points))
	}
}

func TestCarbonIntensityClient_MalformedBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewCarbonIntensityClient(server.URL, logger.NewTestLogger(t))
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	points, err := client.FetchCarbon(context.Background(), from, "GB")
	if err != nil {
		t.Fatalf("expected fallback, not error, got: %v", err)
	}
	if len(points) != fallbackCarbonPeriods {
		t.Fatalf("expected fallback series of %d points, got %d", fallbackCarbonPeriods, len(points))
	}
}

func TestCarbonIntensityClient_AlternateFieldSpellingParsesTolerantly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":[{"timestamp":"2024-01-01T00:00:00Z","forecast_g_per_kwh":123.4,"index":"moderate"}]}`))
	}))
	defer server.Close()

	client := NewCarbonIntensityClient(server.URL, logger.NewTestLogger(t))
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	points, err := client.FetchCarbon(context.Background(), from, "GB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	if points[0].ForecastGPerKWh != 123.4 {
		t.Errorf("expected forecast 123.4 from alternate field spelling, got %v", points[0].ForecastGPerKWh)
	}
	if points[0].Index != "moderate" {
		t.Errorf("expected index moderate, got %s", points[0].Index)
	}
}

func TestImbalancePriceClient_NonOKStatusFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewImbalancePriceClient(server.URL, "key", logger.NewTestLogger(t))
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	points, err := client.FetchPrice(context.Background(), from, to)
	if err != nil {
		t.Fatalf("expected fallback, not error, got: %v", err)
	}
	if len(points) == 0 {
		t.Fatal("expected non-empty fallback series")
	}
}

func TestImbalancePriceClient_MalformedBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := NewImbalancePriceClient(server.URL, "", logger.NewTestLogger(t))
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	points, err := client.FetchPrice(context.Background(), from, to)
	if err != nil {
		t.Fatalf("expected fallback, not error, got: %v", err)
	}
	if len(points) == 0 {
		t.Fatal("expected non-empty fallback series")
	}
}

func TestImbalancePriceClient_AlternateFieldSpellingParsesTolerantly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"response":{"data":[{"startTime":"2024-01-01T00:00:00Z","buyPrice":95.5,"sellPrice":65.5}]}}`))
	}))
	defer server.Close()

	client := NewImbalancePriceClient(server.URL, "", logger.NewTestLogger(t))
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	points, err := client.FetchPrice(context.Background(), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(points))
	}
	if points[0].SystemBuyPriceGBPPerMWh != 95.5 {
		t.Errorf("expected buy price 95.5 from nested response.data/buyPrice spelling, got %v", points[0].SystemBuyPriceGBPPerMWh)
	}
	if points[0].SystemSellPriceGBPPerMWh != 65.5 {
		t.Errorf("expected sell price 65.5 from nested response.data/sellPrice spelling, got %v", points[0].SystemSellPriceGBPPerMWh)
	}
}
