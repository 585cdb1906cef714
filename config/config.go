// SPDX-License-Identifier: LGPL-3.0-or-later

// Package config loads the Coordination/Compute/Grid planning core's
// environment-driven configuration.
package config

import "os"

// Config holds every environment-configurable setting the planning core
// reads at startup.
type Config struct {
	CoordinationAgentURL string
	ComputeAgentURL      string
	GridAgentURL         string

	// GridAPIKey authenticates the imbalance-price upstream, if required.
	GridAPIKey string

	// BootstrapJobsPath optionally preloads the Compute ledger and is
	// watched for live reload; empty disables both.
	BootstrapJobsPath string

	// AutoPlanCron, if set, enables the Coordination agent's periodic
	// auto-planning loop (standard 5-field cron expression). Empty
	// disables it — no behavior change to the documented RPC contract.
	AutoPlanCron string

	LogLevel  string
	LogFormat string

	// MetricsAddr is the address read from CACO_METRICS_ADDR for serving
	// /metrics. No code in this module starts a metrics server from it.
	MetricsAddr string
}

// FromEnvironment builds a Config from environment variables, falling
// back to sensible defaults for local, single-process operation.
func FromEnvironment() *Config {
	return &Config{
		CoordinationAgentURL: getEnv("COORDINATION_AGENT_URL", "http://localhost:9001"),
		ComputeAgentURL:      getEnv("COMPUTE_AGENT_URL", "http://localhost:9002"),
		GridAgentURL:         getEnv("GRID_AGENT_URL", "http://localhost:9003"),
		GridAPIKey:           os.Getenv("CACO_GRID_API_KEY"),
		BootstrapJobsPath:    os.Getenv("CACO_BOOTSTRAP_JOBS_PATH"),
		AutoPlanCron:         os.Getenv("CACO_AUTO_PLAN_CRON"),
		LogLevel:             getEnv("CACO_LOG_LEVEL", "info"),
		LogFormat:            getEnv("CACO_LOG_FORMAT", "text"),
		MetricsAddr:          os.Getenv("CACO_METRICS_ADDR"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
