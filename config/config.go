// ABOUTME: Configuration loader for the equipment planner
// ABOUTME: Loads settings from environment variables with defaults

package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	CatalogPath string // optional catalog YAML path (empty = built-in catalog)

	// Solver
	SolverMaxNodes int     // branch-and-bound node limit (default: 10000)
	SolverTol      float64 // integrality tolerance (default: 1e-6)

	// Plan cache
	CacheEnabled    bool // reuse solved plans within one process (default: true)
	CacheTTLSeconds int  // seconds, default 300
}

func Load() (*Config, error) {
	cfg := &Config{
		CatalogPath: os.Getenv("SARPLAN_CATALOG"),

		SolverMaxNodes: getEnvInt("SARPLAN_SOLVER_MAX_NODES", 10000),
		SolverTol:      getEnvFloat("SARPLAN_SOLVER_TOL", 1e-6),

		CacheEnabled:    getEnvBool("SARPLAN_CACHE_ENABLED", true),
		CacheTTLSeconds: getEnvInt("SARPLAN_CACHE_TTL_SECONDS", 300),
	}

	if cfg.SolverMaxNodes < 1 || cfg.SolverMaxNodes > 1000000 {
		return nil, fmt.Errorf("SARPLAN_SOLVER_MAX_NODES must be between 1 and 1000000, got %d", cfg.SolverMaxNodes)
	}
	if cfg.SolverTol <= 0 || cfg.SolverTol >= 0.5 {
		return nil, fmt.Errorf("SARPLAN_SOLVER_TOL must be between 0 and 0.5 exclusive, got %g", cfg.SolverTol)
	}
	if cfg.CacheTTLSeconds < 1 || cfg.CacheTTLSeconds > 86400 {
		return nil, fmt.Errorf("SARPLAN_CACHE_TTL_SECONDS must be between 1 and 86400, got %d", cfg.CacheTTLSeconds)
	}

	return cfg, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
