package config

import (
	"os"
	"strconv"
	"strings"
)

// LoadConfig reads configuration from environment variables, falling back to
// defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// ApplyEnv overrides cfg from STUDYMAP_* variables. Values that do not parse
// are ignored, leaving the previous setting in place.
func ApplyEnv(cfg *Config) {
	envInt("STUDYMAP_K_MAX", &cfg.Cluster.KMax)
	if v, ok := lookupInt("STUDYMAP_MAX_CHILDREN"); ok {
		cfg.Graph.MaxChildren = &v
	}
	envInt("STUDYMAP_MAX_DEPTH", &cfg.Graph.MaxDepth)
	envInt("STUDYMAP_MAX_NODES", &cfg.Graph.MaxNodes)
	if v := os.Getenv("STUDYMAP_COMPLEXITY"); v != "" {
		cfg.Graph.Complexity = strings.ToLower(strings.TrimSpace(v))
		if _, ok := lookupInt("STUDYMAP_MAX_CHILDREN"); !ok {
			cfg.Graph.MaxChildren = nil
		}
	}
	envInt("STUDYMAP_DAILY_BUDGET_MIN", &cfg.Schedule.DailyBudgetMinutes)
	if v := os.Getenv("STUDYMAP_BUFFER_RATIO"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Schedule.BufferRatio = f
		}
	}
	envInt("STUDYMAP_READING_WPM", &cfg.Estimate.ReadingSpeedWPM)
	envInt("STUDYMAP_WORKERS", &cfg.Workers)
	if v := os.Getenv("STUDYMAP_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Quiz.Seed = n
		}
	}
	if v := os.Getenv("STUDYMAP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
}

func envInt(name string, dst *int) {
	if n, ok := lookupInt(name); ok {
		*dst = n
	}
}

func lookupInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}
