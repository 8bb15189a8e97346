// Package config assembles the run configuration from defaults, an optional
// YAML or TOML file, STUDYMAP_* environment variables and command-line flags,
// in that order of precedence.
package config

import (
	"errors"
	"log/slog"

	"github.com/alexanderramin/studymap/internal/classify"
	"github.com/alexanderramin/studymap/internal/cluster"
	"github.com/alexanderramin/studymap/internal/mindmap"
	"github.com/alexanderramin/studymap/internal/pipeline"
	"github.com/alexanderramin/studymap/internal/quiz"
	"github.com/alexanderramin/studymap/internal/scheduler"
	"github.com/alexanderramin/studymap/internal/validation"
)

// Config holds all configuration for a studymap run.
type Config struct {
	Cluster  cluster.Options           `yaml:"cluster" toml:"cluster"`
	Classify classify.Options          `yaml:"classify" toml:"classify"`
	Graph    GraphConfig               `yaml:"graph" toml:"graph"`
	Schedule scheduler.Options         `yaml:"schedule" toml:"schedule"`
	Estimate scheduler.EstimateOptions `yaml:"estimate" toml:"estimate"`
	Quiz     quiz.Options              `yaml:"quiz" toml:"quiz"`
	Workers  int                       `yaml:"workers" toml:"workers" validate:"min=1"`
	LogLevel string                    `yaml:"log_level" toml:"log_level" validate:"oneof=debug info warn error"`
}

// GraphConfig is the file form of mindmap.Limits. MaxChildren stays nil
// unless set explicitly so a Complexity preset can supply it.
type GraphConfig struct {
	MaxChildren *int   `yaml:"max_children,omitempty" toml:"max_children,omitempty" validate:"omitempty,min=1"`
	MaxDepth    int    `yaml:"max_depth" toml:"max_depth" validate:"min=1"`
	MaxNodes    int    `yaml:"max_nodes" toml:"max_nodes" validate:"min=1"`
	RootLabel   string `yaml:"root_label" toml:"root_label"`
	Complexity  string `yaml:"complexity,omitempty" toml:"complexity,omitempty" validate:"omitempty,oneof=low medium high"`
}

// Limits resolves the effective graph limits. An explicit MaxChildren wins,
// then the Complexity preset, then the default.
func (g GraphConfig) Limits() mindmap.Limits {
	limits := mindmap.Limits{
		MaxChildren: mindmap.DefaultLimits().MaxChildren,
		MaxDepth:    g.MaxDepth,
		MaxNodes:    g.MaxNodes,
		RootLabel:   g.RootLabel,
	}
	switch {
	case g.MaxChildren != nil:
		limits.MaxChildren = *g.MaxChildren
	case g.Complexity != "":
		if c, err := mindmap.ParseComplexity(g.Complexity); err == nil {
			limits.MaxChildren = c.MaxChildren()
		}
	}
	return limits
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	limits := mindmap.DefaultLimits()
	return Config{
		Cluster:  cluster.DefaultOptions(),
		Classify: classify.DefaultOptions(),
		Graph: GraphConfig{
			MaxDepth:  limits.MaxDepth,
			MaxNodes:  limits.MaxNodes,
			RootLabel: limits.RootLabel,
		},
		Schedule: scheduler.DefaultOptions(),
		Estimate: scheduler.DefaultEstimateOptions(),
		Quiz:     quiz.DefaultOptions(),
		Workers:  pipeline.DefaultWorkers,
		LogLevel: "info",
	}
}

// Validate checks every section and returns all violations joined.
func (c Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	// Cross-field rules the tags cannot express.
	return errors.Join(
		c.Graph.Limits().Validate(),
		c.Schedule.Validate(),
	)
}

// Pipeline converts the config into pipeline options.
func (c Config) Pipeline() pipeline.Options {
	return pipeline.Options{
		Cluster:  c.Cluster,
		Classify: c.Classify,
		Limits:   c.Graph.Limits(),
		Schedule: c.Schedule,
		Estimate: c.Estimate,
		Quiz:     c.Quiz,
		Workers:  c.Workers,
	}
}

// SlogLevel maps LogLevel onto a slog level, defaulting to Info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
