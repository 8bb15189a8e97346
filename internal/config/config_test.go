package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 6, cfg.Cluster.KMax)
	assert.Equal(t, 6, cfg.Graph.Limits().MaxChildren)
	assert.Equal(t, 2, cfg.Graph.Limits().MaxDepth)
	assert.Equal(t, 40, cfg.Graph.Limits().MaxNodes)
	assert.Equal(t, 60, cfg.Schedule.DailyBudgetMinutes)
	assert.InDelta(t, 0.15, cfg.Schedule.BufferRatio, 1e-9)
	assert.Equal(t, 150, cfg.Estimate.ReadingSpeedWPM)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestGraphLimits_ComplexityPreset(t *testing.T) {
	g := DefaultConfig().Graph
	g.Complexity = "low"
	assert.Equal(t, 3, g.Limits().MaxChildren)

	g.Complexity = "high"
	assert.Equal(t, 8, g.Limits().MaxChildren)

	explicit := 4
	g.MaxChildren = &explicit
	assert.Equal(t, 4, g.Limits().MaxChildren, "explicit max_children beats the preset")
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeConfig(t, "studymap.yaml", `
cluster:
  k_max: 4
graph:
  complexity: medium
  max_nodes: 25
schedule:
  daily_budget_minutes: 90
workers: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Cluster.KMax)
	assert.Equal(t, 5, cfg.Graph.Limits().MaxChildren)
	assert.Equal(t, 25, cfg.Graph.MaxNodes)
	assert.Equal(t, 2, cfg.Graph.MaxDepth, "unset keys keep defaults")
	assert.Equal(t, 90, cfg.Schedule.DailyBudgetMinutes)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeConfig(t, "studymap.toml", `
log_level = "debug"

[graph]
max_children = 3

[schedule]
buffer_ratio = 0.25

[quiz]
seed = 9
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Graph.Limits().MaxChildren)
	assert.InDelta(t, 0.25, cfg.Schedule.BufferRatio, 1e-9)
	assert.Equal(t, int64(9), cfg.Quiz.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadFile_EmptyYAMLKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := Load(writeConfig(t, "studymap.ini", "k=1"))
	assert.ErrorContains(t, err, "unsupported config extension")

	_, err = Load(writeConfig(t, "typo.yaml", "graph:\n  max_kids: 3\n"))
	assert.ErrorContains(t, err, "parsing config file")

	_, err = Load(writeConfig(t, "typo.toml", "[graph]\nmax_kids = 3\n"))
	assert.ErrorContains(t, err, "parsing config file")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STUDYMAP_K_MAX", "3")
	t.Setenv("STUDYMAP_MAX_CHILDREN", "7")
	t.Setenv("STUDYMAP_COMPLEXITY", "LOW")
	t.Setenv("STUDYMAP_DAILY_BUDGET_MIN", "45")
	t.Setenv("STUDYMAP_BUFFER_RATIO", "0.1")
	t.Setenv("STUDYMAP_READING_WPM", "200")
	t.Setenv("STUDYMAP_WORKERS", "8")
	t.Setenv("STUDYMAP_SEED", "123")

	cfg := LoadConfig()

	assert.Equal(t, 3, cfg.Cluster.KMax)
	assert.Equal(t, 7, cfg.Graph.Limits().MaxChildren)
	assert.Equal(t, "low", cfg.Graph.Complexity)
	assert.Equal(t, 45, cfg.Schedule.DailyBudgetMinutes)
	assert.InDelta(t, 0.1, cfg.Schedule.BufferRatio, 1e-9)
	assert.Equal(t, 200, cfg.Estimate.ReadingSpeedWPM)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, int64(123), cfg.Quiz.Seed)
}

func TestLoadConfig_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("STUDYMAP_K_MAX", "many")
	t.Setenv("STUDYMAP_BUFFER_RATIO", "a lot")

	cfg := LoadConfig()

	assert.Equal(t, 6, cfg.Cluster.KMax)
	assert.InDelta(t, 0.15, cfg.Schedule.BufferRatio, 1e-9)
}

func TestLoad_NoPathUsesEnvOnly(t *testing.T) {
	t.Setenv("STUDYMAP_K_MAX", "5")
	t.Setenv("STUDYMAP_WORKERS", "3")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, LoadConfig(), cfg)
	assert.Equal(t, 5, cfg.Cluster.KMax)
	assert.Equal(t, 3, cfg.Workers)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := writeConfig(t, "studymap.yaml", "cluster:\n  k_max: 4\n")
	t.Setenv("STUDYMAP_K_MAX", "2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Cluster.KMax)
}

func TestOverrides_OnlyChangedFlagsApply(t *testing.T) {
	t.Setenv("STUDYMAP_K_MAX", "2")
	cfg := LoadConfig()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--budget", "30", "--max-children=2", "--start", "2025-05-01"}))
	require.NoError(t, o.Apply(&cfg))

	assert.Equal(t, 2, cfg.Cluster.KMax, "unchanged flag keeps env value")
	assert.Equal(t, 30, cfg.Schedule.DailyBudgetMinutes)
	assert.Equal(t, 2, cfg.Graph.Limits().MaxChildren)
	require.NotNil(t, cfg.Schedule.StartDate)
	assert.Equal(t, "2025-05-01", cfg.Schedule.StartDate.Format("2006-01-02"))
}

func TestOverrides_ComplexityFlagBeatsFileMaxChildren(t *testing.T) {
	path := writeConfig(t, "studymap.yaml", "graph:\n  max_children: 7\n")

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"no flags keeps file value", nil, 7},
		{"complexity flag picks preset", []string{"--complexity", "low"}, 3},
		{"explicit flag beats preset", []string{"--complexity", "low", "--max-children", "5"}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(path)
			require.NoError(t, err)

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			o := BindFlags(fs)
			require.NoError(t, fs.Parse(tc.args))
			require.NoError(t, o.Apply(&cfg))

			assert.Equal(t, tc.want, cfg.Graph.Limits().MaxChildren)
		})
	}
}

func TestLoad_ComplexityEnvBeatsFileMaxChildren(t *testing.T) {
	path := writeConfig(t, "studymap.yaml", "graph:\n  max_children: 7\n")
	t.Setenv("STUDYMAP_COMPLEXITY", "high")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.Graph.MaxChildren)
	assert.Equal(t, 8, cfg.Graph.Limits().MaxChildren)
}

func TestOverrides_BadStartDate(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	o := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--start", "tomorrow"}))

	cfg := DefaultConfig()
	assert.ErrorContains(t, o.Apply(&cfg), "invalid --start")
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cluster.KMax = 20
	cfg.Workers = 0
	cfg.Graph.Complexity = "extreme"

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "cluster.k_max")
	assert.Contains(t, err.Error(), "workers")
	assert.Contains(t, err.Error(), "graph.complexity")
}

func TestValidate_UsableMinutesRule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Schedule.DailyBudgetMinutes = 1
	cfg.Schedule.BufferRatio = 0.9

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable time")
}

func TestEncode_RoundTripsThroughTOML(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cluster.KMax = 5

	data, err := EncodeTOML(cfg)
	require.NoError(t, err)
	path := writeConfig(t, "out.toml", string(data))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPipelineOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Graph.Complexity = "low"

	opts := cfg.Pipeline()

	assert.Equal(t, 3, opts.Limits.MaxChildren)
	assert.Equal(t, cfg.Workers, opts.Workers)
	assert.Equal(t, cfg.Quiz, opts.Quiz)
}
