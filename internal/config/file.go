package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load builds the effective config: defaults, then the file at path (when
// path is non-empty), then environment overrides. Flags are applied by the
// caller afterwards.
func Load(path string) (Config, error) {
	if path == "" {
		return LoadConfig(), nil
	}
	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err != nil {
		return cfg, err
	}
	ApplyEnv(&cfg)
	return cfg, nil
}

// LoadFile decodes a YAML (.yaml, .yml) or TOML (.toml) file over cfg.
// Keys missing from the file keep their current values; unknown keys are an
// error so typos do not pass silently.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("parsing config file %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config extension %q (expected .yaml, .yml or .toml)", ext)
	}
	return nil
}

// EncodeTOML renders cfg as a TOML document.
func EncodeTOML(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// EncodeYAML renders cfg as a YAML document.
func EncodeYAML(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
