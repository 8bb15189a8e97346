package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every ConfigError so callers can match
// misconfiguration with errors.Is regardless of which component raised it.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError reports a single invalid option.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// NewConfigError builds a ConfigError with a formatted reason.
func NewConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// CheckUniqueIDs reports the first id in ids that repeats an earlier one.
// field names the collection, e.g. "concepts".
func CheckUniqueIDs(field string, ids []string) error {
	seen := make(map[string]int, len(ids))
	for i, id := range ids {
		if first, dup := seen[id]; dup {
			return NewConfigError(fmt.Sprintf("%s[%d].id", field, i), "duplicate id %q, first used at %s[%d]", id, field, first)
		}
		seen[id] = i
	}
	return nil
}
