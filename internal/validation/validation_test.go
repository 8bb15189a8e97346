package validation

import (
	"errors"
	"testing"

	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type limits struct {
	MaxChildren int     `yaml:"max_children" validate:"min=1"`
	Ratio       float64 `yaml:"ratio" validate:"gte=0,lt=1"`
	Mode        string  `yaml:"mode" validate:"omitempty,oneof=low medium high"`
}

type wrapper struct {
	Graph limits `yaml:"graph"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(limits{MaxChildren: 3, Ratio: 0.2}))
	assert.NoError(t, Struct(limits{MaxChildren: 1, Ratio: 0, Mode: "low"}))
}

func TestStruct_CollectsEveryViolation(t *testing.T) {
	err := Struct(limits{MaxChildren: 0, Ratio: 1, Mode: "extreme"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))

	msg := err.Error()
	assert.Contains(t, msg, "max_children: must be at least 1, got 0")
	assert.Contains(t, msg, "ratio: must be less than 1, got 1")
	assert.Contains(t, msg, `mode: must be one of [low medium high], got "extreme"`)
}

func TestStruct_NestedFieldPath(t *testing.T) {
	err := Struct(wrapper{Graph: limits{MaxChildren: -2}})
	require.Error(t, err)

	var cfgErr *domain.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "graph.max_children", cfgErr.Field)
}
