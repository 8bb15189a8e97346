package mindmap

import (
	"strings"

	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/alexanderramin/studymap/internal/validation"
)

// DefaultRootLabel is used when Limits.RootLabel is blank.
const DefaultRootLabel = "Study Map"

// Limits bound the shape of a built graph.
type Limits struct {
	MaxChildren int    `yaml:"max_children" toml:"max_children" validate:"min=1"`
	MaxDepth    int    `yaml:"max_depth" toml:"max_depth" validate:"min=1"`
	MaxNodes    int    `yaml:"max_nodes" toml:"max_nodes" validate:"min=1"`
	RootLabel   string `yaml:"root_label" toml:"root_label"`
}

// DefaultLimits returns the stock readable-map limits.
func DefaultLimits() Limits {
	return Limits{
		MaxChildren: 6,
		MaxDepth:    2,
		MaxNodes:    40,
		RootLabel:   DefaultRootLabel,
	}
}

// Validate reports invalid limits as domain.ConfigError values.
func (l Limits) Validate() error {
	return validation.Struct(l)
}

func (l Limits) rootLabel() string {
	return domain.CoalesceStr(strings.TrimSpace(l.RootLabel), DefaultRootLabel)
}

// Complexity names a MaxChildren preset.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

var complexityChildren = map[Complexity]int{
	ComplexityLow:    3,
	ComplexityMedium: 5,
	ComplexityHigh:   8,
}

// ParseComplexity accepts any casing of low, medium or high.
func ParseComplexity(s string) (Complexity, error) {
	c := Complexity(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := complexityChildren[c]; !ok {
		return "", domain.NewConfigError("complexity", "must be one of [low medium high], got %q", s)
	}
	return c, nil
}

// MaxChildren returns the fan-out preset for c.
func (c Complexity) MaxChildren() int {
	return complexityChildren[c]
}
