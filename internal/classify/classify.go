// Package classify assigns each chunk a priority tier and a short label.
//
// Example cues demote a chunk to Low. Definitional chunks, and the leading
// chunks of a topic with more than one chunk, become High. Everything else is
// Medium. Other labelers plug in through the
// Classifier interface.
package classify

import (
	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/alexanderramin/studymap/internal/validation"
)

// Options controls labeling and the core-idea heuristic.
type Options struct {
	LabelMaxWords int `yaml:"label_max_words" toml:"label_max_words" validate:"min=1"`
	LabelMaxChars int `yaml:"label_max_chars" toml:"label_max_chars" validate:"min=8"`
	// CoreLeadCount is how many leading chunks of each topic count as core.
	CoreLeadCount int `yaml:"core_lead_count" toml:"core_lead_count" validate:"min=0"`
}

// DefaultOptions returns the stock classifier settings.
func DefaultOptions() Options {
	return Options{
		LabelMaxWords: 6,
		LabelMaxChars: 48,
		CoreLeadCount: 1,
	}
}

// Validate reports invalid options as domain.ConfigError values.
func (o Options) Validate() error {
	return validation.Struct(o)
}

// Position locates a chunk inside its topic group, in input order.
type Position struct {
	Index     int
	GroupSize int
}

// Classification is the classifier output for one chunk.
type Classification struct {
	Label    string
	Priority domain.Priority
}

// Classifier turns one chunk into a label and priority.
type Classifier interface {
	Classify(chunk domain.Chunk, pos Position) Classification
}

// RuleClassifier is the cue-based Classifier.
type RuleClassifier struct {
	Options Options
}

// New returns a RuleClassifier using opts.
func New(opts Options) *RuleClassifier {
	return &RuleClassifier{Options: opts}
}

func (c *RuleClassifier) Classify(chunk domain.Chunk, pos Position) Classification {
	return Classify(chunk, pos, c.Options)
}

// Classify labels chunk and assigns its priority.
func Classify(chunk domain.Chunk, pos Position, opts Options) Classification {
	return Classification{
		Label:    Label(chunk.Text, opts.LabelMaxWords, opts.LabelMaxChars),
		Priority: Prioritize(chunk.Text, pos, opts.CoreLeadCount),
	}
}

// Prioritize applies the tier rules. An example cue wins over every core
// signal, so a leading chunk that only illustrates stays Low. A lone chunk
// leads nothing, so position only counts when its group has siblings.
func Prioritize(text string, pos Position, coreLead int) domain.Priority {
	switch {
	case IsExample(text):
		return domain.PriorityLow
	case pos.GroupSize > 1 && pos.Index < coreLead, IsDefinition(text):
		return domain.PriorityHigh
	default:
		return domain.PriorityMedium
	}
}
