package scheduler

import (
	"github.com/alexanderramin/studymap/internal/validation"
)

// EstimateOptions converts word counts into study time.
type EstimateOptions struct {
	ReadingSpeedWPM int     `yaml:"reading_wpm" toml:"reading_wpm" validate:"min=1"`
	StudyFactor     float64 `yaml:"study_factor" toml:"study_factor" validate:"gt=0"`
}

// DefaultEstimateOptions reads at 150 words per minute and studies at 1.6×
// reading time.
func DefaultEstimateOptions() EstimateOptions {
	return EstimateOptions{
		ReadingSpeedWPM: 150,
		StudyFactor:     1.6,
	}
}

func (o EstimateOptions) Validate() error {
	return validation.Struct(o)
}

// EstimateMinutes returns the study time for a chunk of words.
// Formula: max(1, trunc(words / wpm × factor))
func EstimateMinutes(words int, opts EstimateOptions) int {
	wpm := max(opts.ReadingSpeedWPM, 1)
	minutes := int(float64(words) / float64(wpm) * opts.StudyFactor)
	return max(minutes, 1)
}
