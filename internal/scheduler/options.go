package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/alexanderramin/studymap/internal/validation"
)

// Options configures the day-by-day plan.
type Options struct {
	DailyBudgetMinutes int     `yaml:"daily_budget_minutes" toml:"daily_budget_minutes" validate:"gt=0"`
	BufferRatio        float64 `yaml:"buffer_ratio" toml:"buffer_ratio" validate:"gte=0,lt=1"`
	// StartDate dates the days when set; set from the command line only.
	StartDate *time.Time `yaml:"-" toml:"-"`
}

// DefaultOptions returns a one-hour day with 15% held back as buffer.
func DefaultOptions() Options {
	return Options{
		DailyBudgetMinutes: 60,
		BufferRatio:        0.15,
	}
}

// Validate reports invalid options, including a budget too small to leave
// any usable minute once the buffer is reserved.
func (o Options) Validate() error {
	if err := validation.Struct(o); err != nil {
		return err
	}
	if o.UsableMinutes() < 1 {
		return domain.NewConfigError("daily_budget_minutes",
			"leaves no usable time with buffer ratio %.2f, got %d", o.BufferRatio, o.DailyBudgetMinutes)
	}
	return nil
}

// UsableMinutes is floor(budget × (1 − ratio)). The epsilon absorbs float
// error so 60 × 0.8 is 48, not 47.
func (o Options) UsableMinutes() int {
	return int(math.Floor(float64(o.DailyBudgetMinutes)*(1-o.BufferRatio) + 1e-9))
}

// BufferMinutes is the part of each day held in reserve.
func (o Options) BufferMinutes() int {
	return o.DailyBudgetMinutes - o.UsableMinutes()
}
