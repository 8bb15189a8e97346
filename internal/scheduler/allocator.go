// Package scheduler packs concepts into time-boxed study days.
package scheduler

import (
	"fmt"
	"time"

	"github.com/alexanderramin/studymap/internal/domain"
)

// Schedule is a complete study plan.
type Schedule struct {
	Days               []domain.ScheduleDay
	DailyBudgetMinutes int
	UsableMinutes      int
	BufferMinutes      int
	TotalMinutes       int // sum of every concept's estimate
	FitsInOneDay       bool
}

// DayCount returns the number of planned days.
func (s *Schedule) DayCount() int {
	return len(s.Days)
}

// Plan sorts concepts into study order and packs them greedily into days of
// opts.UsableMinutes. A concept is appended to the open day while it fits;
// otherwise the day closes and a new one starts with that concept. A concept
// longer than a whole usable window gets a day to itself, marked Oversized.
func Plan(concepts []domain.Concept, opts Options) (*Schedule, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("schedule options: %w", err)
	}
	for i, c := range concepts {
		if c.EstimatedMinutes < 0 {
			return nil, domain.NewConfigError(fmt.Sprintf("concepts[%d].estimated_minutes", i),
				"must be at least 0, got %d", c.EstimatedMinutes)
		}
	}
	if err := domain.CheckUniqueIDs("concepts", domain.ConceptIDs(concepts)); err != nil {
		return nil, err
	}

	usable := opts.UsableMinutes()
	buffer := opts.BufferMinutes()
	sched := &Schedule{
		DailyBudgetMinutes: opts.DailyBudgetMinutes,
		UsableMinutes:      usable,
		BufferMinutes:      buffer,
	}

	var open *domain.ScheduleDay
	closeDay := func() {
		if open != nil {
			sched.Days = append(sched.Days, *open)
			open = nil
		}
	}
	newDay := func() *domain.ScheduleDay {
		return &domain.ScheduleDay{
			DayIndex:      len(sched.Days) + 1,
			Date:          dayDate(opts.StartDate, len(sched.Days)),
			BufferMinutes: buffer,
		}
	}

	for _, c := range SortConcepts(concepts) {
		minutes := c.EstimatedMinutes
		sched.TotalMinutes += minutes

		if minutes > usable {
			closeDay()
			day := newDay()
			day.Items = []string{c.ID}
			day.AllocatedMinutes = minutes
			day.Oversized = true
			sched.Days = append(sched.Days, *day)
			continue
		}

		if open != nil && open.AllocatedMinutes+minutes > usable {
			closeDay()
		}
		if open == nil {
			open = newDay()
		}
		open.Items = append(open.Items, c.ID)
		open.AllocatedMinutes += minutes
	}
	closeDay()

	sched.FitsInOneDay = sched.TotalMinutes <= usable
	return sched, nil
}

func dayDate(start *time.Time, offset int) *time.Time {
	if start == nil {
		return nil
	}
	d := start.AddDate(0, 0, offset)
	return &d
}
