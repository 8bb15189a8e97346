package domain

import "time"

// ScheduleDay is one day of a study plan.
type ScheduleDay struct {
	DayIndex         int // 1-based
	Date             *time.Time
	Items            []string // concept ids in study order
	AllocatedMinutes int
	BufferMinutes    int
	// Oversized marks a day holding a single concept that is longer than the
	// usable window on its own.
	Oversized bool
}

// TotalMinutes is allocated work plus the reserved buffer.
func (d ScheduleDay) TotalMinutes() int {
	return d.AllocatedMinutes + d.BufferMinutes
}
