package contract

import (
	"github.com/alexanderramin/studymap/internal/scheduler"
)

const dateLayout = "2006-01-02"

type ScheduleDayView struct {
	DayIndex         int      `json:"day_index" yaml:"day_index"`
	Date             string   `json:"date,omitempty" yaml:"date,omitempty"`
	Items            []string `json:"items" yaml:"items"`
	AllocatedMinutes int      `json:"allocated_minutes" yaml:"allocated_minutes"`
	BufferMinutes    int      `json:"buffer_minutes" yaml:"buffer_minutes"`
	Oversized        bool     `json:"oversized" yaml:"oversized"`
}

type ScheduleView struct {
	DailyBudgetMinutes int               `json:"daily_budget_minutes" yaml:"daily_budget_minutes"`
	UsableMinutes      int               `json:"usable_minutes" yaml:"usable_minutes"`
	BufferMinutes      int               `json:"buffer_minutes" yaml:"buffer_minutes"`
	TotalMinutes       int               `json:"total_minutes" yaml:"total_minutes"`
	FitsInOneDay       bool              `json:"fits_in_one_day" yaml:"fits_in_one_day"`
	Days               []ScheduleDayView `json:"days" yaml:"days"`
}

func NewScheduleView(s *scheduler.Schedule) ScheduleView {
	v := ScheduleView{
		DailyBudgetMinutes: s.DailyBudgetMinutes,
		UsableMinutes:      s.UsableMinutes,
		BufferMinutes:      s.BufferMinutes,
		TotalMinutes:       s.TotalMinutes,
		FitsInOneDay:       s.FitsInOneDay,
		Days:               make([]ScheduleDayView, 0, len(s.Days)),
	}
	for _, d := range s.Days {
		dv := ScheduleDayView{
			DayIndex:         d.DayIndex,
			Items:            append([]string{}, d.Items...),
			AllocatedMinutes: d.AllocatedMinutes,
			BufferMinutes:    d.BufferMinutes,
			Oversized:        d.Oversized,
		}
		if d.Date != nil {
			dv.Date = d.Date.Format(dateLayout)
		}
		v.Days = append(v.Days, dv)
	}
	return v
}
