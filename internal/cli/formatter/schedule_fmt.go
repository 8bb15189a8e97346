package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studymap/internal/contract"
)

// FormatSchedule renders the study plan as a day table. labels maps concept
// ids to display labels; unknown ids are shown as-is.
func FormatSchedule(s contract.ScheduleView, labels map[string]string) string {
	var b strings.Builder
	b.WriteString(Header("Study Plan"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		Dim("Daily budget:"), FormatMinutes(s.DailyBudgetMinutes),
		Dim("Usable:"), FormatMinutes(s.UsableMinutes),
		Dim("Buffer:"), FormatMinutes(s.BufferMinutes)))

	total := fmt.Sprintf("%s %s", Dim("Total study time:"), Bold(FormatMinutes(s.TotalMinutes)))
	if s.FitsInOneDay {
		total += "  " + StyleGreen.Render("✔ fits in one day")
	}
	b.WriteString(total + "\n\n")

	if len(s.Days) == 0 {
		b.WriteString(Dim("Nothing to schedule.") + "\n")
		return b.String()
	}

	headers := []string{"DAY", "DATE", "LOAD", "MINUTES", "CONCEPTS"}
	rows := make([][]string, 0, len(s.Days))
	for _, d := range s.Days {
		date := d.Date
		if date == "" {
			date = Dim("--")
		}
		names := make([]string, len(d.Items))
		for i, id := range d.Items {
			names[i] = id
			if l, ok := labels[id]; ok && l != "" {
				names[i] = l
			}
		}
		load := RenderProgress(float64(d.AllocatedMinutes)/float64(max(s.UsableMinutes, 1)), 10)
		minutes := FormatMinutes(d.AllocatedMinutes)
		if d.Oversized {
			minutes = StyleRed.Render(minutes + " (oversized)")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", d.DayIndex),
			date,
			load,
			minutes,
			strings.Join(names, ", "),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
