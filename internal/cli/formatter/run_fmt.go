package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studymap/internal/contract"
	"github.com/alexanderramin/studymap/internal/domain"
)

// FormatRun renders every section of a run: summary, topics, mind map,
// plan and quiz.
func FormatRun(r contract.RunView) string {
	title := domain.CoalesceStr(r.Title, graphRootLabel(r.Graph), "Study Map")

	summary := fmt.Sprintf("%s   %s   %s\n%s",
		Plural(len(r.Concepts), "concept", "concepts"),
		Plural(len(r.Topics), "topic", "topics"),
		Plural(len(r.Schedule.Days), "study day", "study days"),
		Dim("run "+r.RunID))
	if r.Source != "" {
		summary += "\n" + Dim(r.Source)
	}

	labels := make(map[string]string, len(r.Concepts))
	for _, c := range r.Concepts {
		labels[c.ID] = c.Label
	}

	sections := []string{
		RenderBox(title, summary),
		FormatTopics(r.Topics),
		FormatGraph(r.Graph),
		FormatSchedule(r.Schedule, labels),
		FormatQuiz(r.Quiz, false),
	}
	return strings.Join(sections, "\n") + "\n"
}

func graphRootLabel(g contract.GraphView) string {
	for _, n := range g.Nodes {
		if n.ID == g.RootID {
			return n.Label
		}
	}
	return ""
}
