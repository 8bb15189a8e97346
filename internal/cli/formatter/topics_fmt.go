package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studymap/internal/contract"
	"github.com/alexanderramin/studymap/internal/domain"
)

// FormatTopics renders one row per topic with its terms and chunk count.
func FormatTopics(topics []contract.TopicView) string {
	var b strings.Builder
	b.WriteString(Header("Topics"))
	b.WriteString("\n\n")

	if len(topics) == 0 {
		b.WriteString(Dim("No topics.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(topics))
	for _, t := range topics {
		terms := Dim("--")
		if len(t.Terms) > 0 {
			terms = strings.Join(t.Terms, ", ")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.TopicID+1),
			fmt.Sprintf("%d", len(t.ChunkIDs)),
			terms,
		})
	}
	b.WriteString(RenderTable([]string{"TOPIC", "CHUNKS", "TERMS"}, rows))
	return b.String()
}

// FormatConcepts renders the classified concepts in input order.
func FormatConcepts(concepts []contract.ConceptView) string {
	var b strings.Builder
	b.WriteString(Header("Concepts"))
	b.WriteString("\n\n")

	if len(concepts) == 0 {
		b.WriteString(Dim("No concepts.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(concepts))
	for _, c := range concepts {
		rows = append(rows, []string{
			Dim(c.ID),
			c.Label,
			PriorityIndicator(domain.Priority(c.Priority)),
			fmt.Sprintf("%d", c.TopicID+1),
			FormatMinutes(c.EstimatedMinutes),
		})
	}
	b.WriteString(RenderTable([]string{"ID", "LABEL", "TIER", "TOPIC", "TIME"}, rows))
	return b.String()
}
