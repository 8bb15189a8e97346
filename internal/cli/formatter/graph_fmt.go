package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studymap/internal/contract"
	"github.com/alexanderramin/studymap/internal/domain"
)

// FormatGraph renders the mind map as an outline tree, followed by a note on
// anything that was folded or dropped to keep the map readable.
func FormatGraph(g contract.GraphView) string {
	byID := make(map[string]contract.GraphNodeView, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}
	root, ok := byID[g.RootID]
	if !ok {
		return Dim("Empty graph.") + "\n"
	}

	var items []TreeItem
	var walk func(n contract.GraphNodeView, level int, last bool)
	walk = func(n contract.GraphNodeView, level int, last bool) {
		item := TreeItem{Title: n.Label, Level: level, IsLast: last}
		switch domain.NodeKind(n.Kind) {
		case domain.NodeRoot:
			item.Title = Bold(n.Label)
		case domain.NodeTopic:
			item.Title = StylePurple.Render(n.Label)
			item.Detail = Plural(len(n.Children), "concept", "concepts")
		case domain.NodeConcept:
			item.Marker = PriorityColor(domain.Priority(n.Priority)).Render("●")
			item.Detail = domain.Priority(n.Priority).Tier()
		}
		items = append(items, item)
		for i, id := range n.Children {
			if child, ok := byID[id]; ok {
				walk(child, level+1, i == len(n.Children)-1)
			}
		}
	}
	walk(root, 0, true)

	var b strings.Builder
	b.WriteString(Header("Mind Map"))
	b.WriteString("\n\n")
	b.WriteString(RenderTree(items))

	if len(root.Children) == 0 {
		b.WriteString(Dim("No concepts to map.") + "\n")
	}
	if len(g.FoldedTopics) > 0 {
		b.WriteString("\n" + Dim(fmt.Sprintf("Folded %s into the last branch.",
			Plural(len(g.FoldedTopics), "small topic", "small topics"))) + "\n")
	}
	if len(g.Dropped) > 0 {
		b.WriteString("\n" + Dim(fmt.Sprintf("Left out %s to stay readable: %s",
			Plural(len(g.Dropped), "concept", "concepts"), strings.Join(g.Dropped, ", "))) + "\n")
	}
	return b.String()
}
