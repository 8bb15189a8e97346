// Package contract holds the serializable views of run results. Field names
// are the stable snake_case wire names used by the JSON and YAML outputs.
package contract

import (
	"github.com/alexanderramin/studymap/internal/mindmap"
)

type GraphNodeView struct {
	ID        string   `json:"id" yaml:"id"`
	Kind      string   `json:"kind" yaml:"kind"`
	Label     string   `json:"label" yaml:"label"`
	Priority  string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	TopicID   *int     `json:"topic_id,omitempty" yaml:"topic_id,omitempty"`
	ConceptID string   `json:"concept_id,omitempty" yaml:"concept_id,omitempty"`
	ParentID  *string  `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Children  []string `json:"children" yaml:"children"`
}

type GraphView struct {
	RootID       string          `json:"root_id" yaml:"root_id"`
	Nodes        []GraphNodeView `json:"nodes" yaml:"nodes"`
	Dropped      []string        `json:"dropped" yaml:"dropped"`
	FoldedTopics []int           `json:"folded_topics" yaml:"folded_topics"`
}

// NewGraphView flattens g into its wire form. Slices are never nil so JSON
// output always carries arrays.
func NewGraphView(g *mindmap.Graph) GraphView {
	v := GraphView{
		RootID:       g.RootID,
		Nodes:        make([]GraphNodeView, 0, len(g.Nodes)),
		Dropped:      append([]string{}, g.Dropped...),
		FoldedTopics: append([]int{}, g.FoldedTopics...),
	}
	for _, n := range g.Nodes {
		v.Nodes = append(v.Nodes, GraphNodeView{
			ID:        n.ID,
			Kind:      string(n.Kind),
			Label:     n.Label,
			Priority:  string(n.Priority),
			TopicID:   n.TopicID,
			ConceptID: n.ConceptID,
			ParentID:  n.ParentID,
			Children:  append([]string{}, n.Children...),
		})
	}
	return v
}
