// Package mindmap turns classified concepts into a bounded single-root tree:
// root, one node per topic, and the topic's concepts beneath it.
package mindmap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/studymap/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// labelTerms is how many topic terms make up a topic label.
const labelTerms = 3

type topicGroup struct {
	id      int
	members []domain.Concept
}

// Build assembles the mind map for concepts. topics maps a topic id to its
// representative terms and is only used for labels; a topic missing from it
// is labeled "Topic N".
func Build(concepts []domain.Concept, topics map[int][]string, limits Limits) (*Graph, error) {
	if err := limits.Validate(); err != nil {
		return nil, fmt.Errorf("graph limits: %w", err)
	}
	if err := domain.CheckUniqueIDs("concepts", domain.ConceptIDs(concepts)); err != nil {
		return nil, err
	}

	g := &Graph{RootID: domain.RootNodeID}
	root := &domain.GraphNode{
		ID:    domain.RootNodeID,
		Kind:  domain.NodeRoot,
		Label: limits.rootLabel(),
	}
	g.Nodes = append(g.Nodes, root)
	if len(concepts) == 0 {
		g.reindex()
		return g, nil
	}

	if limits.MaxDepth == 1 {
		buildFlat(g, root, concepts, limits)
		g.reindex()
		return g, nil
	}

	groups := rankTopics(concepts)
	if len(groups) > limits.MaxChildren {
		kept := groups[:limits.MaxChildren]
		sink := &kept[len(kept)-1]
		for _, extra := range groups[limits.MaxChildren:] {
			sink.members = append(sink.members, extra.members...)
			g.FoldedTopics = append(g.FoldedTopics, extra.id)
		}
		groups = kept
	}

	for i := range groups {
		rankConcepts(groups[i].members)
		if len(groups[i].members) > limits.MaxChildren {
			for _, c := range groups[i].members[limits.MaxChildren:] {
				g.Dropped = append(g.Dropped, c.ID)
			}
			groups[i].members = groups[i].members[:limits.MaxChildren]
		}
	}

	groups = prune(groups, limits.MaxNodes, &g.Dropped)

	title := cases.Title(language.English)
	for _, grp := range groups {
		topicID := grp.id
		topicNode := &domain.GraphNode{
			ID:       domain.TopicNodeID(topicID),
			Kind:     domain.NodeTopic,
			TopicID:  &topicID,
			Label:    topicLabel(title, topicID, topics[topicID]),
			ParentID: &root.ID,
		}
		root.Children = append(root.Children, topicNode.ID)
		g.Nodes = append(g.Nodes, topicNode)
		for _, c := range grp.members {
			n := conceptNode(c, topicNode.ID)
			// Folded concepts take the topic they are displayed under.
			n.TopicID = &topicID
			topicNode.Children = append(topicNode.Children, n.ID)
			g.Nodes = append(g.Nodes, n)
		}
	}
	g.reindex()
	return g, nil
}

// buildFlat hangs concepts directly off the root for single-level maps.
func buildFlat(g *Graph, root *domain.GraphNode, concepts []domain.Concept, limits Limits) {
	ranked := append([]domain.Concept(nil), concepts...)
	rankConcepts(ranked)

	keep := min(limits.MaxChildren, limits.MaxNodes-1, len(ranked))
	for _, c := range ranked[:keep] {
		n := conceptNode(c, root.ID)
		topicID := c.TopicID
		n.TopicID = &topicID
		root.Children = append(root.Children, n.ID)
		g.Nodes = append(g.Nodes, n)
	}
	for _, c := range ranked[keep:] {
		g.Dropped = append(g.Dropped, c.ID)
	}
}

// rankTopics groups concepts by topic id (keeping input order inside each
// group) and orders the groups by size desc, then topic id asc.
func rankTopics(concepts []domain.Concept) []topicGroup {
	pos := make(map[int]int)
	var groups []topicGroup
	for _, c := range concepts {
		i, ok := pos[c.TopicID]
		if !ok {
			i = len(groups)
			pos[c.TopicID] = i
			groups = append(groups, topicGroup{id: c.TopicID})
		}
		groups[i].members = append(groups[i].members, c)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i].members) != len(groups[j].members) {
			return len(groups[i].members) > len(groups[j].members)
		}
		return groups[i].id < groups[j].id
	})
	return groups
}

// rankConcepts orders concepts by priority, then input order.
func rankConcepts(cs []domain.Concept) {
	sort.SliceStable(cs, func(i, j int) bool {
		if ri, rj := cs[i].Priority.Rank(), cs[j].Priority.Rank(); ri != rj {
			return ri < rj
		}
		if cs[i].Order != cs[j].Order {
			return cs[i].Order < cs[j].Order
		}
		return cs[i].ID < cs[j].ID
	})
}

// prune drops concepts until the node count fits maxNodes. Each group is
// already ranked, so its last member is its weakest; the victim is the
// weakest of those by priority, then rank index inside its topic, then topic
// rank. A topic that loses its last concept is removed with it.
func prune(groups []topicGroup, maxNodes int, dropped *[]string) []topicGroup {
	count := 1 + len(groups)
	for _, grp := range groups {
		count += len(grp.members)
	}

	for count > maxNodes && len(groups) > 0 {
		victim := -1
		for i := range groups {
			if victim < 0 || weaker(groups[i], i, groups[victim], victim) {
				victim = i
			}
		}
		grp := &groups[victim]
		last := grp.members[len(grp.members)-1]
		*dropped = append(*dropped, last.ID)
		grp.members = grp.members[:len(grp.members)-1]
		count--
		if len(grp.members) == 0 {
			groups = append(groups[:victim], groups[victim+1:]...)
			count--
		}
	}
	return groups
}

// weaker reports whether the tail concept of a (at topic rank ai) should be
// dropped before the tail concept of b.
func weaker(a topicGroup, ai int, b topicGroup, bi int) bool {
	ca := a.members[len(a.members)-1]
	cb := b.members[len(b.members)-1]
	if ra, rb := ca.Priority.Rank(), cb.Priority.Rank(); ra != rb {
		return ra > rb
	}
	if la, lb := len(a.members), len(b.members); la != lb {
		return la > lb
	}
	return ai > bi
}

func conceptNode(c domain.Concept, parentID string) *domain.GraphNode {
	parent := parentID
	return &domain.GraphNode{
		ID:        domain.ConceptNodeID(c.ID),
		Kind:      domain.NodeConcept,
		ConceptID: c.ID,
		Label:     c.Label,
		Priority:  c.Priority,
		ParentID:  &parent,
	}
}

func topicLabel(title cases.Caser, id int, terms []string) string {
	if len(terms) > labelTerms {
		terms = terms[:labelTerms]
	}
	parts := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			parts = append(parts, title.String(t))
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Topic %d", id+1)
	}
	return strings.Join(parts, " / ")
}
