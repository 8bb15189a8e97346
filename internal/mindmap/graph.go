package mindmap

import (
	"fmt"

	"github.com/alexanderramin/studymap/internal/domain"
)

// Graph is a built mind map. Nodes are stored in pre-order starting at the
// root, so rendering a tree is a single pass.
type Graph struct {
	RootID       string
	Nodes        []*domain.GraphNode
	Dropped      []string // concept ids left out by fan-out or node limits
	FoldedTopics []int    // topic ids merged into another topic

	index map[string]*domain.GraphNode
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*domain.GraphNode, bool) {
	if g.index == nil {
		g.reindex()
	}
	n, ok := g.index[id]
	return n, ok
}

// Root returns the root node.
func (g *Graph) Root() *domain.GraphNode {
	n, _ := g.Node(g.RootID)
	return n
}

// ChildNodes returns the children of n in order.
func (g *Graph) ChildNodes(n *domain.GraphNode) []*domain.GraphNode {
	out := make([]*domain.GraphNode, 0, len(n.Children))
	for _, id := range n.Children {
		if c, ok := g.Node(id); ok {
			out = append(out, c)
		}
	}
	return out
}

// Depth returns the number of edges between the root and the node with id.
func (g *Graph) Depth(id string) int {
	depth := 0
	n, ok := g.Node(id)
	for ok && n.ParentID != nil {
		depth++
		n, ok = g.Node(*n.ParentID)
	}
	return depth
}

// ConceptCount returns the number of concept nodes.
func (g *Graph) ConceptCount() int {
	count := 0
	for _, n := range g.Nodes {
		if n.Kind == domain.NodeConcept {
			count++
		}
	}
	return count
}

// TopicNodes returns the topic nodes in display order.
func (g *Graph) TopicNodes() []*domain.GraphNode {
	var out []*domain.GraphNode
	for _, n := range g.Nodes {
		if n.Kind == domain.NodeTopic {
			out = append(out, n)
		}
	}
	return out
}

// Check verifies the structural invariants of g against limits: one root,
// one parent per node with matching child links, bounded fan-out, depth and
// node count.
func (g *Graph) Check(limits Limits) error {
	if len(g.Nodes) == 0 {
		return fmt.Errorf("graph has no nodes")
	}
	if len(g.Nodes) > limits.MaxNodes {
		return fmt.Errorf("graph has %d nodes, limit %d", len(g.Nodes), limits.MaxNodes)
	}
	roots := 0
	seen := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if seen[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
		if n.ParentID == nil {
			roots++
			continue
		}
		parent, ok := g.Node(*n.ParentID)
		if !ok {
			return fmt.Errorf("node %q has unknown parent %q", n.ID, *n.ParentID)
		}
		if !contains(parent.Children, n.ID) {
			return fmt.Errorf("node %q missing from children of %q", n.ID, parent.ID)
		}
	}
	if roots != 1 {
		return fmt.Errorf("graph has %d roots", roots)
	}
	for _, n := range g.Nodes {
		if len(n.Children) > limits.MaxChildren {
			return fmt.Errorf("node %q has %d children, limit %d", n.ID, len(n.Children), limits.MaxChildren)
		}
		if d := g.Depth(n.ID); d > limits.MaxDepth {
			return fmt.Errorf("node %q at depth %d, limit %d", n.ID, d, limits.MaxDepth)
		}
	}
	return nil
}

func (g *Graph) reindex() {
	g.index = make(map[string]*domain.GraphNode, len(g.Nodes))
	for _, n := range g.Nodes {
		g.index[n.ID] = n
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
