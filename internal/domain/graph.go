package domain

import "fmt"

// RootNodeID is the id of the single root of every graph.
const RootNodeID = "root"

// GraphNode is one vertex of a mind map tree.
type GraphNode struct {
	ID        string
	Kind      NodeKind
	ConceptID string // concept nodes only
	TopicID   *int   // topic and concept nodes
	Label     string
	Priority  Priority // concept nodes only
	ParentID  *string  // nil only for the root
	Children  []string
}

// IsRoot reports whether n is the graph root.
func (n *GraphNode) IsRoot() bool {
	return n.ParentID == nil
}

// TopicNodeID returns the node id used for a topic.
func TopicNodeID(topicID int) string {
	return fmt.Sprintf("topic:%d", topicID)
}

// ConceptNodeID returns the node id used for a concept. Concept ids come
// from upstream so they are namespaced away from the root and topic ids.
func ConceptNodeID(conceptID string) string {
	return "concept:" + conceptID
}
