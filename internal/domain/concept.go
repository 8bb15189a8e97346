package domain

// Concept is the classified form of a Chunk. It is built once per run and
// consumed read-only by the graph builder and the study planner.
type Concept struct {
	ID               string
	Label            string
	Priority         Priority
	TopicID          int
	EstimatedMinutes int
	Order            int // index of the source chunk in the input document
}

// ConceptIDs returns the ids of concepts in slice order.
func ConceptIDs(concepts []Concept) []string {
	ids := make([]string, len(concepts))
	for i, c := range concepts {
		ids[i] = c.ID
	}
	return ids
}
