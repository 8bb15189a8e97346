package scheduler

import (
	"sort"

	"github.com/alexanderramin/studymap/internal/domain"
)

// SortConcepts returns concepts in study order using the canonical rules:
// 1. Priority: High > Medium > Low
// 2. Topic id: ascending
// 3. Input order: ascending
// 4. Concept ID: lexical ascending
// The input slice is not modified.
func SortConcepts(concepts []domain.Concept) []domain.Concept {
	sorted := make([]domain.Concept, len(concepts))
	copy(sorted, concepts)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		// 1. Priority
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra < rb
		}

		// 2. Topic
		if a.TopicID != b.TopicID {
			return a.TopicID < b.TopicID
		}

		// 3. Input order
		if a.Order != b.Order {
			return a.Order < b.Order
		}

		// 4. Concept ID (lexical)
		return a.ID < b.ID
	})
	return sorted
}
