package scheduler

import (
	"testing"

	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/alexanderramin/studymap/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSortConcepts_PriorityFirst(t *testing.T) {
	concepts := []domain.Concept{
		testutil.NewTestConcept("low", testutil.WithPriority(domain.PriorityLow)),
		testutil.NewTestConcept("high", testutil.WithPriority(domain.PriorityHigh), testutil.WithOrder(1)),
		testutil.NewTestConcept("med", testutil.WithPriority(domain.PriorityMedium), testutil.WithOrder(2)),
	}

	sorted := SortConcepts(concepts)

	assert.Equal(t, []string{"high", "med", "low"}, domain.ConceptIDs(sorted))
}

func TestSortConcepts_TopicThenOrder(t *testing.T) {
	concepts := []domain.Concept{
		testutil.NewTestConcept("t1-a", testutil.WithTopic(1), testutil.WithOrder(0)),
		testutil.NewTestConcept("t0-b", testutil.WithTopic(0), testutil.WithOrder(3)),
		testutil.NewTestConcept("t0-a", testutil.WithTopic(0), testutil.WithOrder(1)),
	}

	sorted := SortConcepts(concepts)

	assert.Equal(t, []string{"t0-a", "t0-b", "t1-a"}, domain.ConceptIDs(sorted))
}

func TestSortConcepts_IDBreaksRemainingTies(t *testing.T) {
	concepts := []domain.Concept{
		testutil.NewTestConcept("b"),
		testutil.NewTestConcept("a"),
	}

	assert.Equal(t, []string{"a", "b"}, domain.ConceptIDs(SortConcepts(concepts)))
}

func TestSortConcepts_LeavesInputUntouched(t *testing.T) {
	concepts := []domain.Concept{
		testutil.NewTestConcept("low", testutil.WithPriority(domain.PriorityLow)),
		testutil.NewTestConcept("high", testutil.WithPriority(domain.PriorityHigh), testutil.WithOrder(1)),
	}

	_ = SortConcepts(concepts)

	assert.Equal(t, []string{"low", "high"}, domain.ConceptIDs(concepts))
}
