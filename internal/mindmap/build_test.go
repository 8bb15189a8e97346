package mindmap

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/alexanderramin/studymap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EmptyInputIsRootOnly(t *testing.T) {
	g, err := Build(nil, nil, DefaultLimits())
	require.NoError(t, err)

	require.Len(t, g.Nodes, 1)
	root := g.Root()
	require.NotNil(t, root)
	assert.Equal(t, domain.RootNodeID, root.ID)
	assert.Equal(t, "Study Map", root.Label)
	assert.Nil(t, root.ParentID)
	assert.Empty(t, root.Children)
	assert.Empty(t, g.Dropped)
}

func TestBuild_TenConceptScenario(t *testing.T) {
	prios := []domain.Priority{
		domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow, domain.PriorityMedium,
		domain.PriorityHigh, domain.PriorityLow,
		domain.PriorityMedium, domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow,
	}
	var concepts []domain.Concept
	for i, p := range prios {
		topic := 0
		if i >= 6 {
			topic = 1
		}
		concepts = append(concepts, testutil.NewTestConcept(fmt.Sprintf("k%d", i),
			testutil.WithOrder(i), testutil.WithTopic(topic), testutil.WithPriority(p)))
	}
	limits := DefaultLimits()
	limits.MaxNodes = 20

	g, err := Build(concepts, map[int][]string{0: {"cell", "membrane"}, 1: {"energy"}}, limits)
	require.NoError(t, err)
	require.NoError(t, g.Check(limits))

	assert.Len(t, g.Nodes, 13)
	assert.Equal(t, 10, g.ConceptCount())
	assert.Empty(t, g.Dropped)
	assert.Equal(t, []string{"topic:0", "topic:1"}, g.Root().Children)

	t0, ok := g.Node("topic:0")
	require.True(t, ok)
	assert.Equal(t, "Cell / Membrane", t0.Label)
	// High first, then Medium, then Low; input order within a tier.
	assert.Equal(t, []string{
		"concept:k0", "concept:k4", "concept:k1", "concept:k3", "concept:k2", "concept:k5",
	}, t0.Children)

	t1, _ := g.Node("topic:1")
	assert.Equal(t, []string{"concept:k7", "concept:k6", "concept:k8", "concept:k9"}, t1.Children)
	assert.Equal(t, 2, g.Depth("concept:k9"))
}

func TestBuild_PreOrder(t *testing.T) {
	concepts := []domain.Concept{
		testutil.NewTestConcept("a", testutil.WithTopic(1), testutil.WithOrder(0)),
		testutil.NewTestConcept("b", testutil.WithTopic(0), testutil.WithOrder(1)),
		testutil.NewTestConcept("c", testutil.WithTopic(1), testutil.WithOrder(2)),
	}
	g, err := Build(concepts, nil, DefaultLimits())
	require.NoError(t, err)

	var ids []string
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	// Topic 1 has more members so it ranks first.
	assert.Equal(t, []string{"root", "topic:1", "concept:a", "concept:c", "topic:0", "concept:b"}, ids)
	t1, _ := g.Node("topic:1")
	assert.Equal(t, "Topic 2", t1.Label)
}

func TestBuild_FoldsExtraTopicsIntoLowestKept(t *testing.T) {
	var concepts []domain.Concept
	// Topic sizes: 0→3, 1→2, 2→1, 3→1.
	for i, topic := range []int{0, 0, 0, 1, 1, 2, 3} {
		concepts = append(concepts, testutil.NewTestConcept(fmt.Sprintf("k%d", i),
			testutil.WithOrder(i), testutil.WithTopic(topic)))
	}
	limits := DefaultLimits()
	limits.MaxChildren = 2

	g, err := Build(concepts, nil, limits)
	require.NoError(t, err)
	require.NoError(t, g.Check(limits))

	assert.Equal(t, []string{"topic:0", "topic:1"}, g.Root().Children)
	assert.Equal(t, []int{2, 3}, g.FoldedTopics)

	t1, _ := g.Node("topic:1")
	assert.Equal(t, []string{"concept:k3", "concept:k4"}, t1.Children)
	// k5, k6 folded into topic 1 but beyond its fan-out; k2 is over topic 0's.
	assert.ElementsMatch(t, []string{"k2", "k5", "k6"}, g.Dropped)

	k3, _ := g.Node("concept:k3")
	require.NotNil(t, k3.TopicID)
	assert.Equal(t, 1, *k3.TopicID)
}

func TestBuild_PrunesToMaxNodes(t *testing.T) {
	concepts := []domain.Concept{
		testutil.NewTestConcept("h0", testutil.WithOrder(0), testutil.WithTopic(0), testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTestConcept("l1", testutil.WithOrder(1), testutil.WithTopic(0), testutil.WithPriority(domain.PriorityLow)),
		testutil.NewTestConcept("m2", testutil.WithOrder(2), testutil.WithTopic(0), testutil.WithPriority(domain.PriorityMedium)),
		testutil.NewTestConcept("l3", testutil.WithOrder(3), testutil.WithTopic(1), testutil.WithPriority(domain.PriorityLow)),
	}
	limits := DefaultLimits()
	limits.MaxNodes = 4

	g, err := Build(concepts, nil, limits)
	require.NoError(t, err)
	require.NoError(t, g.Check(limits))

	// Both Low concepts go first; topic 1 empties and goes with its concept.
	assert.Equal(t, []string{"l1", "l3"}, g.Dropped)
	assert.Equal(t, []string{"topic:0"}, g.Root().Children)
	t0, _ := g.Node("topic:0")
	assert.Equal(t, []string{"concept:h0", "concept:m2"}, t0.Children)
}

func TestBuild_MaxNodesOneLeavesRoot(t *testing.T) {
	concepts := []domain.Concept{testutil.NewTestConcept("a"), testutil.NewTestConcept("b", testutil.WithOrder(1))}
	limits := DefaultLimits()
	limits.MaxNodes = 1

	g, err := Build(concepts, nil, limits)
	require.NoError(t, err)
	assert.Len(t, g.Nodes, 1)
	assert.ElementsMatch(t, []string{"a", "b"}, g.Dropped)
}

func TestBuild_DepthOneHangsConceptsOffRoot(t *testing.T) {
	concepts := []domain.Concept{
		testutil.NewTestConcept("a", testutil.WithOrder(0), testutil.WithTopic(0), testutil.WithPriority(domain.PriorityLow)),
		testutil.NewTestConcept("b", testutil.WithOrder(1), testutil.WithTopic(1), testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTestConcept("c", testutil.WithOrder(2), testutil.WithTopic(0), testutil.WithPriority(domain.PriorityMedium)),
	}
	limits := Limits{MaxChildren: 2, MaxDepth: 1, MaxNodes: 10}

	g, err := Build(concepts, nil, limits)
	require.NoError(t, err)
	require.NoError(t, g.Check(limits))

	assert.Equal(t, []string{"concept:b", "concept:c"}, g.Root().Children)
	assert.Equal(t, []string{"a"}, g.Dropped)
	assert.Empty(t, g.TopicNodes())
}

func TestBuild_RejectsInvalidLimits(t *testing.T) {
	_, err := Build(nil, nil, Limits{MaxChildren: 0, MaxDepth: 2, MaxNodes: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "max_children")
}

func TestBuild_RejectsDuplicateConceptIDs(t *testing.T) {
	concepts := []domain.Concept{
		testutil.NewTestConcept("a", testutil.WithOrder(0), testutil.WithTopic(0)),
		testutil.NewTestConcept("b", testutil.WithOrder(1), testutil.WithTopic(0)),
		testutil.NewTestConcept("a", testutil.WithOrder(2), testutil.WithTopic(1)),
	}

	g, err := Build(concepts, nil, DefaultLimits())
	require.Error(t, err)
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "concepts[2].id")
}

func TestBuild_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	concepts := testutil.RandomConcepts(rng, 25, 5, 30)
	terms := map[int][]string{0: {"alpha"}, 2: {"beta", "gamma"}}

	a, err := Build(concepts, terms, DefaultLimits())
	require.NoError(t, err)
	b, err := Build(concepts, terms, DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, a.Nodes, b.Nodes)
	assert.Equal(t, a.Dropped, b.Dropped)
	assert.Equal(t, a.FoldedTopics, b.FoldedTopics)
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	concepts := []domain.Concept{
		testutil.NewTestConcept("a", testutil.WithOrder(0), testutil.WithPriority(domain.PriorityLow)),
		testutil.NewTestConcept("b", testutil.WithOrder(1), testutil.WithPriority(domain.PriorityHigh)),
	}
	before := append([]domain.Concept(nil), concepts...)
	_, err := Build(concepts, nil, Limits{MaxChildren: 1, MaxDepth: 1, MaxNodes: 5})
	require.NoError(t, err)
	_, err = Build(concepts, nil, DefaultLimits())
	require.NoError(t, err)
	assert.Equal(t, before, concepts)
}

// TestBuild_InvariantsProperty builds graphs from random concepts and limits
// and checks every structural invariant, plus that each concept lands in the
// graph or in Dropped exactly once.
func TestBuild_InvariantsProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		concepts := testutil.RandomConcepts(rng, rng.Intn(60), 1+rng.Intn(10), 30)
		limits := Limits{
			MaxChildren: 1 + rng.Intn(8),
			MaxDepth:    1 + rng.Intn(3),
			MaxNodes:    1 + rng.Intn(50),
		}

		g, err := Build(concepts, nil, limits)
		require.NoError(t, err, "trial %d", trial)
		require.NoError(t, g.Check(limits), "trial %d limits %+v", trial, limits)

		seen := make(map[string]int)
		for _, n := range g.Nodes {
			if n.Kind == domain.NodeConcept {
				seen[n.ConceptID]++
			}
		}
		for _, id := range g.Dropped {
			seen[id]++
		}
		require.Len(t, seen, len(concepts), "trial %d", trial)
		for id, count := range seen {
			require.Equal(t, 1, count, "trial %d concept %s", trial, id)
		}
	}
}

func TestComplexityPresets(t *testing.T) {
	cases := map[string]int{"low": 3, "Medium": 5, " HIGH ": 8}
	for in, want := range cases {
		c, err := ParseComplexity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, c.MaxChildren())
	}

	_, err := ParseComplexity("extreme")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
}
