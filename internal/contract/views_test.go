package contract

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/alexanderramin/studymap/internal/mindmap"
	"github.com/alexanderramin/studymap/internal/quiz"
	"github.com/alexanderramin/studymap/internal/scheduler"
	"github.com/alexanderramin/studymap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleParts(t *testing.T) RunParts {
	t.Helper()
	concepts := []domain.Concept{
		testutil.NewTestConcept("c1", testutil.WithTopic(0), testutil.WithPriority(domain.PriorityHigh), testutil.WithMinutes(20)),
		testutil.NewTestConcept("c2", testutil.WithTopic(1), testutil.WithOrder(1), testutil.WithPriority(domain.PriorityLow), testutil.WithMinutes(40)),
	}
	g, err := mindmap.Build(concepts, map[int][]string{0: {"cells"}, 1: {"energy"}}, mindmap.DefaultLimits())
	require.NoError(t, err)

	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	opts := scheduler.DefaultOptions()
	opts.StartDate = &start
	sched, err := scheduler.Plan(concepts, opts)
	require.NoError(t, err)

	return RunParts{
		RunID: "run-1",
		Title: "Biology",
		Topics: []domain.Topic{
			{ID: 0, Terms: []string{"cells"}, ChunkIDs: []string{"c1"}},
			{ID: 1, Terms: []string{"energy"}, ChunkIDs: []string{"c2"}},
		},
		Concepts:  concepts,
		Graph:     g,
		Schedule:  sched,
		Questions: quiz.Generate(g, quiz.DefaultOptions()),
	}
}

func TestNewGraphView_MapsNodes(t *testing.T) {
	v := NewRunView(sampleParts(t)).Graph

	assert.Equal(t, "root", v.RootID)
	require.Len(t, v.Nodes, 5)
	assert.Equal(t, "root", v.Nodes[0].Kind)
	assert.Nil(t, v.Nodes[0].ParentID)
	assert.Empty(t, v.Nodes[0].Priority)

	concept := v.Nodes[2]
	assert.Equal(t, "concept:c1", concept.ID)
	assert.Equal(t, "c1", concept.ConceptID)
	assert.Equal(t, "High", concept.Priority)
	require.NotNil(t, concept.ParentID)
	assert.Equal(t, "topic:0", *concept.ParentID)
	assert.NotNil(t, v.Dropped)
	assert.NotNil(t, v.FoldedTopics)
}

func TestNewScheduleView_FormatsDates(t *testing.T) {
	v := NewRunView(sampleParts(t)).Schedule

	assert.Equal(t, 60, v.DailyBudgetMinutes)
	assert.Equal(t, 51, v.UsableMinutes)
	assert.Equal(t, 60, v.TotalMinutes)
	assert.False(t, v.FitsInOneDay)
	require.Len(t, v.Days, 2)
	assert.Equal(t, "2025-01-06", v.Days[0].Date)
	assert.Equal(t, "2025-01-07", v.Days[1].Date)
	assert.Equal(t, []string{"c2"}, v.Days[1].Items)
}

func TestRunView_JSONUsesSnakeCase(t *testing.T) {
	data, err := json.Marshal(NewRunView(sampleParts(t)))
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "run-1", raw["run_id"])

	graph := raw["graph"].(map[string]any)
	assert.Contains(t, graph, "root_id")
	assert.Contains(t, graph, "folded_topics")

	sched := raw["schedule"].(map[string]any)
	assert.Contains(t, sched, "fits_in_one_day")
	day := sched["days"].([]any)[0].(map[string]any)
	assert.Contains(t, day, "allocated_minutes")

	quizItems := raw["quiz"].([]any)
	require.Len(t, quizItems, 2)
	assert.Len(t, quizItems[0].(map[string]any)["options"], 4)
}

func TestRunView_YAMLUsesSnakeCase(t *testing.T) {
	data, err := yaml.Marshal(NewRunView(sampleParts(t)))
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "run_id: run-1")
	assert.Contains(t, out, "daily_budget_minutes: 60")
	assert.Contains(t, out, "chunk_ids:")
	assert.Contains(t, out, "tier: Core")
}

func TestEmptyViewsEncodeAsArrays(t *testing.T) {
	g, err := mindmap.Build(nil, nil, mindmap.DefaultLimits())
	require.NoError(t, err)
	sched, err := scheduler.Plan(nil, scheduler.DefaultOptions())
	require.NoError(t, err)

	data, err := json.Marshal(NewRunView(RunParts{Graph: g, Schedule: sched}))
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"topics":[]`)
	assert.Contains(t, s, `"days":[]`)
	assert.Contains(t, s, `"dropped":[]`)
	assert.Contains(t, s, `"quiz":[]`)
}
