package contract

import (
	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/alexanderramin/studymap/internal/mindmap"
	"github.com/alexanderramin/studymap/internal/quiz"
	"github.com/alexanderramin/studymap/internal/scheduler"
)

// RunView is the full output of one pipeline run.
type RunView struct {
	RunID    string         `json:"run_id" yaml:"run_id"`
	Title    string         `json:"title,omitempty" yaml:"title,omitempty"`
	Source   string         `json:"source,omitempty" yaml:"source,omitempty"`
	Topics   []TopicView    `json:"topics" yaml:"topics"`
	Concepts []ConceptView  `json:"concepts" yaml:"concepts"`
	Graph    GraphView      `json:"graph" yaml:"graph"`
	Schedule ScheduleView   `json:"schedule" yaml:"schedule"`
	Quiz     []QuestionView `json:"quiz" yaml:"quiz"`
}

// RunParts are the pieces a RunView is assembled from.
type RunParts struct {
	RunID     string
	Title     string
	Source    string
	Topics    []domain.Topic
	Concepts  []domain.Concept
	Graph     *mindmap.Graph
	Schedule  *scheduler.Schedule
	Questions []quiz.Question
}

func NewRunView(p RunParts) RunView {
	return RunView{
		RunID:    p.RunID,
		Title:    p.Title,
		Source:   p.Source,
		Topics:   NewTopicViews(p.Topics),
		Concepts: NewConceptViews(p.Concepts),
		Graph:    NewGraphView(p.Graph),
		Schedule: NewScheduleView(p.Schedule),
		Quiz:     NewQuizView(p.Questions),
	}
}
