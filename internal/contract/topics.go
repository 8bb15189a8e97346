package contract

import (
	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/alexanderramin/studymap/internal/quiz"
)

type TopicView struct {
	TopicID  int      `json:"topic_id" yaml:"topic_id"`
	Terms    []string `json:"terms" yaml:"terms"`
	ChunkIDs []string `json:"chunk_ids" yaml:"chunk_ids"`
}

func NewTopicViews(topics []domain.Topic) []TopicView {
	out := make([]TopicView, 0, len(topics))
	for _, t := range topics {
		out = append(out, TopicView{
			TopicID:  t.ID,
			Terms:    append([]string{}, t.Terms...),
			ChunkIDs: append([]string{}, t.ChunkIDs...),
		})
	}
	return out
}

type ConceptView struct {
	ID               string `json:"id" yaml:"id"`
	Label            string `json:"label" yaml:"label"`
	Priority         string `json:"priority" yaml:"priority"`
	Tier             string `json:"tier" yaml:"tier"`
	TopicID          int    `json:"topic_id" yaml:"topic_id"`
	EstimatedMinutes int    `json:"estimated_minutes" yaml:"estimated_minutes"`
}

func NewConceptViews(concepts []domain.Concept) []ConceptView {
	out := make([]ConceptView, 0, len(concepts))
	for _, c := range concepts {
		out = append(out, ConceptView{
			ID:               c.ID,
			Label:            c.Label,
			Priority:         string(c.Priority),
			Tier:             c.Priority.Tier(),
			TopicID:          c.TopicID,
			EstimatedMinutes: c.EstimatedMinutes,
		})
	}
	return out
}

type QuestionView struct {
	Prompt      string   `json:"prompt" yaml:"prompt"`
	Options     []string `json:"options" yaml:"options"`
	Answer      string   `json:"answer" yaml:"answer"`
	Explanation string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

func NewQuizView(questions []quiz.Question) []QuestionView {
	out := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuestionView{
			Prompt:      q.Prompt,
			Options:     append([]string{}, q.Options...),
			Answer:      q.Answer,
			Explanation: q.Explanation,
		})
	}
	return out
}

// ClusterView is the output of clustering and classification alone.
type ClusterView struct {
	Topics   []TopicView   `json:"topics" yaml:"topics"`
	Concepts []ConceptView `json:"concepts" yaml:"concepts"`
}

func NewClusterView(topics []domain.Topic, concepts []domain.Concept) ClusterView {
	return ClusterView{
		Topics:   NewTopicViews(topics),
		Concepts: NewConceptViews(concepts),
	}
}
