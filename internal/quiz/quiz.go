// Package quiz derives multiple-choice review questions from a mind map.
package quiz

import (
	"fmt"
	"math/rand"

	"github.com/alexanderramin/studymap/internal/mindmap"
	"github.com/alexanderramin/studymap/internal/validation"
)

// optionCount is the number of choices per question, answer included.
const optionCount = 4

// genericDistractors pad the choices when a map has fewer than four topics.
var genericDistractors = []string{
	"General Theory", "Practical Application", "System Framework", "Standard Protocol",
}

type Options struct {
	MaxQuestions int   `yaml:"max_questions" toml:"max_questions" validate:"min=0"`
	Seed         int64 `yaml:"seed" toml:"seed"`
}

func DefaultOptions() Options {
	return Options{MaxQuestions: 5, Seed: 42}
}

func (o Options) Validate() error {
	return validation.Struct(o)
}

// Question asks which topic a concept belongs to.
type Question struct {
	Prompt      string
	Options     []string
	Answer      string
	Explanation string
	TopicID     int
	ConceptID   string
}

// Generate returns one question per topic, in topic order, up to
// opts.MaxQuestions. Maps with fewer than two topics yield none. The same
// graph and seed always produce the same questions.
func Generate(g *mindmap.Graph, opts Options) []Question {
	topics := g.TopicNodes()
	if len(topics) < 2 || opts.MaxQuestions <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	labels := make([]string, len(topics))
	for i, t := range topics {
		labels[i] = t.Label
	}

	var questions []Question
	for _, t := range topics {
		if len(questions) >= opts.MaxQuestions {
			break
		}
		children := g.ChildNodes(t)
		if len(children) == 0 {
			continue
		}
		// Children are ranked, so the first is the topic's strongest concept.
		focus := children[0]

		distractors := pickDistractors(rng, t.Label, labels)
		choices := append([]string{t.Label}, distractors...)
		rng.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })

		q := Question{
			Prompt:      fmt.Sprintf("Which topic is most directly associated with %q?", focus.Label),
			Options:     choices,
			Answer:      t.Label,
			Explanation: fmt.Sprintf("%s covers %q.", t.Label, focus.Label),
			ConceptID:   focus.ConceptID,
		}
		if t.TopicID != nil {
			q.TopicID = *t.TopicID
		}
		questions = append(questions, q)
	}
	return questions
}

// pickDistractors returns optionCount-1 unique wrong answers. Other topic
// labels come first; the generic list only fills what they cannot.
func pickDistractors(rng *rand.Rand, answer string, labels []string) []string {
	seen := map[string]bool{answer: true}
	unseen := func(from []string) []string {
		var out []string
		for _, s := range from {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}

	pool := unseen(labels)
	if len(pool) < optionCount-1 {
		pool = append(pool, unseen(genericDistractors)...)
	}
	return pool[:optionCount-1]
}
