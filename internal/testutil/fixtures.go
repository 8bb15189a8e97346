package testutil

import (
	"fmt"
	"math/rand"

	"github.com/alexanderramin/studymap/internal/domain"
)

// Chunk options
type ChunkOption func(*domain.Chunk)

func WithWordCount(n int) ChunkOption {
	return func(c *domain.Chunk) {
		c.WordCount = n
	}
}

func NewTestChunk(id, text string, opts ...ChunkOption) domain.Chunk {
	c := domain.Chunk{
		ID:        id,
		Text:      text,
		WordCount: domain.CountWords(text),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Chunks builds chunks with ids c1, c2, ... in text order.
func Chunks(texts ...string) []domain.Chunk {
	out := make([]domain.Chunk, len(texts))
	for i, t := range texts {
		out[i] = NewTestChunk(fmt.Sprintf("c%d", i+1), t)
	}
	return out
}

// Concept options
type ConceptOption func(*domain.Concept)

func WithPriority(p domain.Priority) ConceptOption {
	return func(c *domain.Concept) {
		c.Priority = p
	}
}

func WithTopic(id int) ConceptOption {
	return func(c *domain.Concept) {
		c.TopicID = id
	}
}

func WithMinutes(m int) ConceptOption {
	return func(c *domain.Concept) {
		c.EstimatedMinutes = m
	}
}

func WithOrder(i int) ConceptOption {
	return func(c *domain.Concept) {
		c.Order = i
	}
}

func WithLabel(l string) ConceptOption {
	return func(c *domain.Concept) {
		c.Label = l
	}
}

func NewTestConcept(id string, opts ...ConceptOption) domain.Concept {
	c := domain.Concept{
		ID:               id,
		Label:            "Concept " + id,
		Priority:         domain.PriorityMedium,
		EstimatedMinutes: 10,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

var priorities = []domain.Priority{domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow}

// RandomConcepts generates n concepts spread over up to topics topics, with
// random priorities and minutes in [1, maxMinutes]. Orders follow slice index.
func RandomConcepts(rng *rand.Rand, n, topics, maxMinutes int) []domain.Concept {
	out := make([]domain.Concept, n)
	for i := range out {
		out[i] = NewTestConcept(fmt.Sprintf("k%d", i),
			WithOrder(i),
			WithTopic(rng.Intn(max(topics, 1))),
			WithPriority(priorities[rng.Intn(len(priorities))]),
			WithMinutes(1+rng.Intn(max(maxMinutes, 1))),
		)
	}
	return out
}
