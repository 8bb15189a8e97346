// Package cluster groups document chunks into a handful of topics using
// tf-idf weighted terms and k-means partitioning.
package cluster

import (
	"math"
	"sort"

	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/alexanderramin/studymap/internal/validation"
)

// MaxTopicsCap is the absolute ceiling for KMax.
const MaxTopicsCap = 16

// Options controls topic clustering.
type Options struct {
	KMax          int `yaml:"k_max" toml:"k_max" validate:"min=1,max=16"`
	TopTerms      int `yaml:"top_terms" toml:"top_terms" validate:"min=1"`
	MaxIterations int `yaml:"max_iterations" toml:"max_iterations" validate:"min=1"`
	MaxFeatures   int `yaml:"max_features" toml:"max_features" validate:"min=1"`
}

// DefaultOptions returns the stock clustering settings.
func DefaultOptions() Options {
	return Options{
		KMax:          6,
		TopTerms:      5,
		MaxIterations: 100,
		MaxFeatures:   4000,
	}
}

// Validate reports invalid options as domain.ConfigError values.
func (o Options) Validate() error {
	return validation.Struct(o)
}

// Result is the topic assignment for one set of chunks.
type Result struct {
	Topics  []domain.Topic
	TopicOf map[string]int // chunk id -> topic id
}

// Terms returns the representative terms keyed by topic id.
func (r *Result) Terms() map[int][]string {
	out := make(map[int][]string, len(r.Topics))
	for _, t := range r.Topics {
		out[t.ID] = t.Terms
	}
	return out
}

// TermClusterer adapts Cluster to an interface so callers can swap in another
// topic model.
type TermClusterer struct {
	Options Options
}

// New returns a TermClusterer using opts.
func New(opts Options) *TermClusterer {
	return &TermClusterer{Options: opts}
}

func (c *TermClusterer) Cluster(chunks []domain.Chunk) (*Result, error) {
	return Cluster(chunks, c.Options)
}

// Cluster assigns every chunk to exactly one topic. It only fails on invalid
// options; small or degenerate input collapses to fewer topics.
func Cluster(chunks []domain.Chunk, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := domain.CheckUniqueIDs("chunks", domain.ChunkIDs(chunks)); err != nil {
		return nil, err
	}

	res := &Result{TopicOf: make(map[string]int, len(chunks))}
	if len(chunks) == 0 {
		return res, nil
	}

	distinct := distinctTexts(chunks)
	if distinct < 2 {
		return singleTopic(chunks, nil), nil
	}

	docs := make([][]string, len(chunks))
	for i, ch := range chunks {
		docs[i] = features(tokenize(ch.Text))
	}
	space := buildVectors(docs, opts.MaxFeatures)

	var assign []int
	for k := chooseK(len(chunks), distinct, opts.KMax); k > 1; k-- {
		if a, ok := partition(space.vectors, k, opts.MaxIterations); ok {
			assign = a
			break
		}
	}
	if assign == nil {
		return singleTopic(chunks, topTerms(space, allIndexes(len(chunks)), opts.TopTerms)), nil
	}

	for _, members := range orderGroups(assign) {
		topic := domain.Topic{
			ID:    len(res.Topics),
			Terms: topTerms(space, members, opts.TopTerms),
		}
		for _, i := range members {
			topic.ChunkIDs = append(topic.ChunkIDs, chunks[i].ID)
			res.TopicOf[chunks[i].ID] = topic.ID
		}
		res.Topics = append(res.Topics, topic)
	}
	return res, nil
}

// chooseK starts from round(sqrt(n)) with a floor of two, capped by kMax and
// by the number of distinct chunks.
func chooseK(n, distinct, kMax int) int {
	k := int(math.Round(math.Sqrt(float64(n))))
	if k < 2 {
		k = 2
	}
	if k > kMax {
		k = kMax
	}
	if k > distinct {
		k = distinct
	}
	return k
}

func distinctTexts(chunks []domain.Chunk) int {
	seen := make(map[string]bool, len(chunks))
	for _, ch := range chunks {
		seen[ch.Text] = true
	}
	return len(seen)
}

func singleTopic(chunks []domain.Chunk, terms []string) *Result {
	topic := domain.Topic{ID: 0, Terms: terms}
	res := &Result{TopicOf: make(map[string]int, len(chunks))}
	for _, ch := range chunks {
		topic.ChunkIDs = append(topic.ChunkIDs, ch.ID)
		res.TopicOf[ch.ID] = 0
	}
	res.Topics = []domain.Topic{topic}
	return res
}

// orderGroups collects member indexes per group and orders the groups by size
// descending, then by their earliest member.
func orderGroups(assign []int) [][]int {
	byGroup := make(map[int][]int)
	for i, g := range assign {
		byGroup[g] = append(byGroup[g], i)
	}
	groups := make([][]int, 0, len(byGroup))
	for _, members := range byGroup {
		groups = append(groups, members)
	}
	sort.Slice(groups, func(i, j int) bool {
		if len(groups[i]) != len(groups[j]) {
			return len(groups[i]) > len(groups[j])
		}
		return groups[i][0] < groups[j][0]
	})
	return groups
}

// topTerms ranks vocabulary entries by their mean weight across members.
func topTerms(space vectorSpace, members []int, n int) []string {
	if len(members) == 0 || len(space.vocab) == 0 {
		return nil
	}
	type scored struct {
		term   string
		weight float64
	}
	scores := make([]scored, 0, len(space.vocab))
	for j, term := range space.vocab {
		var sum float64
		for _, i := range members {
			sum += space.vectors[i][j]
		}
		if sum > 0 {
			scores = append(scores, scored{term: term, weight: sum / float64(len(members))})
		}
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].weight != scores[j].weight {
			return scores[i].weight > scores[j].weight
		}
		return scores[i].term < scores[j].term
	})
	if len(scores) > n {
		scores = scores[:n]
	}
	terms := make([]string, len(scores))
	for i, s := range scores {
		terms[i] = s.term
	}
	return terms
}

func allIndexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
