// Package pipeline runs one document through clustering, classification,
// graph building, scheduling and quiz generation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/studymap/internal/classify"
	"github.com/alexanderramin/studymap/internal/cluster"
	"github.com/alexanderramin/studymap/internal/domain"
	"github.com/alexanderramin/studymap/internal/mindmap"
	"github.com/alexanderramin/studymap/internal/quiz"
	"github.com/alexanderramin/studymap/internal/scheduler"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is how many documents RunBatch processes at once.
const DefaultWorkers = 4

const (
	eventRun   = "pipeline_run"
	eventBatch = "pipeline_batch"
)

// Options carries every component's settings.
type Options struct {
	Cluster  cluster.Options
	Classify classify.Options
	Limits   mindmap.Limits
	Schedule scheduler.Options
	Estimate scheduler.EstimateOptions
	Quiz     quiz.Options
	Workers  int
}

func DefaultOptions() Options {
	return Options{
		Cluster:  cluster.DefaultOptions(),
		Classify: classify.DefaultOptions(),
		Limits:   mindmap.DefaultLimits(),
		Schedule: scheduler.DefaultOptions(),
		Estimate: scheduler.DefaultEstimateOptions(),
		Quiz:     quiz.DefaultOptions(),
		Workers:  DefaultWorkers,
	}
}

// Validate checks every component's options and returns all failures.
func (o Options) Validate() error {
	var workersErr error
	if o.Workers < 1 {
		workersErr = domain.NewConfigError("workers", "must be at least 1, got %d", o.Workers)
	}
	return errors.Join(
		o.Cluster.Validate(),
		o.Classify.Validate(),
		o.Limits.Validate(),
		o.Schedule.Validate(),
		o.Estimate.Validate(),
		o.Quiz.Validate(),
		workersErr,
	)
}

// Clusterer assigns chunks to topics.
type Clusterer interface {
	Cluster(chunks []domain.Chunk) (*cluster.Result, error)
}

// Result is everything one run produced. It shares no state with other runs.
type Result struct {
	RunID     string
	Document  domain.Document
	Topics    []domain.Topic
	Concepts  []domain.Concept
	Graph     *mindmap.Graph
	Schedule  *scheduler.Schedule
	Questions []quiz.Question
	Duration  time.Duration
}

// Pipeline is safe for concurrent use; runs share only read-only options.
type Pipeline struct {
	opts       Options
	observer   Observer
	clusterer  Clusterer
	classifier classify.Classifier
	newRunID   func() string
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithClusterer swaps in another topic clusterer.
func WithClusterer(c Clusterer) Option {
	return func(p *Pipeline) { p.clusterer = c }
}

// WithClassifier swaps in another concept classifier.
func WithClassifier(c classify.Classifier) Option {
	return func(p *Pipeline) { p.classifier = c }
}

// WithRunIDs replaces the uuid run id generator.
func WithRunIDs(fn func() string) Option {
	return func(p *Pipeline) { p.newRunID = fn }
}

func New(opts Options, observer Observer, extra ...Option) *Pipeline {
	p := &Pipeline{
		opts:       opts,
		observer:   observerOrNoop(observer),
		clusterer:  cluster.New(opts.Cluster),
		classifier: classify.New(opts.Classify),
		newRunID:   func() string { return uuid.New().String() },
	}
	for _, o := range extra {
		o(p)
	}
	return p
}

// Options returns the options the pipeline was built with.
func (p *Pipeline) Options() Options {
	return p.opts
}

// Run processes one document.
func (p *Pipeline) Run(ctx context.Context, doc domain.Document) (res *Result, err error) {
	start := time.Now()
	runID := p.newRunID()
	defer func() {
		event := RunEvent{
			Name:      eventRun,
			RunID:     runID,
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			StartedAt: start,
			Fields: map[string]any{
				"source": doc.Source,
				"chunks": len(doc.Chunks),
			},
		}
		if res != nil {
			res.Duration = event.Duration
			event.Fields["topics"] = len(res.Topics)
			event.Fields["nodes"] = len(res.Graph.Nodes)
			event.Fields["dropped"] = len(res.Graph.Dropped)
			event.Fields["days"] = res.Schedule.DayCount()
		}
		p.observer.ObserveRun(ctx, event)
	}()

	if err := p.opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clustered, err := p.clusterer.Cluster(doc.Chunks)
	if err != nil {
		return nil, fmt.Errorf("clustering: %w", err)
	}
	concepts, err := p.classify(doc.Chunks, clustered)
	if err != nil {
		return nil, err
	}

	// Graph and schedule read the same concepts and nothing else.
	var (
		graph *mindmap.Graph
		plan  *scheduler.Schedule
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		built, err := mindmap.Build(concepts, clustered.Terms(), p.opts.Limits)
		if err != nil {
			return fmt.Errorf("building graph: %w", err)
		}
		graph = built
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		planned, err := scheduler.Plan(concepts, p.opts.Schedule)
		if err != nil {
			return fmt.Errorf("planning schedule: %w", err)
		}
		plan = planned
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{
		RunID:     runID,
		Document:  doc,
		Topics:    clustered.Topics,
		Concepts:  concepts,
		Graph:     graph,
		Schedule:  plan,
		Questions: quiz.Generate(graph, p.opts.Quiz),
	}, nil
}

// classify turns chunks into concepts. Positions count chunks of the same
// topic in input order.
func (p *Pipeline) classify(chunks []domain.Chunk, clustered *cluster.Result) ([]domain.Concept, error) {
	sizes := make(map[int]int)
	for _, c := range chunks {
		topic, ok := clustered.TopicOf[c.ID]
		if !ok {
			return nil, fmt.Errorf("clustering: chunk %q has no topic", c.ID)
		}
		sizes[topic]++
	}

	seen := make(map[int]int)
	concepts := make([]domain.Concept, 0, len(chunks))
	for i, c := range chunks {
		topic := clustered.TopicOf[c.ID]
		pos := classify.Position{Index: seen[topic], GroupSize: sizes[topic]}
		seen[topic]++

		cls := p.classifier.Classify(c, pos)
		concepts = append(concepts, domain.Concept{
			ID:               c.ID,
			Label:            cls.Label,
			Priority:         cls.Priority,
			TopicID:          topic,
			EstimatedMinutes: scheduler.EstimateMinutes(c.WordCount, p.opts.Estimate),
			Order:            i,
		})
	}
	return concepts, nil
}

// RunBatch processes docs concurrently, at most Workers at a time. Results
// are in input order. The first failure cancels the remaining runs.
func (p *Pipeline) RunBatch(ctx context.Context, docs []domain.Document) (results []*Result, err error) {
	start := time.Now()
	defer func() {
		p.observer.ObserveRun(ctx, RunEvent{
			Name:      eventBatch,
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			StartedAt: start,
			Fields:    map[string]any{"documents": len(docs), "workers": p.opts.Workers},
		})
	}()

	if err := p.opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	results = make([]*Result, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := p.Run(gctx, doc)
			if err != nil {
				return fmt.Errorf("document %s: %w", displayName(doc, i), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func displayName(doc domain.Document, i int) string {
	switch {
	case doc.Source != "":
		return doc.Source
	case doc.Title != "":
		return fmt.Sprintf("%q", doc.Title)
	}
	return fmt.Sprintf("#%d", i+1)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
