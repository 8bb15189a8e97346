package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Overrides are the per-run flags layered over the file and environment.
// Only flags the user actually set are applied.
type Overrides struct {
	fs *pflag.FlagSet

	kMax        int
	maxChildren int
	maxDepth    int
	maxNodes    int
	complexity  string
	budget      int
	buffer      float64
	wpm         int
	start       string
	questions   int
	seed        int64
	workers     int
}

// BindFlags registers the override flags on fs.
func BindFlags(fs *pflag.FlagSet) *Overrides {
	o := &Overrides{fs: fs}
	def := DefaultConfig()
	fs.IntVar(&o.kMax, "k-max", def.Cluster.KMax, "Maximum number of topics")
	fs.IntVar(&o.maxChildren, "max-children", 6, "Maximum children per graph node")
	fs.IntVar(&o.maxDepth, "max-depth", def.Graph.MaxDepth, "Maximum graph depth")
	fs.IntVar(&o.maxNodes, "max-nodes", def.Graph.MaxNodes, "Maximum graph node count")
	fs.StringVar(&o.complexity, "complexity", "", "Fan-out preset: low, medium or high")
	fs.IntVar(&o.budget, "budget", def.Schedule.DailyBudgetMinutes, "Daily study budget in minutes")
	fs.Float64Var(&o.buffer, "buffer", def.Schedule.BufferRatio, "Share of each day held as buffer, in [0,1)")
	fs.IntVar(&o.wpm, "wpm", def.Estimate.ReadingSpeedWPM, "Reading speed in words per minute")
	fs.StringVar(&o.start, "start", "", "First study day (YYYY-MM-DD)")
	fs.IntVar(&o.questions, "questions", def.Quiz.MaxQuestions, "Maximum quiz questions")
	fs.Int64Var(&o.seed, "seed", def.Quiz.Seed, "Quiz shuffle seed")
	fs.IntVar(&o.workers, "workers", def.Workers, "Documents processed in parallel")
	return o
}

// Apply writes every changed flag into cfg.
func (o *Overrides) Apply(cfg *Config) error {
	if o.changed("k-max") {
		cfg.Cluster.KMax = o.kMax
	}
	if o.changed("max-children") {
		n := o.maxChildren
		cfg.Graph.MaxChildren = &n
	}
	if o.changed("max-depth") {
		cfg.Graph.MaxDepth = o.maxDepth
	}
	if o.changed("max-nodes") {
		cfg.Graph.MaxNodes = o.maxNodes
	}
	if o.changed("complexity") {
		cfg.Graph.Complexity = strings.ToLower(strings.TrimSpace(o.complexity))
		// A preset picked on the command line outranks a max_children from a
		// file or the environment; --max-children still wins when both are set.
		if !o.changed("max-children") {
			cfg.Graph.MaxChildren = nil
		}
	}
	if o.changed("budget") {
		cfg.Schedule.DailyBudgetMinutes = o.budget
	}
	if o.changed("buffer") {
		cfg.Schedule.BufferRatio = o.buffer
	}
	if o.changed("wpm") {
		cfg.Estimate.ReadingSpeedWPM = o.wpm
	}
	if o.changed("start") {
		d, err := time.Parse("2006-01-02", o.start)
		if err != nil {
			return fmt.Errorf("invalid --start %q (expected YYYY-MM-DD)", o.start)
		}
		cfg.Schedule.StartDate = &d
	}
	if o.changed("questions") {
		cfg.Quiz.MaxQuestions = o.questions
	}
	if o.changed("seed") {
		cfg.Quiz.Seed = o.seed
	}
	if o.changed("workers") {
		cfg.Workers = o.workers
	}
	return nil
}

func (o *Overrides) changed(name string) bool {
	f := o.fs.Lookup(name)
	return f != nil && f.Changed
}
