package pipeline

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// RunEvent captures lightweight execution telemetry for one pipeline run or
// batch.
type RunEvent struct {
	Name      string
	RunID     string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// Observer receives run events.
type Observer interface {
	ObserveRun(ctx context.Context, event RunEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveRun(context.Context, RunEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes run events as slog text records to w.
func NewLogObserver(w io.Writer, level slog.Level) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return NewSlogObserver(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// NewSlogObserver reports run events through logger.
func NewSlogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) ObserveRun(ctx context.Context, event RunEvent) {
	attrs := make([]any, 0, 10+len(event.Fields)*2)
	attrs = append(attrs,
		"event", event.Name,
		"run_id", event.RunID,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for _, k := range sortedKeys(event.Fields) {
		attrs = append(attrs, k, event.Fields[k])
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, event.Name, attrs...)
		return
	}
	o.logger.InfoContext(ctx, event.Name, attrs...)
}

func observerOrNoop(obs Observer) Observer {
	if obs == nil {
		return NoopObserver{}
	}
	return obs
}
