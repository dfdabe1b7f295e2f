// Package engine runs one benchmark: resolve the input, load it, group it
// and build the result document.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/leengari/groupbench/internal/config"
	"github.com/leengari/groupbench/internal/domain/run"
	"github.com/leengari/groupbench/internal/query"
	"github.com/leengari/groupbench/internal/report"
	"github.com/leengari/groupbench/internal/source"
	"github.com/leengari/groupbench/internal/storage"
)

// Engine is the main entry point for a benchmark run
type Engine struct {
	cfg       *config.Config
	logger    *slog.Logger
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine instance. A nil logger uses slog.Default.
func New(cfg *config.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cfg:       cfg,
		logger:    logger,
		observers: make([]Observer, 0),
	}
}

// Run executes the benchmark once and returns the result document.
// Only the load and the groupby are timed. ctx is checked between stages.
func (e *Engine) Run(ctx context.Context) (*report.BenchmarkResult, error) {
	if e.cfg == nil {
		return nil, fmt.Errorf("engine has no configuration")
	}

	r := run.New()
	defer r.Close()
	runID := r.ID
	logger := e.logger.With(slog.String("run_id", runID), slog.Uint64("run_seq", r.Seq))

	// 1. Resolve
	candidates := source.Candidates(e.cfg.Sources.Parquet, e.cfg.Sources.CSV)
	src := source.Resolve(candidates, e.cfg.Sources.SyntheticRows)
	e.notify(Event{Type: EventResolve, RunID: runID, Data: src.String()})
	logger.Info("input resolved", slog.String("source", string(src.Kind)), slog.String("path", src.Path))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 2. Load
	e.notify(Event{Type: EventLoadStart, RunID: runID, Data: src.String()})
	tbl, readDur, err := storage.Load(src, logger)
	if err != nil {
		return nil, fmt.Errorf("load %s source: %w", src.Kind, err)
	}
	e.notify(Event{Type: EventLoadEnd, RunID: runID, Data: map[string]any{
		"rows":     tbl.NumRows(),
		"columns":  tbl.NumCols(),
		"duration": readDur,
	}})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 3. Plan
	lf := query.From(tbl).
		GroupBy(e.cfg.Columns.Group).
		Agg(query.Mean(e.cfg.Columns.Value).Alias(e.cfg.Columns.MeanAlias))
	explain, err := lf.Explain()
	if err != nil {
		return nil, fmt.Errorf("plan groupby: %w", err)
	}
	e.notify(Event{Type: EventPlan, RunID: runID, Data: explain})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 4. Aggregate
	e.notify(Event{Type: EventAggregateStart, RunID: runID})
	start := time.Now()
	out, err := lf.Collect()
	groupbyDur := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("groupby: %w", err)
	}
	rows, cols := out.Shape()
	e.notify(Event{Type: EventAggregateEnd, RunID: runID, Data: map[string]any{
		"groups":   rows,
		"duration": groupbyDur,
	}})
	logger.Info("groupby complete", slog.Int("groups", rows), slog.Duration("elapsed", groupbyDur))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 5. Report
	result := report.New(e.cfg.Engine, readDur, groupbyDur, rows, cols, string(src.Kind))
	e.notify(Event{Type: EventReport, RunID: runID, Data: result})
	logger.Debug("run finished", slog.Duration("total", r.Elapsed()))

	return result, nil
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
