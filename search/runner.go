package search

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/logging"
	"github.com/katalvlaran/gridtrace/trace"
)

// Outcome labels for the runs counter.
const (
	OutcomeFound       = "found"
	OutcomeUnreachable = "unreachable"
	OutcomeNoEndpoints = "no_endpoints"
	OutcomeCancelled   = "cancelled"
	OutcomeError       = "error"
	OutcomeUnknown     = "unknown_strategy"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridtrace_search_runs_total",
		Help: "Search runs by algorithm and outcome",
	}, []string{"algorithm", "outcome"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridtrace_search_duration_seconds",
		Help:    "Wall time of one search run",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"algorithm"})

	exploredCells = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridtrace_search_explored_cells",
		Help:    "Positions explored per search run",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	}, []string{"algorithm"})
)

// Option configures a Runner.
type Option func(*Options)

// Options holds Runner dependencies.
type Options struct {
	Registry *Registry
	Logger   logging.Logger
}

// DefaultOptions returns the built-in registry and a no-op logger.
func DefaultOptions() Options {
	return Options{Registry: NewRegistry(), Logger: logging.NoOpLogger{}}
}

// WithRegistry replaces the strategy table.
func WithRegistry(r *Registry) Option {
	return func(o *Options) {
		if r != nil {
			o.Registry = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Runner looks up and executes strategies, instrumenting each run.
type Runner struct {
	reg *Registry
	log logging.Logger
}

// NewRunner builds a Runner.
func NewRunner(opts ...Option) *Runner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{reg: o.Registry, log: o.Logger}
}

// Registry returns the runner's strategy table.
func (r *Runner) Registry() *Registry { return r.reg }

// Run executes the strategy registered under name on st.
// Errors: ErrUnknownStrategy (wrapped with the name), the strategy's own
// errors, or ctx.Err() alongside the partial trace.
func (r *Runner) Run(ctx context.Context, name string, st *grid.State) (*trace.Trace, error) {
	ctx, span := otel.Tracer("gridtrace").Start(ctx, "search.Runner.Run",
		oteltrace.WithAttributes(attribute.String("algorithm", name)),
	)
	defer span.End()
	if st != nil {
		span.SetAttributes(attribute.Int("grid.rows", st.Rows()), attribute.Int("grid.cols", st.Cols()))
	}

	fn, err := r.reg.Lookup(name)
	if err != nil {
		runsTotal.WithLabelValues("none", OutcomeUnknown).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.log.Warn("search refused", "algorithm", name, "error", err)
		return nil, err
	}

	begin := time.Now()
	tr, err := fn(ctx, st)
	elapsed := time.Since(begin)
	runDuration.WithLabelValues(name).Observe(elapsed.Seconds())

	outcome := classify(tr, err)
	runsTotal.WithLabelValues(name, outcome).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.log.Error("search failed", "algorithm", name, "outcome", outcome, "error", err)
		return tr, err
	}

	exploredCells.WithLabelValues(name).Observe(float64(tr.Stats.Explored))
	span.SetAttributes(
		attribute.String("trace.id", tr.ID),
		attribute.Int("trace.events", len(tr.Events)),
		attribute.Int("stats.explored", tr.Stats.Explored),
		attribute.Int("stats.cost", tr.Stats.Cost),
		attribute.Bool("found", tr.Found()),
	)
	span.SetStatus(codes.Ok, outcome)
	r.log.Info("search finished",
		"algorithm", name,
		"trace", tr.ID,
		"outcome", outcome,
		"explored", tr.Stats.Explored,
		"cost", tr.Stats.Cost,
		"length", tr.Stats.Length,
		"duration", elapsed,
	)

	return tr, nil
}

func classify(tr *trace.Trace, err error) string {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	case err != nil:
		return OutcomeError
	case tr.Found():
		return OutcomeFound
	case len(tr.Events) == 0:
		return OutcomeNoEndpoints
	default:
		return OutcomeUnreachable
	}
}
