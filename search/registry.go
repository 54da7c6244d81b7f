// Package search maps strategy names to implementations and runs them with
// logging, Prometheus metrics and OpenTelemetry spans.
//
// Every strategy shares the signature Func: it takes an immutable
// grid.State and returns a trace.Trace. An unknown name is the only hard
// error the lookup can produce.
package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/gridtrace/bfs"
	"github.com/katalvlaran/gridtrace/dfs"
	"github.com/katalvlaran/gridtrace/grid"
	"github.com/katalvlaran/gridtrace/trace"
	"github.com/katalvlaran/gridtrace/ucs"
)

// ErrUnknownStrategy is returned when a name has no registered strategy.
var ErrUnknownStrategy = errors.New("search: unknown strategy")

// ErrDuplicateStrategy is returned when registering a name twice.
var ErrDuplicateStrategy = errors.New("search: strategy already registered")

// Func runs one search over st.
type Func func(ctx context.Context, st *grid.State) (*trace.Trace, error)

// Registry is a concurrency-safe name → Func table.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry returns a registry holding bfs, dfs and ucs.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}
	_ = r.Register(bfs.Name, func(ctx context.Context, st *grid.State) (*trace.Trace, error) {
		return bfs.Run(st, bfs.WithContext(ctx))
	})
	_ = r.Register(dfs.Name, func(ctx context.Context, st *grid.State) (*trace.Trace, error) {
		return dfs.Run(st, dfs.WithContext(ctx))
	})
	_ = r.Register(ucs.Name, func(ctx context.Context, st *grid.State) (*trace.Trace, error) {
		return ucs.Run(st, ucs.WithContext(ctx))
	})

	return r
}

// Register adds fn under name.
func (r *Registry) Register(name string, fn Func) error {
	if fn == nil {
		return fmt.Errorf("search: nil strategy %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.funcs[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateStrategy, name)
	}
	r.funcs[name] = fn

	return nil
}

// Lookup returns the strategy registered under name.
func (r *Registry) Lookup(name string) (Func, error) {
	r.mu.RLock()
	fn, ok := r.funcs[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return fn, nil
}

// Names lists registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.funcs))
	for n := range r.funcs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}
