// Package dfs defines options and errors for depth-first search over a
// grid.State.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridtrace/trace"
)

// Name is the registry name of this strategy.
const Name = "dfs"

// ErrGridNil is returned when a nil grid state is passed to Run.
var ErrGridNil = errors.New("dfs: grid state is nil")

// Option configures optional behavior of a DFS run.
type Option func(*Options)

// Options holds configurable parameters for a DFS run.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnEvent, if non-nil, is invoked after every emitted event.
	OnEvent func(trace.Event)
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for the run.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEvent returns an Option that installs fn as the event hook.
func WithOnEvent(fn func(trace.Event)) Option {
	return func(o *Options) {
		o.OnEvent = fn
	}
}
