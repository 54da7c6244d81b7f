// Package bfs provides options and error definitions for breadth-first
// search over a grid.State.
package bfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridtrace/trace"
)

// Name is the registry name of this strategy.
const Name = "bfs"

// ErrGridNil is returned if a nil grid state is passed.
var ErrGridNil = errors.New("bfs: grid state is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a BFS run.
type Options struct {
	// Ctx allows cancellation. It is checked once per dequeued position.
	Ctx context.Context

	// OnEvent is called after each event is appended to the trace.
	OnEvent func(trace.Event)
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEvent registers a callback run for every emitted event.
func WithOnEvent(fn func(trace.Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEvent = fn
		}
	}
}
