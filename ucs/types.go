// Package ucs defines options and errors for uniform-cost search on a
// weighted grid.
//
// Uniform-cost search is Dijkstra's algorithm stopped at a single goal.
// Entering a cell costs that cell's traversal cost; walls are impassable.
//
// Complexity (N = rows×cols):
//
//   - Time:  O(N log N), each relaxation may push one heap entry.
//   - Space: O(N) for best-cost table and parents, O(N) heap entries in
//     the worst case (lazy decrease-key).
package ucs

import (
	"context"
	"errors"

	"github.com/katalvlaran/gridtrace/trace"
)

// Name is the registry name of this strategy.
const Name = "ucs"

// ErrGridNil indicates that a nil grid state was passed to Run.
var ErrGridNil = errors.New("ucs: grid state is nil")

// Options configures a UCS run.
type Options struct {
	Ctx     context.Context   // cancellation, checked once per pop
	OnEvent func(trace.Event) // called after every emitted event
}

// Option represents a functional option for configuring UCS.
type Option func(*Options)

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context used for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEvent installs an event hook.
func WithOnEvent(fn func(trace.Event)) Option {
	return func(o *Options) {
		o.OnEvent = fn
	}
}
