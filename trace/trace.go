// Package trace defines the replayable record of one search invocation:
// an ordered list of discovery and finalization events, the reconstructed
// path and the final statistics.
//
// A Trace is produced once per search and is immutable afterwards. The
// replay package consumes it without knowing which strategy produced it.
package trace

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridtrace/grid"
)

// Kind tags a search event.
type Kind uint8

const (
	// Root marks the start position before the search loop begins.
	Root Kind = iota
	// Frontier marks a position discovered and added to the frontier.
	Frontier
	// Explore marks a position removed from the frontier and finalized.
	Explore
)

// String returns the lower-case event name.
func (k Kind) String() string {
	switch k {
	case Root:
		return "root"
	case Frontier:
		return "frontier"
	case Explore:
		return "explore"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Event is one step of the search evolution.
//
// Parent is meaningful only when HasParent is true (Frontier events).
// StepCost and CumulativeCost are meaningful only when Costed is true
// (events emitted by cost-aware strategies).
type Event struct {
	Kind           Kind
	Node           grid.Pos
	Parent         grid.Pos
	HasParent      bool
	StepCost       int
	CumulativeCost int
	Costed         bool
}

// String renders the event compactly, e.g. "frontier (1,2)<-(1,1) +5=7".
func (e Event) String() string {
	s := e.Kind.String() + " " + e.Node.String()
	if e.HasParent {
		s += "<-" + e.Parent.String()
	}
	if e.Costed {
		if e.Kind == Frontier {
			s += fmt.Sprintf(" +%d", e.StepCost)
		}
		s += fmt.Sprintf("=%d", e.CumulativeCost)
	}

	return s
}

// Stats summarizes a search: explored positions, path cost and path length
// (hop count).
type Stats struct {
	Explored int
	Cost     int
	Length   int
}

// Trace is the full outcome of a search invocation.
type Trace struct {
	// ID uniquely identifies this invocation.
	ID string
	// Algorithm names the strategy that produced the trace.
	Algorithm string
	// Events in strict emission order.
	Events []Event
	// Path from start to end inclusive; empty when the end is unreachable
	// or an endpoint is missing.
	Path []grid.Pos
	// Stats of the completed search.
	Stats Stats
}

// New returns an empty trace tagged with a fresh ID.
func New(algorithm string) *Trace {
	return &Trace{
		ID:        uuid.NewString(),
		Algorithm: algorithm,
		Events:    []Event{},
		Path:      []grid.Pos{},
	}
}

// Len returns the length of the virtual replay sequence: events then path.
func (t *Trace) Len() int { return len(t.Events) + len(t.Path) }

// Found reports whether the search reached the end.
func (t *Trace) Found() bool { return len(t.Path) > 0 }

// Count returns how many events of kind k the trace holds.
func (t *Trace) Count(k Kind) int {
	n := 0
	for _, e := range t.Events {
		if e.Kind == k {
			n++
		}
	}

	return n
}

// Nodes returns the nodes of all events of kind k, in emission order.
func (t *Trace) Nodes(k Kind) []grid.Pos {
	out := make([]grid.Pos, 0, len(t.Events))
	for _, e := range t.Events {
		if e.Kind == k {
			out = append(out, e.Node)
		}
	}

	return out
}
