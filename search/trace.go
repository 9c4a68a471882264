package search

import (
	"fmt"
	"sync"

	ts "github.com/heal-research/treesearchlib"
	"golang.org/x/exp/constraints"
)

// traceEntry is one recorded branch-and-bound decision: the state it
// examined (rendered via fmt, since states need not implement
// fmt.Stringer), whether it was pruned, and the incumbent quality at the
// time it was visited (nil if none had been found yet).
type traceEntry[V constraints.Ordered] struct {
	parent  int
	pruned  bool
	quality *ts.Quality[V]
	label   string
}

// traceRecorder accumulates traceEntry values for one search run, guarded
// by its own mutex so recording never contends with Control's incumbent
// lock.
type traceRecorder[V constraints.Ordered] struct {
	mu      sync.Mutex
	enabled bool
	entries []traceEntry[V]
}

// WithTraceRecording opts c into recording a branch-and-bound trace for
// RecordedDepthFirst, inspectable afterwards via c.Trace() and renderable
// as Graphviz DOT via treesearchlib/treeviz.DOT. Purely a debugging aid —
// no other algorithm is affected, and search correctness never depends on
// it.
func (c *Control[S, V]) WithTraceRecording() *Control[S, V] {
	c.trace.mu.Lock()
	c.trace.enabled = true
	c.trace.mu.Unlock()
	return c
}

func (c *Control[S, V]) recordTrace(parent int, state S, pruned bool, q *ts.Quality[V]) int {
	c.trace.mu.Lock()
	defer c.trace.mu.Unlock()
	if !c.trace.enabled {
		return -1
	}
	id := len(c.trace.entries)
	c.trace.entries = append(c.trace.entries, traceEntry[V]{
		parent:  parent,
		pruned:  pruned,
		quality: q,
		label:   fmt.Sprintf("%v", state),
	})
	return id
}

// Trace is an immutable snapshot of a recorded branch-and-bound run. It
// implements treesearchlib/treeviz.Tree so it can be rendered directly.
type Trace[V constraints.Ordered] struct {
	entries []traceEntry[V]
}

// Trace returns a snapshot of c's recorded trace, or an empty Trace if
// WithTraceRecording was never called.
func (c *Control[S, V]) Trace() Trace[V] {
	c.trace.mu.Lock()
	defer c.trace.mu.Unlock()
	cp := make([]traceEntry[V], len(c.trace.entries))
	copy(cp, c.trace.entries)
	return Trace[V]{entries: cp}
}

// NodeCount implements treeviz.Tree.
func (t Trace[V]) NodeCount() int { return len(t.entries) }

// Label implements treeviz.Tree.
func (t Trace[V]) Label(id int) string {
	e := t.entries[id]
	if e.pruned {
		return e.label + " [pruned]"
	}
	if e.quality != nil {
		return fmt.Sprintf("%s (best: %v)", e.label, e.quality.Value)
	}
	return e.label
}

// Parent implements treeviz.Tree.
func (t Trace[V]) Parent(id int) (int, bool) {
	p := t.entries[id].parent
	if p < 0 {
		return 0, false
	}
	return p, true
}

// Children returns the ids of the recorded children of id, in recording
// order.
func (t Trace[V]) Children(id int) []int {
	var kids []int
	for i, e := range t.entries {
		if e.parent == id {
			kids = append(kids, i)
		}
	}
	return kids
}

// RecordedDepthFirst runs the same algorithm as DepthFirst, recursively
// rather than over an explicit frontier, so every decision can be linked
// to its parent for c.Trace(). Prefer DepthFirst for production searches;
// this variant exists for offline inspection of small instances.
func RecordedDepthFirst[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], filterWidth int) (*Control[S, V], error) {
	if err := validate(checkFilterWidth(filterWidth)); err != nil {
		return c, err
	}
	c.Start()
	recordedDFS(c, c.InitialState(), filterWidth, -1)
	c.Finish()
	return c, nil
}

func recordedDFS[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], state S, filterWidth int, parentTraceID int) {
	for _, child := range takeN(state.Branches(), filterWidth) {
		if c.ShouldStop() {
			return
		}
		pruned := prune(c, child)
		c.VisitNode(child)
		id := c.recordTrace(parentTraceID, child, pruned, c.BestQuality())
		if pruned {
			continue
		}
		recordedDFS(c, child, filterWidth, id)
	}
}
