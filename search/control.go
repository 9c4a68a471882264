package search

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	ts "github.com/heal-research/treesearchlib"
	"golang.org/x/exp/constraints"
)

// Control is the run-scoped object every search algorithm drives: it owns
// the incumbent, the node counter, the clock and the cancellation signal,
// and enforces the prune-before-visit invariant's bookkeeping half — the
// prune decision itself is each algorithm's responsibility, taken before
// calling VisitNode.
//
// A Control is created once per search run via New and is safe for
// concurrent use by the Parallel* algorithm variants: bestQuality/bestState
// are guarded by mu, visitedNodes is an atomic counter.
type Control[S ts.Qualifiable[V], V constraints.Ordered] struct {
	initialState S

	mu          sync.Mutex
	bestQuality *ts.Quality[V]
	bestState   *S
	callback    func(*Control[S, V], S, ts.Quality[V])

	visitedNodes atomic.Uint64

	start        time.Time
	elapsed      time.Duration
	runtimeLimit time.Duration
	nodeLimit    uint64
	cancel       context.Context

	running  atomic.Bool
	finished atomic.Bool

	logger *log.Logger

	// mctsResult holds the *mctsTree[S,V] built by the most recent
	// MCTS/ParallelMCTS run, type-erased so Control doesn't need to know
	// about MCTS's stricter V constraints.Integer constraint. Guarded by
	// mu alongside bestQuality/bestState.
	mctsResult any

	trace traceRecorder[V]
}

// New creates a fresh Control over initial, with no incumbent.
func New[S ts.Qualifiable[V], V constraints.Ordered](initial S) *Control[S, V] {
	return &Control[S, V]{initialState: initial}
}

// InitialState returns the state the Control was created with.
func (c *Control[S, V]) InitialState() S { return c.initialState }

// WithUpperBound seeds the incumbent quality without recording a state,
// tightening pruning from the outset.
func (c *Control[S, V]) WithUpperBound(q ts.Quality[V]) *Control[S, V] {
	c.bestQuality = &q
	return c
}

// WithRuntimeLimit caps wall-clock time spent searching.
func (c *Control[S, V]) WithRuntimeLimit(d time.Duration) *Control[S, V] {
	c.runtimeLimit = d
	return c
}

// WithNodeLimit makes ShouldStop report true once VisitNode has processed
// at least n nodes. VisitNode itself never refuses a node, so an algorithm
// that checks ShouldStop between expansions can overshoot n by the nodes of
// one expansion.
func (c *Control[S, V]) WithNodeLimit(n uint64) *Control[S, V] {
	c.nodeLimit = n
	return c
}

// WithCancellation wires a cooperative, level-triggered cancellation
// signal: once ctx.Done() fires, ShouldStop reports true forever after.
func (c *Control[S, V]) WithCancellation(ctx context.Context) *Control[S, V] {
	c.cancel = ctx
	return c
}

// WithImprovementCallback registers fn to be invoked, serialized, every
// time the incumbent improves. fn MUST NOT call back into c: it runs
// inside the incumbent's critical section and re-entrancy will deadlock.
func (c *Control[S, V]) WithImprovementCallback(fn func(*Control[S, V], S, ts.Quality[V])) *Control[S, V] {
	c.callback = fn
	return c
}

// WithLogger attaches a logger the algorithms use for terse progress
// lines; nil (the default) disables logging entirely.
func (c *Control[S, V]) WithLogger(l *log.Logger) *Control[S, V] {
	c.logger = l
	return c
}

func (c *Control[S, V]) log(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

// Start marks the run as under way and starts the clock. Algorithms call
// this once, before their first VisitNode.
func (c *Control[S, V]) Start() {
	c.start = time.Now()
	c.running.Store(true)
}

// Finish freezes the clock and marks the run finished. Algorithms call
// this exactly once, after their loop exits for any reason.
func (c *Control[S, V]) Finish() {
	if !c.finished.CompareAndSwap(false, true) {
		return
	}
	c.elapsed = time.Since(c.start)
	c.running.Store(false)
}

// HasRunTermination reports whether at least one termination condition
// (runtime limit, node limit, or cancellation) has been configured. MCTS
// requires this before it will start, since it would otherwise run forever.
func (c *Control[S, V]) HasRunTermination() bool {
	return c.runtimeLimit > 0 || c.nodeLimit > 0 || c.cancel != nil
}

// VisitNode increments the node counter and, if state carries a concrete
// quality, attempts to install it as the new incumbent. Must be called
// exactly once per state inspected, and the prune decision for that state
// must have been captured before this call (I3).
func (c *Control[S, V]) VisitNode(state S) {
	c.visitedNodes.Add(1)
	q, ok := state.Quality()
	if !ok {
		return
	}
	c.tryImprove(state, q)
}

func (c *Control[S, V]) tryImprove(state S, q ts.Quality[V]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !q.IsBetterThan(c.bestQuality) {
		return
	}
	cloned := state.Clone()
	c.bestQuality = &q
	c.bestState = &cloned
	if c.callback != nil {
		c.callback(c, cloned, q)
	}
}

// BestQuality returns the best quality found so far, or nil if no state
// with a concrete quality has been visited yet.
func (c *Control[S, V]) BestQuality() *ts.Quality[V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bestQuality == nil {
		return nil
	}
	cp := *c.bestQuality
	return &cp
}

// BestQualityState returns the incumbent state, deep-cloned at the time it
// was captured, or ok == false if no incumbent has been found.
func (c *Control[S, V]) BestQualityState() (state S, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.bestState == nil {
		var zero S
		return zero, false
	}
	return *c.bestState, true
}

// VisitedNodes returns the number of nodes VisitNode has processed.
func (c *Control[S, V]) VisitedNodes() uint64 { return c.visitedNodes.Load() }

// Elapsed returns the wall-clock time spent searching. While the run is
// still active this is measured against the current time; once Finish has
// run the value is frozen.
func (c *Control[S, V]) Elapsed() time.Duration {
	if c.finished.Load() {
		return c.elapsed
	}
	if c.start.IsZero() {
		return 0
	}
	return time.Since(c.start)
}

// IsFinished reports whether Finish has been called.
func (c *Control[S, V]) IsFinished() bool { return c.finished.Load() }

// ShouldStop reports whether any termination trigger has fired (I4):
// finished, cancelled, past the runtime limit, or at/over the node limit.
func (c *Control[S, V]) ShouldStop() bool {
	if c.finished.Load() {
		return true
	}
	if c.cancel != nil && c.cancel.Err() != nil {
		return true
	}
	if c.runtimeLimit > 0 && c.Elapsed() > c.runtimeLimit {
		return true
	}
	if c.nodeLimit > 0 && c.visitedNodes.Load() >= c.nodeLimit {
		return true
	}
	return false
}

// setMCTSResult stores the most recently built MCTS tree under lock.
func (c *Control[S, V]) setMCTSResult(tree any) {
	c.mu.Lock()
	c.mctsResult = tree
	c.mu.Unlock()
}

// getMCTSResult retrieves the most recently stored MCTS tree under lock.
func (c *Control[S, V]) getMCTSResult() any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mctsResult
}

// bestQualitySnapshot returns the raw incumbent pointer under lock, for
// internal callers (e.g. the prune check) that need to compare against it
// without paying for a defensive copy on every single child.
func (c *Control[S, V]) bestQualitySnapshot() *ts.Quality[V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bestQuality
}

// prune captures the I3 decision for child: true iff child's bound is not
// strictly better than the current incumbent. Must be called before
// VisitNode(child).
func prune[S ts.Qualifiable[V], V constraints.Ordered](c *Control[S, V], child S) bool {
	bound := child.Bound()
	return !bound.IsBetterThan(c.bestQualitySnapshot())
}
