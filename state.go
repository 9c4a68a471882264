package treesearchlib

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Qualifiable is the capability shared by both state flavors: every state,
// terminal or not, can report whether it is a leaf, an optimistic bound on
// any completion reachable from it, and (optionally) a concrete quality.
//
// Bound is the sole pruning contract: no descendant of a state may ever
// report a quality strictly better than that state's Bound(). The search
// engine trusts this invariant completely and never re-derives it.
type Qualifiable[V constraints.Ordered] interface {
	// IsTerminal reports whether this state is a leaf of the search tree.
	IsTerminal() bool

	// Bound returns an optimistic estimate of any completion from this
	// state. It must be defined for every state, terminal or not.
	Bound() Quality[V]

	// Quality returns the state's concrete quality, if it has one. A
	// terminal state MUST return ok == true; a non-terminal state MAY.
	Quality() (q Quality[V], ok bool)
}

// Branching is a state that fans out into independent child states without
// mutating itself. S is the concrete state type; it must itself satisfy
// Branching[S, V] — the self-reference lets Clone and Branches return the
// concrete type instead of an erased interface.
type Branching[S any, V constraints.Ordered] interface {
	Qualifiable[V]

	// Clone returns a deep, independent copy of the state.
	Clone() S

	// Branches lazily yields every child of this state. The sequence is
	// finite. Enumeration order conveys the implementer's preference — the
	// first state yielded is the "default" choice that limited-discrepancy
	// search measures deviations against, and the branch-and-bound
	// algorithms preserve it when pushing onto the frontier.
	Branches() iter.Seq[S]
}

// Reversible is a state that is explored by mutating it in place and
// undoing the mutation on backtrack, trading a cheap Clone for cheap
// Apply/UndoLast. C is the type of a single choice.
type Reversible[S any, C any, V constraints.Ordered] interface {
	Qualifiable[V]

	// Clone returns a deep, independent copy of the state.
	Clone() S

	// Choices lazily yields the choices available from the current state.
	// The result may depend on the state at the time Choices is called.
	Choices() iter.Seq[C]

	// Apply advances the state in place by the given choice.
	Apply(c C)

	// UndoLast reverts the most recent Apply exactly: for any choice c
	// obtained from Choices(), Apply(c) followed by UndoLast() must leave
	// the state observationally identical to what it was before Apply.
	UndoLast()
}
