package search

import (
	"iter"

	ts "github.com/heal-research/treesearchlib"
	"golang.org/x/exp/constraints"
)

// Adapted wraps a Reversible state as a Branching one, cloning on every
// branch instead of mutating in place. It trades away
// UndoLast's efficiency for reuse of any algorithm written against
// Branching — most usefully MCTS, which only operates on Branching states.
type Adapted[S ts.Reversible[S, C, V], C any, V constraints.Ordered] struct {
	inner S
}

// Adapt wraps state for consumption by a Branching algorithm.
func Adapt[S ts.Reversible[S, C, V], C any, V constraints.Ordered](state S) Adapted[S, C, V] {
	return Adapted[S, C, V]{inner: state}
}

// Inner returns the wrapped reversible state.
func (a Adapted[S, C, V]) Inner() S { return a.inner }

func (a Adapted[S, C, V]) IsTerminal() bool             { return a.inner.IsTerminal() }
func (a Adapted[S, C, V]) Bound() ts.Quality[V]         { return a.inner.Bound() }
func (a Adapted[S, C, V]) Quality() (ts.Quality[V], bool) { return a.inner.Quality() }

// Clone deep-copies the wrapped state.
func (a Adapted[S, C, V]) Clone() Adapted[S, C, V] {
	return Adapted[S, C, V]{inner: a.inner.Clone()}
}

// Branches yields, for every choice available from the wrapped state, a
// fresh clone with that choice applied.
func (a Adapted[S, C, V]) Branches() iter.Seq[Adapted[S, C, V]] {
	return func(yield func(Adapted[S, C, V]) bool) {
		for choice := range a.inner.Choices() {
			child := a.inner.Clone()
			child.Apply(choice)
			if !yield(Adapted[S, C, V]{inner: child}) {
				return
			}
		}
	}
}
