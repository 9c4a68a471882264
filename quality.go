// Package treesearchlib is a library for solving discrete combinatorial
// optimization problems by modeling them as search trees and applying a
// family of tree-search algorithms to them.
//
// A problem is modeled as a state implementing Branching or Reversible
// (see state.go); the search algorithms live in the search subpackage and
// are driven by a search.Control that owns the incumbent, the node counter,
// the timer and the cancellation signal.
package treesearchlib

import "golang.org/x/exp/constraints"

// Sense is the direction in which a Quality improves.
type Sense int

const (
	// Minimize means smaller values are better.
	Minimize Sense = iota
	// Maximize means larger values are better.
	Maximize
)

// String implements fmt.Stringer.
func (s Sense) String() string {
	if s == Maximize {
		return "Maximize"
	}
	return "Minimize"
}

// Quality is an immutable, totally ordered scalar with a sense of
// improvement. It is the sole currency the search engine uses to compare
// partial and complete solutions; states never expose anything else.
type Quality[V constraints.Ordered] struct {
	Value V
	Sense Sense
}

// Min builds a Minimize-sense quality: smaller Value is better.
func Min[V constraints.Ordered](v V) Quality[V] {
	return Quality[V]{Value: v, Sense: Minimize}
}

// Max builds a Maximize-sense quality: larger Value is better.
func Max[V constraints.Ordered](v V) Quality[V] {
	return Quality[V]{Value: v, Sense: Maximize}
}

// IsBetterThan reports whether q is strictly better than other. A nil other
// is always worse than any q — this is what lets a fresh Control (with no
// incumbent yet) accept its first candidate.
func (q Quality[V]) IsBetterThan(other *Quality[V]) bool {
	if other == nil {
		return true
	}
	if q.Sense == Minimize {
		return q.Value < other.Value
	}
	return q.Value > other.Value
}

// Clone returns q; Quality values are plain data and never need a deep copy.
func (q Quality[V]) Clone() Quality[V] { return q }
