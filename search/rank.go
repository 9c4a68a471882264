package search

import (
	"sort"

	ts "github.com/heal-research/treesearchlib"
	"golang.org/x/exp/constraints"
)

// Ranker reports whether a should be promoted ahead of b. It is used to
// stably sort layer survivors in BeamSearch, MonotonicBeamSearch,
// RakeAndBeamSearch and PilotMethod's lookahead.
type Ranker[S any, V constraints.Ordered] func(a, b S) bool

// defaultRank orders states by their bound, best bound first.
// MonotonicBeamSearch falls back to it when given a nil Ranker; the other
// algorithms that accept a nil Ranker do not rank at all in that case.
func defaultRank[S ts.Qualifiable[V], V constraints.Ordered](a, b S) bool {
	ba, bb := a.Bound(), b.Bound()
	return ba.IsBetterThan(&bb)
}

// rankOrDefault resolves a possibly-nil Ranker to a usable one.
func rankOrDefault[S ts.Qualifiable[V], V constraints.Ordered](rank Ranker[S, V]) Ranker[S, V] {
	if rank != nil {
		return rank
	}
	return defaultRank[S, V]
}

// stableSortByRank stably sorts items by rank, best first. Stability
// preserves the enumeration order of Branches() among ties.
func stableSortByRank[S any, V constraints.Ordered](items []S, rank Ranker[S, V]) {
	sort.SliceStable(items, func(i, j int) bool {
		return rank(items[i], items[j])
	})
}
