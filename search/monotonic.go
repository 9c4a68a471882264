package search

import (
	ts "github.com/heal-research/treesearchlib"
	"golang.org/x/exp/constraints"
)

// MonotonicBeamSearch expands a single node at a time, keeps the best
// beamWidth of its (up to filterWidth) children by rank, and recurses
// depth-first into each kept child — equivalent to depth-first with a
// fan-out cap plus ranking, unlike standard beam which expands a whole
// layer before pruning.
func MonotonicBeamSearch[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], beamWidth int, rank Ranker[S, V], filterWidth int) (*Control[S, V], error) {
	if err := validate(checkBeamWidth(beamWidth), checkFilterWidth(filterWidth)); err != nil {
		return c, err
	}
	c.Start()
	monotonicStep(c, c.InitialState(), beamWidth, rankOrDefault[S, V](rank), filterWidth)
	c.Finish()
	return c, nil
}

func monotonicStep[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], state S, beamWidth int, rank Ranker[S, V], filterWidth int) {
	if c.ShouldStop() {
		return
	}
	var survivors []S
	for _, child := range takeN(state.Branches(), filterWidth) {
		pruned := prune(c, child)
		c.VisitNode(child)
		if pruned {
			continue
		}
		survivors = append(survivors, child)
	}
	stableSortByRank(survivors, rank)
	if len(survivors) > beamWidth {
		survivors = survivors[:beamWidth]
	}
	for _, child := range survivors {
		monotonicStep(c, child, beamWidth, rank, filterWidth)
	}
}
