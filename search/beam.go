package search

import (
	ts "github.com/heal-research/treesearchlib"
	"golang.org/x/exp/constraints"
)

// BeamSearchRoundRobin runs unranked beam search: a layer is expanded into
// one queue of children per parent (each capped at
// beamWidth), and the next layer is filled round-robin across those
// per-parent queues — the first branch of every parent, then the second,
// and so on — so a single fan-out-heavy parent cannot monopolize the beam.
func BeamSearchRoundRobin[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], beamWidth int) (*Control[S, V], error) {
	if err := validate(checkBeamWidth(beamWidth)); err != nil {
		return c, err
	}
	c.Start()
	runBeamSearchRoundRobin(c, c.InitialState(), beamWidth)
	c.Finish()
	return c, nil
}

func runBeamSearchRoundRobin[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], initial S, beamWidth int) {
	layer := []S{initial}
	for len(layer) > 0 && !c.ShouldStop() {
		perParent := make([][]S, 0, len(layer))
		for _, parent := range layer {
			if c.ShouldStop() {
				break
			}
			children := make([]S, 0, beamWidth)
			for child := range parent.Branches() {
				pruned := prune(c, child)
				c.VisitNode(child)
				if pruned {
					continue
				}
				children = append(children, child)
				if len(children) >= beamWidth {
					break
				}
			}
			if len(children) > 0 {
				perParent = append(perParent, children)
			}
		}
		layer = roundRobinPromote(perParent, beamWidth)
	}
}

// roundRobinPromote promotes up to beamWidth items from perParent, taking
// index 0 of every queue before index 1 of any queue, and so on.
func roundRobinPromote[S any](perParent [][]S, beamWidth int) []S {
	promoted := make([]S, 0, beamWidth)
	for i := 0; len(promoted) < beamWidth; i++ {
		progressed := false
		for _, q := range perParent {
			if i >= len(q) {
				continue
			}
			progressed = true
			promoted = append(promoted, q[i])
			if len(promoted) >= beamWidth {
				break
			}
		}
		if !progressed {
			break
		}
	}
	return promoted
}

// BeamSearch runs rank-ordered beam search: every survivor of a layer is
// gathered into one slice, stably sorted by rank (best first), and the top
// beamWidth promoted. Stability preserves Branches' enumeration order
// among ties (sort.SliceStable, via rank.go's stableSortByRank — the
// pinned golang.org/x/exp snapshot predates slices.SortStableFunc).
func BeamSearch[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], beamWidth int, rank Ranker[S, V]) (*Control[S, V], error) {
	if err := validate(checkBeamWidth(beamWidth), checkRank(rank)); err != nil {
		return c, err
	}
	c.Start()
	runBeamSearch(c, c.InitialState(), beamWidth, rank)
	c.Finish()
	return c, nil
}

func runBeamSearch[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], initial S, beamWidth int, rank Ranker[S, V]) {
	rank = rankOrDefault[S, V](rank)
	layer := []S{initial}
	for len(layer) > 0 && !c.ShouldStop() {
		var survivors []S
		for _, parent := range layer {
			if c.ShouldStop() {
				break
			}
			for child := range parent.Branches() {
				pruned := prune(c, child)
				c.VisitNode(child)
				if pruned {
					continue
				}
				survivors = append(survivors, child)
			}
		}
		stableSortByRank(survivors, rank)
		if len(survivors) > beamWidth {
			survivors = survivors[:beamWidth]
		}
		layer = survivors
	}
}
