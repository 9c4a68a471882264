package search

import (
	ts "github.com/heal-research/treesearchlib"
	"golang.org/x/exp/constraints"
)

// NaiveLDS enumerates paths in increasing-discrepancy order: a pass with
// budget d visits every path that deviates from the first-yielded branch at
// most d times in total, for d = 0, 1, ..., maxDiscrepancy. Shallow nodes
// are intentionally re-walked on every widening pass.
func NaiveLDS[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], maxDiscrepancy int) (*Control[S, V], error) {
	c.Start()
	for disc := 0; disc <= maxDiscrepancy && !c.ShouldStop(); disc++ {
		ldsStep(c, c.InitialState(), disc)
	}
	c.Finish()
	return c, nil
}

// AnytimeLDS runs naive LDS passes with an ever-increasing discrepancy
// budget (0, 1, 2, ...) until cancelled, or until maxDiscrepancy is
// exceeded if maxDiscrepancy > 0. Each pass establishes an incumbent before
// the next widens the search.
func AnytimeLDS[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], maxDiscrepancy int) (*Control[S, V], error) {
	c.Start()
	for disc := 0; !c.ShouldStop(); disc++ {
		if maxDiscrepancy > 0 && disc > maxDiscrepancy {
			break
		}
		ldsStep(c, c.InitialState(), disc)
	}
	c.Finish()
	return c, nil
}

// ldsStep recursively explores state's descendants, charging one
// discrepancy for every branch after the first-yielded (the "default")
// one, and never exceeding the remaining budget.
func ldsStep[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], state S, budget int) {
	if c.ShouldStop() {
		return
	}
	i := 0
	for child := range state.Branches() {
		if c.ShouldStop() {
			return
		}
		cost := 0
		if i > 0 {
			cost = 1
		}
		i++
		if cost > budget {
			continue
		}
		pruned := prune(c, child)
		c.VisitNode(child)
		if pruned {
			continue
		}
		ldsStep(c, child, budget-cost)
	}
}
