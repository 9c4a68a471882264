package search

import (
	ts "github.com/heal-research/treesearchlib"
	"golang.org/x/exp/constraints"
)

// PilotMethod advances the real state one branch at a time: for each
// candidate branch from the current state, a bounded lookahead (a beam
// search of width beamWidth) is run to produce a full solution, and the
// branch whose lookahead produced the best terminal quality is committed
// to. With a nil rank the lookahead keeps survivors in enumeration order,
// so it degenerates to greedy depth-first when beamWidth == 1 and rank is nil.
func PilotMethod[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], beamWidth int, rank Ranker[S, V]) (*Control[S, V], error) {
	if err := validate(checkBeamWidth(beamWidth)); err != nil {
		return c, err
	}
	c.Start()
	current := c.InitialState()
	for !current.IsTerminal() && !c.ShouldStop() {
		var bestChild S
		var bestQuality *ts.Quality[V]
		found := false
		for child := range current.Branches() {
			if c.ShouldStop() {
				break
			}
			pruned := prune(c, child)
			c.VisitNode(child)
			if pruned {
				continue
			}
			q, ok := pilotLookahead(c, child, beamWidth, rank)
			if !ok {
				continue
			}
			if q.IsBetterThan(bestQuality) {
				cp := q
				bestQuality = &cp
				bestChild = child
				found = true
			}
		}
		if !found {
			break
		}
		current = bestChild
	}
	c.Finish()
	return c, nil
}

// pilotLookahead runs a beam search of width beamWidth from start and
// returns the best terminal quality encountered during that lookahead
// alone. Every visited child is still reported to c (so the shared
// incumbent and node counter see every state the lookahead touches), but
// the returned quality is local to this call, independent of c's incumbent.
func pilotLookahead[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], start S, beamWidth int, rank Ranker[S, V]) (ts.Quality[V], bool) {
	var localBest *ts.Quality[V]
	if q, ok := start.Quality(); ok && start.IsTerminal() {
		cp := q
		localBest = &cp
	}
	layer := []S{start}
	for len(layer) > 0 && !c.ShouldStop() {
		var survivors []S
		for _, parent := range layer {
			if c.ShouldStop() {
				break
			}
			for child := range parent.Branches() {
				pruned := prune(c, child)
				c.VisitNode(child)
				if q, ok := child.Quality(); ok && child.IsTerminal() {
					if q.IsBetterThan(localBest) {
						cp := q
						localBest = &cp
					}
				}
				if pruned {
					continue
				}
				survivors = append(survivors, child)
			}
		}
		if rank != nil {
			stableSortByRank(survivors, rank)
		}
		if len(survivors) > beamWidth {
			survivors = survivors[:beamWidth]
		}
		layer = survivors
	}
	if localBest == nil {
		var zero ts.Quality[V]
		return zero, false
	}
	return *localBest, true
}
