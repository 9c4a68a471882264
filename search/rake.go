package search

import (
	ts "github.com/heal-research/treesearchlib"
	"github.com/heal-research/treesearchlib/frontier"
	"golang.org/x/exp/constraints"
)

// RakeSearch expands the root breadth-first up to exactly rakeWidth
// frontier states, then runs an independent greedy depth-first search
// (filterWidth 1) from each to completion, diversifying starts before
// committing to a heuristic.
func RakeSearch[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], rakeWidth int) (*Control[S, V], error) {
	if err := validate(checkRakeWidth(rakeWidth)); err != nil {
		return c, err
	}
	c.Start()
	for _, state := range expandRake(c, rakeWidth) {
		if c.ShouldStop() {
			break
		}
		greedyDescend(c, state)
	}
	c.Finish()
	return c, nil
}

// RakeAndBeamSearch replaces the greedy tail with a beam search of width
// beamWidth from each raked state: round-robin when rank is nil, ranked
// otherwise.
func RakeAndBeamSearch[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], rakeWidth, beamWidth int, rank Ranker[S, V]) (*Control[S, V], error) {
	if err := validate(checkRakeWidth(rakeWidth), checkBeamWidth(beamWidth)); err != nil {
		return c, err
	}
	c.Start()
	for _, state := range expandRake(c, rakeWidth) {
		if c.ShouldStop() {
			break
		}
		if rank == nil {
			runBeamSearchRoundRobin(c, state, beamWidth)
		} else {
			runBeamSearch(c, state, beamWidth, rank)
		}
	}
	c.Finish()
	return c, nil
}

// expandRake runs a breadth-first expansion until the frontier holds
// exactly rakeWidth states (or fewer, if the tree is too shallow/narrow or
// every candidate was pruned — this is best-effort, and logs when it falls
// short rather than silently returning a smaller rake than requested).
func expandRake[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], rakeWidth int) []S {
	queue := frontier.NewFIFO[S]()
	queue.Store(frontier.Entry[S]{Depth: 0, Item: c.InitialState()})
	for queue.Len() > 0 && queue.Len() < rakeWidth && !c.ShouldStop() {
		entry, ok := queue.TryNext()
		if !ok {
			break
		}
		expanded := false
		for child := range entry.Item.Branches() {
			pruned := prune(c, child)
			c.VisitNode(child)
			if pruned {
				continue
			}
			queue.Store(frontier.Entry[S]{Depth: entry.Depth + 1, Item: child})
			expanded = true
		}
		if !expanded {
			// A dead end: put it back so it still counts as a rake state
			// rather than silently vanishing from the frontier.
			queue.Store(entry)
			break
		}
	}
	result := make([]S, 0, rakeWidth)
	for len(result) < rakeWidth {
		entry, ok := queue.TryNext()
		if !ok {
			break
		}
		result = append(result, entry.Item)
	}
	if len(result) < rakeWidth {
		c.log("rake: requested %d frontier states, produced %d", rakeWidth, len(result))
	}
	return result
}

// greedyDescend runs a single-path greedy depth-first descent (filterWidth
// 1) from state to completion, sharing c's incumbent and node counter.
func greedyDescend[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], state S) {
	current := state
	for !current.IsTerminal() && !c.ShouldStop() {
		next, ok := firstViableChild(c, current)
		if !ok {
			return
		}
		current = next
	}
}

func firstViableChild[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], state S) (S, bool) {
	for child := range state.Branches() {
		pruned := prune(c, child)
		c.VisitNode(child)
		if pruned {
			continue
		}
		return child, true
	}
	var zero S
	return zero, false
}
