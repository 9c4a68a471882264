package search

import (
	ts "github.com/heal-research/treesearchlib"
	"github.com/heal-research/treesearchlib/frontier"
	"golang.org/x/exp/constraints"
)

// BreadthFirst runs exhaustive breadth-first branch-and-bound over a
// Branching state, capped by filterWidth per node and depthLimit overall.
func BreadthFirst[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], filterWidth, depthLimit int) (*Control[S, V], error) {
	if err := validate(checkFilterWidth(filterWidth), checkDepthLimit(depthLimit)); err != nil {
		return c, err
	}
	c.Start()
	runBreadthFirst(c, c.InitialState(), filterWidth, depthLimit)
	c.Finish()
	return c, nil
}

func runBreadthFirst[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], initial S, filterWidth, depthLimit int) {
	queue := frontier.NewFIFO[S]()
	queue.Store(frontier.Entry[S]{Depth: 0, Item: initial})
	for !c.ShouldStop() {
		entry, ok := queue.TryNext()
		if !ok {
			break
		}
		if entry.Depth >= depthLimit {
			continue
		}
		for _, child := range takeN(entry.Item.Branches(), filterWidth) {
			pruned := prune(c, child)
			c.VisitNode(child)
			if pruned {
				continue
			}
			queue.Store(frontier.Entry[S]{Depth: entry.Depth + 1, Item: child})
		}
	}
}

// BreadthFirstReversible runs the same algorithm over a Reversible state. A
// mutable state cannot be shared across sibling branches the way it can in
// depth-first, so every child is produced by Clone + Apply.
func BreadthFirstReversible[S ts.Reversible[S, C, V], C any, V constraints.Ordered](c *Control[S, V], filterWidth, depthLimit int) (*Control[S, V], error) {
	if err := validate(checkFilterWidth(filterWidth), checkDepthLimit(depthLimit)); err != nil {
		return c, err
	}
	c.Start()
	runBreadthFirstReversible(c, c.InitialState().Clone(), filterWidth, depthLimit)
	c.Finish()
	return c, nil
}

func runBreadthFirstReversible[S ts.Reversible[S, C, V], C any, V constraints.Ordered](c *Control[S, V], initial S, filterWidth, depthLimit int) {
	queue := frontier.NewFIFO[S]()
	queue.Store(frontier.Entry[S]{Depth: 0, Item: initial})
	for !c.ShouldStop() {
		entry, ok := queue.TryNext()
		if !ok {
			break
		}
		if entry.Depth >= depthLimit {
			continue
		}
		for _, choice := range takeN(entry.Item.Choices(), filterWidth) {
			child := entry.Item.Clone()
			child.Apply(choice)
			pruned := prune(c, child)
			c.VisitNode(child)
			if pruned {
				continue
			}
			queue.Store(frontier.Entry[S]{Depth: entry.Depth + 1, Item: child})
		}
	}
}
