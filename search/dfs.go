package search

import (
	ts "github.com/heal-research/treesearchlib"
	"github.com/heal-research/treesearchlib/frontier"
	"golang.org/x/exp/constraints"
)

// DepthFirst runs exhaustive depth-first branch-and-bound over a Branching
// state, visiting at most filterWidth branches per node. Pass Unbounded
// for an uncapped exhaustive search.
func DepthFirst[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], filterWidth int) (*Control[S, V], error) {
	if err := validate(checkFilterWidth(filterWidth)); err != nil {
		return c, err
	}
	c.Start()
	runDepthFirst(c, c.InitialState(), filterWidth)
	c.Finish()
	return c, nil
}

// runDepthFirst is the Start/Finish-free core shared with ParallelDepthFirst,
// each worker of which drives its own sub-root against the same Control.
func runDepthFirst[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], initial S, filterWidth int) {
	stack := frontier.NewLIFO[S]()
	stack.Store(frontier.Entry[S]{Depth: 0, Item: initial})
	for !c.ShouldStop() {
		entry, ok := stack.TryNext()
		if !ok {
			break
		}
		dfsExpand(c, stack, entry.Depth, entry.Item, filterWidth)
	}
}

// dfsExpand evaluates up to filterWidth children of state in enumeration
// order but pushes them onto stack in reverse, so the stack pops the
// first-enumerated (most preferred) branch next — preserving the
// implementer's preference order that Branches documents.
func dfsExpand[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], stack *frontier.LIFO[S], depth int, state S, filterWidth int) {
	children := takeN(state.Branches(), filterWidth)
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		// I3: capture the prune decision before VisitNode, which may
		// itself install child as the new incumbent.
		pruned := prune(c, child)
		c.VisitNode(child)
		if pruned {
			continue
		}
		stack.Store(frontier.Entry[S]{Depth: depth + 1, Item: child})
	}
}

// DepthFirstReversible runs the same algorithm over a Reversible state,
// carrying one mutable state through the whole search and backtracking via
// UndoLast instead of cloning a fresh child per branch.
func DepthFirstReversible[S ts.Reversible[S, C, V], C any, V constraints.Ordered](c *Control[S, V], filterWidth int) (*Control[S, V], error) {
	if err := validate(checkFilterWidth(filterWidth)); err != nil {
		return c, err
	}
	c.Start()
	runDepthFirstReversible(c, c.InitialState().Clone(), filterWidth)
	c.Finish()
	return c, nil
}

func runDepthFirstReversible[S ts.Reversible[S, C, V], C any, V constraints.Ordered](c *Control[S, V], state S, filterWidth int) {
	stack := frontier.NewLIFO[C]()
	depth := 0
	pushChoicesReversible(stack, state, filterWidth, depth)
	for !c.ShouldStop() {
		entry, ok := stack.TryNext()
		if !ok {
			break
		}
		// Backtrack until the carried state is the parent of entry: entry
		// was pushed at depth+1 relative to its parent, so undo while the
		// current depth is not yet one less than entry.Depth.
		for depth >= entry.Depth {
			state.UndoLast()
			depth--
		}
		state.Apply(entry.Item)
		depth++
		pruned := prune(c, state)
		c.VisitNode(state)
		if pruned {
			// Pruning a reversible state only skips generating its
			// children; backtracking still happens naturally the next
			// time a shallower frontier entry is popped. No extra
			// UndoLast is issued here.
			continue
		}
		pushChoicesReversible(stack, state, filterWidth, depth)
	}
}

func pushChoicesReversible[S ts.Reversible[S, C, V], C any, V constraints.Ordered](stack *frontier.LIFO[C], state S, filterWidth, depth int) {
	choices := takeN(state.Choices(), filterWidth)
	for i := len(choices) - 1; i >= 0; i-- {
		stack.Store(frontier.Entry[C]{Depth: depth + 1, Item: choices[i]})
	}
}
