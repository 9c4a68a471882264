package search

import (
	"fmt"

	"github.com/chewxy/math32"
	ts "github.com/heal-research/treesearchlib"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
	xrand "golang.org/x/exp/rand"
)

// mctsAdaptiveDecay and mctsAdaptiveInflate are the adaptive-confidence
// constants applied to the UCB exploration term, taken verbatim from the
// reference formula.
const (
	mctsAdaptiveDecay   = 0.903602
	mctsAdaptiveInflate = 1.5
)

// mctsNode is one node of an MCTS tree: a state, a non-owning parent index
// (-1 for the root) and an ordered list of child indices into the same
// arena. No free list: MCTS nodes are never released within a single
// search.
type mctsNode[S any] struct {
	state    S
	parent   int
	children []int
	visits   uint32
	score    int64
}

// mctsTree is the per-search arena of mctsNode values plus the seeded RNG
// used for expansion tie-breaks and rollout sampling.
type mctsTree[S ts.Branching[S, V], V constraints.Ordered] struct {
	nodes []mctsNode[S]
	rng   *xrand.Rand
}

func newMCTSTree[S ts.Branching[S, V], V constraints.Ordered](root S, seed int64) *mctsTree[S, V] {
	return &mctsTree[S, V]{
		nodes: []mctsNode[S]{{state: root, parent: -1}},
		rng:   xrand.New(xrand.NewSource(uint64(seed))),
	}
}

// selectLeaf walks from node, picking the child with the highest UCB score
// at each step, until it reaches a terminal state or a node with no
// children. A child with zero visits is returned immediately — forced
// exploration.
func (t *mctsTree[S, V]) selectLeaf(node int, confidence float64) int {
	c := float32(confidence)
	for {
		n := &t.nodes[node]
		if n.state.IsTerminal() || len(n.children) == 0 {
			return node
		}
		parentVisits := float32(n.visits)
		best := -1
		bestUCB := math32.Inf(-1)
		for _, id := range n.children {
			child := &t.nodes[id]
			if child.visits == 0 {
				return id
			}
			mean := float32(child.score) / float32(child.visits)
			ucb := mean + c*math32.Sqrt(math32.Log(parentVisits)/float32(child.visits))
			if ucb > bestUCB {
				bestUCB = ucb
				best = id
			}
		}
		node = best
	}
}

// expand enumerates every branch of node (which must be non-terminal),
// creates a child per branch and reports each to c via VisitNode, then
// returns either the first terminal child encountered or a uniformly
// random one. If node has no branches at all it is
// returned unchanged.
func (t *mctsTree[S, V]) expand(c *Control[S, V], node int) int {
	state := t.nodes[node].state
	var created []int
	firstTerminal := -1
	for branch := range state.Branches() {
		c.VisitNode(branch)
		id := len(t.nodes)
		t.nodes = append(t.nodes, mctsNode[S]{state: branch, parent: node})
		t.nodes[node].children = append(t.nodes[node].children, id)
		created = append(created, id)
		if firstTerminal == -1 && branch.IsTerminal() {
			firstTerminal = id
		}
	}
	if len(created) == 0 {
		return node
	}
	if firstTerminal != -1 {
		return firstTerminal
	}
	return created[t.rng.Intn(len(created))]
}

// rollout repeatedly picks a uniform-random branch via single-pass
// reservoir sampling until a terminal state is reached, reporting every
// visited state to c.
func (t *mctsTree[S, V]) rollout(c *Control[S, V], start S) S {
	current := start
	for !current.IsTerminal() {
		if c.ShouldStop() {
			break
		}
		next, ok := t.reservoirPick(current)
		if !ok {
			break
		}
		c.VisitNode(next)
		current = next
	}
	return current
}

func (t *mctsTree[S, V]) reservoirPick(state S) (S, bool) {
	var picked S
	found := false
	i := 0
	for branch := range state.Branches() {
		i++
		if i == 1 {
			picked = branch
			found = true
			continue
		}
		if t.rng.Float64() < 1.0/float64(i) {
			picked = branch
		}
	}
	return picked, found
}

// backpropagate walks parent indices from node to the root, incrementing
// visits and adding terminal's quality (sign-adjusted so "higher score =
// better" holds uniformly for Minimize and Maximize) to score. V is
// constrained to constraints.Integer here (not the fully generic Ordered
// used elsewhere) because score accumulation needs a summable scalar.
func backpropagateMCTS[S ts.Branching[S, V], V constraints.Integer](t *mctsTree[S, V], node int, terminal S) {
	q, ok := terminal.Quality()
	if !ok {
		return
	}
	delta := int64(q.Value)
	if q.Sense == ts.Minimize {
		delta = -delta
	}
	for id := node; id != -1; id = t.nodes[id].parent {
		t.nodes[id].visits++
		t.nodes[id].score += delta
	}
}

func (t *mctsTree[S, V]) bestChild() (S, bool) {
	root := t.nodes[0]
	best := -1
	var bestMean float64
	for _, id := range root.children {
		n := t.nodes[id]
		if n.visits == 0 {
			continue
		}
		mean := float64(n.score) / float64(n.visits)
		if best == -1 || mean > bestMean {
			best = id
			bestMean = mean
		}
	}
	if best == -1 {
		return root.state, true
	}
	return t.nodes[best].state, true
}

// MCTS runs Monte Carlo Tree Search over a Branching state. It requires at
// least one termination condition to already be configured
// on c (a runtime limit, a node limit, or a cancellation context);
// otherwise it would never stop, and ErrNoTerminationCondition is returned
// synchronously before any rollout runs.
//
// confidence is the UCB exploration constant c. When adaptive is true, it
// is multiplied by 0.903602 after every successful expansion and by 1.5
// whenever the selected node was already terminal, decaying exploration as
// the tree deepens and re-inflating it when searches hit dead ends.
//
// After the run, MCTSBestChild(c) reports the root's highest-mean-score
// child — the next recommended move, as opposed to BestQualityState's
// overall best terminal found across every rollout.
func MCTS[S ts.Branching[S, V], V constraints.Integer](c *Control[S, V], confidence float64, adaptive bool, seed int64) (*Control[S, V], error) {
	if !c.HasRunTermination() {
		return c, errors.WithStack(ErrNoTerminationCondition)
	}
	c.Start()
	tree := runMCTS(c, c.InitialState(), confidence, adaptive, seed)
	c.setMCTSResult(tree)
	c.Finish()
	return c, nil
}

func runMCTS[S ts.Branching[S, V], V constraints.Integer](c *Control[S, V], initial S, confidence float64, adaptive bool, seed int64) *mctsTree[S, V] {
	tree := newMCTSTree[S, V](initial, seed)
	cur := confidence
	for !c.ShouldStop() {
		selected := tree.selectLeaf(0, cur)
		var leaf int
		if tree.nodes[selected].state.IsTerminal() {
			leaf = selected
			if adaptive {
				cur *= mctsAdaptiveInflate
			}
		} else {
			leaf = tree.expand(c, selected)
			if adaptive && leaf != selected {
				cur *= mctsAdaptiveDecay
			}
		}
		terminal := tree.rollout(c, tree.nodes[leaf].state)
		backpropagateMCTS(tree, leaf, terminal)
	}
	return tree
}

// MCTSBestChild reports the root's child with the highest mean score from
// the most recent MCTS/ParallelMCTS run on c, ties broken by discovery
// order. If no child has been visited, it returns the root state itself.
// It reports ok == false if c never completed an MCTS run.
func MCTSBestChild[S ts.Branching[S, V], V constraints.Integer](c *Control[S, V]) (S, bool) {
	tree, ok := c.getMCTSResult().(*mctsTree[S, V])
	if !ok || tree == nil {
		var zero S
		return zero, false
	}
	return tree.bestChild()
}

// MCTSView is a read-only view over the most recent MCTS/ParallelMCTS
// tree, suitable for treesearchlib/treeviz.DOT.
type MCTSView[S ts.Branching[S, V], V constraints.Ordered] struct {
	tree *mctsTree[S, V]
}

// MCTSTreeView returns a view of c's most recently completed MCTS run, or
// ok == false if none has completed.
func MCTSTreeView[S ts.Branching[S, V], V constraints.Integer](c *Control[S, V]) (MCTSView[S, V], bool) {
	tree, ok := c.getMCTSResult().(*mctsTree[S, V])
	if !ok || tree == nil {
		return MCTSView[S, V]{}, false
	}
	return MCTSView[S, V]{tree: tree}, true
}

// NodeCount implements treeviz.Tree.
func (v MCTSView[S, V]) NodeCount() int { return len(v.tree.nodes) }

// Label implements treeviz.Tree.
func (v MCTSView[S, V]) Label(id int) string {
	n := v.tree.nodes[id]
	mean := 0.0
	if n.visits > 0 {
		mean = float64(n.score) / float64(n.visits)
	}
	return fmt.Sprintf("%v (visits=%d, mean=%.3f)", n.state, n.visits, mean)
}

// Parent implements treeviz.Tree.
func (v MCTSView[S, V]) Parent(id int) (int, bool) {
	p := v.tree.nodes[id].parent
	if p < 0 {
		return 0, false
	}
	return p, true
}
