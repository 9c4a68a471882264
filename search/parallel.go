package search

import (
	"sync"
	"sync/atomic"

	ts "github.com/heal-research/treesearchlib"
	"github.com/heal-research/treesearchlib/frontier"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ParallelDepthFirst expands the root breadth-first until the frontier
// holds maxDegreeOfParallelism sub-roots, then runs DepthFirst against
// each, on a fixed worker pool sharing c.
func ParallelDepthFirst[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], filterWidth, maxDegreeOfParallelism int) (*Control[S, V], error) {
	if err := validate(checkFilterWidth(filterWidth), checkNodeTarget(maxDegreeOfParallelism)); err != nil {
		return c, err
	}
	c.Start()
	runParallel(c, maxDegreeOfParallelism, func(sub S) {
		runDepthFirst(c, sub, filterWidth)
	})
	c.Finish()
	return c, nil
}

// ParallelBreadthFirst is ParallelDepthFirst's breadth-first counterpart.
func ParallelBreadthFirst[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], filterWidth, depthLimit, maxDegreeOfParallelism int) (*Control[S, V], error) {
	if err := validate(checkFilterWidth(filterWidth), checkDepthLimit(depthLimit), checkNodeTarget(maxDegreeOfParallelism)); err != nil {
		return c, err
	}
	c.Start()
	runParallel(c, maxDegreeOfParallelism, func(sub S) {
		runBreadthFirst(c, sub, filterWidth, depthLimit)
	})
	c.Finish()
	return c, nil
}

// ParallelBeamSearch runs BeamSearch (rank != nil) or BeamSearchRoundRobin
// (rank == nil) independently from each of the expanded sub-roots.
func ParallelBeamSearch[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], beamWidth, maxDegreeOfParallelism int, rank Ranker[S, V]) (*Control[S, V], error) {
	if err := validate(checkBeamWidth(beamWidth), checkNodeTarget(maxDegreeOfParallelism)); err != nil {
		return c, err
	}
	c.Start()
	runParallel(c, maxDegreeOfParallelism, func(sub S) {
		if rank == nil {
			runBeamSearchRoundRobin(c, sub, beamWidth)
		} else {
			runBeamSearch(c, sub, beamWidth, rank)
		}
	})
	c.Finish()
	return c, nil
}

// ParallelMCTS runs one independent MCTS tree per worker, each rooted at a
// distinct sub-root, with incumbents merged through the shared Control.
// Only the last worker's tree survives for MCTSBestChild, since the
// root's favorite child is no longer a single well-defined tree position
// once the search has been split across independent sub-roots; callers
// wanting the overall answer should use BestQualityState instead.
func ParallelMCTS[S ts.Branching[S, V], V constraints.Integer](c *Control[S, V], confidence float64, adaptive bool, seed int64, maxDegreeOfParallelism int) (*Control[S, V], error) {
	if err := validate(checkNodeTarget(maxDegreeOfParallelism)); err != nil {
		return c, err
	}
	if !c.HasRunTermination() {
		return c, errors.WithStack(ErrNoTerminationCondition)
	}
	c.Start()
	var seedCounter atomic.Int64
	seedCounter.Store(seed)
	runParallel(c, maxDegreeOfParallelism, func(sub S) {
		workerSeed := seedCounter.Add(1)
		tree := runMCTS(c, sub, confidence, adaptive, workerSeed)
		c.setMCTSResult(tree)
	})
	c.Finish()
	return c, nil
}

// runParallel expands the root breadth-first until the frontier contains
// at least maxDegreeOfParallelism states (or the tree is exhausted, in
// which case fewer workers than requested are used), then runs fn once
// per sub-root on a fixed pool of maxDegreeOfParallelism goroutines, all
// sharing c as their synchronization point.
func runParallel[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], maxDegreeOfParallelism int, fn func(S)) {
	subRoots := expandToFrontier(c, maxDegreeOfParallelism)
	if len(subRoots) < maxDegreeOfParallelism {
		c.log("parallel: requested degree %d, only %d sub-roots available", maxDegreeOfParallelism, len(subRoots))
	}
	workers := maxDegreeOfParallelism
	if workers > len(subRoots) {
		workers = len(subRoots)
	}
	if workers == 0 {
		return
	}
	work := make(chan S)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sub := range work {
				if c.ShouldStop() {
					continue
				}
				fn(sub)
			}
		}()
	}
	for _, s := range subRoots {
		work <- s
	}
	close(work)
	wg.Wait()
}

// expandToFrontier runs a breadth-first expansion from c's initial state
// until the frontier holds target states (or fewer, if the tree is
// exhausted or fully pruned first).
func expandToFrontier[S ts.Branching[S, V], V constraints.Ordered](c *Control[S, V], target int) []S {
	queue := frontier.NewFIFO[S]()
	queue.Store(frontier.Entry[S]{Depth: 0, Item: c.InitialState()})
	for queue.Len() > 0 && queue.Len() < target && !c.ShouldStop() {
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
			queue.Store(entry)
			break
		}
	}
	result := make([]S, 0, target)
	for {
		entry, ok := queue.TryNext()
		if !ok {
			break
		}
		result = append(result, entry.Item)
	}
	return result
}
