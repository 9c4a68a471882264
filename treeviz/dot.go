// Package treeviz renders a finished search tree — an MCTS tree or a
// recorded branch-and-bound trace (search.Trace, search.MCTSView) — as a
// Graphviz DOT graph, for offline inspection of a completed run. It is
// ambient tooling, never load-bearing for search correctness.
package treeviz

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
)

// Tree is the minimal view treeviz needs over a finished search tree:
// enough to walk every node and render a label for it. search.Trace and
// search.MCTSView both implement it.
type Tree interface {
	// NodeCount returns how many nodes the tree has. Node identifiers are
	// the half-open range [0, NodeCount()).
	NodeCount() int
	// Label returns the text to render for node id.
	Label(id int) string
	// Parent returns the parent of id, or ok == false for the root.
	Parent(id int) (parent int, ok bool)
}

// DOT renders tree as a directed Graphviz graph named graphName. The
// result can be piped straight into `dot -Tpng` or any other Graphviz
// front end.
func DOT(tree Tree, graphName string) (string, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", err
	}
	if err := graph.SetDir(true); err != nil {
		return "", err
	}
	for id := 0; id < tree.NodeCount(); id++ {
		name := nodeName(id)
		attrs := map[string]string{"label": strconv.Quote(tree.Label(id))}
		if err := graph.AddNode(graphName, name, attrs); err != nil {
			return "", err
		}
	}
	for id := 0; id < tree.NodeCount(); id++ {
		parent, ok := tree.Parent(id)
		if !ok {
			continue
		}
		if err := graph.AddEdge(nodeName(parent), nodeName(id), true, nil); err != nil {
			return "", err
		}
	}
	return graph.String(), nil
}

func nodeName(id int) string {
	return fmt.Sprintf("n%d", id)
}
