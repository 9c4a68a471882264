// Package search drives tree-search.Control over user-supplied states.
//
// A Control owns the run-scoped incumbent, node counter, timer and
// cancellation signal (control.go); the algorithm functions (dfs.go,
// bfs.go, beam.go, monotonic.go, rake.go, pilot.go, lds.go, mcts.go and
// their parallel.go variants) drive a treesearchlib.Branching or
// treesearchlib.Reversible state against one Control until it should stop.
package search
