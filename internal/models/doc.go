// Package models holds test-support state fixtures used only from _test.go
// files across the repository: choose-smallest, 0/1 knapsack, Euclidean
// TSP, Tower of Hanoi and single-machine scheduling. None of them is part
// of the importable public API; they exist to exercise
// treesearchlib/search end to end.
package models
