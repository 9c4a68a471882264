package models

import (
	"iter"

	ts "github.com/heal-research/treesearchlib"
)

// Hanoi is the classic Tower of Hanoi puzzle over three pegs, Branching
// over legal single-disk moves. Bound is deliberately weak (Min(Moves),
// the count already made) — it exists only to exercise the engine
// end-to-end, not to demonstrate tight pruning. The move graph itself is
// cyclic (any move can eventually be undone by some sequence of further
// moves), so every state carries the set of configurations already visited
// on the path from the root and Branches refuses to re-enter one — without
// this, an unbounded DFS descent can cycle forever and never reach a
// terminal.
type Hanoi struct {
	Pegs    [3][]int // each peg, disks listed largest-first (index 0 = bottom)
	Disks   int
	Moves   int
	visited []uint64 // configKey of every state from the root up to and including this one
}

// NewHanoi builds the standard starting position of n disks stacked on
// peg 0, largest at the bottom.
func NewHanoi(n int) Hanoi {
	peg0 := make([]int, n)
	for i := 0; i < n; i++ {
		peg0[i] = n - i
	}
	pegs := [3][]int{peg0, nil, nil}
	return Hanoi{Pegs: pegs, Disks: n, visited: []uint64{configKey(pegs)}}
}

// configKey canonically encodes which peg each disk sits on, 2 bits per
// disk (a peg index always fits in {0,1,2}), into a single comparable key.
func configKey(pegs [3][]int) uint64 {
	var key uint64
	for peg := 0; peg < 3; peg++ {
		for _, disk := range pegs[peg] {
			key |= uint64(peg) << uint(2*(disk-1))
		}
	}
	return key
}

func (s Hanoi) hasVisited(key uint64) bool {
	for _, k := range s.visited {
		if k == key {
			return true
		}
	}
	return false
}

func (s Hanoi) IsTerminal() bool {
	return len(s.Pegs[2]) == s.Disks
}

func (s Hanoi) Bound() ts.Quality[int] { return ts.Min(s.Moves) }

func (s Hanoi) Quality() (ts.Quality[int], bool) {
	if !s.IsTerminal() {
		return ts.Quality[int]{}, false
	}
	return ts.Min(s.Moves), true
}

func (s Hanoi) Clone() Hanoi {
	return Hanoi{
		Pegs:    [3][]int{clonePeg(s.Pegs[0]), clonePeg(s.Pegs[1]), clonePeg(s.Pegs[2])},
		Disks:   s.Disks,
		Moves:   s.Moves,
		visited: append([]uint64(nil), s.visited...),
	}
}

func clonePeg(p []int) []int { return append([]int(nil), p...) }

// Branches yields one child per legal single-disk move among the three
// pegs (smaller-on-larger only), skipping any move that would re-enter a
// configuration already visited on the path from the root.
func (s Hanoi) Branches() iter.Seq[Hanoi] {
	return func(yield func(Hanoi) bool) {
		if s.IsTerminal() {
			return
		}
		for from := 0; from < 3; from++ {
			if len(s.Pegs[from]) == 0 {
				continue
			}
			disk := s.Pegs[from][len(s.Pegs[from])-1]
			for to := 0; to < 3; to++ {
				if to == from {
					continue
				}
				dst := s.Pegs[to]
				if len(dst) > 0 && dst[len(dst)-1] < disk {
					continue
				}
				child := s.Clone()
				child.Pegs[from] = child.Pegs[from][:len(child.Pegs[from])-1]
				child.Pegs[to] = append(child.Pegs[to], disk)
				key := configKey(child.Pegs)
				if s.hasVisited(key) {
					continue
				}
				child.Moves++
				child.visited = append(child.visited, key)
				if !yield(child) {
					return
				}
			}
		}
	}
}
