package models

import (
	"iter"
	"sort"

	ts "github.com/heal-research/treesearchlib"
	"gonum.org/v1/gonum/floats"
)

// berlin52 are the 52 city coordinates of the well-known TSPLIB Berlin52
// instance, good enough for fixture purposes — exact optimum is not
// asserted anywhere, only greedy nearest-neighbor equivalence.
var berlin52 = [][2]float64{
	{565, 575}, {25, 185}, {345, 750}, {945, 685}, {845, 655},
	{880, 660}, {25, 230}, {525, 1000}, {580, 1175}, {650, 1130},
	{1605, 620}, {1220, 580}, {1465, 200}, {1530, 5}, {845, 680},
	{725, 370}, {145, 665}, {415, 635}, {510, 875}, {560, 365},
	{300, 465}, {520, 585}, {480, 415}, {835, 625}, {975, 580},
	{1215, 245}, {1320, 315}, {1250, 400}, {660, 180}, {410, 250},
	{420, 555}, {575, 665}, {1150, 1160}, {700, 580}, {685, 595},
	{685, 610}, {770, 610}, {795, 645}, {720, 635}, {760, 650},
	{475, 960}, {95, 260}, {875, 920}, {700, 500}, {555, 815},
	{830, 485}, {1170, 65}, {830, 610}, {605, 625}, {595, 360},
	{1340, 725}, {1740, 245},
}

// TSP is a partial-tour Branching state over the Euclidean, symmetric
// Berlin52 instance. Choices are restricted to unvisited cities so every
// branch is automatically feasible; Bound is deliberately weak (the
// current partial length only), since greedy nearest-neighbor search
// (filterWidth=1) never needs a tight bound to pick its single child.
type TSP struct {
	Coords  [][2]float64
	Visited []bool
	Tour    []int
	Length  float64
}

// NewTSP builds the initial state for the Berlin52 instance, starting the
// tour at city 0.
func NewTSP() TSP {
	visited := make([]bool, len(berlin52))
	visited[0] = true
	return TSP{Coords: berlin52, Visited: visited, Tour: []int{0}}
}

func (s TSP) IsTerminal() bool { return len(s.Tour) == len(s.Coords) }

func (s TSP) Bound() ts.Quality[float64] { return ts.Min(s.Length) }

// Quality reports the closed-tour length (including the return leg to the
// start city) once every city has been visited.
func (s TSP) Quality() (ts.Quality[float64], bool) {
	if !s.IsTerminal() {
		return ts.Quality[float64]{}, false
	}
	closing := dist(s.Coords[s.Tour[len(s.Tour)-1]], s.Coords[s.Tour[0]])
	return ts.Min(s.Length + closing), true
}

func (s TSP) Clone() TSP {
	return TSP{
		Coords:  s.Coords,
		Visited: append([]bool(nil), s.Visited...),
		Tour:    append([]int(nil), s.Tour...),
		Length:  s.Length,
	}
}

// Branches yields one child per unvisited city, nearest-first by distance
// from the current tour end — the order a greedy nearest-neighbor search
// under filterWidth=1 relies on.
func (s TSP) Branches() iter.Seq[TSP] {
	return func(yield func(TSP) bool) {
		if s.IsTerminal() {
			return
		}
		current := s.Coords[s.Tour[len(s.Tour)-1]]
		candidates := make([]int, 0, len(s.Coords)-len(s.Tour))
		for i, visited := range s.Visited {
			if !visited {
				candidates = append(candidates, i)
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool {
			return dist(current, s.Coords[candidates[i]]) < dist(current, s.Coords[candidates[j]])
		})
		for _, c := range candidates {
			child := s.Clone()
			child.Visited[c] = true
			child.Tour = append(child.Tour, c)
			child.Length += dist(current, s.Coords[c])
			if !yield(child) {
				return
			}
		}
	}
}

func dist(a, b [2]float64) float64 {
	return floats.Distance(a[:], b[:], 2)
}
