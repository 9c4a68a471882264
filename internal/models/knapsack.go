package models

import (
	"iter"
	"sort"

	ts "github.com/heal-research/treesearchlib"
	xrand "golang.org/x/exp/rand"
)

// KnapsackItem is one candidate item, already index-tagged so a subset of
// Items can be reordered (by profit/weight ratio) without losing its
// identity relative to the original instance.
type KnapsackItem struct {
	Index  int
	Profit int
	Weight int
}

// Knapsack is the 0/1 knapsack Branching state: at each level, decide
// whether to take the next item (in ratio-descending order) or skip it.
// Quality is reported even for non-terminal states, since any prefix of
// decisions is itself a valid (if possibly suboptimal) complete answer —
// there is no requirement to decide every item before stopping.
type Knapsack struct {
	Items     []KnapsackItem
	Capacity  int
	Next      int
	Profit    int
	Remaining int
}

// NewKnapsack builds a random instance of n items with profits and weights
// uniform in [1,100], each drawn from its own xrand stream (profits seeded
// with seed, weights with seed+1), items sorted by profit/weight ratio descending. Capacity is half
// the total weight, rounded to the nearest integer.
func NewKnapsack(n int, seed uint64) Knapsack {
	profitRng := xrand.New(xrand.NewSource(seed))
	weightRng := xrand.New(xrand.NewSource(seed + 1))

	items := make([]KnapsackItem, n)
	totalWeight := 0
	for i := 0; i < n; i++ {
		items[i] = KnapsackItem{
			Index:  i,
			Profit: 1 + profitRng.Intn(100),
			Weight: 1 + weightRng.Intn(100),
		}
		totalWeight += items[i].Weight
	}
	sort.SliceStable(items, func(i, j int) bool {
		return float64(items[i].Profit)*float64(items[j].Weight) >
			float64(items[j].Profit)*float64(items[i].Weight)
	})
	capacity := int(float64(totalWeight)*0.5 + 0.5)
	return Knapsack{Items: items, Capacity: capacity, Remaining: capacity}
}

func (s Knapsack) IsTerminal() bool { return s.Next >= len(s.Items) }

// Bound is the fractional-relaxation upper bound: take remaining items in
// ratio order until capacity runs out, then take a fractional slice of the
// first one that doesn't fit.
func (s Knapsack) Bound() ts.Quality[int] {
	profit := s.Profit
	remaining := s.Remaining
	for i := s.Next; i < len(s.Items); i++ {
		it := s.Items[i]
		if it.Weight <= remaining {
			profit += it.Profit
			remaining -= it.Weight
			continue
		}
		if remaining > 0 {
			profit += int(float64(it.Profit) * float64(remaining) / float64(it.Weight))
		}
		break
	}
	return ts.Max(profit)
}

func (s Knapsack) Quality() (ts.Quality[int], bool) {
	return ts.Max(s.Profit), true
}

func (s Knapsack) Clone() Knapsack {
	cp := s
	cp.Items = s.Items
	return cp
}

// Branches yields "take" first (when it fits), then "skip".
func (s Knapsack) Branches() iter.Seq[Knapsack] {
	return func(yield func(Knapsack) bool) {
		if s.IsTerminal() {
			return
		}
		it := s.Items[s.Next]
		if it.Weight <= s.Remaining {
			take := s
			take.Next++
			take.Profit += it.Profit
			take.Remaining -= it.Weight
			if !yield(take) {
				return
			}
		}
		skip := s
		skip.Next++
		if !yield(skip) {
			return
		}
	}
}

// KnapsackReversible is the Reversible twin of Knapsack, mutating in place
// via Apply/UndoLast instead of cloning per branch. NewKnapsackReversible
// and NewKnapsack draw the same instance for a given (n, seed) pair, so a
// Branching search and a Reversible search over the two types explore the
// identical decision tree.
type KnapsackReversible struct {
	Items     []KnapsackItem
	Capacity  int
	Next      int
	Profit    int
	Remaining int
	history   []knapsackSnapshot
}

type knapsackSnapshot struct{ next, profit, remaining int }

// NewKnapsackReversible builds the Reversible twin of the instance
// NewKnapsack(n, seed) would build.
func NewKnapsackReversible(n int, seed uint64) *KnapsackReversible {
	base := NewKnapsack(n, seed)
	return &KnapsackReversible{
		Items:     base.Items,
		Capacity:  base.Capacity,
		Remaining: base.Remaining,
	}
}

// Reversible's Apply/UndoLast mutate in place, so every method here takes
// a pointer receiver and *KnapsackReversible is the type that satisfies
// ts.Reversible, not the value type.

func (s *KnapsackReversible) IsTerminal() bool { return s.Next >= len(s.Items) }

// Bound mirrors Knapsack.Bound: the fractional-relaxation upper bound.
func (s *KnapsackReversible) Bound() ts.Quality[int] {
	profit := s.Profit
	remaining := s.Remaining
	for i := s.Next; i < len(s.Items); i++ {
		it := s.Items[i]
		if it.Weight <= remaining {
			profit += it.Profit
			remaining -= it.Weight
			continue
		}
		if remaining > 0 {
			profit += int(float64(it.Profit) * float64(remaining) / float64(it.Weight))
		}
		break
	}
	return ts.Max(profit)
}

func (s *KnapsackReversible) Quality() (ts.Quality[int], bool) {
	return ts.Max(s.Profit), true
}

func (s *KnapsackReversible) Clone() *KnapsackReversible {
	cp := *s
	cp.history = append([]knapsackSnapshot(nil), s.history...)
	return &cp
}

// Choices yields true (take, the default) first when the next item fits,
// then false (skip).
func (s *KnapsackReversible) Choices() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		if s.IsTerminal() {
			return
		}
		it := s.Items[s.Next]
		if it.Weight <= s.Remaining {
			if !yield(true) {
				return
			}
		}
		yield(false)
	}
}

func (s *KnapsackReversible) Apply(take bool) {
	s.history = append(s.history, knapsackSnapshot{s.Next, s.Profit, s.Remaining})
	it := s.Items[s.Next]
	if take {
		s.Profit += it.Profit
		s.Remaining -= it.Weight
	}
	s.Next++
}

func (s *KnapsackReversible) UndoLast() {
	n := len(s.history)
	snap := s.history[n-1]
	s.history = s.history[:n-1]
	s.Next, s.Profit, s.Remaining = snap.next, snap.profit, snap.remaining
}

// Equal reports observational equality, ignoring history.
func (s *KnapsackReversible) Equal(other *KnapsackReversible) bool {
	return s.Next == other.Next && s.Profit == other.Profit && s.Remaining == other.Remaining
}
