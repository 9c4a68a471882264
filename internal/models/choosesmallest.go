package models

import (
	"iter"

	ts "github.com/heal-research/treesearchlib"
)

// ChooseSmallest builds a sequence of N monotonically increasing integers
// by repeatedly choosing to advance the running value by 1 or 2, and
// minimizes the running sum — so the optimal play is always to advance by
// 1 ("choose the smallest" next value). The first branch Branches yields
// is always the +1 choice, making it the LDS "default".
type ChooseSmallest struct {
	Prev int
	Sum  int
	Step int
	N    int
}

// NewChooseSmallest builds the initial state for a sequence of n steps.
func NewChooseSmallest(n int) ChooseSmallest {
	return ChooseSmallest{N: n}
}

func (s ChooseSmallest) IsTerminal() bool { return s.Step >= s.N }

// Bound is the optimistic (lowest-possible) completion: advancing by 1 at
// every remaining step.
func (s ChooseSmallest) Bound() ts.Quality[int] {
	remaining := s.N - s.Step
	total := s.Sum
	prev := s.Prev
	for i := 0; i < remaining; i++ {
		prev++
		total += prev
	}
	return ts.Min(total)
}

func (s ChooseSmallest) Quality() (ts.Quality[int], bool) {
	if !s.IsTerminal() {
		return ts.Quality[int]{}, false
	}
	return ts.Min(s.Sum), true
}

func (s ChooseSmallest) Clone() ChooseSmallest { return s }

// Branches yields the +1 child first (the preferred, smallest-value
// choice), then +2. A terminal state yields no children.
func (s ChooseSmallest) Branches() iter.Seq[ChooseSmallest] {
	return func(yield func(ChooseSmallest) bool) {
		if s.IsTerminal() {
			return
		}
		for _, delta := range [2]int{1, 2} {
			child := s
			child.Prev += delta
			child.Sum += child.Prev
			child.Step++
			if !yield(child) {
				return
			}
		}
	}
}

// ChooseSmallestReversible is the Reversible twin of ChooseSmallest,
// mutating in place via Apply/UndoLast instead of cloning per branch.
type ChooseSmallestReversible struct {
	Prev    int
	Sum     int
	Step    int
	N       int
	history []choiceSnapshot
}

type choiceSnapshot struct{ prev, sum, step int }

// NewChooseSmallestReversible builds the initial reversible state.
func NewChooseSmallestReversible(n int) *ChooseSmallestReversible {
	return &ChooseSmallestReversible{N: n}
}

// Reversible's Apply/UndoLast mutate in place, so every method here takes
// a pointer receiver and *ChooseSmallestReversible is the type that
// satisfies ts.Reversible, not the value type.

func (s *ChooseSmallestReversible) IsTerminal() bool { return s.Step >= s.N }

func (s *ChooseSmallestReversible) Bound() ts.Quality[int] {
	remaining := s.N - s.Step
	total := s.Sum
	prev := s.Prev
	for i := 0; i < remaining; i++ {
		prev++
		total += prev
	}
	return ts.Min(total)
}

func (s *ChooseSmallestReversible) Quality() (ts.Quality[int], bool) {
	if !s.IsTerminal() {
		return ts.Quality[int]{}, false
	}
	return ts.Min(s.Sum), true
}

func (s *ChooseSmallestReversible) Clone() *ChooseSmallestReversible {
	cp := *s
	cp.history = append([]choiceSnapshot(nil), s.history...)
	return &cp
}

// Choices yields the two deltas available from the current state, +1
// (the default) first. A terminal state yields no choices.
func (s *ChooseSmallestReversible) Choices() iter.Seq[int] {
	return func(yield func(int) bool) {
		if s.IsTerminal() {
			return
		}
		if !yield(1) {
			return
		}
		yield(2)
	}
}

func (s *ChooseSmallestReversible) Apply(delta int) {
	s.history = append(s.history, choiceSnapshot{s.Prev, s.Sum, s.Step})
	s.Prev += delta
	s.Sum += s.Prev
	s.Step++
}

func (s *ChooseSmallestReversible) UndoLast() {
	n := len(s.history)
	snap := s.history[n-1]
	s.history = s.history[:n-1]
	s.Prev, s.Sum, s.Step = snap.prev, snap.sum, snap.step
}

// Equal reports observational equality, ignoring history.
func (s *ChooseSmallestReversible) Equal(other *ChooseSmallestReversible) bool {
	return s.Prev == other.Prev && s.Sum == other.Sum && s.Step == other.Step && s.N == other.N
}
