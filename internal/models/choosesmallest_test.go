package models_test

import (
	"testing"

	"github.com/heal-research/treesearchlib/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseSmallestBoundNeverExceedsAnyDescendantQuality(t *testing.T) {
	root := models.NewChooseSmallest(6)
	var walk func(s models.ChooseSmallest, ancestorBounds []int)
	walk = func(s models.ChooseSmallest, ancestorBounds []int) {
		bounds := append(ancestorBounds, s.Bound().Value)
		if q, ok := s.Quality(); ok {
			for _, b := range bounds {
				assert.LessOrEqual(t, b, q.Value)
			}
		}
		for child := range s.Branches() {
			walk(child, bounds)
		}
	}
	walk(root, nil)
}

func TestChooseSmallestOptimalIsAllOnes(t *testing.T) {
	root := models.NewChooseSmallest(5)
	best := -1
	var walk func(s models.ChooseSmallest)
	walk = func(s models.ChooseSmallest) {
		if q, ok := s.Quality(); ok {
			if best == -1 || q.Value < best {
				best = q.Value
			}
			return
		}
		for child := range s.Branches() {
			walk(child)
		}
	}
	walk(root)
	// Advancing by 1 five times: 1+2+3+4+5 = 15.
	assert.Equal(t, 15, best)
}

func TestChooseSmallestReversibleApplyUndoRoundTrips(t *testing.T) {
	s := models.NewChooseSmallestReversible(5)
	before := s.Clone()
	for choice := range s.Choices() {
		s.Apply(choice)
		s.UndoLast()
		assert.True(t, before.Equal(s))
		break
	}
}

func TestChooseSmallestReversibleMatchesBranchingAcrossSequence(t *testing.T) {
	branching := models.NewChooseSmallest(4)
	reversible := models.NewChooseSmallestReversible(4)

	for i := 0; i < 4; i++ {
		var nextBranching models.ChooseSmallest
		for child := range branching.Branches() {
			nextBranching = child
			break
		}
		var delta int
		for choice := range reversible.Choices() {
			delta = choice
			break
		}
		reversible.Apply(delta)
		branching = nextBranching
		require.Equal(t, branching.Sum, reversible.Sum)
		require.Equal(t, branching.Prev, reversible.Prev)
	}
	assert.True(t, branching.IsTerminal())
	assert.True(t, reversible.IsTerminal())
}
