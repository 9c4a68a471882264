package search_test

import (
	"testing"

	"github.com/heal-research/treesearchlib/internal/models"
	"github.com/heal-research/treesearchlib/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPilotMethodRejectsInvalidBeamWidth(t *testing.T) {
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(4))
	_, err := search.PilotMethod[models.ChooseSmallest, int](c, 0, nil)
	assert.ErrorIs(t, err, search.ErrInvalidBeamWidth)
}

func TestPilotMethodDegenerateMatchesGreedyDescent(t *testing.T) {
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(6))
	c, err := search.PilotMethod[models.ChooseSmallest, int](c, 1, nil)
	require.NoError(t, err)
	best := c.BestQuality()
	require.NotNil(t, best)
	// beamWidth=1, no rank: the lookahead always keeps the first-enumerated
	// surviving child, so this degenerates to the same greedy +1-every-step descent
	// DepthFirst(filterWidth=1) would take, landing on the true optimum for
	// this fixture (it has no misleading local optima).
	assert.Equal(t, 21, best.Value)
}

func TestPilotMethodWithLookaheadFindsOptimalChooseSmallest(t *testing.T) {
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(8))
	c, err := search.PilotMethod[models.ChooseSmallest, int](c, 3, nil)
	require.NoError(t, err)
	best := c.BestQuality()
	require.NotNil(t, best)
	assert.Equal(t, 36, best.Value) // 1+2+...+8
}
