package search_test

import (
	"testing"

	"github.com/heal-research/treesearchlib/internal/models"
	"github.com/heal-research/treesearchlib/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRakeSearchProducesAFeasibleResult(t *testing.T) {
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(6))
	c, err := search.RakeSearch(c, 2)
	require.NoError(t, err)
	best := c.BestQuality()
	require.NotNil(t, best)
	assert.GreaterOrEqual(t, best.Value, 21)
}

func TestRakeSearchRejectsInvalidRakeWidth(t *testing.T) {
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(6))
	_, err := search.RakeSearch(c, 0)
	assert.ErrorIs(t, err, search.ErrInvalidRakeWidth)
}

func TestRakeAndBeamSearchRoundRobinProducesAFeasibleResult(t *testing.T) {
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(6))
	c, err := search.RakeAndBeamSearch[models.ChooseSmallest, int](c, 2, 4, nil)
	require.NoError(t, err)
	best := c.BestQuality()
	require.NotNil(t, best)
	assert.GreaterOrEqual(t, best.Value, 21)
}

func rakeDefaultRank(a, b models.ChooseSmallest) bool {
	ba, bb := a.Bound(), b.Bound()
	return ba.IsBetterThan(&bb)
}

func TestRakeAndBeamSearchRankedFindsOptimal(t *testing.T) {
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(6))
	c, err := search.RakeAndBeamSearch[models.ChooseSmallest, int](c, 2, 4, rakeDefaultRank)
	require.NoError(t, err)
	best := c.BestQuality()
	require.NotNil(t, best)
	assert.Equal(t, 21, best.Value)
}
