package search_test

import (
	"context"
	"testing"
	"time"

	ts "github.com/heal-research/treesearchlib"
	"github.com/heal-research/treesearchlib/internal/models"
	"github.com/heal-research/treesearchlib/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancellationStopsADepthFirstSearchEarly(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// A deep enough instance that exhaustive search would otherwise run
	// for a long time.
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(100000)).
		WithCancellation(ctx)
	c, err := search.DepthFirst(c, search.Unbounded)
	require.NoError(t, err)
	assert.True(t, c.IsFinished())
	assert.True(t, c.ShouldStop())
	<-ctx.Done()
	assert.Error(t, ctx.Err())
}

func TestNodeLimitStopsASearchWithBoundedOvershoot(t *testing.T) {
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(40)).
		WithNodeLimit(50)
	c, err := search.DepthFirst(c, search.Unbounded)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, c.VisitedNodes(), uint64(50))
	// Each expansion visits at most 2 children (choose-smallest's fan-out)
	// before the node limit is rechecked, so the overshoot is bounded.
	assert.LessOrEqual(t, c.VisitedNodes(), uint64(52))
}

func TestBestQualityIsNilBeforeAnyIncumbentIsFound(t *testing.T) {
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(5))
	assert.Nil(t, c.BestQuality())
	_, ok := c.BestQualityState()
	assert.False(t, ok)
}

func TestImprovementCallbackFiresOnEveryIncumbentImprovement(t *testing.T) {
	var improvements []int
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(5)).
		WithImprovementCallback(func(_ *search.Control[models.ChooseSmallest, int], _ models.ChooseSmallest, q ts.Quality[int]) {
			improvements = append(improvements, q.Value)
		})
	c, err := search.DepthFirst(c, search.Unbounded)
	require.NoError(t, err)
	// The +2 sibling of the last step is visited first (children are visited
	// in reverse), giving 1+2+3+4+6 = 16, then the all-+1 leaf improves it to 15.
	assert.Equal(t, []int{16, 15}, improvements)
	assert.Equal(t, 15, c.BestQuality().Value)
}
