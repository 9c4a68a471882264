package search_test

import (
	"testing"

	"github.com/heal-research/treesearchlib/internal/models"
	"github.com/heal-research/treesearchlib/search"
	"github.com/heal-research/treesearchlib/treeviz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordedDepthFirstMatchesPlainDepthFirstOptimum(t *testing.T) {
	plain := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(5))
	plain, err := search.DepthFirst(plain, search.Unbounded)
	require.NoError(t, err)

	recorded := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(5)).
		WithTraceRecording()
	recorded, err = search.RecordedDepthFirst(recorded, search.Unbounded)
	require.NoError(t, err)

	assert.Equal(t, plain.BestQuality().Value, recorded.BestQuality().Value)
}

func TestTraceIsEmptyWithoutWithTraceRecording(t *testing.T) {
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(5))
	c, err := search.RecordedDepthFirst(c, search.Unbounded)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Trace().NodeCount())
}

func TestTraceRendersAsValidDOT(t *testing.T) {
	c := search.New[models.ChooseSmallest, int](models.NewChooseSmallest(4)).
		WithTraceRecording()
	c, err := search.RecordedDepthFirst(c, search.Unbounded)
	require.NoError(t, err)

	trace := c.Trace()
	require.Greater(t, trace.NodeCount(), 0)

	dot, err := treeviz.DOT(trace, "choosesmallest")
	require.NoError(t, err)
	assert.Contains(t, dot, "digraph")
}
