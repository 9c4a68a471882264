package models_test

import (
	"testing"

	"github.com/heal-research/treesearchlib/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTSPBranchesVisitEveryCityExactlyOnce(t *testing.T) {
	root := models.NewTSP()
	current := root
	for !current.IsTerminal() {
		var next models.TSP
		found := false
		for child := range current.Branches() {
			next = child
			found = true
			break
		}
		require.True(t, found)
		current = next
	}
	seen := make(map[int]bool)
	for _, c := range current.Tour {
		assert.False(t, seen[c])
		seen[c] = true
	}
	assert.Len(t, current.Tour, len(current.Coords))
}

func TestTSPGreedyNearestNeighborOrdersBranchesByDistance(t *testing.T) {
	root := models.NewTSP()
	var prevDist float64 = -1
	for child := range root.Branches() {
		d := child.Length
		if prevDist >= 0 {
			assert.GreaterOrEqual(t, d, prevDist)
		}
		prevDist = d
	}
}

func TestTSPQualityIncludesClosingLeg(t *testing.T) {
	current := models.NewTSP()
	for !current.IsTerminal() {
		for child := range current.Branches() {
			current = child
			break
		}
	}
	q, ok := current.Quality()
	require.True(t, ok)
	assert.Greater(t, q.Value, current.Length)
}
