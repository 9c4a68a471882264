package models_test

import (
	"testing"

	"github.com/heal-research/treesearchlib/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHanoiOptimalMovesIsTwoToTheNMinusOne(t *testing.T) {
	const n = 4
	root := models.NewHanoi(n)
	best := -1
	var walk func(s models.Hanoi)
	walk = func(s models.Hanoi) {
		if q, ok := s.Quality(); ok {
			if best == -1 || q.Value < best {
				best = q.Value
			}
			return
		}
		if s.Moves > (1<<n)-1 {
			return
		}
		for child := range s.Branches() {
			walk(child)
		}
	}
	walk(root)
	require.NotEqual(t, -1, best)
	assert.Equal(t, (1<<n)-1, best)
}

func TestHanoiBranchesNeverStackLargerOnSmaller(t *testing.T) {
	root := models.NewHanoi(3)
	for child := range root.Branches() {
		for _, peg := range child.Pegs {
			for i := 1; i < len(peg); i++ {
				assert.Less(t, peg[i], peg[i-1])
			}
		}
	}
}

// TestHanoiBranchesNeverRevisitsAConfigurationAlongAPath walks every path
// from the root to a fixed number of moves and asserts no two states along
// the same path ever share a configuration — the property that keeps an
// unbounded DFS descent from cycling forever.
func TestHanoiBranchesNeverRevisitsAConfigurationAlongAPath(t *testing.T) {
	const n = 4
	seen := func(pegs [3][]int) string {
		key := ""
		for _, peg := range pegs {
			key += "|"
			for _, d := range peg {
				key += string(rune('0' + d))
			}
		}
		return key
	}
	var walk func(s models.Hanoi, path map[string]bool, depth int)
	walk = func(s models.Hanoi, path map[string]bool, depth int) {
		if depth > 3*n {
			return
		}
		for child := range s.Branches() {
			key := seen(child.Pegs)
			require.False(t, path[key], "revisited a configuration along a single path")
			path[key] = true
			walk(child, path, depth+1)
			delete(path, key)
		}
	}
	root := models.NewHanoi(n)
	walk(root, map[string]bool{seen(root.Pegs): true}, 0)
}
