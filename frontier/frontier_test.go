package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heal-research/treesearchlib/frontier"
)

func TestLIFOPopsNewestFirst(t *testing.T) {
	s := frontier.NewLIFO[int]()
	s.Store(frontier.Entry[int]{Depth: 0, Item: 1})
	s.Store(frontier.Entry[int]{Depth: 1, Item: 2})
	s.Store(frontier.Entry[int]{Depth: 2, Item: 3})

	var order []int
	for {
		e, ok := s.TryNext()
		if !ok {
			break
		}
		order = append(order, e.Item)
	}
	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestFIFOPopsOldestFirst(t *testing.T) {
	q := frontier.NewFIFO[int]()
	for i := 0; i < 5; i++ {
		q.Store(frontier.Entry[int]{Depth: i, Item: i})
	}

	var order []int
	for {
		e, ok := q.TryNext()
		if !ok {
			break
		}
		order = append(order, e.Item)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFIFOCompactionPreservesOrderAcrossManyOperations(t *testing.T) {
	q := frontier.NewFIFO[int]()
	var want []int
	for round := 0; round < 20; round++ {
		q.Store(frontier.Entry[int]{Item: round})
		want = append(want, round)
		if round%3 == 0 {
			e, ok := q.TryNext()
			assert.True(t, ok)
			assert.Equal(t, want[0], e.Item)
			want = want[1:]
		}
	}
	for _, w := range want {
		e, ok := q.TryNext()
		assert.True(t, ok)
		assert.Equal(t, w, e.Item)
	}
	_, ok := q.TryNext()
	assert.False(t, ok)
}

func TestBiLevelSwapOnFullyDrainedGetQueueExchangesRoles(t *testing.T) {
	b := frontier.NewBiLevel[int]()
	b.Store(frontier.Entry[int]{Item: 1})
	b.Store(frontier.Entry[int]{Item: 2})
	assert.Equal(t, 0, b.Len())

	b.Swap()
	assert.Equal(t, 2, b.Len())

	e, ok := b.TryNext()
	assert.True(t, ok)
	assert.Equal(t, 1, e.Item)
}

func TestBiLevelSwapOnPartiallyDrainedGetQueueAppendsPutToTail(t *testing.T) {
	b := frontier.NewBiLevel[int]()
	b.Store(frontier.Entry[int]{Item: 1})
	b.Store(frontier.Entry[int]{Item: 2})
	b.Swap() // get = [1, 2], put = []

	_, ok := b.TryNext() // consume 1, get = [2]
	assert.True(t, ok)

	b.Store(frontier.Entry[int]{Item: 3}) // Store always writes to put
	b.Swap()                              // get is non-empty (has 2), so put (3) is appended to its tail

	var order []int
	for {
		e, ok := b.TryNext()
		if !ok {
			break
		}
		order = append(order, e.Item)
	}
	assert.Equal(t, []int{2, 3}, order)
}

func TestBiLevelDrainReturnsPlainFIFOWithAllItems(t *testing.T) {
	b := frontier.NewBiLevel[int]()
	b.Store(frontier.Entry[int]{Item: 1})
	b.Store(frontier.Entry[int]{Item: 2})

	q := b.Drain()
	var order []int
	for {
		e, ok := q.TryNext()
		if !ok {
			break
		}
		order = append(order, e.Item)
	}
	assert.Equal(t, []int{1, 2}, order)
}
