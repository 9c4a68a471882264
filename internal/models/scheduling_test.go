package models_test

import (
	"testing"

	"github.com/heal-research/treesearchlib/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSchedulingShortestWeightedProcessingTimeFirstIsOptimal(t *testing.T) {
	jobs := []models.SchedulingJob{
		{Duration: 3, Weight: 2},
		{Duration: 1, Weight: 1},
		{Duration: 4, Weight: 3},
	}
	root := models.NewScheduling(jobs)
	best := -1
	var walk func(s models.Scheduling)
	walk = func(s models.Scheduling) {
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

	// Smith's rule: sort by Duration/Weight ascending. Ratios here are
	// job1=1.0, job2=4/3, job0=1.5.
	order := []int{1, 2, 0}
	time, weighted := 0, 0
	for _, i := range order {
		time += jobs[i].Duration
		weighted += time * jobs[i].Weight
	}
	assert.Equal(t, weighted, best)
}
