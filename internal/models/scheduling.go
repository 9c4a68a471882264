package models

import (
	"iter"

	ts "github.com/heal-research/treesearchlib"
)

// SchedulingJob is one job on a single machine: Duration is its processing
// time, Weight its cost-per-unit-of-completion-time.
type SchedulingJob struct {
	Duration int
	Weight   int
}

// Scheduling is a single-machine total weighted completion time Branching
// state: at each level, pick the next unscheduled job to run. Bound is
// deliberately weak (Min(WeightedCompletion), the cost already incurred)
// — it exists to exercise the engine, not to demonstrate tight pruning.
type Scheduling struct {
	Jobs       []SchedulingJob
	Scheduled  []bool
	Time       int
	Weighted   int
	Unscheduled int
}

// NewScheduling builds the initial state over jobs.
func NewScheduling(jobs []SchedulingJob) Scheduling {
	return Scheduling{
		Jobs:        jobs,
		Scheduled:   make([]bool, len(jobs)),
		Unscheduled: len(jobs),
	}
}

func (s Scheduling) IsTerminal() bool { return s.Unscheduled == 0 }

func (s Scheduling) Bound() ts.Quality[int] { return ts.Min(s.Weighted) }

func (s Scheduling) Quality() (ts.Quality[int], bool) {
	if !s.IsTerminal() {
		return ts.Quality[int]{}, false
	}
	return ts.Min(s.Weighted), true
}

func (s Scheduling) Clone() Scheduling {
	return Scheduling{
		Jobs:        s.Jobs,
		Scheduled:   append([]bool(nil), s.Scheduled...),
		Time:        s.Time,
		Weighted:    s.Weighted,
		Unscheduled: s.Unscheduled,
	}
}

// Branches yields one child per unscheduled job, run next.
func (s Scheduling) Branches() iter.Seq[Scheduling] {
	return func(yield func(Scheduling) bool) {
		for i, scheduled := range s.Scheduled {
			if scheduled {
				continue
			}
			job := s.Jobs[i]
			child := s.Clone()
			child.Scheduled[i] = true
			child.Time += job.Duration
			child.Weighted += child.Time * job.Weight
			child.Unscheduled--
			if !yield(child) {
				return
			}
		}
	}
}
