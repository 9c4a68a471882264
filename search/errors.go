package search

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Configuration errors, raised synchronously at the call site before any
// search work begins. Each algorithm validates its own
// parameters and returns one of these, possibly combined with others via
// go-multierror when more than one parameter is invalid at once.
var (
	ErrInvalidBeamWidth       = errors.New("search: beam width must be > 0")
	ErrInvalidRakeWidth       = errors.New("search: rake width must be > 0")
	ErrInvalidFilterWidth     = errors.New("search: filter width must be > 0")
	ErrInvalidDepthLimit      = errors.New("search: depth limit must be > 0")
	ErrInvalidNodeTarget      = errors.New("search: node target must be > 0")
	ErrMissingRank            = errors.New("search: a Ranker is required")
	ErrNoTerminationCondition = errors.New("search: mcts requires a runtime limit, a node limit, or a cancellation context")
)

// validate aggregates every non-nil error in checks into a single error via
// go-multierror, wrapped with a stack trace at the public boundary. It
// returns nil if every check passed.
func validate(checks ...error) error {
	var result *multierror.Error
	for _, err := range checks {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result == nil {
		return nil
	}
	return errors.WithStack(result)
}

func checkBeamWidth(w int) error {
	if w <= 0 {
		return ErrInvalidBeamWidth
	}
	return nil
}

func checkRakeWidth(w int) error {
	if w <= 0 {
		return ErrInvalidRakeWidth
	}
	return nil
}

func checkFilterWidth(w int) error {
	if w <= 0 {
		return ErrInvalidFilterWidth
	}
	return nil
}

func checkDepthLimit(d int) error {
	if d <= 0 {
		return ErrInvalidDepthLimit
	}
	return nil
}

func checkRank[S any, V any](rank Ranker[S, V]) error {
	if rank == nil {
		return ErrMissingRank
	}
	return nil
}

func checkNodeTarget(n int) error {
	if n <= 0 {
		return ErrInvalidNodeTarget
	}
	return nil
}
