// Package astar defines configuration options, the Result type, and
// sentinel errors for the A* search engine.
package astar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// Sentinel errors returned by Solve.
var (
	// ErrDimensionMismatch indicates start and goal boards of different sizes.
	ErrDimensionMismatch = errors.New("astar: start and goal grid sizes differ")

	// ErrGoalNotCanonical indicates a goal board that is not the canonical
	// solved configuration. The Hamming and Manhattan evaluators estimate
	// distance to the canonical goal, so any other target would break
	// admissibility.
	ErrGoalNotCanonical = errors.New("astar: goal must be the canonical solved board")

	// ErrBadHeuristic indicates a heuristic selector outside the closed set.
	ErrBadHeuristic = errors.New("astar: invalid heuristic")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// (e.g. a negative budget).
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrAborted is the umbrella sentinel for every cooperative abort:
	// node budget, time budget, or context cancellation. Use
	// errors.Is(err, ErrAborted) to distinguish "gave up" from
	// "proved there is no solution" (the latter is not an error).
	ErrAborted = errors.New("astar: search aborted before reaching the goal")
)

// Budget-specific aborts, each wrapping ErrAborted.
var (
	// ErrNodeLimit indicates the node budget was exhausted.
	ErrNodeLimit = fmt.Errorf("%w: node budget exhausted", ErrAborted)

	// ErrTimeLimit indicates the time budget was exhausted.
	ErrTimeLimit = fmt.Errorf("%w: time budget exhausted", ErrAborted)
)

// Options configures a single Solve call.
//
// Heuristic — distance estimator used for f = g + h (default Manhattan).
// NodeLimit — maximum states to expand; 0 disables the budget.
// TimeLimit — maximum wall-clock duration; 0 disables the budget.
// Ctx       — context checked cooperatively once per frontier pop.
type Options struct {
	Heuristic heuristic.Heuristic
	NodeLimit int
	TimeLimit time.Duration
	Ctx       context.Context

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Solve.
// If an Option is invalid (e.g. negative budget), it is recorded internally
// and surfaced as ErrOptionViolation when Solve is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - Heuristic: Manhattan (the stronger of the two evaluators)
//   - no node budget, no time budget
//   - context.Background()
func DefaultOptions() Options {
	return Options{
		Heuristic: heuristic.Manhattan,
		NodeLimit: 0,
		TimeLimit: 0,
		Ctx:       context.Background(),
		err:       nil,
	}
}

// WithHeuristic selects the distance estimator. Validity is checked in
// Solve (ErrBadHeuristic), keeping Option constructors panic-free.
func WithHeuristic(h heuristic.Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithNodeLimit caps the number of expanded states.
//
//	n > 0:  abort with ErrNodeLimit once n states have been expanded
//	n == 0: explicit "no budget"
//	n < 0:  invalid option → ErrOptionViolation
func WithNodeLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// WithTimeLimit caps the wall-clock duration of the search loop.
//
//	d > 0:  abort with ErrTimeLimit once d has elapsed
//	d == 0: explicit "no budget"
//	d < 0:  invalid option → ErrOptionViolation
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithContext sets a custom context for cooperative cancellation.
// A cancelled context aborts the search with an error matching ErrAborted.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result holds the outcome of one Solve call.
//
// Found is true when the goal was reached; Moves then holds the optimal
// move sequence from start to goal (empty when start == goal) and Cost its
// length. When the frontier is exhausted without reaching the goal, Found
// is false, Moves is nil and Cost is -1; the node counts remain meaningful.
type Result struct {
	Found          bool
	Moves          []board.Move
	Cost           int
	NodesExpanded  int
	NodesGenerated int
	Elapsed        time.Duration
}
