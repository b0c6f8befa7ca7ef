// Package benchmark defines options, trial/summary types, and sentinel
// errors for the experiment harness.
package benchmark

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// ErrOptionViolation is returned by Run when an invalid Option is supplied.
var ErrOptionViolation = errors.New("benchmark: invalid option supplied")

// DefaultTrials is the number of experiments per heuristic when the caller
// does not override it.
const DefaultTrials = 100

// Options configures one Run invocation.
//
// Trials    — experiments per heuristic (one shared instance per trial).
// Size      — grid width of generated instances (default board.DefaultSize).
// Seed      — RNG seed for instance generation; 0 selects the fixed default
//
//	stream, so every run is reproducible unless a seed is chosen.
//
// NodeLimit — per-search node budget forwarded to astar (0 = unlimited).
// TimeLimit — per-search time budget forwarded to astar (0 = unlimited).
type Options struct {
	Trials    int
	Size      int
	Seed      int64
	NodeLimit int
	TimeLimit time.Duration

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults: 100 trials on 3×3
// grids, deterministic default seed, no budgets.
func DefaultOptions() Options {
	return Options{
		Trials:    DefaultTrials,
		Size:      board.DefaultSize,
		Seed:      0,
		NodeLimit: 0,
		TimeLimit: 0,
		err:       nil,
	}
}

// WithTrials sets the experiment count. Must be positive.
func WithTrials(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Trials must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Trials = n
	}
}

// WithSize sets the grid width of generated instances.
func WithSize(size int) Option {
	return func(o *Options) {
		if size < board.MinSize {
			o.err = fmt.Errorf("%w: Size must be at least %d (%d)", ErrOptionViolation, board.MinSize, size)
			return
		}
		o.Size = size
	}
}

// WithSeed fixes the instance-generation RNG seed. Seed 0 keeps the
// deterministic default stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithNodeLimit forwards a per-search node budget to the engine.
// Searches that trip it are recorded as DNF trials.
func WithNodeLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: NodeLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeLimit = n
	}
}

// WithTimeLimit forwards a per-search time budget to the engine.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: TimeLimit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// Trial is the outcome of a single search: one instance, one heuristic.
// Moves is -1 for trials that did not produce a solution (DNF).
type Trial struct {
	Heuristic     heuristic.Heuristic
	Run           int
	Moves         int
	NodesExpanded int
	Elapsed       time.Duration
	Aborted       bool
}

// Summary aggregates the completed trials of one heuristic.
// Std fields are sample standard deviations (0 when fewer than two
// completed trials exist).
type Summary struct {
	Heuristic heuristic.Heuristic
	Completed int
	DNF       int

	MovesMean float64
	MovesStd  float64
	NodesMean float64
	NodesStd  float64
	TimeMean  float64 // seconds
	TimeStd   float64 // seconds
}

// String renders the clearly labeled statistical block used in console
// reports.
func (s Summary) String() string {
	return fmt.Sprintf(
		"--- %s heuristic summary (%d completed, %d DNF) ---\n"+
			"Mean number of solution moves:            %.2f\n"+
			"Standard deviation of solution moves:     %.2f\n"+
			"Mean number of expanded nodes:            %.2f\n"+
			"Standard deviation of expanded nodes:     %.2f\n"+
			"Mean runtime (seconds):                   %.4f\n"+
			"Standard deviation of runtime (seconds):  %.4f",
		s.Heuristic, s.Completed, s.DNF,
		s.MovesMean, s.MovesStd,
		s.NodesMean, s.NodesStd,
		s.TimeMean, s.TimeStd,
	)
}

// Report is the full outcome of one Run: every trial in execution order
// plus one summary per heuristic, in heuristic.Heuristics() order.
type Report struct {
	Runs      []Trial
	Summaries []Summary
}
