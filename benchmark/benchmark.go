package benchmark

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/npuzzle/astar"
	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// Run executes the configured batch of experiments and returns the Report.
//
// Per trial: one random solvable instance is drawn from the seeded RNG,
// then solved once per heuristic (same instance for every heuristic, so
// node-count comparisons are apples-to-apples). Budget aborts become DNF
// trials; any other engine error stops the batch.
//
// Determinism: identical options (including Seed) produce an identical
// Report apart from the Elapsed wall-clock fields.
func Run(opts ...Option) (*Report, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) One RNG stream for the whole batch: instance i depends only on
	//    (Seed, Size, i), never on search outcomes.
	rng := board.NewRand(cfg.Seed)
	goal := board.Goal(cfg.Size)
	hs := heuristic.Heuristics()

	// 3) Per-heuristic accumulators for the summary statistics.
	type acc struct {
		moves []float64
		nodes []float64
		secs  []float64
		dnf   int
	}
	accs := make([]acc, len(hs))

	report := &Report{
		Runs:      make([]Trial, 0, cfg.Trials*len(hs)),
		Summaries: make([]Summary, 0, len(hs)),
	}

	// 4) Trial loop.
	for run := 1; run <= cfg.Trials; run++ {
		start, err := board.Random(cfg.Size, rng)
		if err != nil {
			return nil, fmt.Errorf("benchmark: instance generation failed: %w", err)
		}

		for hi, h := range hs {
			began := time.Now()
			res, err := astar.Solve(start, goal,
				astar.WithHeuristic(h),
				astar.WithNodeLimit(cfg.NodeLimit),
				astar.WithTimeLimit(cfg.TimeLimit),
			)
			elapsed := time.Since(began)

			trial := Trial{Heuristic: h, Run: run, Elapsed: elapsed, Moves: -1}
			switch {
			case err == nil && res.Found:
				trial.Moves = res.Cost
				trial.NodesExpanded = res.NodesExpanded
				accs[hi].moves = append(accs[hi].moves, float64(res.Cost))
				accs[hi].nodes = append(accs[hi].nodes, float64(res.NodesExpanded))
				accs[hi].secs = append(accs[hi].secs, elapsed.Seconds())
			case errors.Is(err, astar.ErrAborted):
				// Budget exceeded: record as DNF, keep the batch going.
				trial.Aborted = true
				trial.NodesExpanded = res.NodesExpanded
				accs[hi].dnf++
			case err != nil:
				return nil, fmt.Errorf("benchmark: trial %d (%s): %w", run, h, err)
			default:
				// Found=false without error cannot happen: Random gates
				// every instance through the solvability check.
				trial.NodesExpanded = res.NodesExpanded
				accs[hi].dnf++
			}
			report.Runs = append(report.Runs, trial)
		}
	}

	// 5) Summaries, one per heuristic in the canonical order.
	for hi, h := range hs {
		a := accs[hi]
		report.Summaries = append(report.Summaries, Summary{
			Heuristic: h,
			Completed: len(a.moves),
			DNF:       a.dnf,
			MovesMean: mean(a.moves),
			MovesStd:  sampleStd(a.moves),
			NodesMean: mean(a.nodes),
			NodesStd:  sampleStd(a.nodes),
			TimeMean:  mean(a.secs),
			TimeStd:   sampleStd(a.secs),
		})
	}

	return report, nil
}

// mean returns the arithmetic mean, or 0 for an empty sample.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStd returns the sample standard deviation (n−1 denominator),
// or 0 for samples smaller than two.
func sampleStd(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	m := mean(xs)
	ss := 0.0
	for _, x := range xs {
		d := x - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}
