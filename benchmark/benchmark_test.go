package benchmark_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/benchmark"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// TestRun_OptionViolations rejects bad configuration before any work.
func TestRun_OptionViolations(t *testing.T) {
	_, err := benchmark.Run(benchmark.WithTrials(0))
	assert.ErrorIs(t, err, benchmark.ErrOptionViolation)

	_, err = benchmark.Run(benchmark.WithSize(1))
	assert.ErrorIs(t, err, benchmark.ErrOptionViolation)

	_, err = benchmark.Run(benchmark.WithNodeLimit(-1))
	assert.ErrorIs(t, err, benchmark.ErrOptionViolation)

	_, err = benchmark.Run(benchmark.WithTimeLimit(-time.Second))
	assert.ErrorIs(t, err, benchmark.ErrOptionViolation)
}

// TestRun_Shape verifies the report layout: trials × heuristics runs, one
// summary per heuristic in canonical order, shared instance per trial.
func TestRun_Shape(t *testing.T) {
	const trials = 8
	rep, err := benchmark.Run(benchmark.WithTrials(trials), benchmark.WithSeed(42))
	require.NoError(t, err)

	hs := heuristic.Heuristics()
	require.Len(t, rep.Runs, trials*len(hs))
	require.Len(t, rep.Summaries, len(hs))

	for i, s := range rep.Summaries {
		assert.Equal(t, hs[i], s.Heuristic)
		assert.Equal(t, trials, s.Completed)
		assert.Zero(t, s.DNF)
	}

	// Runs are grouped per trial: both heuristics solve the same instance,
	// so their optimal move counts must agree pairwise.
	for run := 0; run < trials; run++ {
		ham := rep.Runs[run*len(hs)]
		man := rep.Runs[run*len(hs)+1]
		assert.Equal(t, run+1, ham.Run)
		assert.Equal(t, ham.Run, man.Run)
		assert.Equal(t, ham.Moves, man.Moves, "run %d: optimal costs must agree", run+1)
	}
}

// TestRun_ManhattanDominates checks the aggregate dominance property:
// Manhattan's mean expanded-node count never exceeds Hamming's.
func TestRun_ManhattanDominates(t *testing.T) {
	rep, err := benchmark.Run(benchmark.WithTrials(10), benchmark.WithSeed(7))
	require.NoError(t, err)

	var ham, man benchmark.Summary
	for _, s := range rep.Summaries {
		switch s.Heuristic {
		case heuristic.Hamming:
			ham = s
		case heuristic.Manhattan:
			man = s
		}
	}
	assert.LessOrEqual(t, man.NodesMean, ham.NodesMean)

	// Pointwise too, since both solve identical instances.
	hs := heuristic.Heuristics()
	for run := 0; run < 10; run++ {
		h := rep.Runs[run*len(hs)]
		m := rep.Runs[run*len(hs)+1]
		assert.LessOrEqual(t, m.NodesExpanded, h.NodesExpanded, "run %d", run+1)
	}
}

// TestRun_SeedReproducible verifies that equal seeds reproduce identical
// trial outcomes (apart from wall-clock noise).
func TestRun_SeedReproducible(t *testing.T) {
	a, err := benchmark.Run(benchmark.WithTrials(5), benchmark.WithSeed(123))
	require.NoError(t, err)
	b, err := benchmark.Run(benchmark.WithTrials(5), benchmark.WithSeed(123))
	require.NoError(t, err)

	require.Len(t, b.Runs, len(a.Runs))
	for i := range a.Runs {
		assert.Equal(t, a.Runs[i].Moves, b.Runs[i].Moves, "trial %d", i)
		assert.Equal(t, a.Runs[i].NodesExpanded, b.Runs[i].NodesExpanded, "trial %d", i)
	}
}

// TestRun_NodeLimitRecordsDNF verifies that budget-tripped searches become
// DNF trials without failing the batch.
func TestRun_NodeLimitRecordsDNF(t *testing.T) {
	// A node budget of 1 cannot solve anything farther than one move away,
	// so most of the batch records DNFs while the run still succeeds.
	rep, err := benchmark.Run(
		benchmark.WithTrials(6),
		benchmark.WithSeed(99),
		benchmark.WithNodeLimit(1),
	)
	require.NoError(t, err)

	dnf := 0
	for _, trial := range rep.Runs {
		if trial.Aborted {
			assert.Equal(t, -1, trial.Moves)
			dnf++
		}
	}
	assert.Positive(t, dnf, "a 1-node budget must abort some searches")

	total := 0
	for _, s := range rep.Summaries {
		assert.Equal(t, 6, s.Completed+s.DNF)
		total += s.DNF
	}
	assert.Equal(t, dnf, total, "summaries must account for every DNF")
}

// TestWriteRunsCSV checks the header and row count of the per-run export.
func TestWriteRunsCSV(t *testing.T) {
	rep, err := benchmark.Run(benchmark.WithTrials(3), benchmark.WithSeed(1))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, rep.WriteRunsCSV(&sb))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 1+3*len(heuristic.Heuristics()))
	assert.Equal(t, "heuristic,run,moves,nodes_expanded,runtime_seconds", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "hamming,1,"))
}

// TestWriteSummaryCSV checks the aggregated export layout.
func TestWriteSummaryCSV(t *testing.T) {
	rep, err := benchmark.Run(benchmark.WithTrials(3), benchmark.WithSeed(1))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, rep.WriteSummaryCSV(&sb))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 1+len(heuristic.Heuristics()))
	assert.Equal(t,
		"heuristic,total_runs,moves_mean,moves_std,nodes_mean,nodes_std,time_mean_seconds,time_std_seconds",
		lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "hamming,3,"))
	assert.True(t, strings.HasPrefix(lines[2], "manhattan,3,"))
}

// TestSummary_String smoke-checks the console block formatting.
func TestSummary_String(t *testing.T) {
	s := benchmark.Summary{
		Heuristic: heuristic.Manhattan,
		Completed: 10,
		MovesMean: 21.5,
		NodesMean: 1234.5,
	}
	out := s.String()
	assert.Contains(t, out, "manhattan heuristic summary (10 completed, 0 DNF)")
	assert.Contains(t, out, "21.50")
	assert.Contains(t, out, "1234.50")
}
