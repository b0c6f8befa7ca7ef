package benchmark

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// runsHeader matches the per-run CSV layout of the report files:
// one row per (heuristic, trial) search.
var runsHeader = []string{"heuristic", "run", "moves", "nodes_expanded", "runtime_seconds"}

// summaryHeader matches the aggregated CSV layout: one row per heuristic.
var summaryHeader = []string{
	"heuristic", "total_runs",
	"moves_mean", "moves_std",
	"nodes_mean", "nodes_std",
	"time_mean_seconds", "time_std_seconds",
}

// WriteRunsCSV streams every individual trial to w in CSV form.
// DNF trials appear with moves=-1, matching the in-memory convention.
func (r *Report) WriteRunsCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(runsHeader); err != nil {
		return fmt.Errorf("benchmark: write runs header: %w", err)
	}
	for _, t := range r.Runs {
		rec := []string{
			t.Heuristic.String(),
			strconv.Itoa(t.Run),
			strconv.Itoa(t.Moves),
			strconv.Itoa(t.NodesExpanded),
			strconv.FormatFloat(t.Elapsed.Seconds(), 'f', 6, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("benchmark: write run %d (%s): %w", t.Run, t.Heuristic, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSummaryCSV writes one aggregated row per heuristic to w.
func (r *Report) WriteSummaryCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return fmt.Errorf("benchmark: write summary header: %w", err)
	}
	for _, s := range r.Summaries {
		rec := []string{
			s.Heuristic.String(),
			strconv.Itoa(s.Completed),
			strconv.FormatFloat(s.MovesMean, 'f', 4, 64),
			strconv.FormatFloat(s.MovesStd, 'f', 4, 64),
			strconv.FormatFloat(s.NodesMean, 'f', 4, 64),
			strconv.FormatFloat(s.NodesStd, 'f', 4, 64),
			strconv.FormatFloat(s.TimeMean, 'f', 6, 64),
			strconv.FormatFloat(s.TimeStd, 'f', 6, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("benchmark: write summary (%s): %w", s.Heuristic, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
