// Package benchmark is the experiment harness: it generates random solvable
// instances, runs the A* engine once per heuristic per instance, and
// aggregates per-heuristic statistics over many trials.
//
// What
//
//   - Run(opts...) executes Trials independent experiments. Each trial draws
//     one random solvable board (seeded, reproducible) and solves that same
//     board once with every heuristic, so per-instance comparisons (e.g.
//     Manhattan expanding no more nodes than Hamming) are meaningful.
//   - The Report carries every individual Trial plus one Summary per
//     heuristic: mean and sample standard deviation of solution moves,
//     nodes expanded, and wall-clock runtime.
//   - WriteRunsCSV and WriteSummaryCSV serialize the report in CSV form
//     (encoding/csv); the search core itself never serializes anything.
//
// Budgets and DNF trials
//
//	Node/time budgets are forwarded to the engine. A trial that aborts on a
//	budget is recorded as a DNF (did-not-finish: Aborted=true, Moves=-1)
//	and the batch continues; DNF trials appear in the runs CSV but are
//	excluded from the summary means. Any other engine error stops the
//	batch — with a gated generator it indicates a programming error.
//
// Concurrency
//
//	Run is synchronous and owns its aggregation state exclusively. Distinct
//	Run calls share nothing and may execute in parallel.
//
// Errors (sentinel)
//
//   - ErrOptionViolation if an invalid option is supplied (non-positive
//     trial count, grid width below board.MinSize, negative budgets).
package benchmark
