// Command npuzzle solves sliding-tile puzzle instances and benchmarks the
// two A* heuristics.
//
// Subcommands:
//
//	solve — solve one instance (random seeded, or an explicit permutation)
//	bench — run many trials per heuristic and report aggregated statistics,
//	        optionally writing timestamped CSV files
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/npuzzle/astar"
	"github.com/katalvlaran/npuzzle/benchmark"
	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

func main() {
	cmd := &cli.Command{
		Name:  "npuzzle",
		Usage: "generate, solve and benchmark N×N sliding-tile puzzles",
		Commands: []*cli.Command{
			solveCommand(),
			benchCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// solveCommand builds the `npuzzle solve` subcommand.
func solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "solve a single instance and print the optimal move sequence",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Value: board.DefaultSize, Usage: "grid width N"},
			&cli.IntFlag{Name: "seed", Value: 0, Usage: "RNG seed for the random instance (0 = fixed default)"},
			&cli.StringFlag{Name: "heuristic", Value: "manhattan", Usage: "heuristic: hamming or manhattan"},
			&cli.StringFlag{Name: "tiles", Usage: "explicit comma-separated permutation (0 = blank), row-major"},
			&cli.IntFlag{Name: "node-limit", Value: 0, Usage: "abort after this many expansions (0 = unlimited)"},
			&cli.DurationFlag{Name: "time-limit", Value: 0, Usage: "abort after this duration (0 = unlimited)"},
		},
		Action: runSolve,
	}
}

func runSolve(_ context.Context, cmd *cli.Command) error {
	size := int(cmd.Int("size"))

	h, err := heuristic.Parse(cmd.String("heuristic"))
	if err != nil {
		return err
	}

	start, err := startBoard(size, cmd.String("tiles"), int64(cmd.Int("seed")))
	if err != nil {
		return err
	}

	fmt.Println("Start state:")
	fmt.Println(start)
	fmt.Printf("\nSolvable: %v\n", start.Solvable())
	fmt.Printf("Hamming distance:   %d\n", heuristic.Hamming.Evaluate(start))
	fmt.Printf("Manhattan distance: %d\n", heuristic.Manhattan.Evaluate(start))

	res, err := astar.Solve(start, board.Goal(size),
		astar.WithHeuristic(h),
		astar.WithNodeLimit(int(cmd.Int("node-limit"))),
		astar.WithTimeLimit(cmd.Duration("time-limit")),
	)
	if err != nil {
		return err
	}

	if !res.Found {
		fmt.Printf("\nNo solution exists (%d nodes expanded).\n", res.NodesExpanded)
		return nil
	}

	fmt.Printf("\nSolved with %s in %d moves (%d nodes expanded, %d generated, %s):\n",
		h, res.Cost, res.NodesExpanded, res.NodesGenerated, res.Elapsed)
	fmt.Println(formatMoves(res.Moves))

	return nil
}

// benchCommand builds the `npuzzle bench` subcommand.
func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "run the heuristic comparison benchmark",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "trials", Value: benchmark.DefaultTrials, Usage: "experiments per heuristic"},
			&cli.IntFlag{Name: "size", Value: board.DefaultSize, Usage: "grid width N"},
			&cli.IntFlag{Name: "seed", Value: 0, Usage: "instance RNG seed (0 = fixed default)"},
			&cli.IntFlag{Name: "node-limit", Value: 0, Usage: "per-search node budget (0 = unlimited)"},
			&cli.DurationFlag{Name: "time-limit", Value: 0, Usage: "per-search time budget (0 = unlimited)"},
			&cli.StringFlag{Name: "out", Value: "results", Usage: "directory for CSV report files"},
			&cli.BoolFlag{Name: "no-csv", Usage: "skip writing CSV files"},
		},
		Action: runBench,
	}
}

func runBench(_ context.Context, cmd *cli.Command) error {
	rep, err := benchmark.Run(
		benchmark.WithTrials(int(cmd.Int("trials"))),
		benchmark.WithSize(int(cmd.Int("size"))),
		benchmark.WithSeed(int64(cmd.Int("seed"))),
		benchmark.WithNodeLimit(int(cmd.Int("node-limit"))),
		benchmark.WithTimeLimit(cmd.Duration("time-limit")),
	)
	if err != nil {
		return err
	}

	for _, s := range rep.Summaries {
		fmt.Println()
		fmt.Println(s)
	}

	if cmd.Bool("no-csv") {
		return nil
	}

	return writeCSVFiles(rep, cmd.String("out"))
}

// writeCSVFiles writes the timestamped per-run and summary CSV reports.
func writeCSVFiles(rep *benchmark.Report, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	stamp := time.Now().Format("20060102-150405")

	runsPath := filepath.Join(dir, fmt.Sprintf("benchmark_runs_%s.csv", stamp))
	if err := writeCSV(runsPath, rep.WriteRunsCSV); err != nil {
		return err
	}
	summaryPath := filepath.Join(dir, fmt.Sprintf("benchmark_summary_%s.csv", stamp))
	if err := writeCSV(summaryPath, rep.WriteSummaryCSV); err != nil {
		return err
	}

	fmt.Printf("\nDetailed run results: %s\n", runsPath)
	fmt.Printf("Statistical summary:  %s\n", summaryPath)

	return nil
}

// writeCSV creates path and streams one report section into it.
func writeCSV(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// startBoard builds the instance to solve: an explicit permutation when
// --tiles is given, a seeded random solvable board otherwise.
func startBoard(size int, tiles string, seed int64) (board.Board, error) {
	if tiles == "" {
		return board.Random(size, board.NewRand(seed))
	}

	parts := strings.Split(tiles, ",")
	perm := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return board.Board{}, fmt.Errorf("parse --tiles: %w", err)
		}
		perm = append(perm, v)
	}

	return board.New(size, perm)
}

// formatMoves joins a move sequence into a single readable line.
func formatMoves(moves []board.Move) string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return strings.Join(names, " ")
}
