package astar_test

import (
	"testing"

	"github.com/katalvlaran/npuzzle/astar"
	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// benchInstances pre-generates a fixed batch of solvable 3×3 instances so
// the generator cost stays out of the measured loop.
func benchInstances(b *testing.B, n int) []board.Board {
	b.Helper()
	rng := board.NewRand(1234)
	out := make([]board.Board, 0, n)
	for i := 0; i < n; i++ {
		inst, err := board.Random(3, rng)
		if err != nil {
			b.Fatalf("generate: %v", err)
		}
		out = append(out, inst)
	}
	return out
}

// BenchmarkSolve_Manhattan measures A* with the Manhattan heuristic over a
// rotating batch of random solvable 3×3 instances.
func BenchmarkSolve_Manhattan(b *testing.B) {
	instances := benchInstances(b, 32)
	goal := board.Goal(3)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = astar.Solve(instances[i%len(instances)], goal,
			astar.WithHeuristic(heuristic.Manhattan))
	}
}

// BenchmarkSolve_Hamming measures the weaker heuristic on the same batch;
// comparing ns/op against BenchmarkSolve_Manhattan shows the node-count gap.
func BenchmarkSolve_Hamming(b *testing.B) {
	instances := benchInstances(b, 32)
	goal := board.Goal(3)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = astar.Solve(instances[i%len(instances)], goal,
			astar.WithHeuristic(heuristic.Hamming))
	}
}

// BenchmarkNeighbors isolates the successor-generation cost that dominates
// node expansion alongside heuristic evaluation.
func BenchmarkNeighbors(b *testing.B) {
	center := board.MustNew(3, []int{1, 2, 3, 4, 0, 5, 6, 7, 8})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = center.Neighbors()
	}
}
