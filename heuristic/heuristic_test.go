package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/npuzzle/board"
	"github.com/katalvlaran/npuzzle/heuristic"
)

// trueDistances computes the exact optimal move count for every board within
// maxDepth moves of the goal, by breadth-first expansion. Test oracle only.
func trueDistances(size, maxDepth int) map[string]int {
	goal := board.Goal(size)
	dist := map[string]int{goal.Key(): 0}
	frontier := []board.Board{goal}
	for depth := 1; depth <= maxDepth; depth++ {
		var next []board.Board
		for _, b := range frontier {
			for _, step := range b.Neighbors() {
				k := step.Board.Key()
				if _, seen := dist[k]; !seen {
					dist[k] = depth
					next = append(next, step.Board)
				}
			}
		}
		frontier = next
	}
	return dist
}

// boardFromKey rebuilds a Board from its byte key (oracle helper).
func boardFromKey(size int, key string) board.Board {
	tiles := make([]int, len(key))
	for i := 0; i < len(key); i++ {
		tiles[i] = int(key[i])
	}
	return board.MustNew(size, tiles)
}

// TestEvaluate_GoalIsZero pins h(goal) == 0 for both variants and several
// grid widths.
func TestEvaluate_GoalIsZero(t *testing.T) {
	for _, h := range heuristic.Heuristics() {
		for size := 2; size <= 5; size++ {
			assert.Zerof(t, h.Evaluate(board.Goal(size)), "%s on Goal(%d)", h, size)
		}
	}
}

// TestEvaluate_KnownValues pins hand-computed values on fixed boards.
func TestEvaluate_KnownValues(t *testing.T) {
	// One move from goal: tile 8 one cell right of its slot.
	oneOff := board.MustNew(3, []int{1, 2, 3, 4, 5, 6, 7, 0, 8})
	assert.Equal(t, 1, heuristic.Hamming.Evaluate(oneOff))
	assert.Equal(t, 1, heuristic.Manhattan.Evaluate(oneOff))

	// Scrambled instance: 8 6 7 / 2 5 4 / 3 0 1 — only tile 5 is home.
	hard := board.MustNew(3, []int{8, 6, 7, 2, 5, 4, 3, 0, 1})
	assert.Equal(t, 7, heuristic.Hamming.Evaluate(hard))
	assert.Equal(t, 21, heuristic.Manhattan.Evaluate(hard))
}

// TestEvaluate_Admissible verifies h(s) ≤ true optimal distance for every
// state within 10 moves of the goal (BFS oracle).
func TestEvaluate_Admissible(t *testing.T) {
	dist := trueDistances(3, 10)
	for key, d := range dist {
		b := boardFromKey(3, key)
		for _, h := range heuristic.Heuristics() {
			if got := h.Evaluate(b); got > d {
				t.Fatalf("%s overestimates: h=%d > optimal=%d for\n%s", h, got, d, b)
			}
		}
	}
}

// TestEvaluate_Consistent verifies |h(s) − h(s′)| ≤ 1 across every edge of
// the oracle neighborhood.
func TestEvaluate_Consistent(t *testing.T) {
	dist := trueDistances(3, 8)
	for key := range dist {
		b := boardFromKey(3, key)
		for _, h := range heuristic.Heuristics() {
			hb := h.Evaluate(b)
			for _, step := range b.Neighbors() {
				hn := h.Evaluate(step.Board)
				diff := hb - hn
				if diff < 0 {
					diff = -diff
				}
				if diff > 1 {
					t.Fatalf("%s inconsistent: |%d-%d| > 1 across move %s from\n%s", h, hb, hn, step.Move, b)
				}
			}
		}
	}
}

// TestManhattan_DominatesHamming checks pointwise dominance on random
// solvable instances.
func TestManhattan_DominatesHamming(t *testing.T) {
	rng := board.NewRand(5)
	for i := 0; i < 300; i++ {
		b, err := board.Random(3, rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t,
			heuristic.Manhattan.Evaluate(b),
			heuristic.Hamming.Evaluate(b),
			"instance %d:\n%s", i, b)
	}
}

// TestParseAndString round-trips the canonical names.
func TestParseAndString(t *testing.T) {
	for _, h := range heuristic.Heuristics() {
		parsed, err := heuristic.Parse(h.String())
		require.NoError(t, err)
		assert.Equal(t, h, parsed)
	}
	_, err := heuristic.Parse("euclidean")
	assert.ErrorIs(t, err, heuristic.ErrUnknownHeuristic)
}
