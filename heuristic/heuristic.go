package heuristic

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/npuzzle/board"
)

// ErrUnknownHeuristic is returned by Parse for an unrecognized name.
var ErrUnknownHeuristic = errors.New("heuristic: unknown heuristic")

// Heuristic selects one of the closed set of distance estimators.
type Heuristic int

const (
	// Hamming counts tiles outside their goal cell (blank excluded).
	Hamming Heuristic = iota

	// Manhattan sums the grid distance of every tile to its goal cell
	// (blank excluded). Dominates Hamming pointwise.
	Manhattan
)

// heuristicNames maps each variant to its canonical lower-case name,
// as used by Parse, CSV reports, and the CLI.
var heuristicNames = [2]string{"hamming", "manhattan"}

// Heuristics returns the closed ordered set of variants. Harnesses iterate
// this slice so that every report covers the same heuristics in the same
// order.
func Heuristics() []Heuristic {
	return []Heuristic{Hamming, Manhattan}
}

// Valid reports whether h is one of the defined variants.
func (h Heuristic) Valid() bool { return h >= Hamming && h <= Manhattan }

// String returns the canonical name ("hamming", "manhattan"), or a
// bracketed numeric form for out-of-range values.
func (h Heuristic) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
	return heuristicNames[h]
}

// Parse converts a canonical name into a Heuristic.
// Returns ErrUnknownHeuristic for anything else.
func Parse(s string) (Heuristic, error) {
	for i, name := range heuristicNames {
		if s == name {
			return Heuristic(i), nil
		}
	}
	return Hamming, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
}

// Evaluate returns the estimated remaining move count from b to the
// canonical goal of b's size. Pure and deterministic; never negative;
// zero exactly on the goal. Out-of-range variants evaluate as Hamming
// (callers are expected to validate with Valid first).
//
// Complexity: O(n²) time, O(1) space.
func (h Heuristic) Evaluate(b board.Board) int {
	if h == Manhattan {
		return manhattan(b)
	}
	return hamming(b)
}

// goalIndex returns the goal cell index of a non-blank tile label on an
// n-wide grid: tile t belongs at row-major index t−1.
func goalIndex(tile int) int { return tile - 1 }

// hamming counts non-blank tiles whose current index differs from their
// goal index.
func hamming(b board.Board) int {
	n := b.Size()
	count := 0
	var t int
	for i := 0; i < n*n; i++ {
		t = b.Tile(i/n, i%n)
		if t != board.Blank && goalIndex(t) != i {
			count++
		}
	}
	return count
}

// manhattan sums the row and column displacement of every non-blank tile
// from its goal cell.
func manhattan(b board.Board) int {
	n := b.Size()
	sum := 0
	var t, gi, dr, dc int
	for i := 0; i < n*n; i++ {
		t = b.Tile(i/n, i%n)
		if t == board.Blank {
			continue
		}
		gi = goalIndex(t)
		dr = i/n - gi/n
		if dr < 0 {
			dr = -dr
		}
		dc = i%n - gi%n
		if dc < 0 {
			dc = -dc
		}
		sum += dr + dc
	}
	return sum
}
