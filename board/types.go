// Package board defines core types and sentinel errors for the sliding-tile
// state model of github.com/katalvlaran/npuzzle.
package board

import (
	"errors"
	"fmt"
)

const (
	// MinSize is the smallest supported grid width. A 1×1 grid has no
	// legal moves, so sizes below 2 are rejected.
	MinSize = 2

	// DefaultSize is the classic 8-puzzle grid width.
	DefaultSize = 3

	// Blank is the tile label reserved for the empty cell.
	Blank = 0
)

// Sentinel errors for board construction and move application.
var (
	// ErrBadSize indicates a requested grid width below MinSize.
	ErrBadSize = errors.New("board: grid size must be at least 2")

	// ErrDimensionMismatch indicates a tile slice whose length is not size².
	ErrDimensionMismatch = errors.New("board: tile count does not match grid size")

	// ErrNotPermutation indicates tiles that are not a permutation of
	// 0..n²−1 (duplicate, missing, or out-of-range labels).
	ErrNotPermutation = errors.New("board: tiles must be a permutation of 0..n²-1")

	// ErrIllegalMove indicates a move that would push the blank off the grid.
	ErrIllegalMove = errors.New("board: move pushes the blank off the grid")

	// ErrUnknownMove indicates a move name that ParseMove does not recognize.
	ErrUnknownMove = errors.New("board: unknown move")
)

// Move identifies one of the four blank slides. The direction is the one
// the blank travels in; the adjacent tile moves the opposite way.
type Move int

const (
	// MoveUp slides the blank one row up.
	MoveUp Move = iota
	// MoveDown slides the blank one row down.
	MoveDown
	// MoveLeft slides the blank one column left.
	MoveLeft
	// MoveRight slides the blank one column right.
	MoveRight
)

// moveOrder fixes the canonical successor emission order. Neighbors and
// every consumer that iterates moves must follow this order so that
// tie-breaking downstream stays deterministic.
var moveOrder = [4]Move{MoveUp, MoveDown, MoveLeft, MoveRight}

// moveNames maps each Move to its display name.
var moveNames = [4]string{"Up", "Down", "Left", "Right"}

// Valid reports whether m is one of the four defined moves.
func (m Move) Valid() bool { return m >= MoveUp && m <= MoveRight }

// String returns the display name of m ("Up", "Down", "Left", "Right"),
// or a bracketed numeric form for out-of-range values.
func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// Delta returns the (row, col) offset the blank travels under m.
// Out-of-range moves return (0, 0).
func (m Move) Delta() (dr, dc int) {
	switch m {
	case MoveUp:
		return -1, 0
	case MoveDown:
		return 1, 0
	case MoveLeft:
		return 0, -1
	case MoveRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// ParseMove converts a display name ("Up", "Down", "Left", "Right")
// into a Move. Returns ErrUnknownMove for anything else.
func ParseMove(s string) (Move, error) {
	for i, name := range moveNames {
		if s == name {
			return Move(i), nil
		}
	}
	return MoveUp, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

// Step pairs a Move with the Board it produces. Neighbors returns steps
// rather than bare boards so that callers can record the move taken.
type Step struct {
	Move  Move
	Board Board
}
