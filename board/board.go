package board

import (
	"fmt"
	"strings"
)

// Board is an immutable sliding-tile configuration: a row-major permutation
// of 0..n²−1 on an n×n grid, with tile 0 as the blank. The blank index is
// cached at construction. All methods treat the receiver as read-only;
// Apply and Neighbors allocate fresh tile slices for successors, so a Board
// may be shared freely across goroutines.
type Board struct {
	size  int
	tiles []int
	blank int
}

// New constructs a Board from an explicit tile permutation laid out
// row-major on a size×size grid.
//
// Validation (in order):
//  1. size ≥ MinSize (ErrBadSize).
//  2. len(tiles) == size² (ErrDimensionMismatch).
//  3. tiles is a permutation of 0..size²−1 (ErrNotPermutation); this also
//     guarantees exactly one blank.
//
// The input slice is deep-copied; callers may reuse it afterwards.
// Complexity: O(n²) time and space.
func New(size int, tiles []int) (Board, error) {
	if size < MinSize {
		return Board{}, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	n := size * size
	if len(tiles) != n {
		return Board{}, fmt.Errorf("%w: want %d tiles, got %d", ErrDimensionMismatch, n, len(tiles))
	}

	// Permutation check: every label 0..n−1 must occur exactly once.
	seen := make([]bool, n)
	blank := -1
	for i, t := range tiles {
		if t < 0 || t >= n || seen[t] {
			return Board{}, fmt.Errorf("%w: tile %d at index %d", ErrNotPermutation, t, i)
		}
		seen[t] = true
		if t == Blank {
			blank = i
		}
	}

	owned := make([]int, n)
	copy(owned, tiles)

	return Board{size: size, tiles: owned, blank: blank}, nil
}

// MustNew is New that panics on error. Intended for fixed boards in tests
// and examples where the permutation is known to be valid.
func MustNew(size int, tiles []int) Board {
	b, err := New(size, tiles)
	if err != nil {
		panic(err)
	}
	return b
}

// Goal returns the canonical solved Board for the given grid width:
// tiles 1..n²−1 in row-major order with the blank in the last cell.
// Panics with ErrBadSize for size < MinSize (a programming error,
// mirroring invalid functional-option arguments).
func Goal(size int) Board {
	if size < MinSize {
		panic(ErrBadSize.Error())
	}
	n := size * size
	tiles := make([]int, n)
	for i := 0; i < n-1; i++ {
		tiles[i] = i + 1
	}
	tiles[n-1] = Blank

	return Board{size: size, tiles: tiles, blank: n - 1}
}

// Size returns the grid width n.
func (b Board) Size() int { return b.size }

// Tiles returns a copy of the row-major tile slice. The copy keeps the
// receiver immutable.
func (b Board) Tiles() []int {
	out := make([]int, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Tile returns the label at (row, col). No bounds checking: callers are
// expected to stay within 0..Size()−1 (out-of-range access panics, as with
// any slice misuse).
func (b Board) Tile(row, col int) int { return b.tiles[row*b.size+col] }

// BlankIndex returns the row-major index of the blank cell.
func (b Board) BlankIndex() int { return b.blank }

// BlankPos returns the (row, col) coordinates of the blank cell.
func (b Board) BlankPos() (row, col int) {
	return b.blank / b.size, b.blank % b.size
}

// Equal reports value equality: same grid width and identical tile layout.
func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i, t := range b.tiles {
		if t != other.tiles[i] {
			return false
		}
	}
	return true
}

// IsGoal reports whether b is the canonical solved configuration.
// Complexity: O(n²), with an O(1) blank-position short-circuit.
func (b Board) IsGoal() bool {
	if b.blank != b.size*b.size-1 {
		return false
	}
	for i := 0; i < b.blank; i++ {
		if b.tiles[i] != i+1 {
			return false
		}
	}
	return true
}

// Key returns a compact string usable as a map key. Two boards of the same
// size share a key iff they are Equal. Tile labels are encoded one byte
// each, which covers every grid up to 15×15 (225 tiles).
func (b Board) Key() string {
	buf := make([]byte, len(b.tiles))
	for i, t := range b.tiles {
		buf[i] = byte(t)
	}
	return string(buf)
}

// Apply returns the successor Board produced by sliding the blank one cell
// in the direction of m. Returns ErrIllegalMove if the blank sits on the
// corresponding grid edge. The receiver is never mutated.
// Complexity: O(n²) time (tile copy), O(n²) space.
func (b Board) Apply(m Move) (Board, error) {
	if !m.Valid() {
		return Board{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	dr, dc := m.Delta()
	row, col := b.BlankPos()
	nr, nc := row+dr, col+dc
	if nr < 0 || nr >= b.size || nc < 0 || nc >= b.size {
		return Board{}, fmt.Errorf("%w: %s from blank at (%d,%d)", ErrIllegalMove, m, row, col)
	}

	next := nr*b.size + nc
	tiles := make([]int, len(b.tiles))
	copy(tiles, b.tiles)
	tiles[b.blank], tiles[next] = tiles[next], tiles[b.blank]

	return Board{size: b.size, tiles: tiles, blank: next}, nil
}

// Neighbors returns every legal successor of b as (Move, Board) steps,
// in the fixed Up, Down, Left, Right order. Never errors: illegal moves
// are simply not emitted. Every position on an n×n grid (n ≥ 2) has at
// least 2 and at most 4 legal moves.
// Complexity: O(n²) per successor.
func (b Board) Neighbors() []Step {
	steps := make([]Step, 0, 4)
	for _, m := range moveOrder {
		next, err := b.Apply(m)
		if err != nil {
			continue // blank on the corresponding edge
		}
		steps = append(steps, Step{Move: m, Board: next})
	}
	return steps
}

// Inversions counts tile pairs that appear out of order in the row-major
// sequence, ignoring the blank. This is the quantity behind the
// solvability parity rule; it is exported for harness reports.
// Complexity: O(n⁴) time, O(1) space.
func (b Board) Inversions() int {
	inv := 0
	for i := 0; i < len(b.tiles); i++ {
		if b.tiles[i] == Blank {
			continue
		}
		for j := i + 1; j < len(b.tiles); j++ {
			if b.tiles[j] != Blank && b.tiles[i] > b.tiles[j] {
				inv++
			}
		}
	}
	return inv
}

// String renders the board as an n×n grid, one row per line, with the
// blank shown as “.” and columns padded to the widest label.
func (b Board) String() string {
	// Widest printable label is n²−1.
	width := len(fmt.Sprint(b.size*b.size - 1))

	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			t := b.tiles[r*b.size+c]
			if t == Blank {
				sb.WriteString(fmt.Sprintf("%*s", width, "."))
			} else {
				sb.WriteString(fmt.Sprintf("%*d", width, t))
			}
		}
		if r < b.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
