package board

// Solvable reports whether the canonical goal configuration is reachable
// from b by legal moves, using inversion-parity analysis — no search is
// performed.
//
// Rule (standard for the N×N sliding-tile family):
//
//   - Odd grid width: b is solvable iff Inversions() is even. Every legal
//     move preserves inversion parity on an odd-width grid, and the goal
//     has zero inversions.
//
//   - Even grid width: a vertical blank move flips inversion parity, so
//     the blank row enters the invariant. With the goal blank in the
//     bottom-right cell, b is solvable iff
//     (Inversions() + blank row counted from the bottom, 1-based) is odd.
//     Equivalently: blank on an odd row from the bottom ⇒ inversions must
//     be even; even row from the bottom ⇒ inversions must be odd.
//
// Edge case: the goal board itself always reports true (zero inversions,
// blank on row 1 from the bottom).
//
// Complexity: O(n⁴) time (inversion count), O(1) extra space.
func (b Board) Solvable() bool {
	inv := b.Inversions()
	if b.size%2 == 1 {
		return inv%2 == 0
	}

	blankRow, _ := b.BlankPos()
	rowFromBottom := b.size - blankRow // 1-based: bottom row = 1

	return (inv+rowFromBottom)%2 == 1
}
