// Package heuristic provides admissible, consistent distance estimators for
// the A* engine: Hamming (misplaced-tile count) and Manhattan (total tile
// displacement).
//
// What
//
//   - Heuristic is a closed enumeration, not runtime string dispatch: the
//     search engine stays decoupled from any evaluator's internals, and the
//     set of variants is checkable at compile time.
//   - Evaluate(b) returns a non-negative integer estimate of the remaining
//     move count from b to the canonical goal of b's size.
//   - Hamming counts tiles that sit outside their goal cell, excluding the
//     blank.
//   - Manhattan sums |row−goal row| + |col−goal col| over all non-blank
//     tiles.
//
// Guarantees (both variants)
//
//   - h(goal) == 0.
//   - Admissible: never overestimates the true optimal move count, so A*
//     results are optimal.
//   - Consistent: |h(s) − h(s′)| ≤ 1 for any legal neighbor s′; one blank
//     slide displaces exactly one tile by one cell.
//   - Manhattan dominates Hamming pointwise: a misplaced tile contributes
//     1 to Hamming and ≥ 1 to Manhattan, so A* with Manhattan never expands
//     more nodes than with Hamming on the same instance.
//
// Complexity
//
//	Evaluate is O(n²) per call for both variants — the dominant per-node
//	cost during search. Goal positions are computed arithmetically from
//	the tile label; no lookup table or auxiliary search is involved.
//
// Errors (sentinel)
//
//   - ErrUnknownHeuristic if Parse receives an unrecognized name.
package heuristic
