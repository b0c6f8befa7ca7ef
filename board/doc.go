// Package board provides the immutable state model for N×N sliding-tile
// puzzles: board construction and validation, legal move generation,
// inversion-parity solvability analysis, and seeded random instance
// generation.
//
// What
//
//   - Board: an immutable value holding a row-major permutation of
//     0..n²−1 on an n×n grid, where tile 0 is the blank. The blank index
//     is cached at construction for O(1) neighbor generation.
//   - Move: one of MoveUp, MoveDown, MoveLeft, MoveRight. A move slides
//     the blank in that direction, swapping it with the adjacent tile.
//   - Apply(m): returns the successor board, or ErrIllegalMove if m would
//     push the blank off the grid.
//   - Neighbors(): every legal (Move, Board) successor, always emitted in
//     Up, Down, Left, Right order so downstream consumers tie-break
//     deterministically. Between 2 and 4 successors exist on any grid.
//   - Solvable(): inversion-parity reachability test — no search involved.
//   - Random(size, rng): seeded random solvable instance generation.
//
// Why
//
//   - Boards are the vertices of an implicit state graph explored by the
//     astar package; value equality and a stable map key (Key) make them
//     usable as visited-set keys.
//   - All logic is parametric in the grid width n (n ≥ 2); nothing is
//     hard-coded to the classic 8-puzzle.
//
// Determinism
//
//	Neighbors always yields moves in the fixed Up, Down, Left, Right
//	order, and Random consumes an injectable *rand.Rand, so every
//	downstream computation is reproducible from a seed.
//
// Complexity (n = grid width)
//
//   - New / Goal / Apply / Neighbors: O(n²) time (dominated by tile copy).
//   - Solvable: O(n⁴) time (pairwise inversion count), O(1) extra space.
//   - Random: expected O(n²) per attempt; roughly half of all shuffles of
//     an odd-width grid are solvable, so the expected retry count is ~2.
//
// Errors (sentinel)
//
//   - ErrBadSize          if the requested grid width is below MinSize.
//   - ErrDimensionMismatch if the tile count does not equal size².
//   - ErrNotPermutation   if tiles are not a permutation of 0..n²−1.
//   - ErrIllegalMove      if a move would push the blank off the grid.
package board
