// Package astar implements the A* search engine for sliding-tile boards,
// returning an optimal move sequence together with search statistics.
//
// What
//
//   - Solve(start, goal, opts...) explores the implicit state graph whose
//     vertices are board.Board values and whose edges are single blank
//     slides (unit cost), and returns a Result containing:
//   - Found: whether the goal was reached
//   - Moves: the optimal move sequence from start to goal
//   - Cost: the move count (g of the goal node)
//   - NodesExpanded: states popped and expanded during the run
//   - NodesGenerated: successor states created (frontier inserts)
//   - Elapsed: wall-clock duration of the search loop
//   - Supports functional options: heuristic selection, node and time
//     budgets, and context cancellation.
//
// Why
//
//   - With an admissible, consistent heuristic (see package heuristic),
//     A* pops the goal with a provably minimal g, so returned paths are
//     optimal.
//   - Node counts make heuristics comparable: the benchmark package runs
//     this engine once per heuristic per instance and aggregates.
//
// Determinism
//
//	The frontier orders by ascending f = g + h, breaking ties by smaller h
//	(prefer nodes estimated closer to the goal) and then by insertion
//	sequence (FIFO). Combined with the fixed Up, Down, Left, Right
//	successor order of board.Neighbors, two runs on identical inputs
//	produce identical move sequences and identical node counts.
//
// Re-opening
//
//	A best-known-g map records the lowest g at which each state was
//	enqueued. A state reached again with strictly lower g is re-enqueued
//	with the new parent (lazy decrease-key: the stale frontier entry
//	remains and is skipped when popped). With a consistent heuristic this
//	never fires after expansion, but the engine does not assume it.
//
// Failure and budgets
//
//	An exhausted frontier is NOT an error: Solve returns Found=false with
//	the node counts (this only happens when the caller skipped the
//	board.Solvable gate). Budgets are cooperative, checked once per pop:
//	exceeding the node or time budget returns ErrNodeLimit or ErrTimeLimit,
//	both matching errors.Is(err, ErrAborted); a cancelled context is
//	wrapped under ErrAborted as well. On abort the returned Result still
//	carries the statistics gathered so far.
//
// Complexity (b = branching factor ≤ 4, d = solution depth)
//
//   - Time:  O(b^d · n² log N) worst case, N = frontier size; per-node cost
//     is dominated by the O(n²) heuristic evaluation and key construction.
//   - Space: O(N · n²) for the node arena and best-g map.
//
// Errors (sentinel)
//
//   - ErrDimensionMismatch if start and goal grid sizes differ.
//   - ErrGoalNotCanonical  if goal is not the canonical solved board
//     (the heuristics are defined against it; see package heuristic).
//   - ErrBadHeuristic      if the selected heuristic is out of range.
//   - ErrOptionViolation   if an invalid option was supplied.
//   - ErrAborted           umbrella for every budget/cancellation abort.
//   - ErrNodeLimit         node budget exhausted before reaching the goal.
//   - ErrTimeLimit         time budget exhausted before reaching the goal.
package astar
