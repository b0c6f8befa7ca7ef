// Package astar implements A* over the implicit sliding-tile state graph.
//
// The frontier is a container/heap min-heap under the “lazy decrease-key”
// strategy: improved paths push duplicate entries, and stale entries are
// skipped when popped. Search nodes live in an append-only arena indexed by
// position; parent links are arena indices, so path reconstruction walks
// integers rather than live pointers and no reference cycles exist.
package astar

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/npuzzle/board"
)

// Solve runs A* from start to goal and returns the optimal move sequence
// with statistics. goal must be the canonical solved board of start's size
// (board.Goal), because the heuristic evaluators estimate distance to it.
//
// Returns:
//
//   - res: never nil unless err is a validation error; on budget aborts it
//     carries the statistics gathered so far with Found=false.
//   - err: validation sentinels (ErrDimensionMismatch, ErrGoalNotCanonical,
//     ErrBadHeuristic, ErrOptionViolation), or a budget/cancellation abort
//     matching ErrAborted. An unsolvable start is NOT an error: the
//     frontier drains and res.Found is false.
//
// Determinism: identical (start, options) inputs yield identical Moves and
// identical node counts; see the package documentation for the tie-break
// rules.
//
// Complexity: per expanded node O(n² log N) time (heuristic evaluation,
// key construction, heap maintenance), O(N·n²) space overall.
func Solve(start, goal board.Board, opts ...Option) (*Result, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !cfg.Heuristic.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrBadHeuristic, cfg.Heuristic)
	}

	// 2) Validate the board pair.
	if start.Size() != goal.Size() {
		return nil, fmt.Errorf("%w: start %d×%d, goal %d×%d",
			ErrDimensionMismatch, start.Size(), start.Size(), goal.Size(), goal.Size())
	}
	if !goal.IsGoal() {
		return nil, ErrGoalNotCanonical
	}

	// 3) Seed the runner with the root node and execute the main loop.
	r := &runner{
		options: cfg,
		goalKey: goal.Key(),
		arena:   make([]node, 0, 64),
		bestG:   make(map[string]int, 64),
	}

	return r.run(start)
}

// node is one entry of the search arena: a reached state, its exact cost
// from the start, its heuristic estimate, and the arena index of its parent
// (-1 for the root) together with the move that produced it.
type node struct {
	b      board.Board
	g      int
	h      int
	parent int
	move   board.Move
}

// frontierItem is a snapshot of a node's priority at enqueue time.
// idx points into the runner's arena; seq is the insertion counter used as
// the final FIFO tie-break.
type frontierItem struct {
	idx int
	f   int
	h   int
	seq int
}

// frontierPQ is a min-heap of frontierItem ordered by ascending f, then
// ascending h (prefer nodes estimated closer to the goal), then ascending
// insertion sequence. All three keys are exact integers, so the order is a
// strict total order and runs are reproducible.
type frontierPQ []frontierItem

// Len returns the number of items in the heap.
func (pq frontierPQ) Len() int { return len(pq) }

// Less defines the (f, h, seq) lexicographic comparison.
func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// runner holds the mutable state of a single Solve execution. Each call
// owns its runner exclusively, so concurrent Solve calls never share
// mutable state.
type runner struct {
	options Options
	goalKey string

	// arena is append-only storage for every generated node; parent links
	// are indices into it.
	arena []node

	// bestG maps a board key to the lowest g at which that state has been
	// enqueued. Entries are overwritten only on strict improvement.
	bestG map[string]int

	pq  frontierPQ
	seq int

	expanded  int
	generated int
}

// run executes the A* main loop and assembles the Result.
func (r *runner) run(start board.Board) (*Result, error) {
	began := time.Now()

	// 1) Root node: g=0, h from the selected evaluator, no parent.
	h0 := r.options.Heuristic.Evaluate(start)
	r.arena = append(r.arena, node{b: start, g: 0, h: h0, parent: -1})
	r.bestG[start.Key()] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, frontierItem{idx: 0, f: h0, h: h0, seq: r.seq})
	r.seq++
	r.generated++

	for r.pq.Len() > 0 {
		// 2) Cooperative budget checks, once per pop.
		select {
		case <-r.options.Ctx.Done():
			return r.abortResult(began), fmt.Errorf("%w: %w", ErrAborted, r.options.Ctx.Err())
		default:
		}
		if r.options.TimeLimit > 0 && time.Since(began) > r.options.TimeLimit {
			return r.abortResult(began), ErrTimeLimit
		}
		if r.options.NodeLimit > 0 && r.expanded >= r.options.NodeLimit {
			return r.abortResult(began), ErrNodeLimit
		}

		// 3) Pop the lowest-(f,h,seq) frontier entry.
		item := heap.Pop(&r.pq).(frontierItem)
		cur := r.arena[item.idx]
		key := cur.b.Key()

		// 4) Skip stale lazy-heap entries: a cheaper path to this state was
		//    enqueued after this entry. Not counted as an expansion.
		if r.bestG[key] < cur.g {
			continue
		}

		// 5) Goal test on pop (not on generation) preserves optimality.
		//    The goal pop itself is not counted as an expansion.
		if key == r.goalKey {
			return &Result{
				Found:          true,
				Moves:          r.reconstruct(item.idx),
				Cost:           cur.g,
				NodesExpanded:  r.expanded,
				NodesGenerated: r.generated,
				Elapsed:        time.Since(began),
			}, nil
		}

		// 6) Expand: generate every legal successor in deterministic order.
		r.expanded++
		r.relax(cur, item.idx)
	}

	// 7) Frontier exhausted: no solution exists. A valid, recoverable
	//    outcome (only reachable when the solvability gate was skipped).
	res := r.abortResult(began)

	return res, nil
}

// relax enqueues every successor of cur that improves on the best-known g
// for its state. Re-reaching a state with strictly lower g re-enqueues it
// with the new parent (re-opening); equal or worse paths are discarded.
func (r *runner) relax(cur node, curIdx int) {
	var g2, h2 int
	for _, step := range cur.b.Neighbors() {
		g2 = cur.g + 1
		k := step.Board.Key()
		if prev, ok := r.bestG[k]; ok && g2 >= prev {
			continue // not a strict improvement
		}
		r.bestG[k] = g2
		h2 = r.options.Heuristic.Evaluate(step.Board)
		r.arena = append(r.arena, node{b: step.Board, g: g2, h: h2, parent: curIdx, move: step.Move})
		heap.Push(&r.pq, frontierItem{idx: len(r.arena) - 1, f: g2 + h2, h: h2, seq: r.seq})
		r.seq++
		r.generated++
	}
}

// reconstruct walks parent indices from the goal node back to the root and
// returns the move sequence in start→goal order.
func (r *runner) reconstruct(goalIdx int) []board.Move {
	moves := make([]board.Move, 0, r.arena[goalIdx].g)
	for idx := goalIdx; r.arena[idx].parent >= 0; idx = r.arena[idx].parent {
		moves = append(moves, r.arena[idx].move)
	}
	// reverse to get start → goal
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves
}

// abortResult packages the statistics gathered so far for "no solution"
// and budget-abort outcomes.
func (r *runner) abortResult(began time.Time) *Result {
	return &Result{
		Found:          false,
		Moves:          nil,
		Cost:           -1,
		NodesExpanded:  r.expanded,
		NodesGenerated: r.generated,
		Elapsed:        time.Since(began),
	}
}
