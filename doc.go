// Package npuzzle is an in-memory toolkit for generating, validating and
// optimally solving N×N sliding-tile puzzles (the 8-puzzle and its family).
//
// 🚀 What is npuzzle?
//
//	A small, deterministic library that brings together:
//		• Board primitives: immutable states, legal move generation, pretty printing
//		• Solvability: inversion-parity analysis for any grid width (no search needed)
//		• Instance generation: seeded random solvable boards
//		• Search: A* with admissible heuristics (Hamming, Manhattan) and strict tie-breaking
//		• Experiments: a benchmark harness comparing heuristics with CSV reports
//
// ✨ Why choose npuzzle?
//
//   - Reproducible – identical inputs and seeds yield identical paths and node counts
//   - Rock-solid guarantees – optimal solutions, sentinel errors, in-code docs
//   - Pure Go core – the library packages use no cgo and no hidden global state
//   - Extensible – boards are parametric in grid size, not hard-coded to 3×3
//
// Under the hood, everything is organized under focused subpackages:
//
//	board/     — Board, Move, solvability, random instance generation
//	heuristic/ — Hamming & Manhattan evaluators (admissible, consistent)
//	astar/     — the A* engine: frontier, visited map, path reconstruction
//	benchmark/ — the experiment harness: trials, statistics, CSV output
//	cmd/       — the npuzzle CLI (solve one instance, or run a benchmark)
//
// Quick ASCII example (3×3, blank shown as “.”):
//
//	1 2 3        1 2 3
//	4 . 6   →    4 5 6
//	7 5 8        7 8 .
//
// Solved in two moves: Down, Right (the blank slides down, then right).
package npuzzle
