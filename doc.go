// Package sokosolver solves weighted Sokoban puzzles ("Ares's
// Adventure"): a grid world where an agent pushes weighted stones onto
// switch cells, minimizing total action cost.
//
// Solve is the single entry point: it loads a board from a file, runs
// one of four graph-search strategies (BFS, DFS, UCS, A*) against it,
// and returns a Result carrying the action sequence, its per-step cost
// trace, and run statistics.
//
//	r, err := sokosolver.Solve("input-01.txt", sokosolver.ASTAR)
//
// Playback, rendering, input-file discovery, and result-file display
// formatting are deliberately out of scope; cmd/sokosolve is a thin CLI
// wiring layer, not part of this package's contract.
package sokosolver
