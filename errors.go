package sokosolver

import "errors"

// Sentinel errors returned by Solve, mirroring the per-package sentinels
// in bfs/dfs/ucs/astar/internal/engine at the facade boundary. A loader
// failure surfaces directly as the *board.InvalidInputError the Grid
// Loader already produces (it carries its own Reason and sentinel chain
// via Unwrap) rather than being re-wrapped here.
var (
	// ErrNoSolution means the search exhausted its frontier without
	// reaching a goal state.
	ErrNoSolution = errors.New("sokosolver: no solution")

	// ErrSearchExhausted means an optional node cap was hit before a
	// goal state was found.
	ErrSearchExhausted = errors.New("sokosolver: search exhausted its node budget")

	// ErrCancelled means the caller's context was done before the
	// search completed.
	ErrCancelled = errors.New("sokosolver: search cancelled")

	// ErrUnknownAlgorithm means Solve was called with an Algorithm value
	// outside {BFS, DFS, UCS, ASTAR}.
	ErrUnknownAlgorithm = errors.New("sokosolver: unknown algorithm")
)
