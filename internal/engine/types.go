package engine

import (
	"context"
	"errors"

	"github.com/ares-adventure/sokosolver/board"
)

// Sentinel errors returned by Run.
var (
	// ErrNoSolution is returned when the frontier is exhausted without
	// reaching a goal state.
	ErrNoSolution = errors.New("engine: no solution")

	// ErrSearchExhausted is returned when a caller-supplied node cap is
	// reached before a goal state is found.
	ErrSearchExhausted = errors.New("engine: search exhausted node budget")

	// ErrCancelled is returned when the supplied context is done before
	// a goal state is found.
	ErrCancelled = errors.New("engine: search cancelled")
)

// Node is one entry in the search tree: a State reached via Parent by
// performing Action, at accumulated cost G (meaningful for cost-based
// disciplines; for BFS/DFS it still accumulates path cost for
// diagnostics but never drives expansion order).
type Node struct {
	State  board.State
	Parent *Node
	Action byte
	G      int
	seq    int // insertion order, used by priority frontiers as a stable tiebreak
}

// Frontier is the single extension point the four search engines
// specialize: FIFO for BFS, LIFO for DFS, a cost-ordered min-heap for
// UCS and A*.
type Frontier interface {
	Push(n *Node)
	Pop() *Node
	Len() int
}

// Options configures a single Run invocation.
type Options struct {
	// Ctx allows cooperative cancellation, checked once per pop.
	Ctx context.Context

	// NodeCap, if > 0, bounds the number of expansions before Run
	// returns ErrSearchExhausted.
	NodeCap int

	// CostBased selects the reopening discipline: true for UCS/A*
	// (a node is finalized only once, relaxed like Dijkstra; cheaper
	// paths to a not-yet-finalized state replace the recorded cost),
	// false for BFS/DFS (first-seen-wins, visited marked at push time).
	CostBased bool
}

// Result is the outcome of a successful Run: the goal Node (walk
// n.Parent/n.Action back to reconstruct the path) and the number of
// states expanded.
type Result struct {
	Goal  *Node
	Nodes int
}
