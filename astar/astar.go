package astar

import (
	"github.com/ares-adventure/sokosolver/board"
	"github.com/ares-adventure/sokosolver/heuristic"
	"github.com/ares-adventure/sokosolver/internal/engine"
)

// Search runs A* search from the given initial State on board b,
// applying any number of functional Options. Returns ErrBoardNil for a
// nil board, ErrOptionViolation for bad options, or one of
// engine.ErrNoSolution, engine.ErrSearchExhausted, engine.ErrCancelled.
//
// The frontier is a min-priority queue keyed on f = g + heuristic.Estimate.
func Search(b *board.Board, start board.State, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrBoardNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	frontier := engine.NewPriorityQueue(func(n *engine.Node) int {
		return n.G + heuristic.Estimate(b, n.State)
	})
	res, err := engine.Run(b, start, frontier, engine.Options{
		Ctx:       o.Ctx,
		NodeCap:   o.NodeCap,
		CostBased: true,
	})
	if err != nil {
		return &Result{Nodes: res.Nodes}, err
	}

	return &Result{
		Actions: engine.Reconstruct(res.Goal),
		Nodes:   res.Nodes,
	}, nil
}
