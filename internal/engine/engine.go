package engine

import (
	"context"
	"fmt"

	"github.com/ares-adventure/sokosolver/board"
	"github.com/ares-adventure/sokosolver/successor"
)

// walker encapsulates mutable state for a single Run invocation,
// mirroring the per-search walker/runner structs used throughout this
// codebase's search packages.
type walker struct {
	board     *board.Board
	frontier  Frontier
	costBased bool
	ctx       context.Context
	nodeCap   int

	visited   map[string]bool // BFS/DFS: first-seen-wins, set at push time
	bestCost  map[string]int  // UCS/A*: lowest known G per state key
	finalized map[string]bool // UCS/A*: states whose optimal cost is settled
	seq       int
}

// Run drives the shared search frame: pop the next Node per the
// frontier's discipline, test for goal, otherwise expand successors and
// push the ones that improve on what's already known. The goal test
// happens on pop (not on push): every popped Node that survives the
// staleness check is counted in Nodes, and expanded unless it is the goal.
func Run(b *board.Board, start board.State, frontier Frontier, opts Options) (*Result, error) {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	w := &walker{
		board:     b,
		frontier:  frontier,
		costBased: opts.CostBased,
		ctx:       ctx,
		nodeCap:   opts.NodeCap,
		visited:   make(map[string]bool),
		bestCost:  make(map[string]int),
		finalized: make(map[string]bool),
	}

	startNode := &Node{State: start, G: 0}
	key := w.stateKey(start)
	if w.costBased {
		w.bestCost[key] = 0
	} else {
		w.visited[key] = true
	}
	w.push(startNode)

	nodes := 0
	for w.frontier.Len() > 0 {
		select {
		case <-w.ctx.Done():
			return &Result{Nodes: nodes}, ErrCancelled
		default:
		}

		n := w.frontier.Pop()
		nkey := w.stateKey(n.State)

		if w.costBased {
			if w.finalized[nkey] {
				continue // stale heap entry for an already-settled state
			}
			w.finalized[nkey] = true
		}

		nodes++
		if w.nodeCap > 0 && nodes > w.nodeCap {
			return &Result{Nodes: nodes}, ErrSearchExhausted
		}

		if n.State.Goal(w.board) {
			return &Result{Goal: n, Nodes: nodes}, nil
		}

		w.expand(n)
	}

	return &Result{Nodes: nodes}, ErrNoSolution
}

// expand enumerates n's successors and pushes the ones that improve on
// whatever the walker already knows about the resulting state.
func (w *walker) expand(n *Node) {
	for _, tr := range successor.Successors(w.board, n.State) {
		childKey := w.stateKey(tr.State)
		newCost := n.G + tr.Cost

		if w.costBased {
			if w.finalized[childKey] {
				continue
			}
			if bc, ok := w.bestCost[childKey]; ok && newCost >= bc {
				continue
			}
			w.bestCost[childKey] = newCost
			w.push(&Node{State: tr.State, Parent: n, Action: tr.Action, G: newCost})
		} else {
			if w.visited[childKey] {
				continue
			}
			w.visited[childKey] = true
			w.push(&Node{State: tr.State, Parent: n, Action: tr.Action, G: newCost})
		}
	}
}

// stateKey is the identity under which the walker records s. BFS/DFS use
// the canonical State.Key. UCS/A* keep the index-aligned stone order in
// the key: two layouts that differ only in which stone sits where can
// have different remaining push costs when the weights differ, so they
// are tracked as separate states.
func (w *walker) stateKey(s board.State) string {
	if !w.costBased {
		return s.Key()
	}
	return fmt.Sprint(s.Agent, s.Stones)
}

func (w *walker) push(n *Node) {
	n.seq = w.seq
	w.seq++
	w.frontier.Push(n)
}

// NewFIFO constructs the frontier discipline behind BFS.
func NewFIFO() Frontier { return newFIFO() }

// NewLIFO constructs the frontier discipline behind DFS.
func NewLIFO() Frontier { return newLIFO() }

// NewPriorityQueue constructs the frontier discipline behind UCS and A*,
// ordered by the given priority function with stable insertion-order
// tiebreaking.
func NewPriorityQueue(priority func(*Node) int) Frontier { return newPQ(priority) }

// Reconstruct walks the parent chain from the goal Node back to the
// root, collecting action labels, and returns them in root-to-goal
// order as the raw action string.
func Reconstruct(goal *Node) string {
	if goal == nil {
		return ""
	}
	var labels []byte
	for n := goal; n.Parent != nil; n = n.Parent {
		labels = append(labels, n.Action)
	}
	for i, j := 0, len(labels)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
	}
	return string(labels)
}
