package engine

import "container/heap"

// nodeHeap implements container/heap.Interface, ordered by a
// caller-supplied priority function with insertion sequence as a stable
// tiebreak. UCS keys on accumulated cost; A* keys on cost plus
// heuristic. Both reuse this type.
type nodeHeap struct {
	items    []*Node
	priority func(*Node) int
}

func (h *nodeHeap) Len() int { return len(h.items) }

func (h *nodeHeap) Less(i, j int) bool {
	pi, pj := h.priority(h.items[i]), h.priority(h.items[j])
	if pi != pj {
		return pi < pj
	}
	return h.items[i].seq < h.items[j].seq
}

func (h *nodeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *nodeHeap) Push(x interface{}) { h.items = append(h.items, x.(*Node)) }

func (h *nodeHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// pqFrontier adapts a nodeHeap to the Frontier interface. This mirrors
// the "lazy decrease-key" pattern: Run pushes a fresh Node whenever it
// finds a cheaper path rather than mutating an existing heap entry, and
// treats a stale pop (a state already finalized at a lower cost) as a
// no-op.
type pqFrontier struct {
	h *nodeHeap
}

func newPQ(priority func(*Node) int) *pqFrontier {
	h := &nodeHeap{items: make([]*Node, 0, 64), priority: priority}
	heap.Init(h)
	return &pqFrontier{h: h}
}

func (f *pqFrontier) Push(n *Node) { heap.Push(f.h, n) }

func (f *pqFrontier) Pop() *Node { return heap.Pop(f.h).(*Node) }

func (f *pqFrontier) Len() int { return f.h.Len() }
