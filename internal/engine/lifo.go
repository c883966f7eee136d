package engine

// lifoFrontier is a plain stack: the frontier discipline behind DFS.
// Successors are pushed in U,L,D,R order (see the successor package), so
// popping LIFO yields R,D,L,U expansion order.
type lifoFrontier struct {
	items []*Node
}

func newLIFO() *lifoFrontier {
	return &lifoFrontier{items: make([]*Node, 0, 64)}
}

func (f *lifoFrontier) Push(n *Node) {
	f.items = append(f.items, n)
}

func (f *lifoFrontier) Pop() *Node {
	last := len(f.items) - 1
	n := f.items[last]
	f.items = f.items[:last]
	return n
}

func (f *lifoFrontier) Len() int {
	return len(f.items)
}
