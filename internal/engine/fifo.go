package engine

// fifoFrontier is a plain queue: the frontier discipline behind BFS.
type fifoFrontier struct {
	items []*Node
}

func newFIFO() *fifoFrontier {
	return &fifoFrontier{items: make([]*Node, 0, 64)}
}

func (f *fifoFrontier) Push(n *Node) {
	f.items = append(f.items, n)
}

func (f *fifoFrontier) Pop() *Node {
	n := f.items[0]
	f.items = f.items[1:]
	return n
}

func (f *fifoFrontier) Len() int {
	return len(f.items)
}
