package uct

// ChildIterator walks the published children of one node (spec.md §4.5
// "Iteration"): indices [firstChild, firstChild+nuChildren) observed at
// construction time. A concurrent ApplyFilter rewrite after the
// iterator is built is not reflected — callers that need the live view
// should build a fresh iterator.
type ChildIterator struct {
	tree  *Tree
	ref   Ref
	n     int32
	index int32
}

// NewChildIterator builds an iterator over node's current children.
func NewChildIterator(tree *Tree, node *Node) *ChildIterator {
	n := node.NumChildren()
	var ref Ref
	if n > 0 {
		ref = node.FirstChild()
	}
	return &ChildIterator{tree: tree, ref: ref, n: n}
}

// Valid reports whether Node() would return a child.
func (it *ChildIterator) Valid() bool { return it.index < it.n }

// Node returns the current child.
func (it *ChildIterator) Node() *Node {
	return it.tree.node(Ref{Arena: it.ref.Arena, Index: it.ref.Index + it.index})
}

// Next advances to the next child.
func (it *ChildIterator) Next() { it.index++ }

// TreeIterator performs a depth-first traversal of an entire tree using
// a stack of ChildIterators (spec.md §4.5 "Iteration").
type TreeIterator struct {
	tree  *Tree
	stack []*ChildIterator
	cur   *Node
}

// NewTreeIterator starts a depth-first traversal at the tree's root.
// The root itself is the first node visited.
func NewTreeIterator(tree *Tree) *TreeIterator {
	return &TreeIterator{tree: tree, cur: tree.Root()}
}

// Valid reports whether Node() would return a node.
func (it *TreeIterator) Valid() bool { return it.cur != nil }

// Node returns the current node.
func (it *TreeIterator) Node() *Node { return it.cur }

// Next descends into the current node's children if it has any,
// otherwise backs up the stack to the next unvisited sibling.
func (it *TreeIterator) Next() {
	if it.cur == nil {
		return
	}
	childIt := NewChildIterator(it.tree, it.cur)
	if childIt.Valid() {
		it.stack = append(it.stack, childIt)
		it.cur = childIt.Node()
		return
	}
	it.advanceStack()
}

func (it *TreeIterator) advanceStack() {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		top.Next()
		if top.Valid() {
			it.cur = top.Node()
			return
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	it.cur = nil
}
