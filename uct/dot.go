package uct

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

// DumpDOT renders a subtree rooted at start as Graphviz DOT, for offline
// inspection of a search. maxDepth bounds how far the dump descends
// (the whole live tree can be too large to render); depth 0 dumps only
// start itself.
func (t *Tree) DumpDOT(start *Node, maxDepth int) string {
	g := gographviz.NewGraph()
	g.SetName("uct")
	g.SetDir(true)

	counter := 0
	t.dumpNode(g, start, "", maxDepth, &counter)
	return g.String()
}

func (t *Tree) dumpNode(g *gographviz.Graph, n *Node, parentID string, depthLeft int, counter *int) {
	id := fmt.Sprintf("n%d", *counter)
	*counter++

	label := fmt.Sprintf("\"%v\\nmean=%.3f count=%d\"", n.Move(), n.Mean(), n.MoveCount())
	_ = g.AddNode("uct", id, map[string]string{"label": label})
	if parentID != "" {
		_ = g.AddEdge(parentID, id, true, nil)
	}

	if depthLeft <= 0 || !n.HasChildren() {
		return
	}
	it := NewChildIterator(t, n)
	for it.Valid() {
		t.dumpNode(g, it.Node(), id, depthLeft-1, counter)
		it.Next()
	}
}
