package uct_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liushiwei/fuego/point"
	"github.com/liushiwei/fuego/uct"
)

func TestArenaReserveRespectsCapacity(t *testing.T) {
	a := uct.NewArena(3)
	first, ok := a.Reserve([]point.Point{1, 2})
	require.True(t, ok)
	assert.EqualValues(t, 0, first)
	assert.EqualValues(t, 2, a.NumNodes())

	_, ok = a.Reserve([]point.Point{3, 4})
	assert.False(t, ok, "2 already used + 2 more would exceed capacity 3")
	assert.EqualValues(t, 2, a.NumNodes(), "a failed reservation must not inflate nuNodes")

	a.Clear()
	assert.EqualValues(t, 0, a.NumNodes())
	_, ok = a.Reserve([]point.Point{3, 4, 5})
	assert.True(t, ok)
}

func TestCreateChildrenPublishesInOrder(t *testing.T) {
	tree := uct.NewTree(1, 16)
	root := tree.Root()
	assert.False(t, root.HasChildren())

	moves := []point.Point{10, 11, 12}
	ok := tree.CreateChildren(0, root, moves)
	require.True(t, ok)
	require.True(t, root.HasChildren())
	assert.EqualValues(t, 3, root.NumChildren())

	for i, want := range moves {
		child := tree.Child(root, int32(i))
		assert.Equal(t, want, child.Move())
	}
}

// TestS6LockFreeExpansion matches spec scenario S6: two workers racing
// createChildren on the same node. Exactly one set of children must
// become reachable; the loser's attempt must report failure.
func TestS6LockFreeExpansion(t *testing.T) {
	tree := uct.NewTree(2, 16)
	root := tree.Root()

	var wg sync.WaitGroup
	results := make([]bool, 2)
	for w := 0; w < 2; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			moves := []point.Point{point.Point(100 + workerID)}
			results[workerID] = tree.CreateChildren(workerID, root, moves)
		}(w)
	}
	wg.Wait()

	require.True(t, root.HasChildren())
	assert.True(t, results[0] != results[1], "exactly one worker must win the race")
	assert.EqualValues(t, 1, root.NumChildren())

	child := tree.Child(root, 0)
	assert.True(t, child.Move() == point.Point(100) || child.Move() == point.Point(101))
}

func TestAddGameResultAndPriorInitialization(t *testing.T) {
	tree := uct.NewTree(1, 16)
	root := tree.Root()
	tree.CreateChildren(0, root, []point.Point{5})
	child := tree.Child(root, 0)

	tree.InitializeValue(root, child, 0.6, 4)
	assert.InDelta(t, 0.6, child.Mean(), 1e-6)
	assert.EqualValues(t, 4, child.MoveCount())
	assert.EqualValues(t, 4, root.PosCount())

	tree.AddGameResult(child, root, 1.0)
	assert.EqualValues(t, 5, child.MoveCount())
	assert.EqualValues(t, 5, root.PosCount())

	tree.InitializeRaveValue(child, 0.5, 2)
	assert.EqualValues(t, 2, child.RaveCount())
	tree.AddRaveValue(child, 1.0)
	assert.EqualValues(t, 3, child.RaveCount())
}

func TestApplyFilterRemovesMatchingMovesAndPreservesStats(t *testing.T) {
	tree := uct.NewTree(1, 16)
	root := tree.Root()
	tree.CreateChildren(0, root, []point.Point{1, 2, 3})
	survivor := tree.Child(root, 1)
	tree.InitializeValue(root, survivor, 0.9, 7)

	ok := tree.ApplyFilter(0, root, map[point.Point]bool{1: true, 3: true})
	require.True(t, ok)
	require.EqualValues(t, 1, root.NumChildren())

	kept := tree.Child(root, 0)
	assert.Equal(t, point.Point(2), kept.Move())
	assert.InDelta(t, 0.9, kept.Mean(), 1e-6)
	assert.EqualValues(t, 7, kept.MoveCount())
}

func TestExtractSubtreeCopiesDescendants(t *testing.T) {
	src := uct.NewTree(2, 32)
	root := src.Root()
	require.True(t, src.CreateChildren(0, root, []point.Point{1, 2}))
	childA := src.Child(root, 0)
	require.True(t, src.CreateChildren(1, childA, []point.Point{10, 11}))
	src.InitializeValue(root, childA, 0.7, 3)

	dst := uct.NewTree(2, 32)
	src.ExtractSubtree(dst, childA)

	newRoot := dst.Root()
	assert.InDelta(t, 0.7, newRoot.Mean(), 1e-6)
	require.True(t, newRoot.HasChildren())
	assert.EqualValues(t, 2, newRoot.NumChildren())

	moves := map[point.Point]bool{}
	for i := int32(0); i < newRoot.NumChildren(); i++ {
		moves[dst.Child(newRoot, i).Move()] = true
	}
	assert.True(t, moves[10] && moves[11])
}

func TestTreeIteratorVisitsEveryNode(t *testing.T) {
	tree := uct.NewTree(1, 32)
	root := tree.Root()
	tree.CreateChildren(0, root, []point.Point{1, 2})
	childA := tree.Child(root, 0)
	tree.CreateChildren(0, childA, []point.Point{3})

	it := uct.NewTreeIterator(tree)
	var visited []point.Point
	for it.Valid() {
		visited = append(visited, it.Node().Move())
		it.Next()
	}
	// root (NullPoint) + 2 children + 1 grandchild = 4 nodes.
	assert.Len(t, visited, 4)
}
