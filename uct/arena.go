package uct

import (
	"fmt"
	"sync/atomic"

	"github.com/liushiwei/fuego/point"
)

// Arena is a fixed-capacity node buffer, one per worker (spec.md §4.5
// "Arena", §5 "Per worker: ... one arena"). Handles into it (plain int32
// indices) stay valid for the arena's whole lifetime between clear()
// calls: there is no reallocation and no compaction.
type Arena struct {
	nodes    []Node
	capacity int32
	nuNodes  int32 // atomic bump allocator
}

// NewArena allocates an arena able to hold capacity nodes.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		panic(fmt.Sprintf("uct: invalid arena capacity %d", capacity))
	}
	return &Arena{
		nodes:    make([]Node, capacity),
		capacity: int32(capacity),
	}
}

// Capacity returns the arena's fixed node capacity.
func (a *Arena) Capacity() int32 { return a.capacity }

// NumNodes returns the number of nodes handed out since construction or
// the last clear().
func (a *Arena) NumNodes() int32 { return atomic.LoadInt32(&a.nuNodes) }

// Node returns a pointer to the node at index idx. idx must have come
// from a prior successful Reserve on this arena.
func (a *Arena) Node(idx int32) *Node { return &a.nodes[idx] }

// Reserve hands out n consecutive, freshly constructed node slots for
// the given moves, returning the index of the first one. Requires
// nuNodes + n <= capacity (spec.md §4.5 "Arena"); ok is false and no
// slots are committed if there is no room.
func (a *Arena) Reserve(moves []point.Point) (first int32, ok bool) {
	n := int32(len(moves))
	if n == 0 {
		return NullNode, true
	}
	start := atomic.AddInt32(&a.nuNodes, n) - n
	if start+n > a.capacity {
		atomic.AddInt32(&a.nuNodes, -n)
		return NullNode, false
	}
	for i, mv := range moves {
		a.nodes[start+int32(i)] = *newNode(mv)
	}
	return start, true
}

// Clear returns nuNodes to 0. The underlying buffer is reused; existing
// handles become invalid the moment new nodes are reserved over them.
func (a *Arena) Clear() { atomic.StoreInt32(&a.nuNodes, 0) }

// Swap exchanges the backing buffers of a and other. other must have
// capacity >= a's capacity and vice versa is not required (spec.md §4.5
// "swap(other) exchanges buffers with an arena of equal or greater
// capacity").
func (a *Arena) Swap(other *Arena) {
	if other.capacity < a.capacity {
		panic("uct: Swap requires an arena of equal or greater capacity")
	}
	a.nodes, other.nodes = other.nodes, a.nodes
	a.capacity, other.capacity = other.capacity, a.capacity
	aN, oN := atomic.LoadInt32(&a.nuNodes), atomic.LoadInt32(&other.nuNodes)
	atomic.StoreInt32(&a.nuNodes, oN)
	atomic.StoreInt32(&other.nuNodes, aN)
}
