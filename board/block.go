package board

import "github.com/liushiwei/fuego/point"

// block is a maximally connected group of same-color stones together
// with its liberties. Blocks live in Board.blocks, a reused arena: a
// point's block membership is an index into that arena, never a pointer, so merging a
// block only ever rewrites indices.
//
// Index 0 of Board.blocks is never a real block; it is the sentinel
// meaning "no block" so that blockIdx can use its zero value for empty
// and border points.
type block struct {
	color     point.Color
	anchor    point.Point
	stones    []point.Point
	liberties []point.Point
}

func (b *block) numStones() int    { return len(b.stones) }
func (b *block) numLiberties() int { return len(b.liberties) }

func (b *block) hasLiberty(p point.Point) bool {
	for _, lib := range b.liberties {
		if lib == p {
			return true
		}
	}
	return false
}

func (b *block) appendLiberty(p point.Point) {
	if !b.hasLiberty(p) {
		b.liberties = append(b.liberties, p)
	}
}

// excludeLiberty removes p from the liberty list, if present. Order is
// not preserved (swap-with-last), which is fine: liberties are a set.
func (b *block) excludeLiberty(p point.Point) {
	for i, lib := range b.liberties {
		if lib == p {
			last := len(b.liberties) - 1
			b.liberties[i] = b.liberties[last]
			b.liberties = b.liberties[:last]
			return
		}
	}
}

func (b *block) hasStone(p point.Point) bool {
	for _, s := range b.stones {
		if s == p {
			return true
		}
	}
	return false
}

// marker is a per-board scratch set used to deduplicate blocks or points
// visited while merging or killing. Rather than clearing a boolean array
// on every use (O(board area) per play), it stamps a generation counter
// so clearing the whole board is an O(1) bump.
type marker struct {
	stamp []int32
	gen   int32
}

func newMarker(n int) *marker {
	return &marker{stamp: make([]int32, n)}
}

// clear starts a new generation; already-marked points are forgotten in
// O(1) regardless of how many were marked last time.
func (m *marker) clear() { m.gen++ }

// mark stamps p with the current generation and reports whether this is
// the first time p has been marked since the last clear.
func (m *marker) mark(p point.Point) bool {
	if m.stamp[p] == m.gen {
		return false
	}
	m.stamp[p] = m.gen
	return true
}

func (m *marker) isMarked(p point.Point) bool {
	return m.stamp[p] == m.gen
}
