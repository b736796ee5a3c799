// Package board implements the playout board (spec.md C2+C3): a mutable
// Go position with incremental block/liberty maintenance, optimized for
// many fast plays and carrying no undo. It is grounded on Fuego's
// GoUctBoard (original_source/.../GoUctBoard.cpp): same algorithm, same
// incremental bookkeeping, translated from pointer-chasing C++ blocks
// into an index-addressed Go arena.
package board

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/liushiwei/fuego/point"
)

// ReferenceBoard is the read-only probe surface a playout board is built
// from (spec.md §6). The caller's rules-aware board is expected to
// satisfy this; this package never mutates it.
type ReferenceBoard interface {
	Size() int
	IsBorder(p point.Point) bool
	IsEmpty(p point.Point) bool
	GetColor(p point.Point) point.Color
	Anchor(p point.Point) point.Point
	Stones(blockAnchor point.Point) []point.Point
	Liberties(blockAnchor point.Point) []point.Point
	NumPrisoners(c point.Color) int
	KoPoint() point.Point
	GetLastMove() point.Point
	Get2ndLastMove() point.Point
	ToPlay() point.Color
}

// colorIndex maps Black/White onto a dense 0/1 index for the two
// per-color arrays (neighbor counts, prisoners). Any other color is a
// programming error to index by.
func colorIndex(c point.Color) int {
	switch c {
	case point.Black:
		return 0
	case point.White:
		return 1
	}
	panic(fmt.Sprintf("board: %v is not a playing color", c))
}

// Board is the incremental playout position (spec.md C3). It has no undo;
// Init rebuilds it from a fresh reference position instead.
type Board struct {
	geom *point.Geometry

	color    []point.Color
	blockIdx []int32 // 0 == no block (empty or border point)
	blocks   []block // index 0 unused (sentinel)
	freeList []int32

	nuNeighbors [2][]uint8 // [Black|White][point]
	nuEmpty     []uint8

	toPlay         point.Color
	koPoint        point.Point
	capturedStones []point.Point
	prisoners      [2]int

	lastMove, secondLastMove point.Point

	dedup *marker
}

// New constructs an empty size x size board with Black to play. Moves
// can be played on it directly; Init loads a reference position instead.
func New(size int) (*Board, error) {
	if size < 2 || size > point.MaxSize {
		return nil, errors.Errorf("board: invalid size %d", size)
	}
	b := &Board{}
	b.allocate(size)
	return b, nil
}

func (b *Board) allocate(size int) {
	g := point.NewGeometry(size)
	n := g.NumPoints()
	area := size * size

	b.geom = g
	b.color = make([]point.Color, n)
	b.blockIdx = make([]int32, n)
	b.blocks = make([]block, 1, area+1) // [0] is the sentinel "no block"
	b.freeList = b.freeList[:0]
	b.nuNeighbors[0] = make([]uint8, n)
	b.nuNeighbors[1] = make([]uint8, n)
	b.nuEmpty = make([]uint8, n)
	b.capturedStones = make([]point.Point, 0, area)
	b.dedup = newMarker(n)

	for _, p := range allPointsIncludingBorder(g) {
		if g.IsBorder(p) {
			b.color[p] = point.Border
			continue
		}
		b.color[p] = point.Empty
	}
	b.recomputeNeighborCounts()

	b.toPlay = point.Black
	b.koPoint = point.NullPoint
	b.lastMove = point.NullPoint
	b.secondLastMove = point.NullPoint
	b.prisoners = [2]int{}
}

// recomputeNeighborCounts derives nuNeighbors/nuEmpty directly from the
// color array for every on-board point. Used by allocate (fresh empty
// board) and Init (arbitrary starting position) so both start from the
// same ground truth rather than trusting a caller's own bookkeeping.
func (b *Board) recomputeNeighborCounts() {
	g := b.geom
	for _, p := range g.AllPoints() {
		var nb, nw, ne uint8
		for _, n := range g.CardinalNeighbors(p) {
			switch b.color[n] {
			case point.Black:
				nb++
			case point.White:
				nw++
			case point.Empty:
				ne++
			}
		}
		b.nuNeighbors[0][p] = nb
		b.nuNeighbors[1][p] = nw
		b.nuEmpty[p] = ne
	}
}

func allPointsIncludingBorder(g *point.Geometry) []point.Point {
	pts := make([]point.Point, 0, g.NumPoints()-1)
	for x := 0; x < g.Size()+2; x++ {
		for y := 0; y < g.Size()+2; y++ {
			pts = append(pts, g.At(x, y))
		}
	}
	return pts
}

// Geometry exposes the board's coordinate space, e.g. for callers that
// need Pass or neighbor offsets directly.
func (b *Board) Geometry() *point.Geometry { return b.geom }

// Init copies stones, ko, move history and to-play from ref, rebuilding
// every block from scratch (spec.md §4.1 "init(ref)"). If ref's size
// differs from the board's current size, the internal arrays are
// reallocated (sized by the new board area); otherwise the existing
// arena is reused in place, as the data model's lifecycle requires.
func (b *Board) Init(ref ReferenceBoard) error {
	if ref.Size() != b.geom.Size() {
		b.allocate(ref.Size())
	} else {
		b.reset()
	}
	g := b.geom

	for _, p := range g.AllPoints() {
		if ref.IsEmpty(p) {
			b.color[p] = point.Empty
			continue
		}
		c := ref.GetColor(p)
		b.color[p] = c
		anchor := ref.Anchor(p)
		if b.blockIdx[anchor] == 0 {
			idx := b.allocBlock(c, anchor)
			for _, stone := range ref.Stones(anchor) {
				blk := &b.blocks[idx]
				blk.stones = append(blk.stones, stone)
				b.blockIdx[stone] = idx
			}
			for _, lib := range ref.Liberties(anchor) {
				b.blocks[idx].appendLiberty(lib)
			}
		}
	}

	// Neighbor counts are derived directly from the copied color array
	// rather than trusted from ref, so P3 holds even if the caller's own
	// bookkeeping has a bug.
	b.recomputeNeighborCounts()

	b.toPlay = ref.ToPlay()
	b.koPoint = ref.KoPoint()
	b.lastMove = ref.GetLastMove()
	b.secondLastMove = ref.Get2ndLastMove()
	b.prisoners[0] = ref.NumPrisoners(point.Black)
	b.prisoners[1] = ref.NumPrisoners(point.White)
	return nil
}

// reset restores the current-size arena to an empty board without
// reallocating any backing array.
func (b *Board) reset() {
	g := b.geom
	for _, p := range allPointsIncludingBorder(g) {
		if g.IsBorder(p) {
			b.color[p] = point.Border
		} else {
			b.color[p] = point.Empty
		}
		b.blockIdx[p] = 0
	}
	b.blocks = b.blocks[:1]
	b.freeList = b.freeList[:0]
	for i := range b.nuNeighbors[0] {
		b.nuNeighbors[0][i] = 0
		b.nuNeighbors[1][i] = 0
		b.nuEmpty[i] = 0
	}
	b.capturedStones = b.capturedStones[:0]
	b.prisoners = [2]int{}
	b.koPoint = point.NullPoint
	b.lastMove = point.NullPoint
	b.secondLastMove = point.NullPoint
}

func (b *Board) allocBlock(c point.Color, anchor point.Point) int32 {
	if n := len(b.freeList); n > 0 {
		idx := b.freeList[n-1]
		b.freeList = b.freeList[:n-1]
		blk := &b.blocks[idx]
		blk.color = c
		blk.anchor = anchor
		blk.stones = blk.stones[:0]
		blk.liberties = blk.liberties[:0]
		return idx
	}
	idx := int32(len(b.blocks))
	area := b.geom.Size() * b.geom.Size()
	b.blocks = append(b.blocks, block{
		color:     c,
		anchor:    anchor,
		stones:    make([]point.Point, 0, area),
		liberties: make([]point.Point, 0, area),
	})
	return idx
}

func (b *Board) freeBlock(idx int32) {
	b.blocks[idx].stones = b.blocks[idx].stones[:0]
	b.blocks[idx].liberties = b.blocks[idx].liberties[:0]
	b.freeList = append(b.freeList, idx)
}

// adjacentBlockIndices returns the distinct block indices of color c
// adjacent to p, using the shared dedup marker. If filterColor is false,
// c is ignored and every distinct neighboring block is returned
// regardless of color.
func (b *Board) adjacentBlockIndices(p point.Point, c point.Color, filterColor bool, out []int32) []int32 {
	b.dedup.clear()
	out = out[:0]
	for _, n := range b.geom.CardinalNeighbors(p) {
		idx := b.blockIdx[n]
		if idx == 0 {
			continue
		}
		if filterColor && b.blocks[idx].color != c {
			continue
		}
		if b.dedup.mark(b.blocks[idx].anchor) {
			out = append(out, idx)
		}
	}
	return out
}
