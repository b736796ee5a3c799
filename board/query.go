package board

import (
	"fmt"

	"github.com/liushiwei/fuego/point"
)

// Color returns the color currently occupying p (or Border/Empty).
func (b *Board) Color(p point.Point) point.Color { return b.color[p] }

// BlockAnchor returns the anchor of the block at p. Panics if p is empty
// or border — asking for the block of a non-stone is a programming
// error (spec.md §7 class 1).
func (b *Board) BlockAnchor(p point.Point) point.Point {
	idx := b.blockIdx[p]
	if idx == 0 {
		panic(fmt.Sprintf("board: point %d has no block", p))
	}
	return b.blocks[idx].anchor
}

// Liberties returns the liberties of the block at p. The returned slice
// aliases the board's internal storage and must not be mutated or
// retained past the next Play call.
func (b *Board) Liberties(p point.Point) []point.Point {
	idx := b.blockIdx[p]
	if idx == 0 {
		panic(fmt.Sprintf("board: point %d has no block", p))
	}
	return b.blocks[idx].liberties
}

// NumLiberties returns the liberty count of the block at p.
func (b *Board) NumLiberties(p point.Point) int {
	idx := b.blockIdx[p]
	if idx == 0 {
		panic(fmt.Sprintf("board: point %d has no block", p))
	}
	return b.blocks[idx].numLiberties()
}

// AtMostNumLibs reports whether the block at p has at most n liberties,
// without necessarily counting past n (cheap early-out for n in {1,2}).
func (b *Board) AtMostNumLibs(p point.Point, n int) bool {
	return b.NumLiberties(p) <= n
}

// InAtari reports whether the block at p has exactly one liberty.
func (b *Board) InAtari(p point.Point) bool {
	return b.NumLiberties(p) == 1
}

// TheLiberty returns the sole liberty of the block at p. Only valid when
// InAtari(p) holds; calling it otherwise is a programming-error
// precondition violation.
func (b *Board) TheLiberty(p point.Point) point.Point {
	idx := b.blockIdx[p]
	if idx == 0 {
		panic(fmt.Sprintf("board: point %d has no block", p))
	}
	blk := &b.blocks[idx]
	if len(blk.liberties) != 1 {
		panic(fmt.Sprintf("board: block at %d is not in atari (%d liberties)", p, len(blk.liberties)))
	}
	return blk.liberties[0]
}

// NeighborBlocks appends the anchors of the distinct c-colored blocks
// adjacent to the empty point emptyP to anchorsOut and returns the
// extended slice. emptyP must currently be empty.
func (b *Board) NeighborBlocks(emptyP point.Point, c point.Color, anchorsOut []point.Point) []point.Point {
	if b.color[emptyP] != point.Empty {
		panic(fmt.Sprintf("board: point %d is not empty", emptyP))
	}
	var scratch [4]int32
	for _, idx := range b.adjacentBlockIndices(emptyP, c, true, scratch[:0]) {
		anchorsOut = append(anchorsOut, b.blocks[idx].anchor)
	}
	return anchorsOut
}

// AdjacentBlocks appends the anchors of every distinct block adjacent to
// the block at blockP with at most maxLib liberties to anchorsOut and
// returns the extended slice. A maxLib of <=0 means "no limit".
func (b *Board) AdjacentBlocks(blockP point.Point, maxLib int, anchorsOut []point.Point) []point.Point {
	idx := b.blockIdx[blockP]
	if idx == 0 {
		panic(fmt.Sprintf("board: point %d has no block", blockP))
	}
	b.dedup.clear()
	b.dedup.mark(b.blocks[idx].anchor) // never report the block itself
	for _, stone := range b.blocks[idx].stones {
		for _, n := range b.geom.CardinalNeighbors(stone) {
			other := b.blockIdx[n]
			if other == 0 {
				continue
			}
			if maxLib > 0 && b.blocks[other].numLiberties() > maxLib {
				continue
			}
			if b.dedup.mark(b.blocks[other].anchor) {
				anchorsOut = append(anchorsOut, b.blocks[other].anchor)
			}
		}
	}
	return anchorsOut
}

// CapturedStones returns the stones removed by the most recent Play, in
// no particular order. The returned slice aliases internal storage.
func (b *Board) CapturedStones() []point.Point { return b.capturedStones }

// ToPlay returns the color to move next.
func (b *Board) ToPlay() point.Color { return b.toPlay }

// KoPoint returns the single point forbidden by simple ko, or NullPoint.
func (b *Board) KoPoint() point.Point { return b.koPoint }

// GetLastMove returns the most recently played point, or NullPoint if
// there is none or the last two plays were by the same color (the
// prior-move chain was invalidated — spec.md §4.1 step 7).
func (b *Board) GetLastMove() point.Point { return b.lastMove }

// Get2ndLastMove returns the point played before GetLastMove.
func (b *Board) Get2ndLastMove() point.Point { return b.secondLastMove }

// NumPrisoners returns the number of stones of color c captured so far.
func (b *Board) NumPrisoners(c point.Color) int { return b.prisoners[colorIndex(c)] }

// Size returns the playable board width, satisfying ReferenceBoard so a
// Board can itself stand in as a reference for another Board (used by
// L1's round-trip law and by subtree-extraction tests).
func (b *Board) Size() int { return b.geom.Size() }

// IsBorder satisfies ReferenceBoard.
func (b *Board) IsBorder(p point.Point) bool { return b.geom.IsBorder(p) }

// IsEmpty satisfies ReferenceBoard.
func (b *Board) IsEmpty(p point.Point) bool { return b.color[p] == point.Empty }

// GetColor satisfies ReferenceBoard.
func (b *Board) GetColor(p point.Point) point.Color { return b.color[p] }

// Anchor satisfies ReferenceBoard.
func (b *Board) Anchor(p point.Point) point.Point { return b.BlockAnchor(p) }

// Stones satisfies ReferenceBoard by returning the stones of the block
// anchored at blockAnchor.
func (b *Board) Stones(blockAnchor point.Point) []point.Point {
	idx := b.blockIdx[blockAnchor]
	if idx == 0 {
		return nil
	}
	return b.blocks[idx].stones
}
