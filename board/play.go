package board

import (
	"fmt"

	"github.com/liushiwei/fuego/point"
)

// Play performs move (p, c), updating blocks, liberties, ko state and
// move history incrementally (spec.md §4.1). The caller must ensure p is
// Pass or a legal, non-suicidal point for c — IsLegal exists for exactly
// that check. A play of a non-empty point or an out-of-range point is a
// programming-error precondition violation and panics, matching §7 class
// 1. Play does not check for suicide: a suicidal play is carried out and
// leaves a block with no liberties on the board.
func (b *Board) Play(p point.Point, c point.Color) {
	g := b.geom
	b.koPoint = point.NullPoint
	b.capturedStones = b.capturedStones[:0]

	opp := c.Opponent()

	if p == g.Pass {
		b.toPlay = opp
		return
	}

	if !g.InBoardRange(p) || g.IsBorder(p) {
		panic(fmt.Sprintf("board: play at out-of-range point %d", p))
	}
	if b.color[p] != point.Empty {
		panic(fmt.Sprintf("board: play onto non-empty point %d (%v)", p, b.color[p]))
	}

	// 2. place the stone and update neighbor counts. p was empty, so
	// every neighbor's empty-neighbor count drops by one and its
	// c-neighbor count rises by one, regardless of the neighbor's own
	// color (border neighbors keep counts too; they are simply never
	// read back).
	b.color[p] = c
	for _, n := range g.CardinalNeighbors(p) {
		b.nuEmpty[n]--
		b.nuNeighbors[colorIndex(c)][n]++
	}

	// 3. exclude p from the liberties of every distinct neighboring
	// block, of either color — it just stopped being empty.
	var scratch [4]int32
	for _, idx := range b.adjacentBlockIndices(p, point.Empty, false, scratch[:0]) {
		b.blocks[idx].excludeLiberty(p)
	}

	// 4. kill any opponent block now at zero liberties. Each dying
	// single-stone block tentatively sets koPoint to that stone (the
	// last one processed wins, matching GoUctBoard::KillBlock); step 6
	// below validates it against the shape of the capturing block.
	for _, idx := range b.adjacentBlockIndices(p, opp, true, scratch[:0]) {
		if b.blocks[idx].numLiberties() > 0 {
			continue
		}
		if b.killBlock(idx, c) == 1 {
			b.koPoint = b.capturedStones[len(b.capturedStones)-1]
		}
	}

	// 5. integrate p into the block structure.
	friends := b.adjacentBlockIndices(p, c, true, scratch[:0])
	switch len(friends) {
	case 0:
		b.createSingleStoneBlock(p, c)
	case 1:
		b.addStoneToBlock(p, friends[0])
	default:
		b.mergeBlocks(p, friends)
	}

	// 6. validate ko: only a single-stone, single-liberty capturing
	// block preserves the tentative ko point from step 4.
	if b.koPoint != point.NullPoint {
		blk := &b.blocks[b.blockIdx[p]]
		if blk.numStones() > 1 || blk.numLiberties() > 1 {
			b.koPoint = point.NullPoint
		}
	}

	// 7. move history and to-play.
	if c == b.toPlay {
		b.secondLastMove = b.lastMove
		b.lastMove = p
	} else {
		b.secondLastMove = point.NullPoint
		b.lastMove = point.NullPoint
	}
	b.toPlay = opp
}

// killBlock removes every stone of the block at idx from the board,
// following GoUctBoard::KillBlock/RemoveStone: for each stone, first let
// the opposite-color (killer) neighbor blocks reclaim it as a liberty,
// then clear it and fix up neighbor counts unconditionally (a removed
// stone makes every cardinal neighbor's empty-count go up and its
// victim-count go down, regardless of that neighbor's own color).
func (b *Board) killBlock(idx int32, killer point.Color) (numStones int) {
	blk := &b.blocks[idx]
	victim := blk.color
	stones := append([]point.Point(nil), blk.stones...)
	for _, stone := range stones {
		b.addLibertyToAdjacentBlocks(stone, killer)
		b.color[stone] = point.Empty
		b.blockIdx[stone] = 0
		b.capturedStones = append(b.capturedStones, stone)
	}
	for _, stone := range stones {
		for _, n := range b.geom.CardinalNeighbors(stone) {
			b.nuEmpty[n]++
			b.nuNeighbors[colorIndex(victim)][n]--
		}
	}
	b.prisoners[colorIndex(victim)] += len(stones)
	b.freeBlock(idx)
	return len(stones)
}

// addLibertyToAdjacentBlocks adds stone as a liberty to every distinct
// block of color survivorColor adjacent to stone — used right before a
// captured stone is actually removed from the board, so its neighbors of
// the *surviving* color gain it back as a liberty.
func (b *Board) addLibertyToAdjacentBlocks(stone point.Point, survivorColor point.Color) {
	var scratch [4]int32
	for _, idx := range b.adjacentBlockIndices(stone, survivorColor, true, scratch[:0]) {
		b.blocks[idx].appendLiberty(stone)
	}
}

func (b *Board) createSingleStoneBlock(p point.Point, c point.Color) {
	idx := b.allocBlock(c, p)
	blk := &b.blocks[idx]
	blk.stones = append(blk.stones, p)
	for _, n := range b.geom.CardinalNeighbors(p) {
		if b.color[n] == point.Empty {
			blk.appendLiberty(n)
		}
	}
	b.blockIdx[p] = idx
}

func (b *Board) addStoneToBlock(p point.Point, idx int32) {
	blk := &b.blocks[idx]
	blk.stones = append(blk.stones, p)
	for _, n := range b.geom.CardinalNeighbors(p) {
		if b.color[n] == point.Empty && !b.isAdjacentTo(n, idx) {
			blk.appendLiberty(n)
		}
	}
	b.blockIdx[p] = idx
}

func (b *Board) isAdjacentTo(p point.Point, idx int32) bool {
	for _, n := range b.geom.CardinalNeighbors(p) {
		if b.blockIdx[n] == idx {
			return true
		}
	}
	return false
}

// mergeBlocks merges two or more same-color neighbor blocks of p into
// the largest of them, following GoUctBoard::MergeBlocks: choose the
// survivor by stone count, append p, absorb the other blocks' stones and
// liberties (deduplicating against the survivor's own liberties via the
// shared marker), then add any newly-empty neighbors of p.
func (b *Board) mergeBlocks(p point.Point, friends []int32) {
	survivor := friends[0]
	for _, idx := range friends[1:] {
		if b.blocks[idx].numStones() > b.blocks[survivor].numStones() {
			survivor = idx
		}
	}

	surv := &b.blocks[survivor]
	surv.stones = append(surv.stones, p)

	b.dedup.clear()
	for _, lib := range surv.liberties {
		b.dedup.mark(lib)
	}

	for _, idx := range friends {
		if idx == survivor {
			continue
		}
		other := &b.blocks[idx]
		for _, stone := range other.stones {
			surv.stones = append(surv.stones, stone)
			b.blockIdx[stone] = survivor
		}
		for _, lib := range other.liberties {
			if b.dedup.mark(lib) {
				surv.liberties = append(surv.liberties, lib)
			}
		}
		b.freeBlock(idx)
	}

	b.blockIdx[p] = survivor
	for _, n := range b.geom.CardinalNeighbors(p) {
		if b.color[n] == point.Empty && b.dedup.mark(n) {
			surv.liberties = append(surv.liberties, n)
		}
	}
}
