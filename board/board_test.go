package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liushiwei/fuego/point"
)

func newTestBoard(t *testing.T, size int) *Board {
	b, err := New(size)
	require.NoError(t, err)
	return b
}

// checkInvariants asserts P1 and P3 over every occupied/on-board point.
func checkInvariants(t *testing.T, b *Board) {
	t.Helper()
	g := b.geom
	for _, p := range g.AllPoints() {
		nb := int(b.nuNeighbors[0][p])
		nw := int(b.nuNeighbors[1][p])
		ne := int(b.nuEmpty[p])
		nonBorder := 0
		for _, n := range g.CardinalNeighbors(p) {
			if !g.IsBorder(n) {
				nonBorder++
			}
		}
		assert.LessOrEqual(t, nb+nw+ne, 4)
		assert.Equal(t, nonBorder, nb+nw+ne, "point %d", p)

		if b.color[p] == point.Black || b.color[p] == point.White {
			idx := b.blockIdx[p]
			require.NotZero(t, idx, "occupied point %d has no block", p)
			blk := &b.blocks[idx]
			assert.True(t, blk.hasStone(p))
			for _, lib := range blk.liberties {
				assert.Equal(t, point.Empty, b.color[lib])
			}
			for _, stone := range blk.stones {
				assert.Equal(t, blk.color, b.color[stone])
			}
		}
	}
}

func TestScenarioS1Ko(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.geom

	at := func(x, y int) point.Point { return g.At(x, y) }
	// Coordinate letters A..J (skipping I), 1-indexed from bottom-left:
	// column D is x=4, E is x=5, and so on.
	// White D5 is surrounded by Black on C5, D4, D6; Black's capturing
	// stone at E5 is itself surrounded by White on E4, E6, F5.
	b.Play(at(3, 5), point.Black) // B(C5)
	b.Play(at(4, 5), point.White) // W(D5)
	b.Play(at(4, 4), point.Black) // B(D4)
	b.Play(at(5, 4), point.White) // W(E4)
	b.Play(at(4, 6), point.Black) // B(D6)
	b.Play(at(5, 6), point.White) // W(E6)
	b.Play(at(6, 5), point.White) // W(F5)
	checkInvariants(t, b)

	b.Play(at(5, 5), point.Black) // B plays E5, capturing D5
	checkInvariants(t, b)

	d5 := at(4, 5)
	require.Len(t, b.CapturedStones(), 1)
	assert.Equal(t, d5, b.CapturedStones()[0])
	assert.Equal(t, d5, b.KoPoint())
	assert.False(t, b.IsLegal(d5, point.White))

	// White plays elsewhere (not a pass); the ko restriction lifts.
	b.Play(at(1, 1), point.White)
	assert.True(t, b.IsLegal(d5, point.White))
}

func TestScenarioS2MergeOnPlay(t *testing.T) {
	// Play takes an explicit color each time; alternation isn't enforced
	// by this package (that is the reference board's job), so two black
	// stones with an empty gap between them can be set up directly.
	b2 := newTestBoard(t, 9)
	g := b2.geom
	at := func(x, y int) point.Point { return g.At(x, y) }

	b2.Play(at(1, 1), point.Black) // A1
	b2.Play(at(1, 3), point.Black) // A3
	b2.Play(at(1, 2), point.Black) // A2: merges A1 and A3

	anchor := b2.BlockAnchor(at(1, 2))
	stones := append([]point.Point(nil), b2.blocks[b2.blockIdx[anchor]].stones...)
	assert.ElementsMatch(t, []point.Point{at(1, 1), at(1, 2), at(1, 3)}, stones)

	libs := b2.Liberties(anchor)
	assert.ElementsMatch(t, []point.Point{at(1, 4), at(2, 1), at(2, 2), at(2, 3)}, libs)
	checkInvariants(t, b2)
}

func TestCaptureLawL2(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.geom
	at := func(x, y int) point.Point { return g.At(x, y) }

	// Surround a single white stone at (5,5) with black, leaving one liberty, then fill it.
	b.Play(at(5, 5), point.White)
	b.Play(at(5, 6), point.Black)
	b.Play(at(5, 4), point.Black)
	b.Play(at(4, 5), point.Black)
	require.Equal(t, 0, b.NumPrisoners(point.White))
	b.Play(at(6, 5), point.Black) // fills the last liberty

	require.Len(t, b.CapturedStones(), 1)
	assert.Equal(t, at(5, 5), b.CapturedStones()[0])
	assert.Equal(t, 1, b.NumPrisoners(point.White))
	assert.Equal(t, point.Empty, b.Color(at(5, 5)))
	checkInvariants(t, b)
}

func TestSuicideIsIllegal(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.geom
	at := func(x, y int) point.Point { return g.At(x, y) }

	// Surround the corner (1,1) entirely with white, leaving it the only
	// empty point among its neighbors' colors.
	b.Play(at(1, 2), point.White)
	b.Play(at(2, 1), point.White)

	assert.False(t, b.IsLegal(at(1, 1), point.Black))
	assert.True(t, b.IsLegal(at(1, 1), point.White))
}

func TestRoundTripLawL1(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.geom
	at := func(x, y int) point.Point { return g.At(x, y) }

	moves := []struct {
		p point.Point
		c point.Color
	}{
		{at(4, 5), point.Black},
		{at(5, 5), point.White},
		{at(5, 4), point.Black},
		{at(4, 4), point.White},
	}
	for _, m := range moves {
		b.Play(m.p, m.c)
	}

	other := newTestBoard(t, 9)
	require.NoError(t, other.Init(b))

	for _, p := range g.AllPoints() {
		assert.Equal(t, b.Color(p), other.Color(p), "color at %d", p)
		assert.Equal(t, b.nuNeighbors[0][p], other.nuNeighbors[0][p], "black neighbors at %d", p)
		assert.Equal(t, b.nuNeighbors[1][p], other.nuNeighbors[1][p], "white neighbors at %d", p)
	}
	assert.Equal(t, b.KoPoint(), other.KoPoint())
	assert.Equal(t, b.ToPlay(), other.ToPlay())
	checkInvariants(t, other)
}

func TestPassSwapsToPlayOnly(t *testing.T) {
	b := newTestBoard(t, 9)
	b.Play(b.geom.At(1, 1), point.Black)
	require.Equal(t, point.White, b.ToPlay())
	lastBefore := b.GetLastMove()

	b.Play(b.geom.Pass, point.White)
	assert.Equal(t, point.Black, b.ToPlay())
	assert.Equal(t, lastBefore, b.GetLastMove())
}

func TestColorFlipInvalidatesMoveChain(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.geom
	at := func(x, y int) point.Point { return g.At(x, y) }

	b.Play(at(1, 1), point.Black)
	b.Play(at(2, 2), point.Black) // same color twice: toPlay was White, so this is a "color inversion"
	assert.Equal(t, point.NullPoint, b.GetLastMove())
	assert.Equal(t, point.NullPoint, b.Get2ndLastMove())
}
