package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeometryRejectsOutOfRangeSizes(t *testing.T) {
	assert.Panics(t, func() { NewGeometry(1) })
	assert.Panics(t, func() { NewGeometry(MaxSize + 1) })
}

func TestBorderRing(t *testing.T) {
	g := NewGeometry(9)
	require.Equal(t, 9, g.Size())

	for x := 0; x < 11; x++ {
		for y := 0; y < 11; y++ {
			p := g.At(x, y)
			onEdge := x == 0 || y == 0 || x == 10 || y == 10
			assert.Equal(t, onEdge, g.IsBorder(p), "x=%d y=%d", x, y)
			assert.Equal(t, !onEdge, g.IsOnBoard(p), "x=%d y=%d", x, y)
		}
	}
}

func TestAllPointsSkipsBorder(t *testing.T) {
	g := NewGeometry(9)
	pts := g.AllPoints()
	assert.Len(t, pts, 81)
	for _, p := range pts {
		assert.False(t, g.IsBorder(p))
	}
}

func TestCardinalNeighborsNeverNeedRangeChecks(t *testing.T) {
	g := NewGeometry(9)
	for _, p := range g.AllPoints() {
		for _, n := range g.CardinalNeighbors(p) {
			assert.True(t, g.InBoardRange(n), "neighbor of %v out of range", p)
		}
	}
}

func TestLineAndPos(t *testing.T) {
	g := NewGeometry(9)
	corner := g.At(1, 1)
	assert.Equal(t, 1, g.Line(corner))
	assert.Equal(t, 1, g.Pos(corner))

	center := g.At(5, 5)
	assert.True(t, g.Line(center) > g.Line(corner))
}

func TestOtherDir(t *testing.T) {
	g := NewGeometry(9)
	assert.Equal(t, g.East, g.OtherDir(g.North))
	assert.Equal(t, g.East, g.OtherDir(g.South))
	assert.Equal(t, g.North, g.OtherDir(g.East))
	assert.Equal(t, g.North, g.OtherDir(g.West))
	assert.Panics(t, func() { g.OtherDir(g.NorthEast) })
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, White, Black.Opponent())
	assert.Equal(t, Black, White.Opponent())
	assert.Panics(t, func() { Empty.Opponent() })
}
