// Package point defines the integer coordinate space shared by the
// playout board, the pattern matcher and the safety/ladder oracle: a
// square grid surrounded by a one-point border ring so that every
// neighbor of every non-border point exists and no neighbor lookup needs
// a range check.
package point

import "fmt"

// Point is an index into a board's point range. The zero value is not a
// valid point on any board; use NullPoint for "no point".
type Point int32

const (
	// NullPoint means "no point" — e.g. a block with no anchor, or the
	// absence of a simple ko point.
	NullPoint Point = -1

	// EndPoint terminates a fixed-capacity anchor array used by callers
	// that want a sentinel rather than a length.
	EndPoint Point = -2
)

// MaxSize is the largest board width this package's geometry supports.
// Matches the teacher's maxBoardSize; large enough for any real Go board.
const MaxSize = 25

// Color is one of the four colors a point can hold.
type Color int8

const (
	Empty Color = iota
	Black
	White
	Border
)

// Opponent returns the other playing color. Calling it on Empty or
// Border is a programming error: only Black and White have opponents.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	panic(fmt.Sprintf("point: %v has no opponent", c))
}

func (c Color) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	case Border:
		return "Border"
	}
	return "Invalid"
}

// Geometry is the fixed set of offsets and dimensions for one board size.
// It is computed once by NewGeometry and never changes; every point
// operation below is a pure function of a Geometry plus a Point.
type Geometry struct {
	size  int // N: playable width/height
	width int // N+2: includes the one-point border on both sides

	// Pass is a sentinel one past the last in-range index. It can never
	// collide with a real coordinate because coordinates only range over
	// [0, width*width).
	Pass Point

	// Fixed cardinal and diagonal deltas, valid for any non-border point
	// without further range checks.
	North, South, East, West         Point
	NorthEast, NorthWest             Point
	SouthEast, SouthWest             Point
}

// NewGeometry builds the offset table for an N x N board. Panics if size
// is out of [2, MaxSize] — a programming error, not a recoverable one;
// callers validate user-supplied sizes before reaching here.
func NewGeometry(size int) *Geometry {
	if size < 2 || size > MaxSize {
		panic(fmt.Sprintf("point: invalid board size %d", size))
	}
	width := size + 2
	g := &Geometry{
		size:  size,
		width: width,
		Pass:  Point(width * width),
	}
	g.East = 1
	g.West = -1
	g.North = Point(width)
	g.South = Point(-width)
	g.NorthEast = g.North + g.East
	g.NorthWest = g.North + g.West
	g.SouthEast = g.South + g.East
	g.SouthWest = g.South + g.West
	return g
}

// Size returns N, the playable board width.
func (g *Geometry) Size() int { return g.size }

// NumPoints returns the size of the backing array a board needs to index
// every point (border included) plus the PASS sentinel slot.
func (g *Geometry) NumPoints() int { return g.width*g.width + 1 }

// At returns the point for board coordinates (x, y), both in [0, width-1]
// including the border ring. (1,1) is the first playable intersection.
func (g *Geometry) At(x, y int) Point { return Point(y*g.width + x) }

// XY decomposes a point into board coordinates.
func (g *Geometry) XY(p Point) (x, y int) {
	return int(p) % g.width, int(p) / g.width
}

// IsBorder reports whether p lies on the surrounding border ring.
func (g *Geometry) IsBorder(p Point) bool {
	x, y := g.XY(p)
	return x == 0 || y == 0 || x == g.width-1 || y == g.width-1
}

// InBoardRange reports whether p indexes a real point of this geometry
// (interior or border), as opposed to PASS/NullPoint/EndPoint.
func (g *Geometry) InBoardRange(p Point) bool {
	return p >= 0 && int(p) < g.width*g.width
}

// IsOnBoard reports whether p is a playable (non-border) point.
func (g *Geometry) IsOnBoard(p Point) bool {
	return g.InBoardRange(p) && !g.IsBorder(p)
}

// AllPoints returns every playable point in row-major order, skipping the
// border ring. Intended for board setup and full-board scans.
func (g *Geometry) AllPoints() []Point {
	pts := make([]Point, 0, g.size*g.size)
	for y := 1; y <= g.size; y++ {
		for x := 1; x <= g.size; x++ {
			pts = append(pts, g.At(x, y))
		}
	}
	return pts
}

// Line returns the distance from the nearest edge: 1 is the first line,
// 2 the second, and so on, saturating at the board's half-width. Used by
// the pattern matcher's edge cases (spec.md §4.2) and by GoEyeUtil-derived
// corner detection.
func (g *Geometry) Line(p Point) int {
	x, y := g.XY(p)
	dx := x
	if g.width-1-x < dx {
		dx = g.width - 1 - x
	}
	dy := y
	if g.width-1-y < dy {
		dy = g.width - 1 - y
	}
	line := dx
	if dy < line {
		line = dy
	}
	return line
}

// Pos returns the sum of p's distances from the two nearest edges minus
// one: 1 for a corner point and larger for every other point. It is the quantity GoEyeUtil calls
// "Pos" and the pattern matcher's matchAny precondition checks against 1
// to short-circuit corners.
func (g *Geometry) Pos(p Point) int {
	x, y := g.XY(p)
	dx := x
	if g.width-1-x < dx {
		dx = g.width - 1 - x
	}
	dy := y
	if g.width-1-y < dy {
		dy = g.width - 1 - y
	}
	return dx + dy - 1
}

// CardinalNeighbors returns the four cardinal neighbors of p in a fixed
// order: North, South, East, West. Valid for any non-border p.
func (g *Geometry) CardinalNeighbors(p Point) [4]Point {
	return [4]Point{p + g.North, p + g.South, p + g.East, p + g.West}
}

// DiagonalNeighbors returns the four diagonal neighbors of p in a fixed
// order: NE, NW, SE, SW. Valid for any non-border p.
func (g *Geometry) DiagonalNeighbors(p Point) [4]Point {
	return [4]Point{p + g.NorthEast, p + g.NorthWest, p + g.SouthEast, p + g.SouthWest}
}

// OtherDir returns the orthogonal axis of a cardinal direction: North and
// South map to East, East and West map to North. Used by the pattern
// matcher to find the "s" axis perpendicular to a given "d" direction
// (spec.md §4.2, hane2/hane4 sub-cases).
func (g *Geometry) OtherDir(d Point) Point {
	switch d {
	case g.North, g.South:
		return g.East
	case g.East, g.West:
		return g.North
	}
	panic("point: OtherDir of a non-cardinal direction")
}
