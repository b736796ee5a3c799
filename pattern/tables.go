package pattern

import (
	"fmt"

	"github.com/liushiwei/fuego/point"
)

const (
	numCenterCodes = 6561 // 3^8: one trit per 8-neighbor
	numEdgeCodes   = 243  // 3^5: one trit per 2x3 edge neighbor
)

// Tables holds the precomputed "matches some pattern" bit for every
// neighborhood code, one table per to-play color (spec.md §4.2's
// "precomputed lookup tables"). Built once by buildTables and shared
// read-only by every Matcher.
type Tables struct {
	center [2][numCenterCodes]bool // [toPlay][code]
	edge   [2][numEdgeCodes]bool
}

var defaultTables = buildTables()

// DefaultTables returns the process-wide precomputed pattern tables.
func DefaultTables() *Tables { return defaultTables }

func colorIdx(c point.Color) int {
	switch c {
	case point.Black:
		return 0
	case point.White:
		return 1
	}
	panic(fmt.Sprintf("pattern: %v is not a playing color", c))
}

func colorDigit(c point.Color) int {
	switch c {
	case point.Black:
		return 1
	case point.White:
		return 2
	default:
		return 0
	}
}

func digitColor(d int) point.Color {
	switch d {
	case 1:
		return point.Black
	case 2:
		return point.White
	default:
		return point.Empty
	}
}

// centerDirs returns the 8 fixed offsets a center neighborhood code is
// built from, in the order its digits are assigned.
func centerDirs(g *point.Geometry) [8]point.Point {
	return [8]point.Point{
		g.North, g.South, g.East, g.West,
		g.NorthEast, g.NorthWest, g.SouthEast, g.SouthWest,
	}
}

// edgeOffsets returns the 5 offsets of a 2x3 edge neighborhood relative
// to upDir: the side direction, its two up-diagonals, up itself, and the
// opposite side — the same five points EdgeDirection names by index in
// the original (original_source/.../GoUctPatterns.cpp).
func edgeOffsets(g *point.Geometry, upDir point.Point) [5]point.Point {
	side := g.OtherDir(upDir)
	return [5]point.Point{side, upDir + side, upDir, upDir - side, -side}
}

// codeOf packs the colors at p+dirs[i] into a base-3 code, least
// significant digit first.
func codeOf(pos Position, p point.Point, dirs []point.Point) int {
	code := 0
	mul := 1
	for _, d := range dirs {
		code += colorDigit(pos.Color(p+d)) * mul
		mul *= 3
	}
	return code
}

// scratchBoard is a minimal synthetic Position used only to enumerate
// every coded neighborhood while building the tables; it never touches a
// real board.
type scratchBoard struct {
	colors map[point.Point]point.Color
	toPlay point.Color
}

func (s *scratchBoard) Color(p point.Point) point.Color {
	if c, ok := s.colors[p]; ok {
		return c
	}
	return point.Empty
}

func (s *scratchBoard) ToPlay() point.Color { return s.toPlay }

func decodeInto(sb *scratchBoard, p point.Point, dirs []point.Point, code int) {
	for _, d := range dirs {
		digit := code % 3
		code /= 3
		if digit != 0 {
			sb.colors[p+d] = digitColor(digit)
		}
	}
}

// buildTables synthesizes every coded 3x3 center and 2x3 edge
// neighborhood on a 5x5 scratch geometry (matching the original's
// GoBoard bd(5) table builder) and records whether the raw predicates
// match it, for both to-play colors.
func buildTables() *Tables {
	t := &Tables{}
	g := point.NewGeometry(5)
	center := g.At(3, 3)
	edge := g.At(1, 3)
	cDirs := centerDirs(g)
	eDirs := edgeOffsets(g, up(g, edge))

	for code := 0; code < numCenterCodes; code++ {
		sb := &scratchBoard{colors: make(map[point.Point]point.Color, 8)}
		decodeInto(sb, center, cDirs[:], code)
		for _, tp := range [2]point.Color{point.Black, point.White} {
			sb.toPlay = tp
			nb := numNeighbors(sb, g, center, point.Black)
			nw := numNeighbors(sb, g, center, point.White)
			t.center[colorIdx(tp)][code] = matchHane(sb, g, center, nb, nw) || matchCut(sb, g, center)
		}
	}

	for code := 0; code < numEdgeCodes; code++ {
		sb := &scratchBoard{colors: make(map[point.Point]point.Color, 5)}
		decodeInto(sb, edge, eDirs[:], code)
		for _, tp := range [2]point.Color{point.Black, point.White} {
			sb.toPlay = tp
			nb := numNeighbors(sb, g, edge, point.Black)
			nw := numNeighbors(sb, g, edge, point.White)
			t.edge[colorIdx(tp)][code] = matchEdge(sb, g, edge, nb, nw)
		}
	}
	return t
}

// Matcher answers matchAny queries against a real board by deriving a
// neighborhood code and indexing the precomputed tables, instead of
// re-running the predicates (spec.md §4.2 "At match time...").
type Matcher struct {
	tables *Tables
}

// NewMatcher returns a Matcher backed by the shared default tables.
func NewMatcher() *Matcher { return &Matcher{tables: DefaultTables()} }

// MatchAny reports whether p, an empty point of pos/g, forms a 3x3
// center or 2x3 edge pattern (spec.md §4.2). Panics if p is not empty —
// a programming-error precondition violation (spec.md §7 class 1).
func (m *Matcher) MatchAny(pos Position, g *point.Geometry, p point.Point) bool {
	if pos.Color(p) != point.Empty {
		panic(fmt.Sprintf("pattern: matchAny called on non-empty point %d", p))
	}
	nuBlack := numNeighbors(pos, g, p, point.Black)
	nuWhite := numNeighbors(pos, g, p, point.White)
	if nuBlack == 0 && nuWhite == 0 {
		return false
	}
	if g.Pos(p) == 1 {
		return false
	}

	tp := colorIdx(pos.ToPlay())
	if g.Line(p) == 1 {
		code := codeOf(pos, p, edgeOffsets(g, up(g, p))[:])
		return m.tables.edge[tp][code]
	}
	code := codeOf(pos, p, centerDirs(g)[:])
	return m.tables.center[tp][code]
}
