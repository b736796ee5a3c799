// Package pattern implements the 3x3 center and 2x3 edge heuristic move
// patterns (spec.md C4): hane, cut and edge predicates over a point's
// 8-neighborhood, precomputed into lookup tables keyed by to-play color
// so that matching a real board position is a single array index. It is
// grounded on Fuego's Pattern3x3 matcher
// (original_source/.../GoUctPatterns.cpp): same predicates, same
// table-building idea (synthesize every coded neighborhood once, record
// whether it matches, index the bit at search time).
package pattern

import "github.com/liushiwei/fuego/point"

// Position is the minimal read-only board surface the matcher needs: a
// point's color and the color to play. board.Board satisfies it
// directly, with no adapter.
type Position interface {
	Color(p point.Point) point.Color
	ToPlay() point.Color
}

func numNeighbors(pos Position, g *point.Geometry, p point.Point, c point.Color) int {
	n := 0
	for _, q := range g.CardinalNeighbors(p) {
		if pos.Color(q) == c {
			n++
		}
	}
	return n
}

func numDiagonals(pos Position, g *point.Geometry, p point.Point, c point.Color) int {
	n := 0
	for _, q := range g.DiagonalNeighbors(p) {
		if pos.Color(q) == c {
			n++
		}
	}
	return n
}

func numEmptyNeighbors(pos Position, g *point.Geometry, p point.Point) int {
	return numNeighbors(pos, g, p, point.Empty)
}

func num8EmptyNeighbors(pos Position, g *point.Geometry, p point.Point) int {
	n := numEmptyNeighbors(pos, g, p)
	for _, q := range g.DiagonalNeighbors(p) {
		if pos.Color(q) == point.Empty {
			n++
		}
	}
	return n
}

// up returns the cardinal direction pointing from a first-line point p
// into the interior of the board. p must not be a corner.
func up(g *point.Geometry, p point.Point) point.Point {
	x, y := g.XY(p)
	switch {
	case x == 1:
		return g.East
	case x == g.Size():
		return g.West
	case y == 1:
		return g.North
	default:
		return g.South
	}
}

// findDir locates the single cardinal neighbor of p holding color c.
// Precondition: exactly one of the four does.
func findDir(pos Position, g *point.Geometry, p point.Point, c point.Color) point.Point {
	if pos.Color(p+g.North) == c {
		return g.North
	}
	if pos.Color(p+g.South) == c {
		return g.South
	}
	if pos.Color(p+g.East) == c {
		return g.East
	}
	return g.West
}

func checkCut1(pos Position, p point.Point, c point.Color, cDir, otherDir point.Point) bool {
	return pos.Color(p+otherDir) == c && pos.Color(p+cDir+otherDir) == c.Opponent()
}

// checkCut2 requires pos.Color(p+cDir) == c; callers establish this
// before calling.
func checkCut2(pos Position, p point.Point, c point.Color, cDir, otherDir point.Point) bool {
	if pos.Color(p-cDir) != c {
		return false
	}
	opp := c.Opponent()
	branch1 := pos.Color(p+otherDir) == opp &&
		pos.Color(p-otherDir+cDir) != c &&
		pos.Color(p-otherDir-cDir) != c
	branch2 := pos.Color(p-otherDir) == opp &&
		pos.Color(p+otherDir+cDir) != c &&
		pos.Color(p+otherDir-cDir) != c
	return branch1 || branch2
}

func checkHane1(pos Position, p point.Point, c, opp point.Color, cDir, otherDir point.Point) bool {
	return pos.Color(p+cDir) == c &&
		pos.Color(p+cDir+otherDir) == opp &&
		pos.Color(p+cDir-otherDir) == opp &&
		pos.Color(p+otherDir) == point.Empty &&
		pos.Color(p-otherDir) == point.Empty
}

// matchCut implements the cut1/cut2 sub-cases (spec.md §4.2 "Cut").
func matchCut(pos Position, g *point.Geometry, p point.Point) bool {
	if num8EmptyNeighbors(pos, g, p) > 6 {
		return false
	}
	nuEmpty := numEmptyNeighbors(pos, g, p)

	if c1 := pos.Color(p + g.North); c1 != point.Empty &&
		numNeighbors(pos, g, p, c1) >= 2 &&
		!(numNeighbors(pos, g, p, c1) == 3 && nuEmpty == 1) &&
		(checkCut1(pos, p, c1, g.North, g.East) || checkCut1(pos, p, c1, g.North, g.West)) {
		return true
	}
	if c2 := pos.Color(p + g.South); c2 != point.Empty &&
		numNeighbors(pos, g, p, c2) >= 2 &&
		!(numNeighbors(pos, g, p, c2) == 3 && nuEmpty == 1) &&
		(checkCut1(pos, p, c2, g.South, g.East) || checkCut1(pos, p, c2, g.South, g.West)) {
		return true
	}
	if c1 := pos.Color(p + g.North); c1 != point.Empty &&
		numNeighbors(pos, g, p, c1) == 2 &&
		numNeighbors(pos, g, p, c1.Opponent()) > 0 &&
		numDiagonals(pos, g, p, c1) <= 2 &&
		checkCut2(pos, p, c1, g.North, g.East) {
		return true
	}
	if c3 := pos.Color(p + g.East); c3 != point.Empty &&
		numNeighbors(pos, g, p, c3) == 2 &&
		numNeighbors(pos, g, p, c3.Opponent()) > 0 &&
		numDiagonals(pos, g, p, c3) <= 2 &&
		checkCut2(pos, p, c3, g.East, g.North) {
		return true
	}
	return false
}

// matchEdge implements edge1-edge5 (spec.md §4.2 "Edge"). p must be a
// first-line, non-corner point.
func matchEdge(pos Position, g *point.Geometry, p point.Point, nuBlack, nuWhite int) bool {
	upDir := up(g, p)
	side := g.OtherDir(upDir)
	nuEmpty := numEmptyNeighbors(pos, g, p)
	upColor := pos.Color(p + upDir)

	if nuEmpty > 0 && (nuBlack > 0 || nuWhite > 0) && upColor == point.Empty {
		if c1 := pos.Color(p + side); c1 != point.Empty && pos.Color(p+side+upDir) == c1.Opponent() {
			return true
		}
		if c2 := pos.Color(p - side); c2 != point.Empty && pos.Color(p-side+upDir) == c2.Opponent() {
			return true
		}
	}

	if upColor != point.Empty &&
		((upColor == point.Black && nuBlack == 1 && nuWhite > 0) ||
			(upColor == point.White && nuWhite == 1 && nuBlack > 0)) {
		return true
	}

	toPlay := pos.ToPlay()
	if upColor == toPlay && numDiagonals(pos, g, p, upColor.Opponent()) > 0 {
		return true
	}

	if upColor == toPlay.Opponent() &&
		numNeighbors(pos, g, p, upColor) <= 2 &&
		numDiagonals(pos, g, p, toPlay) > 0 {
		if pos.Color(p+side+upDir) == toPlay && pos.Color(p+side) != upColor {
			return true
		}
		if pos.Color(p-side+upDir) == toPlay && pos.Color(p-side) != upColor {
			return true
		}
	}

	if upColor == toPlay.Opponent() &&
		numNeighbors(pos, g, p, upColor) == 2 &&
		numNeighbors(pos, g, p, toPlay) == 1 {
		if pos.Color(p+side+upDir) == toPlay && pos.Color(p+side) == upColor {
			return true
		}
		if pos.Color(p-side+upDir) == toPlay && pos.Color(p-side) == upColor {
			return true
		}
	}
	return false
}

// matchHane implements hane1-hane4 (spec.md §4.2 "Hane"). p must be a
// non-edge point.
func matchHane(pos Position, g *point.Geometry, p point.Point, nuBlack, nuWhite int) bool {
	nuEmpty := numEmptyNeighbors(pos, g, p)
	if nuEmpty < 2 || nuEmpty > 3 {
		return false
	}
	if (nuBlack < 1 || nuBlack > 2) && (nuWhite < 1 || nuWhite > 2) {
		return false
	}

	if nuEmpty == 2 { // hane3
		if nuBlack == 1 && nuWhite == 1 {
			dirB := findDir(pos, g, p, point.Black)
			dirW := findDir(pos, g, p, point.White)
			if pos.Color(p+dirB+dirW) != point.Empty {
				return true
			}
		}
	} else { // nuEmpty == 3: hane2 or hane4
		col := point.White
		if nuBlack == 1 {
			col = point.Black
		}
		opp := col.Opponent()
		dir := findDir(pos, g, p, col)
		otherDir := g.OtherDir(dir)

		if pos.Color(p+dir+otherDir) == point.Empty && pos.Color(p+dir-otherDir) == opp {
			return true // hane2
		}
		if pos.Color(p+dir-otherDir) == point.Empty && pos.Color(p+dir+otherDir) == opp {
			return true // hane2
		}
		if pos.ToPlay() == opp {
			if c1 := pos.Color(p + dir + otherDir); c1 != point.Empty {
				c2 := pos.Color(p + dir - otherDir)
				if c1.Opponent() == c2 {
					return true // hane4
				}
			}
		}
	}

	if nuBlackDiag := numDiagonals(pos, g, p, point.Black); nuBlackDiag >= 2 && nuWhite > 0 &&
		(checkHane1(pos, p, point.White, point.Black, g.North, g.East) ||
			checkHane1(pos, p, point.White, point.Black, g.South, g.East) ||
			checkHane1(pos, p, point.White, point.Black, g.East, g.North) ||
			checkHane1(pos, p, point.White, point.Black, g.West, g.North)) {
		return true
	}
	if nuWhiteDiag := numDiagonals(pos, g, p, point.White); nuWhiteDiag >= 2 && nuBlack > 0 &&
		(checkHane1(pos, p, point.Black, point.White, g.North, g.East) ||
			checkHane1(pos, p, point.Black, point.White, g.South, g.East) ||
			checkHane1(pos, p, point.Black, point.White, g.East, g.North) ||
			checkHane1(pos, p, point.Black, point.White, g.West, g.North)) {
		return true
	}
	return false
}
