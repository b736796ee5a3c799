// Package rootfilter computes the root filter (spec.md C7): the set of
// otherwise-legal root moves that are not useful to explore, because
// they fill already-settled territory or defend a ladder that is
// already lost. Grounded on Fuego's GoUctDefaultRootFilter
// (original_source/branches/OLYMPIAD2008/gouct/GoUctDefaultRootFilter.cpp),
// translated move for move: the same three territory conditions plus the
// same losing-ladder-defense liberty check, with the same defaults
// (MinLadderLength 6, CheckLadders true).
package rootfilter

import (
	"golang.org/x/exp/slices"

	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/point"
	"github.com/liushiwei/fuego/safety"
)

// DefaultMinLadderLength matches GoUctDefaultRootFilter's constructor
// default.
const DefaultMinLadderLength = 6

// Filter computes and applies the root filter.
type Filter struct {
	MinLadderLength int
	CheckLadders    bool
}

// New returns a Filter with the teacher's defaults.
func New() *Filter {
	return &Filter{MinLadderLength: DefaultMinLadderLength, CheckLadders: true}
}

// Compute returns every legal point for b.ToPlay() that the filter
// excludes from root exploration (spec.md §4.4 "Root filter output").
func (f *Filter) Compute(b *board.Board) []point.Point {
	g := b.Geometry()
	toPlay := b.ToPlay()
	opp := toPlay.Opponent()

	result := safety.FindSafePoints(b)
	isAllAlternateSafe := result.IsAllAlternateSafe
	alternateOpp := result.AlternateSafe[opp]
	unconditionalOpp := result.UnconditionalSafe[opp]
	unconditionalOwn := result.UnconditionalSafe[toPlay]

	excluded := make(map[point.Point]bool)
	for _, p := range g.AllPoints() {
		if !b.IsLegal(p, toPlay) {
			continue
		}
		switch {
		case isAllAlternateSafe && alternateOpp[p]:
			excluded[p] = true
		case unconditionalOpp[p]:
			excluded[p] = true
		case unconditionalOwn[p] && !hasNeighborOfColor(b, g, p, opp):
			excluded[p] = true
		}
	}

	if f.CheckLadders {
		f.addLosingLadderLiberties(b, g, toPlay, excluded)
	}

	out := make([]point.Point, 0, len(excluded))
	for p := range excluded {
		out = append(out, p)
	}
	// excluded was built from map iteration; sort for a deterministic,
	// reproducible filter result independent of map ordering.
	slices.Sort(out)
	return out
}

// addLosingLadderLiberties reads out every in-atari block of toPlay's
// own color at the root; a block whose ladder is lost by a sequence at
// least MinLadderLength long has its one liberty added to excluded,
// since playing there only postpones a capture the defense already
// fails (GoUctDefaultRootFilter::Get's second loop).
func (f *Filter) addLosingLadderLiberties(b *board.Board, g *point.Geometry, toPlay point.Color, excluded map[point.Point]bool) {
	seen := make(map[point.Point]bool)
	for _, p := range g.AllPoints() {
		if b.Color(p) != toPlay {
			continue
		}
		anchor := b.Anchor(p)
		if seen[anchor] {
			continue
		}
		seen[anchor] = true
		if !b.InAtari(anchor) {
			continue
		}
		res := safety.ReadLadder(b, anchor, toPlay, false)
		if res.Eval < 0 && len(res.Sequence) >= f.MinLadderLength {
			excluded[b.TheLiberty(anchor)] = true
		}
	}
}

func hasNeighborOfColor(b *board.Board, g *point.Geometry, p point.Point, c point.Color) bool {
	for _, n := range g.CardinalNeighbors(p) {
		if b.Color(n) == c {
			return true
		}
	}
	return false
}
