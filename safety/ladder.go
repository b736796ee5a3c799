package safety

import (
	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/point"
)

// LadderResult is the outcome of reading out an in-atari block to
// completion (spec.md §4.4 "Ladder reader"). Eval is negative when the
// defender loses the ladder and positive when it escapes, matching the
// "< 0" check used by the root filter; Sequence holds the moves played
// during the read, defender first, alternating with the attacker.
type LadderResult struct {
	Eval     int
	Sequence []point.Point
}

// Escapes reports whether the defender escapes the ladder.
func (r LadderResult) Escapes() bool { return r.Eval >= 0 }

// ReadLadder determines whether the block anchored at anchor (currently
// in atari, color defender) can escape a ladder, following spec.md
// §4.4's description: the defender repeatedly extends into its one
// liberty; if the resulting block still has only one liberty it is
// captured, if it has three or more it has escaped, and if it has
// exactly two the attacker tries reducing each of them in turn, the
// defender escaping only if it escapes against every attacker try.
// twoLibIsEscape treats a two-liberty extension as an immediate escape,
// matching callers that only need a coarse "is this hopeless" read.
//
// No dedicated ladder source survives in the reference material this
// package is otherwise grounded on (GoUctDefaultRootFilter.cpp names
// and consumes a ladder reader but does not define one); this
// implementation follows the specification's own description of the
// algorithm directly, reusing the board package's Play/Init the same
// way the prior package's self-atari check does.
func ReadLadder(b *board.Board, anchor point.Point, defender point.Color, twoLibIsEscape bool) LadderResult {
	if !b.InAtari(anchor) {
		panic("safety: ReadLadder called on a block that is not in atari")
	}
	scratch, err := board.New(b.Size())
	if err != nil {
		panic(err)
	}
	if err := scratch.Init(b); err != nil {
		panic(err)
	}
	maxDepth := 2 * b.Size() * b.Size()
	escapes, seq := ladderRecurse(scratch, anchor, defender, twoLibIsEscape, maxDepth)
	eval := -1
	if escapes {
		eval = 1
	}
	return LadderResult{Eval: eval, Sequence: seq}
}

// ladderRecurse plays out one ply of the ladder on b (owned by the
// caller, mutated in place) and recurses only at the point where the
// attacker has a genuine choice, cloning a fresh scratch board for each
// alternative so the branches cannot interfere with each other.
func ladderRecurse(b *board.Board, anchor point.Point, defender point.Color, twoLibIsEscape bool, depth int) (escapes bool, seq []point.Point) {
	if depth <= 0 {
		return false, nil
	}
	if !b.InAtari(anchor) {
		return b.NumLiberties(anchor) >= 2, nil
	}
	lib := b.TheLiberty(anchor)
	if !b.IsLegal(lib, defender) {
		return false, nil
	}
	b.Play(lib, defender)
	seq = []point.Point{lib}
	newAnchor := b.BlockAnchor(lib)

	switch n := b.NumLiberties(newAnchor); {
	case n >= 3:
		return true, seq
	case n == 1:
		return false, seq
	}

	if twoLibIsEscape {
		return true, seq
	}

	opp := defender.Opponent()
	for _, attack := range append([]point.Point(nil), b.Liberties(newAnchor)...) {
		if !b.IsLegal(attack, opp) {
			continue
		}
		branch, err := board.New(b.Size())
		if err != nil {
			panic(err)
		}
		if err := branch.Init(b); err != nil {
			panic(err)
		}
		branch.Play(attack, opp)
		ok, rest := ladderRecurse(branch, newAnchor, defender, twoLibIsEscape, depth-1)
		if !ok {
			return false, append(seq, append([]point.Point{attack}, rest...)...)
		}
	}
	return true, seq
}
