package prior

import (
	"github.com/pkg/errors"

	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/point"
)

// NumTypes is the number of distinct prior-knowledge type codes (spec.md
// §4.3's type ∈ {0..9}).
const NumTypes = 10

// Entry is the (value, count, type) triple a UCT child's statistics are
// seeded from when prior knowledge creates it (spec.md §4.3 "Output").
type Entry struct {
	Value float32
	Count int
	Type  int
}

// DefaultPriorKnowledge computes one Entry per on-board point plus PASS
// by driving a Policy and applying the fixed classification table of
// spec.md §4.3, grounded on GoUctDefaultPriorKnowledge::ProcessPosition.
type DefaultPriorKnowledge struct {
	b       *board.Board
	g       *point.Geometry
	policy  Policy
	scratch *board.Board

	entries []Entry // indexed by point.Point; g.Pass is a valid index too
}

// NewDefaultPriorKnowledge builds prior knowledge for board b, driven by
// policy. b and policy must describe the same board size.
func NewDefaultPriorKnowledge(b *board.Board, policy Policy) (*DefaultPriorKnowledge, error) {
	scratch, err := board.New(b.Size())
	if err != nil {
		return nil, errors.Wrap(err, "prior: allocating scratch board")
	}
	return &DefaultPriorKnowledge{
		b:       b,
		g:       b.Geometry(),
		policy:  policy,
		scratch: scratch,
		entries: make([]Entry, b.Geometry().NumPoints()),
	}, nil
}

// Get returns the most recently computed entry for p (an on-board point
// or g.Pass). Call ProcessPosition first.
func (pk *DefaultPriorKnowledge) Get(p point.Point) Entry { return pk.entries[p] }

func (pk *DefaultPriorKnowledge) initialize(p point.Point, value float32, count, typ int) {
	pk.entries[p] = Entry{Value: value, Count: count, Type: typ}
}

// ProcessPosition drives the policy once and fills in every entry,
// following GoUctDefaultPriorKnowledge::ProcessPosition's three-way
// branch verbatim (spec.md §4.3's table).
func (pk *DefaultPriorKnowledge) ProcessPosition() {
	pk.policy.StartPlayout()
	pk.policy.GenerateMove()
	fullRand := pk.policy.MoveType().isFullBoardRandom()
	matcher := pk.policy.Patterns()
	opp := pk.b.ToPlay().Opponent()

	anyHeuristic := false
	patternMatch := make(map[point.Point]bool)
	setsAtariSet := make(map[point.Point]bool)
	for _, p := range pk.g.AllPoints() {
		if !pk.b.IsEmpty(p) {
			continue
		}
		if matcher.MatchAny(pk.b, pk.g, p) {
			patternMatch[p] = true
			anyHeuristic = true
		}
		if setsAtari(pk.b, pk.g, p, opp) {
			setsAtariSet[p] = true
			anyHeuristic = true
		}
	}

	pk.initialize(pk.g.Pass, 0.1, 9, 1)

	switch {
	case fullRand && !anyHeuristic:
		for _, p := range pk.g.AllPoints() {
			if !pk.b.IsEmpty(p) {
				continue
			}
			if pk.isSelfAtariOrSuicide(p) {
				pk.initialize(p, 0.1, 9, 2)
			} else {
				pk.initialize(p, 0.5, 0, 0)
			}
		}

	case fullRand && anyHeuristic:
		for _, p := range pk.g.AllPoints() {
			if !pk.b.IsEmpty(p) {
				continue
			}
			switch {
			case pk.isSelfAtariOrSuicide(p):
				pk.initialize(p, 0.1, 9, 2)
			case setsAtariSet[p]:
				pk.initialize(p, 1.0, 3, 3)
			case patternMatch[p]:
				pk.initialize(p, 0.9, 3, 4)
			default:
				pk.initialize(p, 0.5, 3, 5)
			}
		}

	default:
		for _, p := range pk.g.AllPoints() {
			if !pk.b.IsEmpty(p) {
				continue
			}
			switch {
			case pk.isSelfAtariOrSuicide(p):
				pk.initialize(p, 0.1, 9, 2)
			case setsAtariSet[p]:
				pk.initialize(p, 0.8, 9, 6)
			case patternMatch[p]:
				pk.initialize(p, 0.6, 9, 7)
			default:
				pk.initialize(p, 0.4, 9, 8)
			}
		}
		// Equivalent-best overlay applies last, overwriting whatever
		// the point above it was assigned.
		for _, p := range pk.policy.GetEquivalentBestMoves() {
			pk.initialize(p, 1.0, 9, 9)
		}
	}

	pk.policy.EndPlayout()
}

// setsAtari reports whether playing the empty point p would drop an
// adjacent opp-colored block from 2 liberties to 1, grounded on the
// anonymous SetsAtari() in GoUctDefaultPriorKnowledge.cpp.
func setsAtari(b *board.Board, g *point.Geometry, p point.Point, opp point.Color) bool {
	for _, n := range g.CardinalNeighbors(p) {
		if b.Color(n) == opp && b.NumLiberties(n) == 2 {
			return true
		}
	}
	return false
}

// isSelfAtariOrSuicide reports whether playing the current side's stone
// at p is suicide, or leaves the resulting block with exactly one
// liberty. The suicide check is a direct query; self-atari requires
// actually placing the stone, so it plays on a scratch copy of b rather
// than reimplementing liberty bookkeeping a second time.
func (pk *DefaultPriorKnowledge) isSelfAtariOrSuicide(p point.Point) bool {
	toPlay := pk.b.ToPlay()
	if pk.b.IsSuicide(p, toPlay) {
		return true
	}
	pk.scratch.Init(pk.b)
	pk.scratch.Play(p, toPlay)
	return pk.scratch.NumLiberties(p) == 1
}
