// Package prior computes per-move prior knowledge (spec.md C5): a value,
// pseudocount and classification type for every empty point and PASS,
// used to seed a UCT child's statistics the moment it is created. It is
// grounded on Fuego's GoUctDefaultPriorKnowledge
// (original_source/gouct/GoUctDefaultPriorKnowledge.cpp), translating its
// fixed value/count table verbatim.
package prior

import (
	"github.com/liushiwei/fuego/pattern"
	"github.com/liushiwei/fuego/point"
)

// MoveType classifies the move a playout policy most recently produced
// (spec.md §4.3: "GenerateMove ... sets an internal MoveType"). Only the
// random/fill-board distinction is meaningful to prior knowledge itself;
// the rest exist so a richer policy has somewhere to report its own
// move kind without prior knowledge needing to know about it.
type MoveType int

const (
	MoveRandom MoveType = iota
	MoveFillBoard
	MoveCapture
	MoveAtari
	MovePattern
	MoveOther
)

func (t MoveType) isFullBoardRandom() bool {
	return t == MoveRandom || t == MoveFillBoard
}

// Policy is the playout policy contract prior knowledge drives (spec.md
// §4.3 "Contract with the playout policy"; design note §9 "virtual
// dispatch... replace with a capability interface consumed by the
// search"). Implementations are chosen at construction time; nothing
// here downcasts to a concrete type.
type Policy interface {
	StartPlayout()
	GenerateMove() point.Point
	MoveType() MoveType
	Patterns() *pattern.Matcher
	GetEquivalentBestMoves() []point.Point
	EndPlayout()
}
