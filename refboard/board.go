// Package refboard is a minimal rules-aware canonical game board: the
// kind of "external collaborator" spec.md §6 assumes exists but pushes
// out of scope for the playout board itself. It exists so the rest of
// this repo — the playout board's Init, prior knowledge, the safety
// oracle, the UCT search loop — has a genuine board.ReferenceBoard to
// be driven from in tests, one move at a time, with the one rule the
// playout board deliberately omits: positional superko.
//
// It is not a rules engine in the SGF/GTP sense (no time management, no
// book moves, no scoring dispute resolution) — just enough bookkeeping
// to make legal moves, reject illegal ones with a reason, and remember
// enough history to detect superko. Grounded on the teacher's own
// split between a fast, trusting board.makeMove and a robot.checkLegalMove/
// robot.makeMove pair that re-validates against position history
// (robot.go), translated here onto this module's own incremental board
// rather than reimplementing block/liberty bookkeeping a second time.
package refboard

import (
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/point"
)

// MoveResult classifies the outcome of a Play call, following the
// teacher's moveResult type (robot.go) with "ko" split into simple ko
// (rejected by the playout board itself) and positional superko
// (refboard's own addition).
type MoveResult int

const (
	Played MoveResult = iota
	Passed
	Occupied
	OffBoard
	Suicide
	Ko
	Superko
)

// OK reports whether the requested move was carried out (Played or
// Passed). Every other result means no stone was placed; an implicit
// pass that Play inserted for an out-of-turn move stays in effect.
func (m MoveResult) OK() bool { return m == Played || m == Passed }

func (m MoveResult) String() string {
	switch m {
	case Played:
		return "played"
	case Passed:
		return "passed"
	case Occupied:
		return "occupied"
	case OffBoard:
		return "off-board"
	case Suicide:
		return "suicide"
	case Ko:
		return "ko"
	case Superko:
		return "superko"
	}
	return "invalid"
}

// Board is a positional-superko-aware Go position built on top of this
// module's own playout board (board.Board) for block/liberty/simple-ko
// bookkeeping. Use Play to build up a game move by move; Board itself
// satisfies board.ReferenceBoard, so it can seed a playout board's Init
// or drive a uct.Worker's search root directly.
type Board struct {
	inner   *board.Board
	scratch *board.Board

	// hashes records a DJB-style position hash after every played or
	// passed move, following the teacher's boardHashes/getHash pair
	// (robot.go), so a candidate move can be checked against every
	// prior position in the game, not just the immediately preceding
	// one (which simple ko alone would miss).
	hashes []uint64

	log *log.Logger
}

// New builds an empty refboard.Board of the given size.
func New(size int) (*Board, error) {
	inner, err := board.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "refboard: allocating board")
	}
	scratch, err := board.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "refboard: allocating scratch board")
	}
	b := &Board{
		inner:   inner,
		scratch: scratch,
		log:     log.New(os.Stderr, "[refboard] ", log.Ltime),
	}
	b.hashes = append(b.hashes, b.positionHash())
	return b, nil
}

// SetLogger overrides the default stderr logger.
func (b *Board) SetLogger(l *log.Logger) { b.log = l }

// Geometry exposes the board's coordinate space.
func (b *Board) Geometry() *point.Geometry { return b.inner.Geometry() }

// Play attempts move (p, c). If c is not the side to move, an implicit
// pass is inserted for the side actually to move first, matching the
// teacher's own tolerance for an out-of-turn GTP "play" command
// (robot.Play). Returns the outcome and, for a played stone, the number
// of opponent stones captured.
func (b *Board) Play(p point.Point, c point.Color) (result MoveResult, captures int) {
	g := b.inner.Geometry()
	if c != b.inner.ToPlay() {
		b.inner.Play(g.Pass, b.inner.ToPlay())
		b.hashes = append(b.hashes, b.positionHash())
	}

	if p == g.Pass {
		b.inner.Play(p, c)
		b.hashes = append(b.hashes, b.positionHash())
		return Passed, 0
	}
	if !g.InBoardRange(p) || g.IsBorder(p) {
		return OffBoard, 0
	}
	if !b.inner.IsEmpty(p) {
		return Occupied, 0
	}
	if b.inner.IsSuicide(p, c) {
		return Suicide, 0
	}
	if p == b.inner.KoPoint() && b.inner.ToPlay() == c {
		return Ko, 0
	}

	if err := b.scratch.Init(b.inner); err != nil {
		b.log.Printf("refboard: scratch init failed: %v", err)
		return Suicide, 0
	}
	b.scratch.Play(p, c)
	candidateHash := b.hashOf(b.scratch)
	for _, h := range b.hashes {
		if h == candidateHash {
			return Superko, 0
		}
	}

	b.inner.Play(p, c)
	captures = len(b.inner.CapturedStones())
	b.hashes = append(b.hashes, b.positionHash())
	return Played, captures
}

func (b *Board) positionHash() uint64 { return b.hashOf(b.inner) }

// hashOf computes a DJB-style hash of bd's stone placement, following
// the teacher's board.getHash (a deliberately simple whole-board hash,
// not Zobrist, since performance here is not the concern superko
// correctness is).
func (b *Board) hashOf(bd *board.Board) uint64 {
	g := bd.Geometry()
	var k uint64 = 5381
	for _, p := range g.AllPoints() {
		k = ((k << 5) + k) + uint64(bd.Color(p))
	}
	return k
}

// Size satisfies board.ReferenceBoard.
func (b *Board) Size() int { return b.inner.Size() }

// IsBorder satisfies board.ReferenceBoard.
func (b *Board) IsBorder(p point.Point) bool { return b.inner.IsBorder(p) }

// IsEmpty satisfies board.ReferenceBoard.
func (b *Board) IsEmpty(p point.Point) bool { return b.inner.IsEmpty(p) }

// GetColor satisfies board.ReferenceBoard.
func (b *Board) GetColor(p point.Point) point.Color { return b.inner.GetColor(p) }

// Anchor satisfies board.ReferenceBoard.
func (b *Board) Anchor(p point.Point) point.Point { return b.inner.Anchor(p) }

// Stones satisfies board.ReferenceBoard.
func (b *Board) Stones(anchor point.Point) []point.Point { return b.inner.Stones(anchor) }

// Liberties satisfies board.ReferenceBoard.
func (b *Board) Liberties(anchor point.Point) []point.Point { return b.inner.Liberties(anchor) }

// NumPrisoners satisfies board.ReferenceBoard.
func (b *Board) NumPrisoners(c point.Color) int { return b.inner.NumPrisoners(c) }

// KoPoint satisfies board.ReferenceBoard.
func (b *Board) KoPoint() point.Point { return b.inner.KoPoint() }

// GetLastMove satisfies board.ReferenceBoard.
func (b *Board) GetLastMove() point.Point { return b.inner.GetLastMove() }

// Get2ndLastMove satisfies board.ReferenceBoard.
func (b *Board) Get2ndLastMove() point.Point { return b.inner.Get2ndLastMove() }

// ToPlay satisfies board.ReferenceBoard.
func (b *Board) ToPlay() point.Color { return b.inner.ToPlay() }

var _ board.ReferenceBoard = (*Board)(nil)
