package prior

import (
	"math/rand"
	"time"

	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/pattern"
	"github.com/liushiwei/fuego/point"
)

// SimplePolicy is a minimal concrete Policy: it picks a uniformly random
// legal-looking empty point, with no capture or pattern look-ahead of
// its own (prior knowledge supplies that separately). Real deployments
// plug in a stronger playout policy; this one exists so prior knowledge
// has a working policy to drive end to end. Its random source follows
// the teacher's own convention for move sampling — a time-seeded
// *rand.Rand held per instance (_examples/Elvenson-alphabeth/arena.go,
// agogo.go) — rather than the leesper/go_rng package, which appears in
// that repo's go.mod only as an indirect transitive dependency and is
// never imported by any example (see DESIGN.md).
type SimplePolicy struct {
	b       *board.Board
	g       *point.Geometry
	rng     *rand.Rand
	matcher *pattern.Matcher

	moveType  MoveType
	equivBest []point.Point
}

// NewSimplePolicy builds a policy driving b.
func NewSimplePolicy(b *board.Board) *SimplePolicy {
	return &SimplePolicy{
		b:       b,
		g:       b.Geometry(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		matcher: pattern.NewMatcher(),
	}
}

func (p *SimplePolicy) StartPlayout() {
	p.equivBest = p.equivBest[:0]
}

// GenerateMove samples a uniformly random empty point. Once at most one
// row's worth of empty points remain, the move is classified
// MoveFillBoard rather than MoveRandom, matching the source's idea that
// filling the last scattered points of a nearly-decided board is its own
// move kind distinct from early random play; both still count as
// "full-board random" for prior knowledge's purposes (spec.md §4.3).
func (p *SimplePolicy) GenerateMove() point.Point {
	empties := make([]point.Point, 0, p.g.Size()*p.g.Size())
	for _, q := range p.g.AllPoints() {
		if p.b.IsEmpty(q) {
			empties = append(empties, q)
		}
	}
	if len(empties) == 0 {
		p.moveType = MoveFillBoard
		return p.g.Pass
	}
	if len(empties) <= p.g.Size() {
		p.moveType = MoveFillBoard
	} else {
		p.moveType = MoveRandom
	}
	move := empties[p.rng.Intn(len(empties))]
	p.equivBest = append(p.equivBest, move)
	return move
}

func (p *SimplePolicy) MoveType() MoveType { return p.moveType }

func (p *SimplePolicy) Patterns() *pattern.Matcher { return p.matcher }

func (p *SimplePolicy) GetEquivalentBestMoves() []point.Point { return p.equivBest }

func (p *SimplePolicy) EndPlayout() {}
