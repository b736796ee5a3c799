package prior_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/pattern"
	"github.com/liushiwei/fuego/point"
	"github.com/liushiwei/fuego/prior"
)

func newTestBoard(t *testing.T, size int) *board.Board {
	t.Helper()
	b, err := board.New(size)
	require.NoError(t, err)
	return b
}

// TestS3 matches spec scenario S3: an empty 9x9 board, a random policy,
// no pattern matches anywhere.
func TestS3NoHeuristicOnEmptyBoard(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.Geometry()
	policy := prior.NewSimplePolicy(b)
	pk, err := prior.NewDefaultPriorKnowledge(b, policy)
	require.NoError(t, err)

	pk.ProcessPosition()

	assert.Equal(t, prior.Entry{Value: 0.1, Count: 9, Type: 1}, pk.Get(g.Pass))
	for _, p := range g.AllPoints() {
		assert.Equal(t, prior.Entry{Value: 0.5, Count: 0, Type: 0}, pk.Get(p), "point %d", p)
	}
}

// TestS4 matches spec scenario S4: same board, but one point sets atari.
// A lone white stone in the corner always has exactly 2 liberties, so
// either of them sets atari when Black plays it.
func TestS4AtariSetterOverridesDefault(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.Geometry()
	b.Play(g.At(1, 1), point.White)
	require.Equal(t, point.Black, b.ToPlay())

	policy := prior.NewSimplePolicy(b)
	pk, err := prior.NewDefaultPriorKnowledge(b, policy)
	require.NoError(t, err)

	pk.ProcessPosition()

	x := g.At(1, 2) // a liberty of the corner stone
	assert.Equal(t, prior.Entry{Value: 1.0, Count: 3, Type: 3}, pk.Get(x))
	assert.Equal(t, prior.Entry{Value: 0.1, Count: 9, Type: 1}, pk.Get(g.Pass))

	ordinary := g.At(5, 5)
	assert.Equal(t, prior.Entry{Value: 0.5, Count: 3, Type: 5}, pk.Get(ordinary))
}

// fixedPolicy is a Policy stub whose MoveType and equivalent-best list
// are set directly, to exercise the "otherwise" branch and the overlay
// rule without depending on SimplePolicy's random sampling.
type fixedPolicy struct {
	matcher   *pattern.Matcher
	equivBest []point.Point
	pass      point.Point
}

func (f *fixedPolicy) StartPlayout()                        {}
func (f *fixedPolicy) GenerateMove() point.Point             { return f.pass }
func (f *fixedPolicy) MoveType() prior.MoveType              { return prior.MoveOther }
func (f *fixedPolicy) Patterns() *pattern.Matcher            { return f.matcher }
func (f *fixedPolicy) GetEquivalentBestMoves() []point.Point { return f.equivBest }
func (f *fixedPolicy) EndPlayout()                           {}

func TestOtherwiseBranchAndEquivalentBestOverlay(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.Geometry()

	best := g.At(4, 4)
	policy := &fixedPolicy{matcher: pattern.NewMatcher(), equivBest: []point.Point{best}, pass: g.Pass}
	pk, err := prior.NewDefaultPriorKnowledge(b, policy)
	require.NoError(t, err)

	pk.ProcessPosition()

	assert.Equal(t, prior.Entry{Value: 1.0, Count: 9, Type: 9}, pk.Get(best))

	other := g.At(2, 2)
	assert.Equal(t, prior.Entry{Value: 0.4, Count: 9, Type: 8}, pk.Get(other))
}
