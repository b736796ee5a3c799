package refboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liushiwei/fuego/point"
	"github.com/liushiwei/fuego/refboard"
)

func newTestBoard(t *testing.T, size int) *refboard.Board {
	t.Helper()
	b, err := refboard.New(size)
	require.NoError(t, err)
	return b
}

func TestPlayAndPassAlternateSides(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.Geometry()

	result, captures := b.Play(g.At(3, 3), point.Black)
	assert.Equal(t, refboard.Played, result)
	assert.Equal(t, 0, captures)
	assert.Equal(t, point.White, b.ToPlay())

	result, _ = b.Play(g.Pass, point.White)
	assert.Equal(t, refboard.Passed, result)
	assert.Equal(t, point.Black, b.ToPlay())
}

func TestPlayOnOccupiedPointIsRejected(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.Geometry()

	_, _ = b.Play(g.At(4, 4), point.Black)
	result, _ := b.Play(g.At(4, 4), point.White)
	assert.Equal(t, refboard.Occupied, result)
}

func TestPlayOffBoardIsRejected(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.Geometry()

	result, _ := b.Play(g.At(0, 0), point.Black)
	assert.Equal(t, refboard.OffBoard, result)
}

// TestPlaySuicideIsRejected builds a corner point surrounded entirely by
// the opponent, each of whose stones keeps an outside liberty so the
// move being tested does not itself capture anything.
func TestPlaySuicideIsRejected(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.Geometry()

	_, _ = b.Play(g.At(1, 2), point.White) // liberties include (1,3): not captured below
	_, _ = b.Play(g.At(2, 1), point.White)
	_, _ = b.Play(g.At(2, 2), point.White) // liberties include (2,3),(3,2): not captured below

	result, _ := b.Play(g.At(1, 1), point.Black)
	assert.Equal(t, refboard.Suicide, result)
}

// TestPlayKoIsRejectedImmediately builds the classic corner ko shape:
// White's recapturing stone at (2,1) is left with exactly one liberty
// (the point it just captured), which is the only configuration this
// board's simple-ko rule protects (board.Play step 6: "only a
// single-stone, single-liberty capturing block preserves the tentative
// ko point").
func TestPlayKoIsRejectedImmediately(t *testing.T) {
	b := newTestBoard(t, 5)
	g := b.Geometry()

	must := func(want refboard.MoveResult, result refboard.MoveResult) {
		t.Helper()
		require.Equal(t, want, result)
	}

	r, _ := b.Play(g.At(1, 1), point.Black)
	must(refboard.Played, r)
	r, _ = b.Play(g.At(1, 2), point.White)
	must(refboard.Played, r)
	r, _ = b.Play(g.At(2, 2), point.Black)
	must(refboard.Played, r)
	r, _ = b.Play(g.At(5, 5), point.White) // filler, so Black plays (3,1) next
	must(refboard.Played, r)
	r, _ = b.Play(g.At(3, 1), point.Black)
	must(refboard.Played, r)

	r, captures := b.Play(g.At(2, 1), point.White)
	must(refboard.Played, r)
	assert.Equal(t, 1, captures)
	assert.Equal(t, g.At(1, 1), b.KoPoint())

	r, _ = b.Play(g.At(1, 1), point.Black)
	assert.Equal(t, refboard.Ko, r)
}
