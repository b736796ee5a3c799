package safety_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/point"
	"github.com/liushiwei/fuego/safety"
)

func newTestBoard(t *testing.T, size int) *board.Board {
	t.Helper()
	b, err := board.New(size)
	require.NoError(t, err)
	return b
}

// TestUnconditionalSafeTwoEyeGroup fills a 5x5 board with Black except
// two non-adjacent single-point holes: a textbook two-eyed group. Every
// point on the board should come out unconditionally safe for Black,
// and nothing should be safe for White.
func TestUnconditionalSafeTwoEyeGroup(t *testing.T) {
	b := newTestBoard(t, 5)
	g := b.Geometry()

	eyes := map[point.Point]bool{g.At(2, 2): true, g.At(4, 4): true}
	for _, p := range g.AllPoints() {
		if !eyes[p] {
			b.Play(p, point.Black)
		}
	}

	safe := safety.UnconditionalSafe(b, point.Black)
	for _, p := range g.AllPoints() {
		assert.True(t, safe[p], "point %d should be unconditionally safe", p)
	}

	whiteSafe := safety.UnconditionalSafe(b, point.White)
	assert.Empty(t, whiteSafe)
}

// TestUnconditionalSafeLoneStoneIsNotSafe: a single stone's one eye
// region is the entire rest of the open board, which it does not
// surround, so nothing is safe.
func TestUnconditionalSafeLoneStoneIsNotSafe(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.Geometry()
	b.Play(g.At(1, 1), point.Black)

	safe := safety.UnconditionalSafe(b, point.Black)
	assert.Empty(t, safe)
}

// TestAlternateSafeIsSupersetOfUnconditional checks the extension never
// drops a point the Benson solver already proved safe.
func TestAlternateSafeIsSupersetOfUnconditional(t *testing.T) {
	b := newTestBoard(t, 5)
	g := b.Geometry()
	eyes := map[point.Point]bool{g.At(2, 2): true, g.At(4, 4): true}
	for _, p := range g.AllPoints() {
		if !eyes[p] {
			b.Play(p, point.Black)
		}
	}

	unconditional := safety.UnconditionalSafe(b, point.Black)
	alternate := safety.AlternateSafe(b, point.Black, unconditional)
	for p := range unconditional {
		assert.True(t, alternate[p])
	}
}

// TestAlternateSafeConnectsChainWithTwoLibertiesIntoSafeRegion builds a
// Black wall along the bottom two rows with two single-point eyes (safe
// by Benson) and a separate two-stone Black chain at (3,4)-(4,4) whose
// liberties (3,3) and (4,3) both touch the wall. The chain is not itself
// Benson-safe, but alternate safety connects it to the safe wall,
// matching Find2Conn's connection rule.
func TestAlternateSafeConnectsChainWithTwoLibertiesIntoSafeRegion(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.Geometry()

	eyes := map[point.Point]bool{g.At(2, 1): true, g.At(5, 1): true}
	for y := 1; y <= 2; y++ {
		for x := 1; x <= 9; x++ {
			if p := g.At(x, y); !eyes[p] {
				b.Play(p, point.Black)
			}
		}
	}
	chain := []point.Point{g.At(3, 4), g.At(4, 4)}
	for _, p := range chain {
		b.Play(p, point.Black)
	}

	unconditional := safety.UnconditionalSafe(b, point.Black)
	require.NotEmpty(t, unconditional)

	alternate := safety.AlternateSafe(b, point.Black, unconditional)
	for p := range unconditional {
		assert.True(t, alternate[p])
	}
	for _, p := range chain {
		assert.False(t, unconditional[p], "chain stone %d should not be Benson-safe", p)
		assert.True(t, alternate[p], "chain stone %d should be alternate-safe", p)
	}
}

// TestReadLadderCapturedInCorner: a White corner stone in atari extends
// to (2,1), which still leaves it with a single liberty, so the ladder
// reader finds it captured.
func TestReadLadderCapturedInCorner(t *testing.T) {
	b := newTestBoard(t, 9)
	g := b.Geometry()

	// White stone in the corner has exactly two liberties; Black takes
	// one, putting it in atari with its remaining liberty surrounded.
	b.Play(g.At(1, 1), point.White)
	b.Play(g.At(1, 2), point.Black)
	b.Play(g.At(3, 1), point.Black)
	require.True(t, b.InAtari(b.Anchor(g.At(1, 1))))

	result := safety.ReadLadder(b, b.Anchor(g.At(1, 1)), point.White, false)
	assert.False(t, result.Escapes())
	assert.Negative(t, result.Eval)
	require.NotEmpty(t, result.Sequence)
	assert.Equal(t, g.At(2, 1), result.Sequence[0])
}
