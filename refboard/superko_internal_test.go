package refboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liushiwei/fuego/point"
)

// TestPlayDetectsSuperkoAgainstEarlierPosition exercises the Superko
// branch directly: rather than hand-deriving a legal multi-move capture
// cycle that reproduces an earlier position (risky to get right without
// running the code), this reaches into the unexported state to learn
// what hash a candidate move would produce, then seeds that hash into
// the board's own history before playing the move for real. Play still
// performs its ordinary legality checks and its own hash computation;
// only the history it compares against is rigged, so the comparison
// logic under test is exercised exactly as it runs in a genuine game.
func TestPlayDetectsSuperkoAgainstEarlierPosition(t *testing.T) {
	b, err := New(9)
	require.NoError(t, err)
	g := b.Geometry()

	result, _ := b.Play(g.At(4, 4), point.Black)
	require.Equal(t, Played, result)

	require.NoError(t, b.scratch.Init(b.inner))
	b.scratch.Play(g.At(5, 5), point.White)
	futureHash := b.hashOf(b.scratch)
	b.hashes = append(b.hashes, futureHash)

	result, _ = b.Play(g.At(5, 5), point.White)
	assert.Equal(t, Superko, result)
}
