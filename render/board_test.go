package render_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/point"
	"github.com/liushiwei/fuego/render"
)

func TestWritePNGProducesDecodablePNGMatchingBoardSize(t *testing.T) {
	b, err := board.New(9)
	require.NoError(t, err)
	g := b.Geometry()

	b.Play(g.At(4, 4), point.Black)
	b.Play(g.At(5, 5), point.White)

	var buf bytes.Buffer
	opts := render.DefaultOptions()
	require.NoError(t, render.WritePNG(&buf, b, g, opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	wantSide := opts.Margin*2 + opts.CellSize*(b.Size()-1)
	assert.Equal(t, wantSide, img.Bounds().Dx())
	assert.Equal(t, wantSide, img.Bounds().Dy())
}

func TestRenderDefaultsOptionsWhenCellSizeZero(t *testing.T) {
	b, err := board.New(5)
	require.NoError(t, err)
	g := b.Geometry()

	img, err := render.Render(b, g, render.Options{})
	require.NoError(t, err)

	d := render.DefaultOptions()
	wantSide := d.Margin*2 + d.CellSize*(b.Size()-1)
	assert.Equal(t, wantSide, img.Bounds().Dx())
}
