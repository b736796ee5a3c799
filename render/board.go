// Package render rasterizes a board snapshot to PNG for debug dumps:
// grid, stones, and coordinate labels, so a position that drives a
// confusing search result can be inspected outside a terminal. Grounded
// on the teacher's own text-only board dump (no visual renderer of its
// own) but built with the domain stack's image-rendering dependencies
// (golang.org/x/image for the embedded font, github.com/golang/freetype
// for rasterizing it) rather than hand-rolled glyph drawing.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/liushiwei/fuego/board"
	"github.com/liushiwei/fuego/point"
)

// Options controls the rendered image's layout. A zero Options uses
// sensible defaults (see DefaultOptions).
type Options struct {
	CellSize int // pixels between adjacent grid lines
	Margin   int // pixels of border around the grid, for coordinate labels
}

// DefaultOptions returns the Options used when none are supplied.
func DefaultOptions() Options {
	return Options{CellSize: 32, Margin: 28}
}

var (
	backgroundColor = color.RGBA{0xdc, 0xb3, 0x5c, 0xff}
	lineColor       = color.RGBA{0x30, 0x20, 0x10, 0xff}
	blackStoneColor = color.RGBA{0x10, 0x10, 0x10, 0xff}
	whiteStoneColor = color.RGBA{0xf5, 0xf5, 0xf0, 0xff}
	labelColor      = color.RGBA{0x20, 0x20, 0x20, 0xff}
)

// Snapshot is the read-only board view render needs; board.Board and
// refboard.Board both satisfy it via board.ReferenceBoard.
type Snapshot interface {
	Size() int
	GetColor(p point.Point) point.Color
}

// WritePNG renders b to w as a PNG image.
func WritePNG(w io.Writer, b Snapshot, g *point.Geometry, opts Options) error {
	img, err := Render(b, g, opts)
	if err != nil {
		return err
	}
	return errors.Wrap(png.Encode(w, img), "render: encoding png")
}

// Render draws b's current position into a fresh RGBA image.
func Render(b Snapshot, g *point.Geometry, opts Options) (*image.RGBA, error) {
	if opts.CellSize == 0 {
		opts = DefaultOptions()
	}
	size := b.Size()
	side := opts.Margin*2 + opts.CellSize*(size-1)
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), &image.Uniform{backgroundColor}, image.Point{}, draw.Src)

	ctx, err := newTextContext(img)
	if err != nil {
		return nil, err
	}

	for i := 0; i < size; i++ {
		coord := opts.Margin + i*opts.CellSize
		drawLine(img, opts.Margin, coord, side-opts.Margin, coord, lineColor)
		drawLine(img, coord, opts.Margin, coord, side-opts.Margin, lineColor)
		drawLabel(ctx, coordinateLabel(i), opts.Margin+i*opts.CellSize-4, opts.Margin/2+4)
	}

	for y := 1; y <= size; y++ {
		for x := 1; x <= size; x++ {
			p := g.At(x, y)
			c := b.GetColor(p)
			if c == point.Empty {
				continue
			}
			cx := opts.Margin + (x-1)*opts.CellSize
			cy := opts.Margin + (size-y)*opts.CellSize
			drawStone(img, cx, cy, opts.CellSize/2-2, stoneColor(c))
		}
	}
	return img, nil
}

func stoneColor(c point.Color) color.RGBA {
	if c == point.Black {
		return blackStoneColor
	}
	return whiteStoneColor
}

// coordinateLabel skips "I" the way Go board coordinates conventionally
// do, to avoid confusion with "1".
func coordinateLabel(col int) string {
	letters := "ABCDEFGHJKLMNOPQRSTUVWXYZ"
	if col < 0 || col >= len(letters) {
		return "?"
	}
	return string(letters[col])
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	if x0 == x1 {
		for y := y0; y <= y1; y++ {
			img.Set(x0, y, c)
		}
		return
	}
	for x := x0; x <= x1; x++ {
		img.Set(x, y0, c)
	}
}

func drawStone(img *image.RGBA, cx, cy, radius int, c color.Color) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				img.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

func newTextContext(img *image.RGBA) (*freetype.Context, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "render: parsing embedded font")
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(12)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(&image.Uniform{labelColor})
	return ctx, nil
}

func drawLabel(ctx *freetype.Context, s string, x, y int) {
	pt := freetype.Pt(x, y)
	_, _ = ctx.DrawString(s, pt)
}
