//go:build ebiten

package render

import (
	"image/color"

	"lifebox/internal/core"
	"lifebox/internal/life"
	"lifebox/internal/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"
)

// GeoM converts an affine transform into an ebiten geometry matrix.
func GeoM(m f64.Aff3) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[1])
	g.SetElement(0, 2, m[2])
	g.SetElement(1, 0, m[3])
	g.SetElement(1, 1, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// GridPainter keeps one-pixel-per-cell images of the board and draws them
// into world space.
type GridPainter struct {
	n       int
	img     *ebiten.Image
	buf     []byte
	heat    *ebiten.Image
	heatBuf []byte
	pixel   *ebiten.Image
}

// NewGridPainter allocates a painter. Images are sized lazily to the board.
func NewGridPainter() *GridPainter {
	gp := &GridPainter{}
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

func (gp *GridPainter) ensure(n int) {
	if gp.img != nil && gp.n == n {
		return
	}
	if gp.img != nil {
		gp.img.Dispose()
		gp.heat.Dispose()
	}
	gp.n = n
	gp.img = ebiten.NewImage(n, n)
	gp.heat = ebiten.NewImage(n, n)
	gp.buf = pixelBuffer(gp.buf, n)
	gp.heatBuf = pixelBuffer(gp.heatBuf, n)
}

func cellOptions(world f64.Aff3, cellSize float64) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cellSize, cellSize)
	op.GeoM.Concat(GeoM(world))
	return op
}

// Blit uploads the board and draws it with each cell cellSize world units
// wide.
func (gp *GridPainter) Blit(dst *ebiten.Image, b core.Board, on, off color.Color, world f64.Aff3, cellSize float64) {
	n := b.Size()
	if n <= 0 {
		return
	}
	gp.ensure(n)
	fillBinaryRGBA(gp.buf, b, on, off)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, cellOptions(world, cellSize))
}

// BlitHeat draws the neighbour count of every cell using palette.
func (gp *GridPainter) BlitHeat(dst *ebiten.Image, g *life.Grid, palette []color.RGBA, world f64.Aff3, cellSize float64) {
	n := g.Size()
	if n <= 0 {
		return
	}
	gp.ensure(n)
	fillNeighborRGBA(gp.heatBuf, g, palette)
	gp.heat.WritePixels(gp.heatBuf)
	dst.DrawImage(gp.heat, cellOptions(world, cellSize))
}

// Rect fills the world rectangle (x, y, w, h).
func (gp *GridPainter) Rect(dst *ebiten.Image, x, y, w, h float64, world f64.Aff3, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(GeoM(world))
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(gp.pixel, op)
}

// Frame outlines the world rectangle (0, 0, side, side) with lines of the
// given thickness drawn inside it.
func (gp *GridPainter) Frame(dst *ebiten.Image, side, thickness float64, world f64.Aff3, clr color.Color) {
	if thickness*2 > side {
		gp.Rect(dst, 0, 0, side, side, world, clr)
		return
	}
	gp.Rect(dst, 0, 0, side, thickness, world, clr)
	gp.Rect(dst, 0, side-thickness, side, thickness, world, clr)
	gp.Rect(dst, 0, thickness, thickness, side-2*thickness, world, clr)
	gp.Rect(dst, side-thickness, thickness, thickness, side-2*thickness, world, clr)
}

// Bars draws palette as equal-width stripes along the bottom of a canvas.
func (gp *GridPainter) Bars(dst *ebiten.Image, palette []color.RGBA, canvas core.Size, height float64) {
	if len(palette) == 0 || canvas.Empty() {
		return
	}
	w := float64(canvas.W) / float64(len(palette))
	y := float64(canvas.H) - height
	for i, c := range palette {
		gp.Rect(dst, float64(i)*w, y, w, height, viewport.Identity(), c)
	}
}
