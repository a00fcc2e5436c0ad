package render

import (
	"image/color"

	"lifebox/internal/core"
	"lifebox/internal/life"
)

// fillBinaryRGBA converts the active region of b into RGBA pixels in buf, one
// pixel per cell, row-major with a stride of b.Size().
func fillBinaryRGBA(buf []byte, b core.Board, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	n := b.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			base := (y*n + x) * 4
			if b.Alive(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// fillNeighborRGBA colours each active cell by its live neighbour count using
// palette. Counts beyond the palette use its last entry. When the palette is
// empty the buffer is cleared to transparent black.
func fillNeighborRGBA(buf []byte, g *life.Grid, palette []color.RGBA) {
	n := g.Size()
	if len(palette) == 0 {
		clear(buf[:4*n*n])
		return
	}
	last := len(palette) - 1
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			idx := life.CountLiveNeighbors(g, x, y)
			if idx > last {
				idx = last
			}
			base := (y*n + x) * 4
			col := palette[idx]
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// HeatPalette maps neighbour counts 0..8 to a translucent ramp; zero is fully
// transparent. Entries are premultiplied, ready for WritePixels.
func HeatPalette() []color.RGBA {
	ramp := []color.NRGBA{
		{},
		{R: 40, G: 70, B: 160, A: 60},
		{R: 40, G: 140, B: 160, A: 80},
		{R: 200, G: 60, B: 40, A: 110},
		{R: 220, G: 120, B: 40, A: 110},
		{R: 230, G: 170, B: 40, A: 120},
		{R: 240, G: 210, B: 40, A: 130},
		{R: 250, G: 240, B: 90, A: 140},
		{R: 255, G: 255, B: 200, A: 150},
	}
	out := make([]color.RGBA, len(ramp))
	for i, c := range ramp {
		out[i] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return out
}

// pixelBuffer returns buf resized to hold an n×n RGBA image.
func pixelBuffer(buf []byte, n int) []byte {
	need := 4 * n * n
	if cap(buf) < need {
		return make([]byte, need)
	}
	return buf[:need]
}
