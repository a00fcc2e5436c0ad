// Package viewport maps pointer positions in a resizable window onto cells
// of the board. The mapping runs in three independent stages: letterboxing
// the fixed-size virtual canvas into the window, inverting the camera, and
// quantizing world coordinates into cell indices.
package viewport

import (
	"image"
	"math"

	"lifebox/internal/core"

	"golang.org/x/image/math/f64"
)

// Fit is the uniform scale and centering offset that place a virtual canvas
// inside a window without distortion.
type Fit struct {
	Scale   float64
	OffsetX float64
	OffsetY float64

	Canvas core.Size
}

// Letterbox fits canvas into window. Degenerate sizes on either side give a
// zero scale, which ToCanvas maps to the canvas origin.
func Letterbox(window, canvas core.Size) Fit {
	f := Fit{Canvas: canvas}
	if window.Empty() || canvas.Empty() {
		return f
	}
	ww, wh := float64(window.W), float64(window.H)
	vw, vh := float64(canvas.W), float64(canvas.H)
	f.Scale = math.Min(ww/vw, wh/vh)
	f.OffsetX = (ww - vw*f.Scale) / 2
	f.OffsetY = (wh - vh*f.Scale) / 2
	return f
}

// ToCanvas maps a window position into canvas space, clamped to the canvas
// bounds so positions over the bars land on the nearest edge.
func (f Fit) ToCanvas(p f64.Vec2) f64.Vec2 {
	if f.Scale <= 0 {
		return f64.Vec2{}
	}
	v := f64.Vec2{
		(p[0] - f.OffsetX) / f.Scale,
		(p[1] - f.OffsetY) / f.Scale,
	}
	return f64.Vec2{
		clamp(v[0], 0, float64(f.Canvas.W)),
		clamp(v[1], 0, float64(f.Canvas.H)),
	}
}

// Matrix returns the canvas-to-window transform used to present the canvas.
func (f Fit) Matrix() f64.Aff3 {
	return Mul(Translate(f.OffsetX, f.OffsetY), Scale(f.Scale, f.Scale))
}

// Rect returns the window rectangle covered by the scaled canvas.
func (f Fit) Rect() image.Rectangle {
	x0 := int(math.Round(f.OffsetX))
	y0 := int(math.Round(f.OffsetY))
	w := int(math.Round(float64(f.Canvas.W) * f.Scale))
	h := int(math.Round(float64(f.Canvas.H) * f.Scale))
	return image.Rect(x0, y0, x0+w, y0+h)
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
