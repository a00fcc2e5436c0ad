package viewport

import (
	"math"

	"lifebox/internal/core"

	"golang.org/x/image/math/f64"
)

const (
	// MinZoom is the smallest zoom a camera accepts.
	MinZoom = 0.01
	// MaxZoom is the largest zoom a camera accepts.
	MaxZoom = 100.0
)

// Camera is a 2D camera over world space. Target is the world point shown at
// Offset, normally the canvas center. Rotation is in degrees.
type Camera struct {
	Target   f64.Vec2
	Offset   f64.Vec2
	Rotation float64

	zoom float64
}

// NewCamera returns a camera looking at the world origin from the center of
// a canvas of the given size, at zoom 1.
func NewCamera(canvas core.Size) *Camera {
	return &Camera{
		Offset: f64.Vec2{float64(canvas.W) / 2, float64(canvas.H) / 2},
		zoom:   1,
	}
}

// Zoom returns the current zoom factor.
func (c *Camera) Zoom() float64 {
	if c.zoom == 0 {
		return 1
	}
	return c.zoom
}

// SetZoom sets the zoom, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(z float64) {
	switch {
	case math.IsNaN(z), z < MinZoom:
		z = MinZoom
	case z > MaxZoom:
		z = MaxZoom
	}
	c.zoom = z
}

// AddZoom adjusts the zoom by delta, clamped.
func (c *Camera) AddZoom(delta float64) {
	c.SetZoom(c.Zoom() + delta)
}

// Pan moves the target by (dx, dy) world units.
func (c *Camera) Pan(dx, dy float64) {
	c.Target[0] += dx
	c.Target[1] += dy
}

// Reset restores the target to the origin, zoom 1 and no rotation.
func (c *Camera) Reset() {
	c.Target = f64.Vec2{}
	c.Rotation = 0
	c.zoom = 1
}

// Matrix returns the world-to-canvas transform: subtract the target, rotate
// and zoom, then add the offset.
func (c *Camera) Matrix() f64.Aff3 {
	z := c.Zoom()
	m := Translate(-c.Target[0], -c.Target[1])
	m = Mul(Scale(z, z), m)
	m = Mul(Rotate(c.Rotation*math.Pi/180), m)
	return Mul(Translate(c.Offset[0], c.Offset[1]), m)
}

// WorldToCanvas maps a world point onto the canvas.
func (c *Camera) WorldToCanvas(w f64.Vec2) f64.Vec2 {
	return Apply(c.Matrix(), w)
}

// CanvasToWorld maps a canvas point back into world space.
func (c *Camera) CanvasToWorld(v f64.Vec2) f64.Vec2 {
	inv, _ := Invert(c.Matrix())
	return Apply(inv, v)
}
