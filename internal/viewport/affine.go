package viewport

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine transforms are stored as f64.Aff3 in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// mapping x' = a*x + b*y + c, y' = d*x + e*y + f.

// Identity returns the identity transform.
func Identity() f64.Aff3 {
	return f64.Aff3{1, 0, 0, 0, 1, 0}
}

// Translate returns a translation by (x, y).
func Translate(x, y float64) f64.Aff3 {
	return f64.Aff3{1, 0, x, 0, 1, y}
}

// Scale returns a scale by (x, y).
func Scale(x, y float64) f64.Aff3 {
	return f64.Aff3{x, 0, 0, 0, y, 0}
}

// Rotate returns a rotation by angle radians. With y pointing down the
// rotation is clockwise on screen.
func Rotate(angle float64) f64.Aff3 {
	sin, cos := math.Sincos(angle)
	return f64.Aff3{cos, -sin, 0, sin, cos, 0}
}

// Mul returns m*n: applying the result equals applying n, then m.
func Mul(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3],
		m[0]*n[1] + m[1]*n[4],
		m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3],
		m[3]*n[1] + m[4]*n[4],
		m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

// Apply transforms the point p by m.
func Apply(m f64.Aff3, p f64.Vec2) f64.Vec2 {
	return f64.Vec2{
		m[0]*p[0] + m[1]*p[1] + m[2],
		m[3]*p[0] + m[4]*p[1] + m[5],
	}
}

// Invert returns the inverse of m and whether m was invertible. A singular
// matrix yields the identity.
func Invert(m f64.Aff3) (f64.Aff3, bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if math.Abs(det) < 1e-12 {
		return Identity(), false
	}
	inv := 1 / det
	return f64.Aff3{
		m[4] * inv,
		-m[1] * inv,
		(m[1]*m[5] - m[2]*m[4]) * inv,
		-m[3] * inv,
		m[0] * inv,
		(m[2]*m[3] - m[0]*m[5]) * inv,
	}, true
}
