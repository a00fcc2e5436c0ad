package viewport

import (
	"math"

	"lifebox/internal/core"

	"golang.org/x/image/math/f64"
)

// Cell is a grid index. It is not clamped; callers check it against the
// active region.
type Cell struct {
	X, Y int
}

// Quantize converts a world point into the cell containing it. Cell (0, 0)
// covers world coordinates (0, cellSize] on both axes. Non-finite input and
// a non-positive cell size give (-1, -1).
func Quantize(w f64.Vec2, cellSize float64) Cell {
	if cellSize <= 0 || !finite(w[0]) || !finite(w[1]) {
		return Cell{-1, -1}
	}
	return Cell{
		X: quantizeAxis(w[0], cellSize),
		Y: quantizeAxis(w[1], cellSize),
	}
}

func quantizeAxis(v, cellSize float64) int {
	q := math.Ceil(v/cellSize) - 1
	// Keep far-off positions representable; they are out of range anyway.
	if q > math.MaxInt32 {
		return math.MaxInt32
	}
	if q < math.MinInt32 {
		return math.MinInt32
	}
	return int(q)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// PointerToWorld runs a window position through the letterbox and the
// inverse camera.
func PointerToWorld(p f64.Vec2, window, canvas core.Size, cam *Camera) f64.Vec2 {
	v := Letterbox(window, canvas).ToCanvas(p)
	return cam.CanvasToWorld(v)
}

// PointerToCell runs a window position through the whole pipeline.
func PointerToCell(p f64.Vec2, window, canvas core.Size, cam *Camera, cellSize float64) Cell {
	return Quantize(PointerToWorld(p, window, canvas, cam), cellSize)
}
