package life

import "lifebox/internal/core"

const (
	// MaxSize is the default edge length of the backing storage.
	MaxSize = 1000
	// DefaultSize is the active edge length a new board starts with.
	DefaultSize = 50
)

// Grid stores two square boolean buffers of a fixed capacity. Only the
// top-left size×size region is simulated; everything outside it is treated
// as dead and never touched by Step.
type Grid struct {
	capacity   int
	size       int
	generation int
	cur        []bool
	nxt        []bool
}

// NewGrid allocates a grid with the given capacity and initial active size.
// Both values are clamped into range.
func NewGrid(capacity, size int) *Grid {
	if capacity <= 0 {
		capacity = 1
	}
	g := &Grid{
		capacity: capacity,
		size:     clampSize(size, capacity),
		cur:      make([]bool, capacity*capacity),
		nxt:      make([]bool, capacity*capacity),
	}
	return g
}

func clampSize(size, capacity int) int {
	if size < 1 {
		return 1
	}
	if size > capacity {
		return capacity
	}
	return size
}

// Size returns the active edge length.
func (g *Grid) Size() int { return g.size }

// Capacity returns the edge length of the backing storage.
func (g *Grid) Capacity() int { return g.capacity }

// Generation returns the number of steps since the last Clear or Randomize.
func (g *Grid) Generation() int { return g.generation }

// Resize adjusts the active size by delta and returns the new size. Cell
// contents are left alone, so growing after a shrink re-exposes whatever the
// dropped border held before.
func (g *Grid) Resize(delta int) int {
	g.size = clampSize(g.size+delta, g.capacity)
	return g.size
}

// InBounds reports whether (x, y) lies inside the active region.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.size && y < g.size
}

func (g *Grid) index(x, y int) int { return y*g.capacity + x }

// Alive reports the state of (x, y). Cells outside the active region are
// dead.
func (g *Grid) Alive(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.cur[g.index(x, y)]
}

// Set writes the state of (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.cur[g.index(x, y)] = alive
}

// Clear kills every cell in both buffers, including the inactive border.
func (g *Grid) Clear() {
	clear(g.cur)
	clear(g.nxt)
	g.generation = 0
}

// Randomize fills the active region with a deterministic pattern derived
// from seed. Cells outside the active region keep their values.
func (g *Grid) Randomize(seed int64) {
	rng := core.NewRNG(seed)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			g.cur[g.index(x, y)] = rng.Bool()
		}
	}
	g.generation = 0
}

// Population counts live cells in the active region.
func (g *Grid) Population() int {
	n := 0
	for y := 0; y < g.size; y++ {
		row := g.cur[y*g.capacity : y*g.capacity+g.size]
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}
