// Package life implements Conway's Game of Life on a bounded square board.
// Cells past the edge of the active region do not exist: there is no
// wrapping and they never count as neighbours.
package life

// CountLiveNeighbors returns the number of live cells among the eight
// neighbours of (x, y). Neighbours outside the active region are skipped.
func CountLiveNeighbors(g *Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			if g.cur[g.index(nx, ny)] {
				n++
			}
		}
	}
	return n
}

// nextState applies the B3/S23 rule.
func nextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step advances the active region by one generation. Every cell is computed
// from the current buffer before any result is committed, so the update is
// synchronous.
func (g *Grid) Step() {
	size := g.size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			idx := g.index(x, y)
			g.nxt[idx] = nextState(g.cur[idx], CountLiveNeighbors(g, x, y))
		}
	}
	// Copy back row by row instead of swapping buffers: cells outside the
	// active region must keep their current values.
	for y := 0; y < size; y++ {
		start := y * g.capacity
		copy(g.cur[start:start+size], g.nxt[start:start+size])
	}
	g.generation++
}
