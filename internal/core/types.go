package core

// Size describes a width/height pair in pixels.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Board is the read-only view of a square cell grid handed to renderers.
type Board interface {
	Size() int
	Alive(x, y int) bool
}
