// Package control turns per-frame input into edits of the board and moves of
// the camera. It owns no simulation state.
package control

import (
	"fmt"
	"image/color"

	"lifebox/internal/core"
	"lifebox/internal/life"
	"lifebox/internal/viewport"

	"golang.org/x/image/math/f64"
)

// Action names a logical input. The front end decides which keys or buttons
// trigger it.
type Action int

const (
	ActionGrow Action = iota
	ActionShrink
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionStep
	ActionInspect
	ActionRandomize
	ActionClear
	ActionResetCamera
	ActionPaint
	ActionErase
)

// Input is what the controller needs from the environment each frame.
type Input interface {
	// Elapsed returns the seconds since the previous frame.
	Elapsed() float64
	// Pressed reports whether a was triggered this frame (edge).
	Pressed(a Action) bool
	// Down reports whether a is currently held (level).
	Down(a Action) bool
	WindowSize() (int, int)
	// Pointer returns the pointer position in window pixels.
	Pointer() (float64, float64)
	// Wheel returns the vertical scroll delta of this frame.
	Wheel() float64
}

// Config holds the tunables of the control surface.
type Config struct {
	Canvas    core.Size
	CellSize  float64
	PanSpeed  float64
	ZoomSpeed float64
	Seed      int64
	Bars      int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Canvas:    core.Size{W: 1920, H: 1080},
		CellSize:  100,
		PanSpeed:  900,
		ZoomSpeed: 5,
		Seed:      42,
		Bars:      10,
	}
}

// Report is the result of an inspect command.
type Report struct {
	Cell      viewport.Cell
	InBounds  bool
	Alive     bool
	Neighbors int
}

// String formats the report the way it is logged.
func (r Report) String() string {
	return fmt.Sprintf("X: %d, Y: %d, Count: %d", r.Cell.X, r.Cell.Y, r.Neighbors)
}

// Frame summarises what one Update did.
type Frame struct {
	Pointer f64.Vec2 // canvas space
	Cell    viewport.Cell
	Valid   bool
	Stepped bool
	Report  *Report
}

// Controller applies input to a grid and a camera.
type Controller struct {
	grid *life.Grid
	cam  *viewport.Camera
	cfg  Config

	rng     *core.RNG
	palette []color.RGBA
	last    Frame
	report  *Report
}

// New constructs a Controller. A zero-valued cfg field falls back to the
// default.
func New(grid *life.Grid, cam *viewport.Camera, cfg Config) *Controller {
	def := DefaultConfig()
	if cfg.Canvas.Empty() {
		cfg.Canvas = def.Canvas
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = def.CellSize
	}
	if cfg.PanSpeed <= 0 {
		cfg.PanSpeed = def.PanSpeed
	}
	if cfg.ZoomSpeed <= 0 {
		cfg.ZoomSpeed = def.ZoomSpeed
	}
	if cfg.Bars < 0 {
		cfg.Bars = 0
	}
	c := &Controller{grid: grid, cam: cam, cfg: cfg, rng: core.NewRNG(cfg.Seed)}
	c.palette = c.rng.Palette(cfg.Bars)
	return c
}

// Grid returns the controlled grid.
func (c *Controller) Grid() *life.Grid { return c.grid }

// Camera returns the controlled camera.
func (c *Controller) Camera() *viewport.Camera { return c.cam }

// Config returns the effective configuration.
func (c *Controller) Config() Config { return c.cfg }

// Palette returns the decorative colours, regenerated on every step.
func (c *Controller) Palette() []color.RGBA { return c.palette }

// Last returns the result of the most recent Update.
func (c *Controller) Last() Frame { return c.last }

// Update processes one frame of input.
func (c *Controller) Update(in Input) Frame {
	log := core.Logger()
	dt := in.Elapsed()
	if dt < 0 {
		dt = 0
	}

	if in.Pressed(ActionGrow) {
		log.Info("grid resized", "size", c.grid.Resize(1))
	}
	if in.Pressed(ActionShrink) {
		log.Info("grid resized", "size", c.grid.Resize(-1))
	}

	pan := c.cfg.PanSpeed * dt
	if in.Down(ActionPanUp) {
		c.cam.Pan(0, -pan)
	}
	if in.Down(ActionPanDown) {
		c.cam.Pan(0, pan)
	}
	if in.Down(ActionPanLeft) {
		c.cam.Pan(-pan, 0)
	}
	if in.Down(ActionPanRight) {
		c.cam.Pan(pan, 0)
	}
	if w := in.Wheel(); w != 0 {
		c.cam.AddZoom(w * c.cfg.ZoomSpeed * dt)
	}
	if in.Pressed(ActionResetCamera) {
		c.cam.Reset()
	}

	if in.Pressed(ActionClear) {
		c.grid.Clear()
		log.Info("grid cleared")
	}
	if in.Pressed(ActionRandomize) {
		seed := c.rng.Int64()
		c.grid.Randomize(seed)
		log.Info("grid randomized", "seed", seed, "population", c.grid.Population())
	}

	var f Frame
	if in.Pressed(ActionStep) {
		c.grid.Step()
		c.palette = c.rng.Palette(c.cfg.Bars)
		f.Stepped = true
		log.Debug("generation", "n", c.grid.Generation(), "population", c.grid.Population())
	}

	ww, wh := in.WindowSize()
	px, py := in.Pointer()
	f.Pointer = viewport.Letterbox(core.Size{W: ww, H: wh}, c.cfg.Canvas).ToCanvas(f64.Vec2{px, py})
	f.Cell = viewport.Quantize(c.cam.CanvasToWorld(f.Pointer), c.cfg.CellSize)
	f.Valid = c.grid.InBounds(f.Cell.X, f.Cell.Y)

	if f.Valid {
		if in.Down(ActionPaint) && !c.grid.Alive(f.Cell.X, f.Cell.Y) {
			c.grid.Set(f.Cell.X, f.Cell.Y, true)
			log.Debug("cell painted", "x", f.Cell.X, "y", f.Cell.Y)
		}
		if in.Down(ActionErase) && c.grid.Alive(f.Cell.X, f.Cell.Y) {
			c.grid.Set(f.Cell.X, f.Cell.Y, false)
			log.Debug("cell erased", "x", f.Cell.X, "y", f.Cell.Y)
		}
	}

	if in.Pressed(ActionInspect) {
		r := c.Inspect(f.Cell)
		f.Report = &r
		c.report = &r
		log.Info("inspect", "x", r.Cell.X, "y", r.Cell.Y, "count", r.Neighbors, "alive", r.Alive)
	}

	c.last = f
	return f
}

// LastReport returns the most recent inspect result, or nil.
func (c *Controller) LastReport() *Report { return c.report }

// Inspect reports the neighbour count of cell without changing anything.
func (c *Controller) Inspect(cell viewport.Cell) Report {
	return Report{
		Cell:      cell,
		InBounds:  c.grid.InBounds(cell.X, cell.Y),
		Alive:     c.grid.Alive(cell.X, cell.Y),
		Neighbors: life.CountLiveNeighbors(c.grid, cell.X, cell.Y),
	}
}
