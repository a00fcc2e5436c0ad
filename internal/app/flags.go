package app

import (
	"flag"
	"fmt"

	"lifebox/internal/control"
	"lifebox/internal/core"
	"lifebox/internal/life"
	"lifebox/internal/viewport"
)

// Config represents the command-line parameters for the application.
type Config struct {
	WindowW int
	WindowH int
	CanvasW int
	CanvasH int

	GridSize     int
	GridCapacity int
	CellSize     float64

	PanSpeed  float64
	ZoomSpeed float64

	TPS     int
	Seed    int64
	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		WindowW:      800,
		WindowH:      450,
		CanvasW:      1920,
		CanvasH:      1080,
		GridSize:     life.DefaultSize,
		GridCapacity: life.MaxSize,
		CellSize:     100,
		PanSpeed:     900,
		ZoomSpeed:    5,
		TPS:          60,
		Seed:         42,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowW, "width", c.WindowW, "initial window width")
	fs.IntVar(&c.WindowH, "height", c.WindowH, "initial window height")
	fs.IntVar(&c.CanvasW, "canvas-width", c.CanvasW, "virtual canvas width")
	fs.IntVar(&c.CanvasH, "canvas-height", c.CanvasH, "virtual canvas height")
	fs.IntVar(&c.GridSize, "size", c.GridSize, "initial active grid size")
	fs.IntVar(&c.GridCapacity, "capacity", c.GridCapacity, "maximum grid size")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "cell edge length in world pixels")
	fs.Float64Var(&c.PanSpeed, "pan-speed", c.PanSpeed, "camera pan speed in world pixels per second")
	fs.Float64Var(&c.ZoomSpeed, "zoom-speed", c.ZoomSpeed, "zoom change per wheel notch per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize and bar colours")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log debug events")
}

// Normalize clamps every field into its valid range and returns the
// adjustments it made, one per field.
func (c *Config) Normalize() []string {
	def := NewConfig()
	var fixed []string
	fix := func(name string, got, want any) {
		fixed = append(fixed, fmt.Sprintf("%s: %v -> %v", name, got, want))
	}
	if c.WindowW <= 0 {
		fix("width", c.WindowW, def.WindowW)
		c.WindowW = def.WindowW
	}
	if c.WindowH <= 0 {
		fix("height", c.WindowH, def.WindowH)
		c.WindowH = def.WindowH
	}
	if c.CanvasW <= 0 {
		fix("canvas-width", c.CanvasW, def.CanvasW)
		c.CanvasW = def.CanvasW
	}
	if c.CanvasH <= 0 {
		fix("canvas-height", c.CanvasH, def.CanvasH)
		c.CanvasH = def.CanvasH
	}
	if c.GridCapacity < 1 {
		fix("capacity", c.GridCapacity, 1)
		c.GridCapacity = 1
	}
	if c.GridCapacity > life.MaxSize {
		fix("capacity", c.GridCapacity, life.MaxSize)
		c.GridCapacity = life.MaxSize
	}
	if c.GridSize < 1 {
		fix("size", c.GridSize, 1)
		c.GridSize = 1
	}
	if c.GridSize > c.GridCapacity {
		fix("size", c.GridSize, c.GridCapacity)
		c.GridSize = c.GridCapacity
	}
	if c.CellSize <= 0 {
		fix("cell", c.CellSize, def.CellSize)
		c.CellSize = def.CellSize
	}
	if c.PanSpeed < 0 {
		fix("pan-speed", c.PanSpeed, def.PanSpeed)
		c.PanSpeed = def.PanSpeed
	}
	if c.ZoomSpeed < 0 {
		fix("zoom-speed", c.ZoomSpeed, def.ZoomSpeed)
		c.ZoomSpeed = def.ZoomSpeed
	}
	if c.TPS <= 0 {
		fix("tps", c.TPS, def.TPS)
		c.TPS = def.TPS
	}
	return fixed
}

// Canvas returns the virtual canvas size.
func (c *Config) Canvas() core.Size {
	return core.Size{W: c.CanvasW, H: c.CanvasH}
}

// ControlConfig derives the control surface configuration.
func (c *Config) ControlConfig() control.Config {
	return control.Config{
		Canvas:    c.Canvas(),
		CellSize:  c.CellSize,
		PanSpeed:  c.PanSpeed,
		ZoomSpeed: c.ZoomSpeed,
		Seed:      c.Seed,
		Bars:      control.DefaultConfig().Bars,
	}
}

// NewController builds the grid, camera and controller described by c.
func (c *Config) NewController() *control.Controller {
	grid := life.NewGrid(c.GridCapacity, c.GridSize)
	cam := viewport.NewCamera(c.Canvas())
	return control.New(grid, cam, c.ControlConfig())
}
