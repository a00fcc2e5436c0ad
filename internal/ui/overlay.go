//go:build ebiten

package ui

import (
	"image/color"

	"lifebox/internal/control"
	"lifebox/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the board.
type Overlay struct {
	ctrl    *control.Controller
	painter *render.GridPainter
	heat    []color.RGBA

	showHeat  bool
	showHover bool
	showBars  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(ctrl *control.Controller, painter *render.GridPainter) *Overlay {
	return &Overlay{
		ctrl:      ctrl,
		painter:   painter,
		heat:      render.HeatPalette(),
		showHover: true,
		showBars:  true,
	}
}

// Update toggles layers from the digit keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeat = !o.showHeat
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHover = !o.showHover
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showBars = !o.showBars
	}
}

// DrawWorld renders the layers that live in world space.
func (o *Overlay) DrawWorld(canvas *ebiten.Image) {
	cfg := o.ctrl.Config()
	world := o.ctrl.Camera().Matrix()
	if o.showHeat {
		o.painter.BlitHeat(canvas, o.ctrl.Grid(), o.heat, world, cfg.CellSize)
	}
	if f := o.ctrl.Last(); o.showHover && f.Valid {
		x := float64(f.Cell.X) * cfg.CellSize
		y := float64(f.Cell.Y) * cfg.CellSize
		o.painter.Rect(canvas, x, y, cfg.CellSize, cfg.CellSize, world, color.NRGBA{R: 64, G: 164, B: 223, A: 90})
	}
}

// DrawCanvas renders the layers fixed to the canvas.
func (o *Overlay) DrawCanvas(canvas *ebiten.Image) {
	if o.showBars {
		o.painter.Bars(canvas, o.ctrl.Palette(), o.ctrl.Config().Canvas, barHeight)
	}
}

const barHeight = 12
