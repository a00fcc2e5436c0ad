//go:build ebiten

package app

import (
	"image/color"

	"lifebox/internal/control"
	"lifebox/internal/core"
	"lifebox/internal/render"
	"lifebox/internal/ui"
	"lifebox/internal/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the controller to the ebiten.Game interface. World content is
// drawn into a canvas of fixed size which is then letterboxed into the
// window.
type Game struct {
	ctrl    *control.Controller
	clock   *core.FrameClock
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	canvas     *ebiten.Image
	canvasSize core.Size
	winW, winH int

	background color.Color
	onColor    color.Color
	offColor   color.Color
	frameColor color.Color
}

// New constructs a Game for the provided controller.
func New(ctrl *control.Controller, tps int) *Game {
	size := ctrl.Config().Canvas
	gp := render.NewGridPainter()
	return &Game{
		ctrl:       ctrl,
		clock:      core.NewFrameClock(tps),
		painter:    gp,
		overlay:    ui.NewOverlay(ctrl, gp),
		hud:        ui.NewHUD(ctrl, 0),
		canvas:     ebiten.NewImage(size.W, size.H),
		canvasSize: size,
		background: color.RGBA{R: 245, G: 245, B: 245, A: 255},
		onColor:    color.Black,
		offColor:   color.Transparent,
		frameColor: color.Black,
	}
}

// Update handles per-frame input and edits.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.overlay.Update()
	g.ctrl.Update(ebitenInput{dt: g.clock.Tick(), winW: g.winW, winH: g.winH})
	g.hud.Update()
	return nil
}

// Draw renders the board into the canvas and presents it letterboxed.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := g.ctrl.Config()
	grid := g.ctrl.Grid()
	world := g.ctrl.Camera().Matrix()

	g.canvas.Fill(g.background)
	g.painter.Frame(g.canvas, float64(grid.Size())*cfg.CellSize, frameThickness, world, g.frameColor)
	g.painter.Blit(g.canvas, grid, g.onColor, g.offColor, world, cfg.CellSize)
	g.overlay.DrawWorld(g.canvas)
	g.overlay.DrawCanvas(g.canvas)
	g.hud.Draw(g.canvas)

	screen.Fill(color.Black)
	fit := viewport.Letterbox(core.Size{W: g.winW, H: g.winH}, g.canvasSize)
	if fit.Scale <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = render.GeoM(fit.Matrix())
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.canvas, op)
}

// Layout uses the window size as the screen size so pointer positions are
// window pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.winW, g.winH = outsideWidth, outsideHeight
	if g.winW <= 0 {
		g.winW = 1
	}
	if g.winH <= 0 {
		g.winH = 1
	}
	return g.winW, g.winH
}

const frameThickness = 10
