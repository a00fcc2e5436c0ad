//go:build ebiten

package ui

import (
	"image/color"

	"lifebox/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders a read-only status panel in the top-left corner of the canvas.
type HUD struct {
	src      parameterProvider
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	visible  bool
}

// NewHUD constructs a HUD reading from src.
func NewHUD(src parameterProvider, width int) *HUD {
	if width <= 0 {
		width = panelWidth
	}
	return &HUD{src: src, width: width, visible: true}
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Update refreshes the cached snapshot.
func (h *HUD) Update() {
	if h == nil || !h.visible {
		return
	}
	h.snapshot = h.src.Parameters()
}

// Draw paints the panel onto the canvas.
func (h *HUD) Draw(canvas *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	height := h.height()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding*2, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += lineHeight
		}
		y += groupSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(panelScale, panelScale)
	op.GeoM.Translate(panelMargin, panelMargin)
	canvas.DrawImage(h.panel, op)
}

func (h *HUD) height() int {
	lines := 0
	for _, g := range h.snapshot.Groups {
		lines += 1 + len(g.Params)
	}
	return panelPadding*2 + lines*lineHeight + len(h.snapshot.Groups)*groupSpacing
}

const (
	panelWidth     = 220
	panelPadding   = 8
	panelMargin    = 16
	panelScale     = 2
	lineHeight     = 16
	groupSpacing   = 6
	headerBaseline = 6
)
