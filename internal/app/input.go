//go:build ebiten

package app

import (
	"lifebox/internal/control"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[control.Action][]ebiten.Key{
	control.ActionGrow:        {ebiten.KeyEqual, ebiten.KeyNumpadAdd},
	control.ActionShrink:      {ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
	control.ActionPanUp:       {ebiten.KeyArrowUp},
	control.ActionPanDown:     {ebiten.KeyArrowDown},
	control.ActionPanLeft:     {ebiten.KeyArrowLeft},
	control.ActionPanRight:    {ebiten.KeyArrowRight},
	control.ActionStep:        {ebiten.KeySpace},
	control.ActionInspect:     {ebiten.KeyEnter},
	control.ActionRandomize:   {ebiten.KeyR},
	control.ActionClear:       {ebiten.KeyC},
	control.ActionResetCamera: {ebiten.KeyHome},
}

var buttonBindings = map[control.Action]ebiten.MouseButton{
	control.ActionPaint: ebiten.MouseButtonLeft,
	control.ActionErase: ebiten.MouseButtonRight,
}

// ebitenInput samples ebiten's input state for one frame.
type ebitenInput struct {
	dt         float64
	winW, winH int
}

func (in ebitenInput) Elapsed() float64 { return in.dt }

func (in ebitenInput) Pressed(a control.Action) bool {
	for _, k := range keyBindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	if b, ok := buttonBindings[a]; ok {
		return inpututil.IsMouseButtonJustPressed(b)
	}
	return false
}

func (in ebitenInput) Down(a control.Action) bool {
	for _, k := range keyBindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	if b, ok := buttonBindings[a]; ok {
		return ebiten.IsMouseButtonPressed(b)
	}
	return false
}

func (in ebitenInput) WindowSize() (int, int) { return in.winW, in.winH }

func (in ebitenInput) Pointer() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (in ebitenInput) Wheel() float64 {
	_, y := ebiten.Wheel()
	return y
}
