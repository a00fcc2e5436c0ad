package viewport

import (
	"image"
	"math"
	"testing"

	"lifebox/internal/core"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/floats/scalar"
)

const eps = 1e-9

func expectVec(t *testing.T, got, want f64.Vec2, tol float64, what string) {
	t.Helper()
	if !scalar.EqualWithinAbs(got[0], want[0], tol) || !scalar.EqualWithinAbs(got[1], want[1], tol) {
		t.Fatalf("%s = (%.6f, %.6f), want (%.6f, %.6f)", what, got[0], got[1], want[0], want[1])
	}
}

func TestLetterboxIdentity(t *testing.T) {
	canvas := core.Size{W: 1920, H: 1080}
	fit := Letterbox(canvas, canvas)
	if fit.Scale != 1 || fit.OffsetX != 0 || fit.OffsetY != 0 {
		t.Fatalf("Letterbox(same size) = %+v, want scale 1 offset 0", fit)
	}
	for _, p := range []f64.Vec2{{0, 0}, {12.5, 700}, {1920, 1080}, {960, 540}} {
		expectVec(t, fit.ToCanvas(p), p, eps, "ToCanvas")
	}
}

func TestLetterboxScaleAndOffset(t *testing.T) {
	tests := []struct {
		name    string
		window  core.Size
		scale   float64
		offsetX float64
		offsetY float64
	}{
		{"half", core.Size{W: 960, H: 540}, 0.5, 0, 0},
		{"pillarbox", core.Size{W: 1000, H: 270}, 0.25, 260, 0},
		{"letterbox", core.Size{W: 960, H: 1000}, 0.5, 0, 230},
		{"default window", core.Size{W: 800, H: 450}, 800.0 / 1920, 0, 0},
	}
	canvas := core.Size{W: 1920, H: 1080}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit := Letterbox(tt.window, canvas)
			if !scalar.EqualWithinAbs(fit.Scale, tt.scale, eps) ||
				!scalar.EqualWithinAbs(fit.OffsetX, tt.offsetX, 1e-6) ||
				!scalar.EqualWithinAbs(fit.OffsetY, tt.offsetY, 1e-6) {
				t.Fatalf("Letterbox(%v) = %+v, want scale %v offset (%v,%v)", tt.window, fit, tt.scale, tt.offsetX, tt.offsetY)
			}
		})
	}
}

func TestLetterboxClampsBars(t *testing.T) {
	canvas := core.Size{W: 1920, H: 1080}
	fit := Letterbox(core.Size{W: 960, H: 1000}, canvas)

	tests := []struct {
		p    f64.Vec2
		want f64.Vec2
	}{
		{f64.Vec2{480, 10}, f64.Vec2{960, 0}},
		{f64.Vec2{480, 990}, f64.Vec2{960, 1080}},
		{f64.Vec2{-50, -50}, f64.Vec2{0, 0}},
		{f64.Vec2{5000, 500}, f64.Vec2{1920, 540}},
		{f64.Vec2{480, 500}, f64.Vec2{960, 540}},
	}
	for _, tt := range tests {
		got := fit.ToCanvas(tt.p)
		expectVec(t, got, tt.want, 1e-6, "ToCanvas")
		if got[0] < 0 || got[1] < 0 || got[0] > 1920 || got[1] > 1080 {
			t.Fatalf("ToCanvas(%v) = %v escapes the canvas", tt.p, got)
		}
	}
}

func TestLetterboxDegenerateWindow(t *testing.T) {
	canvas := core.Size{W: 1920, H: 1080}
	for _, w := range []core.Size{{}, {W: 0, H: 600}, {W: 800, H: 0}, {W: -5, H: 10}} {
		fit := Letterbox(w, canvas)
		if fit.Scale != 0 {
			t.Fatalf("Letterbox(%v).Scale = %v, want 0", w, fit.Scale)
		}
		got := fit.ToCanvas(f64.Vec2{300, 200})
		if got != (f64.Vec2{}) {
			t.Fatalf("ToCanvas with zero scale = %v, want origin", got)
		}
	}
	fit := Letterbox(core.Size{W: 800, H: 450}, core.Size{})
	if fit.Scale != 0 {
		t.Fatalf("empty canvas scale = %v, want 0", fit.Scale)
	}
}

func TestFitRectAndMatrix(t *testing.T) {
	fit := Letterbox(core.Size{W: 960, H: 1000}, core.Size{W: 1920, H: 1080})
	if got, want := fit.Rect(), image.Rect(0, 230, 960, 770); got != want {
		t.Fatalf("Rect() = %v, want %v", got, want)
	}
	// Matrix is the forward map of ToCanvas inside the canvas.
	for _, v := range []f64.Vec2{{0, 0}, {1920, 1080}, {100, 900}} {
		p := Apply(fit.Matrix(), v)
		expectVec(t, fit.ToCanvas(p), v, 1e-9, "ToCanvas(Matrix(v))")
	}
}

func TestAffineInvert(t *testing.T) {
	m := Mul(Translate(3, -4), Mul(Rotate(0.7), Scale(2, 5)))
	inv, ok := Invert(m)
	if !ok {
		t.Fatal("expected matrix to be invertible")
	}
	id := Mul(inv, m)
	for i, want := range Identity() {
		if !scalar.EqualWithinAbs(id[i], want, 1e-12) {
			t.Fatalf("inv*m = %v, want identity", id)
		}
	}
	if _, ok := Invert(Scale(0, 1)); ok {
		t.Fatal("singular matrix reported invertible")
	}
}

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(core.Size{W: 1920, H: 1080})
	if cam.Zoom() != 1 || cam.Rotation != 0 || cam.Target != (f64.Vec2{}) {
		t.Fatalf("unexpected default camera %+v zoom %v", cam, cam.Zoom())
	}
	expectVec(t, cam.WorldToCanvas(f64.Vec2{}), f64.Vec2{960, 540}, eps, "origin on canvas")
	expectVec(t, cam.CanvasToWorld(f64.Vec2{960, 540}), f64.Vec2{}, eps, "canvas center in world")
}

func TestCameraForward(t *testing.T) {
	cam := NewCamera(core.Size{W: 1920, H: 1080})
	cam.SetZoom(2)
	cam.Target = f64.Vec2{10, 20}
	expectVec(t, cam.WorldToCanvas(f64.Vec2{15, 20}), f64.Vec2{970, 540}, eps, "zoomed")

	cam.Rotation = 90
	expectVec(t, cam.WorldToCanvas(f64.Vec2{11, 20}), f64.Vec2{960, 542}, 1e-9, "rotated")
}

func TestCameraInverseConsistency(t *testing.T) {
	zooms := []float64{0.01, 0.1, 0.5, 1, 3.7, 25, 100}
	targets := []f64.Vec2{{0, 0}, {-1234.5, 88}, {50000, -7000}}
	rotations := []float64{0, 30, -90, 181.5}
	points := []f64.Vec2{{0, 0}, {100, 250}, {-4999, 12345.678}}

	for _, z := range zooms {
		for _, target := range targets {
			for _, rot := range rotations {
				cam := NewCamera(core.Size{W: 1920, H: 1080})
				cam.SetZoom(z)
				cam.Target = target
				cam.Rotation = rot
				for _, w := range points {
					back := cam.CanvasToWorld(cam.WorldToCanvas(w))
					tol := 1e-9 * math.Max(1, math.Abs(w[0])+math.Abs(w[1])+math.Abs(target[0])+math.Abs(target[1])) / z
					expectVec(t, back, w, tol, "round trip")
				}
			}
		}
	}
}

func TestCameraZoomClamp(t *testing.T) {
	cam := NewCamera(core.Size{W: 100, H: 100})
	tests := []struct {
		set  float64
		want float64
	}{
		{0, MinZoom},
		{-3, MinZoom},
		{math.NaN(), MinZoom},
		{1000, MaxZoom},
		{2.5, 2.5},
	}
	for _, tt := range tests {
		cam.SetZoom(tt.set)
		if cam.Zoom() != tt.want {
			t.Errorf("SetZoom(%v) -> %v, want %v", tt.set, cam.Zoom(), tt.want)
		}
	}
	cam.SetZoom(1)
	cam.AddZoom(-5)
	if cam.Zoom() != MinZoom {
		t.Fatalf("AddZoom past zero -> %v, want %v", cam.Zoom(), MinZoom)
	}
	var zero Camera
	if zero.Zoom() != 1 {
		t.Fatalf("zero camera zoom = %v, want 1", zero.Zoom())
	}
}

func TestCameraReset(t *testing.T) {
	cam := NewCamera(core.Size{W: 100, H: 100})
	cam.Pan(30, -40)
	cam.SetZoom(4)
	cam.Rotation = 45
	cam.Reset()
	if cam.Target != (f64.Vec2{}) || cam.Zoom() != 1 || cam.Rotation != 0 {
		t.Fatalf("Reset left camera at %+v zoom %v", cam, cam.Zoom())
	}
	if cam.Offset != (f64.Vec2{50, 50}) {
		t.Fatalf("Reset moved the offset to %v", cam.Offset)
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		w    f64.Vec2
		want Cell
	}{
		{f64.Vec2{0.5, 0.5}, Cell{0, 0}},
		{f64.Vec2{100, 100}, Cell{0, 0}},
		{f64.Vec2{100.01, 250}, Cell{1, 2}},
		{f64.Vec2{0, 0}, Cell{-1, -1}},
		{f64.Vec2{-50, 5}, Cell{-1, 0}},
		{f64.Vec2{-150, 5}, Cell{-2, 0}},
		{f64.Vec2{math.NaN(), 5}, Cell{-1, -1}},
		{f64.Vec2{5, math.Inf(1)}, Cell{-1, -1}},
	}
	for _, tt := range tests {
		if got := Quantize(tt.w, 100); got != tt.want {
			t.Errorf("Quantize(%v) = %v, want %v", tt.w, got, tt.want)
		}
	}
	if got := Quantize(f64.Vec2{5, 5}, 0); got != (Cell{-1, -1}) {
		t.Errorf("Quantize with zero cell size = %v, want (-1,-1)", got)
	}
	if got := Quantize(f64.Vec2{1e300, -1e300}, 100); got != (Cell{math.MaxInt32, math.MinInt32}) {
		t.Errorf("Quantize far away = %v", got)
	}
}

func TestPointerToCell(t *testing.T) {
	canvas := core.Size{W: 1920, H: 1080}
	tests := []struct {
		name   string
		window core.Size
		p      f64.Vec2
		setup  func(*Camera)
		want   Cell
	}{
		{"native", canvas, f64.Vec2{960 + 150, 540 + 250}, nil, Cell{1, 2}},
		{"half size", core.Size{W: 960, H: 540}, f64.Vec2{555, 395}, nil, Cell{1, 2}},
		{"letterboxed", core.Size{W: 960, H: 1000}, f64.Vec2{555, 230 + 395}, nil, Cell{1, 2}},
		{"panned", canvas, f64.Vec2{960, 540}, func(c *Camera) { c.Pan(450, 50) }, Cell{4, 0}},
		{"zoomed", canvas, f64.Vec2{960 + 300, 540 + 300}, func(c *Camera) { c.SetZoom(2) }, Cell{1, 1}},
		{"bar clamps to edge", core.Size{W: 960, H: 1000}, f64.Vec2{555, 5}, nil, Cell{1, -6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(canvas)
			if tt.setup != nil {
				tt.setup(cam)
			}
			if got := PointerToCell(tt.p, tt.window, canvas, cam, 100); got != tt.want {
				t.Fatalf("PointerToCell(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
