package renderer

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestScreenTransformIdentity(t *testing.T) {
	s := DrawState{Zoom: 1}
	assert.Equal(t, mgl32.Ident4(), s.ScreenTransform())
}

func TestScreenTransformZoom(t *testing.T) {
	s := DrawState{Zoom: 2}
	m := s.ScreenTransform()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := float32(0)
			switch {
			case row == col && row < 3:
				want = 2
			case row == 3 && col == 3:
				want = 1
			}
			assert.Equal(t, want, m.At(row, col), "element %d,%d", row, col)
		}
	}
}

func TestScreenTransformRotation(t *testing.T) {
	s := DrawState{Yaw: math32.Pi / 2, Zoom: 1}
	v := s.ScreenTransform().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDeltaSlice(t, []float32{0, 0, -1, 1}, v[:], 1e-6)

	// pitch is applied before yaw
	s = DrawState{Yaw: math32.Pi / 2, Pitch: math32.Pi / 2, Zoom: 1}
	v = s.ScreenTransform().Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	assert.InDeltaSlice(t, []float32{1, 0, 0, 1}, v[:], 1e-6)

	s.Zoom = 3
	assert.Equal(t, float32(1), s.ScreenTransform().At(3, 3))
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, s.ScreenTransform().Row(3))
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, s.ScreenTransform().Col(3))
}

func TestModulo2Pi(t *testing.T) {
	assert.InDelta(t, 0.2, addModulo2Pi(0, 0.2), 1e-6)
	assert.InDelta(t, twoPi-0.2, subModulo2Pi(0, 0.2), 1e-6)
	assert.InDelta(t, 0.1, addModulo2Pi(twoPi-0.1, 0.2), 1e-5)
	assert.Equal(t, float32(twoPi), addModulo2Pi(twoPi, 0))

	a := float32(0)
	for i := 0; i < 100; i++ {
		a = addModulo2Pi(a, rotationStep)
		assert.GreaterOrEqual(t, a, float32(0))
		assert.LessOrEqual(t, a, float32(twoPi))
	}
	for i := 0; i < 100; i++ {
		a = subModulo2Pi(a, rotationStep)
		assert.GreaterOrEqual(t, a, float32(0))
		assert.LessOrEqual(t, a, float32(twoPi))
	}
}

func TestModulo2PiPanics(t *testing.T) {
	assert.Panics(t, func() { addModulo2Pi(-0.1, 0.2) })
	assert.Panics(t, func() { addModulo2Pi(0, 7) })
	assert.Panics(t, func() { subModulo2Pi(7, 0.2) })
}

func TestSetCursor(t *testing.T) {
	s := DrawState{Width: 800, Height: 600}
	s.SetCursor(600, 150)
	assert.InDelta(t, 0.5, s.Mouse.X(), 1e-6)
	assert.InDelta(t, 0.5, s.Mouse.Y(), 1e-6)

	s.SetCursor(0, 0)
	assert.Equal(t, mgl32.Vec2{-1, 1}, s.Mouse)
	s.SetCursor(800, 600)
	assert.Equal(t, mgl32.Vec2{1, -1}, s.Mouse)

	// a minimized window has no area
	s.Width, s.Height = 0, 0
	s.SetCursor(10, 10)
	assert.Equal(t, mgl32.Vec2{1, -1}, s.Mouse)
}

func TestAddZoom(t *testing.T) {
	s := DrawState{Zoom: 1}
	s.AddZoom(1, 1, 3)
	assert.Equal(t, float32(1.25), s.Zoom)
	s.AddZoom(100, 1, 3)
	assert.Equal(t, float32(3), s.Zoom)
	s.AddZoom(-100, 1, 3)
	assert.Equal(t, float32(1), s.Zoom)
	s.AddZoom(-2, 0.25, 3)
	assert.Equal(t, float32(0.5), s.Zoom)
}

func TestModeCycle(t *testing.T) {
	var s DrawState
	assert.Equal(t, Fill, s.PolygonMode())
	assert.Equal(t, Fill, s.NextMode())
	assert.Equal(t, Line, s.NextMode())
	assert.Equal(t, Fill, s.NextMode())
	assert.Equal(t, 0, s.Mode)
	assert.Equal(t, "line", Line.String())
}
