package renderer

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	twoPi = 2 * math32.Pi
	// rotationStep is the camera rotation per key press or repeat.
	rotationStep = 0.2
	// zoomStep is the zoom change per scroll unit.
	zoomStep = 0.25
)

// PolygonMode is an entry of the display mode cycle.
type PolygonMode int

const (
	Fill PolygonMode = iota
	Line
)

func (m PolygonMode) String() string {
	if m == Line {
		return "line"
	}
	return "fill"
}

// polygonModes is the cycle Backspace steps through. Its first two entries
// render the same.
var polygonModes = [...]PolygonMode{Fill, Fill, Line}

// DrawState is the per-session state the event handlers mutate. The pen
// and the obtuse-arc toggle live in the geometry builder.
type DrawState struct {
	// Yaw and Pitch are camera angles in [0, 2π].
	Yaw, Pitch float32
	Zoom       float32
	// Mouse is the cursor in normalized device coordinates.
	Mouse mgl32.Vec2
	// Width and Height are the framebuffer size in pixels.
	Width, Height int
	// Mode indexes polygonModes.
	Mode int
	Quit bool
}

// PolygonMode returns the current display mode.
func (s *DrawState) PolygonMode() PolygonMode { return polygonModes[s.Mode] }

// NextMode advances the display mode cycle and returns the new mode.
func (s *DrawState) NextMode() PolygonMode {
	s.Mode = (s.Mode + 1) % len(polygonModes)
	return s.PolygonMode()
}

// SetCursor stores the cursor at pixel (x, y) of the framebuffer in NDC.
// It keeps the previous position while the framebuffer has no area.
func (s *DrawState) SetCursor(x, y float64) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}
	s.Mouse = mgl32.Vec2{
		2*float32(x)/float32(s.Width) - 1,
		-(2*float32(y)/float32(s.Height) - 1),
	}
}

// AddZoom changes the zoom by amount scroll units, clamped to [lo, hi].
func (s *DrawState) AddZoom(amount, lo, hi float32) {
	s.Zoom = mgl32.Clamp(s.Zoom+zoomStep*amount, lo, hi)
}

// ScreenTransform returns zoom * rotateY(yaw) * rotateX(pitch) with the zoom
// applied to the rotation block only.
func (s *DrawState) ScreenTransform() mgl32.Mat4 {
	m := mgl32.HomogRotate3DY(s.Yaw).Mul4(mgl32.HomogRotate3DX(s.Pitch))
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			m.Set(row, col, m.At(row, col)*s.Zoom)
		}
	}
	return m
}

func checkAngle(a float32) {
	if a < 0 || a > twoPi {
		panic(fmt.Sprintf("renderer: angle %g outside [0, 2π]", a))
	}
}

// addModulo2Pi returns a+b wrapped into [0, 2π]. Both must be in [0, 2π].
func addModulo2Pi(a, b float32) float32 {
	checkAngle(a)
	checkAngle(b)
	a += b
	if a > twoPi {
		a -= twoPi
	}
	return a
}

// subModulo2Pi returns a-b wrapped into [0, 2π]. Both must be in [0, 2π].
func subModulo2Pi(a, b float32) float32 {
	checkAngle(a)
	checkAngle(b)
	a -= b
	if a < 0 {
		a += twoPi
	}
	return a
}
