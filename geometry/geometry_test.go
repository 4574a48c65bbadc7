package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func TestWindingOrder(t *testing.T) {
	tests := []struct {
		p, q, r mgl32.Vec2
		want    int
	}{
		{mgl32.Vec2{0, 0}, mgl32.Vec2{0, 1}, mgl32.Vec2{1, 0}, 1},
		{mgl32.Vec2{1, 0}, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 1}, 1},
		{mgl32.Vec2{-0.5, -0.5}, mgl32.Vec2{-0.5, 0.5}, mgl32.Vec2{0.5, -0.2}, 1},
		{mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}, -1},
		{mgl32.Vec2{0, 1}, mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, -1},
		{mgl32.Vec2{0.5, -0.2}, mgl32.Vec2{-0.5, 0.5}, mgl32.Vec2{-0.5, -0.5}, -1},
		{mgl32.Vec2{0, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{2, 2}, 0},
		{mgl32.Vec2{0.3, 0.3}, mgl32.Vec2{0.3, 0.3}, mgl32.Vec2{0.3, 0.3}, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WindingOrder(tt.p, tt.q, tt.r), "%v %v %v", tt.p, tt.q, tt.r)
	}
}

func TestAngle(t *testing.T) {
	assert.InDelta(t, math32.Pi/2, Angle(mgl32.Vec2{1, 0}, mgl32.Vec2{0, 1}), eps)
	assert.InDelta(t, math32.Pi, Angle(mgl32.Vec2{1, 0}, mgl32.Vec2{-3, 0}), eps)
	assert.InDelta(t, 0, Angle(mgl32.Vec2{2, 2}, mgl32.Vec2{1, 1}), eps)
	assert.Zero(t, Angle(mgl32.Vec2{}, mgl32.Vec2{1, 0}))
	assert.Zero(t, Angle(mgl32.Vec2{1, 0}, mgl32.Vec2{}))
}

func TestAngleScaleInvariant(t *testing.T) {
	a, b := mgl32.Vec2{0.3, -0.7}, mgl32.Vec2{-0.2, 0.4}
	want := Angle(a, b)
	for _, k := range []float32{0.01, 0.5, 2, 100} {
		assert.InDelta(t, want, Angle(a.Mul(k), b), eps, "scale a by %v", k)
		assert.InDelta(t, want, Angle(a, b.Mul(k)), eps, "scale b by %v", k)
	}
}

func TestArcAngle(t *testing.T) {
	p, q, r := mgl32.Vec2{1, 0}, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 1}
	require.Equal(t, 1, WindingOrder(p, q, r))
	acute := ArcAngle(p, q, r, false)
	assert.InDelta(t, math32.Pi/2, acute, eps)
	assert.InDelta(t, Angle(p.Sub(q), r.Sub(q)), acute, eps)
	assert.InDelta(t, -(2*math32.Pi - math32.Pi/2), ArcAngle(p, q, r, true), eps)

	// clockwise triangles mirror both signs
	require.Equal(t, -1, WindingOrder(r, q, p))
	assert.InDelta(t, -math32.Pi/2, ArcAngle(r, q, p, false), eps)
	assert.InDelta(t, 2*math32.Pi-math32.Pi/2, ArcAngle(r, q, p, true), eps)
}

func TestAddLine(t *testing.T) {
	b := NewBuilder()
	b.AddLine(mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0})
	require.Equal(t, VerticesPerPrimitive, b.Lines.Len())

	// direction (1,0) scaled to 1/128 gives normals (0,-1/128) and (0,1/128)
	right := mgl32.Vec2{0, -1.0 / 128}
	left := mgl32.Vec2{0, 1.0 / 128}
	want := []LineVertex{
		{mgl32.Vec2{0, 0}, right, AccentColor},
		{mgl32.Vec2{0, 0}, left, AccentColor},
		{mgl32.Vec2{1, 0}, right, AccentColor},
		{mgl32.Vec2{0, 0}, left, AccentColor},
		{mgl32.Vec2{1, 0}, right, AccentColor},
		{mgl32.Vec2{1, 0}, left, AccentColor},
	}
	for i, v := range b.Lines.Slice() {
		assert.True(t, v.Position.ApproxEqual(want[i].Position), "vertex %d position", i)
		assert.True(t, v.Normal.ApproxEqual(want[i].Normal), "vertex %d normal %v", i, v.Normal)
		assert.Equal(t, want[i].Color, v.Color)
	}
}

func TestAddLineDegenerate(t *testing.T) {
	b := NewBuilder()
	p := mgl32.Vec2{0.3, 0.3}
	b.AddLine(p, p)
	require.Equal(t, VerticesPerPrimitive, b.Lines.Len())
	for _, v := range b.Lines.Slice() {
		assert.Equal(t, p, v.Position)
		assert.Equal(t, mgl32.Vec2{}, v.Normal)
	}
}

func TestAddCircle(t *testing.T) {
	b := NewBuilder()
	c := mgl32.Vec2{0.5, -0.5}
	b.AddCircle(c)
	require.Equal(t, VerticesPerPrimitive, b.Circles.Len())
	for i, v := range b.Circles.Slice() {
		assert.Equal(t, c, v.CenterPoint)
		assert.Equal(t, circleCorners[i], v.Diff)
		assert.InDelta(t, 1.0/32, v.Radius, eps)
	}
	assert.Equal(t, mgl32.Vec2{-1, -1}, b.Circles.At(0).Diff)
	assert.Equal(t, mgl32.Vec2{1, 1}, b.Circles.At(2).Diff)
}

func TestAddArc(t *testing.T) {
	b := NewBuilder()
	p, q, r := mgl32.Vec2{0.5, 0}, mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0.5}
	b.AddArc(p, q, r)
	require.Equal(t, VerticesPerPrimitive, b.Arcs.Len())

	corners := []mgl32.Vec2{{-0.5, -0.5}, {-0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5}, {0.5, -0.5}, {-0.5, -0.5}}
	for i, v := range b.Arcs.Slice() {
		assert.Equal(t, p, v.StartPoint)
		assert.Equal(t, q, v.CenterPoint)
		assert.True(t, v.Position.ApproxEqual(corners[i]), "corner %d = %v", i, v.Position)
		assert.InDelta(t, 0.5, v.Radius, eps)
		assert.InDelta(t, math32.Pi/2, v.DiffAngle, eps)
	}

	b.Obtuse = true
	b.AddArc(p, q, r)
	assert.InDelta(t, -3*math32.Pi/2, b.Arcs.At(6).DiffAngle, eps)
}

func TestLineTo(t *testing.T) {
	b := NewBuilder()
	b.LineTo(mgl32.Vec2{0.5, 0.5})
	assert.Equal(t, VerticesPerPrimitive, b.Lines.Len())
	assert.Equal(t, VerticesPerPrimitive, b.Circles.Len())
	assert.Zero(t, b.Arcs.Len())
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, b.Pen())
	assert.Equal(t, mgl32.Vec2{0, 0}, b.Previous())

	// the committed line starts at the old pen position
	assert.Equal(t, mgl32.Vec2{0, 0}, b.Lines.At(0).Position)
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, b.Circles.At(0).CenterPoint)

	b.LineTo(mgl32.Vec2{-0.5, 0.5})
	assert.Equal(t, mgl32.Vec2{0.5, 0.5}, b.Previous())
	assert.Equal(t, 2*VerticesPerPrimitive, b.Lines.Len())
}

func TestMoveTo(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(mgl32.Vec2{0.1, 0.2})
	b.MoveTo(mgl32.Vec2{0.3, 0.4})
	assert.Equal(t, mgl32.Vec2{0.3, 0.4}, b.Pen())
	assert.Equal(t, mgl32.Vec2{0.1, 0.2}, b.Previous())
	assert.Zero(t, b.Lines.Len())
	assert.Zero(t, b.Circles.Len())
}

func TestLiveRoundTrip(t *testing.T) {
	b := NewBuilder()
	b.LineTo(mgl32.Vec2{0.5, 0.5})
	lines, circles, arcs := b.Lines.Len(), b.Circles.Len(), b.Arcs.Len()
	firstLine := b.Lines.At(0)

	for _, c := range []mgl32.Vec2{{0.2, 0.2}, {-0.7, 0.1}, {0.5, 0.5}} {
		b.AppendLive(c)
		assert.Equal(t, lines+VerticesPerPrimitive, b.Lines.Len())
		assert.Equal(t, circles+VerticesPerPrimitive, b.Circles.Len())
		assert.Equal(t, arcs+VerticesPerPrimitive, b.Arcs.Len())
		assert.Equal(t, c, b.Circles.At(circles).CenterPoint)
		assert.Equal(t, b.Pen(), b.Arcs.At(arcs).CenterPoint)
		b.RetractLive()
		assert.Equal(t, lines, b.Lines.Len())
		assert.Equal(t, circles, b.Circles.Len())
		assert.Equal(t, arcs, b.Arcs.Len())
	}
	assert.Equal(t, firstLine, b.Lines.At(0))
}

func TestRetractLiveWithoutAppendPanics(t *testing.T) {
	b := NewBuilder()
	assert.Panics(t, b.RetractLive)
}

func TestAddTorus(t *testing.T) {
	b := NewBuilder()
	b.AddTorus()
	require.Equal(t, TorusVertices, b.Meshes.Len())
	assert.Equal(t, 31*30*6+10*30*6, TorusVertices)

	ring := 31 * 30 * 6
	for i, v := range b.Meshes.Slice() {
		assert.InDelta(t, 1, v.Normal.Len(), 1e-4, "vertex %d normal %v", i, v.Normal)
		r := mgl32.Vec2{v.Position.X(), v.Position.Z()}.Len()
		if i < ring {
			// every point lies on the tube surface
			tube := mgl32.Vec2{r - torusRadius, v.Position.Y()}.Len()
			require.InDelta(t, tubeRadius, tube, 1e-4, "vertex %d", i)
			assert.Equal(t, float32(0), v.Color.X())
			assert.Equal(t, float32(1), v.Color.Y())
		} else {
			tube := mgl32.Vec2{r - torusRadius, v.Position.Y()}.Len()
			assert.LessOrEqual(t, tube, float32(arrowStartScale*tubeRadius+1e-4))
			assert.Equal(t, float32(1), v.Color.X())
		}
	}
	// the first swept step starts at angle π, on the negative X side
	assert.Less(t, b.Meshes.At(0).Position.X(), float32(0))
	assert.InDelta(t, 0.5, b.Meshes.At(0).Color.Z(), eps)
	assert.InDelta(t, 1, b.Meshes.At(ring-1).Color.Z(), eps)
}

func TestAddSphere(t *testing.T) {
	b := NewBuilder()
	b.AddSphere()
	require.Equal(t, SphereVertices, b.Meshes.Len())
	for _, v := range b.Meshes.Slice() {
		assert.GreaterOrEqual(t, v.Position.Y(), float32(0))
		assert.Equal(t, v.Position, v.Normal)
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, v.Color)
	}
}

func TestRotations(t *testing.T) {
	x := mgl32.Vec3{1, 0, 0}
	z := rotateZ(x, math32.Pi/2)
	assert.InDeltaSlice(t, []float32{0, 1, 0}, z[:], eps)
	y := rotateY(x, math32.Pi/2)
	assert.InDeltaSlice(t, []float32{0, 0, 1}, y[:], eps)
	assert.Equal(t, float32(3), rotateY(mgl32.Vec3{0, 3, 0}, 1).Y())
	assert.Equal(t, float32(3), rotateZ(mgl32.Vec3{0, 0, 3}, 1).Z())
}

func TestMesh(t *testing.T) {
	for _, name := range []string{"none", "torus", "sphere"} {
		m, err := ParseMesh(name)
		require.NoError(t, err)
		assert.Equal(t, name, m.String())
	}
	_, err := ParseMesh("cube")
	assert.Error(t, err)

	b := NewBuilder()
	b.AddMesh(MeshNone)
	assert.Zero(t, b.Meshes.Len())
	b.AddMesh(MeshSphere)
	assert.Equal(t, SphereVertices, b.Meshes.Len())
}
