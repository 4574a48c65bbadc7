package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/segments/growbuf"
)

const (
	// lineWidthDivisor scales a line's unit direction down to its half
	// width.
	lineWidthDivisor = 128
	// circleRadius is the radius of the dot drawn at every pen position.
	circleRadius = 1.0 / 32
)

// AccentColor is the color given to lines, circles and arcs unless
// configured otherwise.
var AccentColor = mgl32.Vec3{0.4, 0.8, 0.8}

// circleCorners are the Diff values of the six corners of a circle quad.
var circleCorners = [VerticesPerPrimitive]mgl32.Vec2{
	{-1, -1}, {-1, 1}, {1, 1},
	{1, 1}, {1, -1}, {-1, -1},
}

// Builder owns the vertex buffers of the scene and the pen. The zero value
// is not usable, use NewBuilder.
type Builder struct {
	Lines   *growbuf.Buffer[LineVertex]
	Circles *growbuf.Buffer[CircleVertex]
	Arcs    *growbuf.Buffer[ArcVertex]
	Meshes  *growbuf.Buffer[V3Vertex]

	// Color is applied to primitives added from now on.
	Color mgl32.Vec3
	// Obtuse selects the reflex sector for arcs added from now on.
	Obtuse bool

	pen  mgl32.Vec2
	prev mgl32.Vec2
}

func NewBuilder() *Builder {
	return &Builder{
		Lines:   growbuf.New[LineVertex](0),
		Circles: growbuf.New[CircleVertex](0),
		Arcs:    growbuf.New[ArcVertex](0),
		Meshes:  growbuf.New[V3Vertex](0),
		Color:   AccentColor,
	}
}

// Pen returns the current pen position.
func (b *Builder) Pen() mgl32.Vec2 { return b.pen }

// Previous returns the pen position before the last move.
func (b *Builder) Previous() mgl32.Vec2 { return b.prev }

// AddLine appends a quad of half width 1/128 covering the segment p1-p2. A
// zero-length segment yields a zero-width quad.
func (b *Builder) AddLine(p1, p2 mgl32.Vec2) {
	var n mgl32.Vec2
	if d := p2.Sub(p1); d.Len() > 0 {
		n = d.Normalize().Mul(1.0 / lineWidthDivisor)
	}
	dx, dy := n.X(), n.Y()
	right := mgl32.Vec2{dy, -dx}
	left := mgl32.Vec2{-dy, dx}
	b.Lines.Append(
		LineVertex{p1, right, b.Color},
		LineVertex{p1, left, b.Color},
		LineVertex{p2, right, b.Color},
		LineVertex{p1, left, b.Color},
		LineVertex{p2, right, b.Color},
		LineVertex{p2, left, b.Color},
	)
}

// AddCircle appends a quad for a dot of radius 1/32 centered at c.
func (b *Builder) AddCircle(c mgl32.Vec2) {
	var verts [VerticesPerPrimitive]CircleVertex
	for i, diff := range circleCorners {
		verts[i] = CircleVertex{CenterPoint: c, Diff: diff, Color: b.Color, Radius: circleRadius}
	}
	b.Circles.Append(verts[:]...)
}

// ArcAngle returns the signed angle of the sector around q that starts at p
// and ends on the ray toward r. With obtuse set the reflex sector is chosen
// instead of the smaller one.
func ArcAngle(p, q, r mgl32.Vec2, obtuse bool) float32 {
	angle := Angle(p.Sub(q), r.Sub(q))
	if obtuse {
		angle = -(2*math32.Pi - angle)
	}
	if WindingOrder(p, q, r) == -1 {
		angle = -angle
	}
	return angle
}

// AddArc appends the square around pivot q, sized by the distance from q to
// p, carrying the sector from p toward r.
func (b *Builder) AddArc(p, q, r mgl32.Vec2) {
	diffAngle := ArcAngle(p, q, r, b.Obtuse)
	radius := p.Sub(q).Len()
	corner := func(sx, sy float32) ArcVertex {
		return ArcVertex{
			StartPoint:  p,
			CenterPoint: q,
			Position:    mgl32.Vec2{q.X() + sx*radius, q.Y() + sy*radius},
			Color:       b.Color,
			DiffAngle:   diffAngle,
			Radius:      radius,
		}
	}
	b.Arcs.Append(
		corner(-1, -1),
		corner(-1, 1),
		corner(1, 1),
		corner(1, 1),
		corner(1, -1),
		corner(-1, -1),
	)
}

// MoveTo moves the pen to p without drawing.
func (b *Builder) MoveTo(p mgl32.Vec2) {
	b.prev = b.pen
	b.pen = p
}

// LineTo draws a line from the pen to p and a dot at p, then moves the pen
// to p. No arc is committed.
func (b *Builder) LineTo(p mgl32.Vec2) {
	b.AddLine(b.pen, p)
	b.AddCircle(p)
	b.MoveTo(p)
}

// AppendLive appends the preview primitives for a cursor at c: the line from
// the pen, the dot at the cursor, and the arc around the pen from the
// previous pen position toward the cursor. RetractLive removes them again.
func (b *Builder) AppendLive(c mgl32.Vec2) {
	b.AddLine(b.pen, c)
	b.AddCircle(c)
	b.AddArc(b.prev, b.pen, c)
}

// RetractLive removes the primitives added by the last AppendLive.
func (b *Builder) RetractLive() {
	b.Lines.Retract(VerticesPerPrimitive)
	b.Circles.Retract(VerticesPerPrimitive)
	b.Arcs.Retract(VerticesPerPrimitive)
}
