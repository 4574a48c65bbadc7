package geometry

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WindingOrder returns the sign of the signed area of triangle pqr: 1, -1,
// or 0 for a degenerate triangle.
func WindingOrder(p, q, r mgl32.Vec2) int {
	var area float32
	area += (q.X() - p.X()) * (q.Y() + p.Y())
	area += (r.X() - q.X()) * (r.Y() + q.Y())
	area += (p.X() - r.X()) * (p.Y() + r.Y())
	switch {
	case area > 0:
		return 1
	case area < 0:
		return -1
	}
	return 0
}

// Angle returns the unsigned angle between p and q in [0, π]. It is 0 when
// either vector has zero length.
func Angle(p, q mgl32.Vec2) float32 {
	lengths := p.Len() * q.Len()
	if lengths == 0 {
		return 0
	}
	c := p.Dot(q) / lengths
	// rounding can push nearly parallel vectors just outside acos' domain
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math32.Acos(c)
}

func rotateY(v mgl32.Vec3, angle float32) mgl32.Vec3 {
	st, ct := math32.Sin(angle), math32.Cos(angle)
	return mgl32.Vec3{
		v.X()*ct - v.Z()*st,
		v.Y(),
		v.X()*st + v.Z()*ct,
	}
}

func rotateZ(v mgl32.Vec3, angle float32) mgl32.Vec3 {
	st, ct := math32.Sin(angle), math32.Cos(angle)
	return mgl32.Vec3{
		v.X()*ct - v.Y()*st,
		v.X()*st + v.Y()*ct,
		v.Z(),
	}
}
