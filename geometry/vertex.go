// Package geometry computes the vertex data for everything the scene draws:
// antialiased line quads, circle quads, arc sector quads, and the 3D meshes.
//
// Vertices are appended to growbuf buffers owned by a Builder. Each 2D
// primitive contributes exactly six vertices (two triangles), so a
// primitive can always be removed again by retracting six.
package geometry

import "github.com/go-gl/mathgl/mgl32"

// VerticesPerPrimitive is the number of vertices one line, circle or arc
// contributes.
const VerticesPerPrimitive = 6

// LineVertex is one corner of a line quad. Normal is the half-width offset
// the vertex stage applies to Position.
type LineVertex struct {
	Position mgl32.Vec2
	Normal   mgl32.Vec2
	Color    mgl32.Vec3
}

// CircleVertex is one corner of a circle quad. Diff is the corner's offset in
// units of Radius, the fragment stage discards outside the unit disc.
type CircleVertex struct {
	CenterPoint mgl32.Vec2
	Diff        mgl32.Vec2
	Color       mgl32.Vec3
	Radius      float32
}

// ArcVertex is one corner of the square bounding a circle around
// CenterPoint. The fragment stage keeps the sector that starts at StartPoint
// and spans DiffAngle radians, counterclockwise when positive.
type ArcVertex struct {
	StartPoint  mgl32.Vec2
	CenterPoint mgl32.Vec2
	Position    mgl32.Vec2
	Color       mgl32.Vec3
	DiffAngle   float32
	Radius      float32
}

// V3Vertex is a vertex of a lit 3D mesh.
type V3Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec3
}
