package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Torus and arrow parameters.
const (
	torusRadius     = 0.4
	tubeRadius      = 0.1
	ringPoints      = 30
	torusSteps      = 60
	arrowSteps      = 10
	arrowStartScale = 1.4
	arrowLength     = 1.2 // radians along the torus

	sphereRadius = 0.5
	spherePoints = 60
	sphereSteps  = 10
)

// TorusVertices is the number of vertices AddTorus appends.
const TorusVertices = (torusSteps/2+1)*ringPoints*6 + arrowSteps*ringPoints*6

// SphereVertices is the number of vertices AddSphere appends.
const SphereVertices = sphereSteps * spherePoints * 6

// Mesh selects the 3D mesh drawn behind the strokes.
type Mesh int

const (
	MeshNone Mesh = iota
	MeshTorus
	MeshSphere
)

var meshNames = [...]string{
	MeshNone:   "none",
	MeshTorus:  "torus",
	MeshSphere: "sphere",
}

func (m Mesh) String() string {
	if m >= 0 && int(m) < len(meshNames) {
		return meshNames[m]
	}
	return fmt.Sprintf("Mesh(%d)", int(m))
}

// ParseMesh returns the mesh called name.
func ParseMesh(name string) (Mesh, error) {
	for m, n := range meshNames {
		if n == name {
			return Mesh(m), nil
		}
	}
	return MeshNone, fmt.Errorf("unknown mesh %q", name)
}

// AddMesh appends the vertices of m.
func (b *Builder) AddMesh(m Mesh) {
	switch m {
	case MeshTorus:
		b.AddTorus()
	case MeshSphere:
		b.AddSphere()
	}
}

func (b *Builder) triangle(p, q, r, pn, qn, rn, color mgl32.Vec3) {
	b.Meshes.Append(
		V3Vertex{p, pn, color},
		V3Vertex{q, qn, color},
		V3Vertex{r, rn, color},
	)
}

// AddTorus appends a half torus lying in the XZ plane, swept from π to 2π
// around Y plus one closing step, and a cone tapering to a point that
// continues it from angle 0 like an arrow head.
func (b *Builder) AddTorus() {
	var ring, normal [ringPoints]mgl32.Vec3
	for i := range ring {
		angle := 2 * math32.Pi / ringPoints * float32(i)
		ring[i] = rotateZ(mgl32.Vec3{tubeRadius, 0, 0}, angle).Add(mgl32.Vec3{torusRadius, 0, 0})
		normal[i] = rotateZ(mgl32.Vec3{1, 0, 0}, angle)
	}

	for i := torusSteps / 2; i <= torusSteps; i++ {
		a0 := 2 * math32.Pi / torusSteps * float32(i)
		a1 := 2 * math32.Pi / torusSteps * float32(i+1)
		color := mgl32.Vec3{0, 1, float32(i) / torusSteps}
		for j := 0; j < ringPoints; j++ {
			k := j - 1
			if j == 0 {
				k = ringPoints - 1
			}
			p0, p1 := rotateY(ring[j], a0), rotateY(ring[k], a0)
			q0, q1 := rotateY(ring[j], a1), rotateY(ring[k], a1)
			pn0, pn1 := rotateY(normal[j], a0), rotateY(normal[k], a0)
			qn0, qn1 := rotateY(normal[j], a1), rotateY(normal[k], a1)
			b.triangle(p0, q0, p1, pn0, qn0, pn1, color)
			b.triangle(q0, q1, p1, qn0, qn1, pn1, color)
		}
	}

	for i := 0; i < arrowSteps; i++ {
		a0 := arrowLength / arrowSteps * float32(i)
		a1 := arrowLength / arrowSteps * float32(i+1)
		s0 := float32(arrowSteps-i) / arrowSteps
		s1 := float32(arrowSteps-i-1) / arrowSteps
		color := mgl32.Vec3{1, float32(i) / torusSteps, 0}
		for j := 0; j < ringPoints; j++ {
			var p, q, pn, qn [2]mgl32.Vec3
			for k := range 2 {
				angle := 2 * math32.Pi / ringPoints * float32(j+k)
				section := rotateZ(mgl32.Vec3{arrowStartScale * tubeRadius, 0, 0}, angle)
				n := rotateZ(mgl32.Vec3{1, 0, 0}, angle)
				p[k] = rotateY(mgl32.Vec3{section.X()*s0 + torusRadius, section.Y() * s0, section.Z()}, a0)
				q[k] = rotateY(mgl32.Vec3{section.X()*s1 + torusRadius, section.Y() * s1, section.Z()}, a1)
				pn[k] = rotateY(n, a0)
				qn[k] = rotateY(n, a1)
			}
			b.triangle(p[0], q[0], p[1], pn[0], qn[0], pn[1], color)
			b.triangle(q[0], q[1], p[1], qn[0], qn[1], pn[1], color)
		}
	}
}

// AddSphere appends the upper hemisphere of a sphere around the origin.
// Normals equal positions, which are not unit length.
func (b *Builder) AddSphere() {
	var circle [spherePoints]mgl32.Vec3
	for i := range circle {
		angle := 2 * math32.Pi / spherePoints * float32(i)
		circle[i] = mgl32.Vec3{sphereRadius * math32.Cos(angle), 0, sphereRadius * math32.Sin(angle)}
	}
	color := mgl32.Vec3{0, 0, 1}
	for i := 0; i < sphereSteps; i++ {
		a1 := math32.Pi / 2 * float32(i) / sphereSteps
		a2 := math32.Pi / 2 * float32(i+1) / sphereSteps
		s1, c1 := math32.Sin(a1), math32.Cos(a1)
		s2, c2 := math32.Sin(a2), math32.Cos(a2)
		for j := range circle {
			k := j - 1
			if j == 0 {
				k = spherePoints - 1
			}
			p, q := circle[j], circle[k]
			p1 := mgl32.Vec3{sphereRadius * c1 * p.X(), sphereRadius * s1, sphereRadius * c1 * p.Z()}
			q1 := mgl32.Vec3{sphereRadius * c1 * q.X(), sphereRadius * s1, sphereRadius * c1 * q.Z()}
			p2 := mgl32.Vec3{sphereRadius * c2 * p.X(), sphereRadius * s2, sphereRadius * c2 * p.Z()}
			q2 := mgl32.Vec3{sphereRadius * c2 * q.X(), sphereRadius * s2, sphereRadius * c2 * q.Z()}
			b.triangle(p1, q1, p2, p1, q1, p2, color)
			b.triangle(q1, p2, q2, q1, p2, q2, color)
		}
	}
}
