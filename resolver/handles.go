package resolver

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/segments/shader"
)

// Uniform is a resolved uniform location. The setters bind the owning
// program, upload and unbind again. On an unavailable location they make no
// GL calls at all. Calling a setter that does not match the declared type
// panics.
type Uniform struct {
	gl       GL
	program  uint32
	location int32
	desc     shader.UniformDescriptor
}

// Location returns the GL location, -1 if the uniform is unavailable.
func (u Uniform) Location() int32 { return u.location }

func (u Uniform) Valid() bool { return u.gl != nil && u.location >= 0 }

func (u Uniform) Descriptor() shader.UniformDescriptor { return u.desc }

func (u Uniform) set(t shader.ValueType, upload func()) {
	if u.gl != nil && u.desc.Type != t {
		panic(fmt.Sprintf("resolver: uniform %q is %v, set as %v", u.desc.Name, u.desc.Type, t))
	}
	if !u.Valid() {
		return
	}
	u.gl.UseProgram(u.program)
	upload()
	u.gl.UseProgram(0)
}

func (u Uniform) SetBool(v bool) {
	u.set(shader.TypeBool, func() {
		var i int32
		if v {
			i = 1
		}
		u.gl.Uniform1i(u.location, i)
	})
}

func (u Uniform) SetInt(v int32) {
	u.set(shader.TypeInt, func() { u.gl.Uniform1i(u.location, v) })
}

func (u Uniform) SetUint(v uint32) {
	u.set(shader.TypeUint, func() { u.gl.Uniform1ui(u.location, v) })
}

func (u Uniform) SetFloat(v float32) {
	u.set(shader.TypeFloat, func() { u.gl.Uniform1f(u.location, v) })
}

func (u Uniform) SetDouble(v float64) {
	u.set(shader.TypeDouble, func() { u.gl.Uniform1d(u.location, v) })
}

func (u Uniform) SetVec2(v mgl32.Vec2) {
	u.set(shader.TypeVec2, func() { u.gl.Uniform2f(u.location, v) })
}

func (u Uniform) SetVec3(v mgl32.Vec3) {
	u.set(shader.TypeVec3, func() { u.gl.Uniform3f(u.location, v) })
}

func (u Uniform) SetVec4(v mgl32.Vec4) {
	u.set(shader.TypeVec4, func() { u.gl.Uniform4f(u.location, v) })
}

func (u Uniform) SetMat2(m mgl32.Mat2) {
	u.set(shader.TypeMat2, func() { u.gl.UniformMatrix2fv(u.location, m) })
}

func (u Uniform) SetMat3(m mgl32.Mat3) {
	u.set(shader.TypeMat3, func() { u.gl.UniformMatrix3fv(u.location, m) })
}

func (u Uniform) SetMat4(m mgl32.Mat4) {
	u.set(shader.TypeMat4, func() { u.gl.UniformMatrix4fv(u.location, m) })
}

// Attribute is a resolved vertex attribute location.
type Attribute struct {
	gl       GL
	location int32
	program  string
	desc     shader.AttributeDescriptor
}

// Location returns the GL location, -1 if the attribute is unavailable.
func (a Attribute) Location() int32 { return a.location }

func (a Attribute) Valid() bool { return a.gl != nil && a.location >= 0 }

func (a Attribute) Descriptor() shader.AttributeDescriptor { return a.desc }

// Enable points the attribute at the field of each vertex in vbo found at
// offset bytes, vertices being stride bytes apart. The component count comes
// from the declared type. An unavailable attribute is logged and skipped.
func (a Attribute) Enable(vao, vbo uint32, stride, offset int) {
	if !a.Valid() {
		slog.Warn("attribute not available, not enabling", "program", a.program, "attribute", a.desc.Name)
		return
	}
	a.gl.EnableVertexAttrib(vao, vbo, uint32(a.location), a.desc.Type.Components(), stride, offset)
}
