// Package gltest provides a recording stand-in for the GL device so that
// shader resolution and the frame loop can be tested without a GPU.
package gltest

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/segments/shader"
)

// Draw is one recorded draw call.
type Draw struct {
	Program uint32
	VAO     uint32
	First   int
	Count   int
}

// Device records every call made on it. Object names are handed out from a
// single counter starting at 1.
type Device struct {
	// Calls holds one entry per call, the method name followed by its
	// arguments, e.g. "UseProgram(3)".
	Calls []string

	// FailCompile makes compilation fail for sources containing it.
	FailCompile string
	// FailLink makes linking fail for programs with a shader whose source
	// contains it.
	FailLink string
	// FailCreateProgram makes CreateProgram return 0.
	FailCreateProgram bool
	// Missing names resolve to -1 even when a source declares them.
	Missing map[string]bool
	// PendingError is returned, once, by the next GetError.
	PendingError error

	// Uploads holds the byte size of the last BufferData per buffer.
	Uploads map[uint32]int
	// Data holds a copy of the bytes of the last BufferData per buffer.
	Data  map[uint32][]byte
	Draws []Draw
	// Uniforms holds the last matrix uploaded per location.
	Uniforms     map[int32]mgl32.Mat4
	Wireframe    bool
	ViewportSize [2]int

	next      uint32
	sources   map[uint32]string
	attached  map[uint32][]uint32
	locations map[uint32]map[string]int32
}

func New() *Device {
	return &Device{
		Missing:   make(map[string]bool),
		Uploads:   make(map[uint32]int),
		Data:      make(map[uint32][]byte),
		Uniforms:  make(map[int32]mgl32.Mat4),
		sources:   make(map[uint32]string),
		attached:  make(map[uint32][]uint32),
		locations: make(map[uint32]map[string]int32),
	}
}

func (d *Device) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Device) id() uint32 {
	d.next++
	return d.next
}

// Count returns how many recorded calls start with prefix.
func (d *Device) Count(prefix string) int {
	n := 0
	for _, c := range d.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// Index returns the position of the first call starting with prefix, or -1.
func (d *Device) Index(prefix string) int {
	for i, c := range d.Calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

// LastIndex returns the position of the last call starting with prefix, or -1.
func (d *Device) LastIndex(prefix string) int {
	for i := len(d.Calls) - 1; i >= 0; i-- {
		if strings.HasPrefix(d.Calls[i], prefix) {
			return i
		}
	}
	return -1
}

// Reset forgets recorded calls, uploads and draws.
func (d *Device) Reset() {
	d.Calls = nil
	d.Draws = nil
	clear(d.Uploads)
	clear(d.Data)
}

// Vertices reinterprets the last upload to vbo as a slice of T.
func Vertices[T any](d *Device, vbo uint32) []T {
	raw := d.Data[vbo]
	var zero T
	n := len(raw) / int(unsafe.Sizeof(zero))
	if n == 0 {
		return nil
	}
	out := make([]T, n)
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&out[0])), n*int(unsafe.Sizeof(zero))), raw)
	return out
}

func (d *Device) CreateShader(stage shader.Stage) uint32 {
	id := d.id()
	d.record("CreateShader(%v)=%d", stage, id)
	return id
}

func (d *Device) ShaderSource(sh uint32, source string) {
	d.record("ShaderSource(%d)", sh)
	d.sources[sh] = source
}

func (d *Device) CompileShader(sh uint32) { d.record("CompileShader(%d)", sh) }

func (d *Device) ShaderCompileStatus(sh uint32) (bool, string) {
	d.record("ShaderCompileStatus(%d)", sh)
	if d.FailCompile != "" && strings.Contains(d.sources[sh], d.FailCompile) {
		return false, "0:1: syntax error"
	}
	return true, ""
}

func (d *Device) DeleteShader(sh uint32) { d.record("DeleteShader(%d)", sh) }

func (d *Device) CreateProgram() uint32 {
	if d.FailCreateProgram {
		d.record("CreateProgram()=0")
		return 0
	}
	id := d.id()
	d.record("CreateProgram()=%d", id)
	return id
}

func (d *Device) AttachShader(program, sh uint32) {
	d.record("AttachShader(%d,%d)", program, sh)
	d.attached[program] = append(d.attached[program], sh)
}

func (d *Device) LinkProgram(program uint32) {
	d.record("LinkProgram(%d)", program)
	d.locations[program] = make(map[string]int32)
}

func (d *Device) ProgramLinkStatus(program uint32) (bool, string) {
	d.record("ProgramLinkStatus(%d)", program)
	if d.FailLink != "" {
		for _, sh := range d.attached[program] {
			if strings.Contains(d.sources[sh], d.FailLink) {
				return false, "error: varying mismatch"
			}
		}
	}
	return true, ""
}

func (d *Device) UseProgram(program uint32) { d.record("UseProgram(%d)", program) }

func (d *Device) DeleteProgram(program uint32) { d.record("DeleteProgram(%d)", program) }

// location hands out per-program locations for names declared in one of
// the program's sources.
func (d *Device) location(program uint32, name string) int32 {
	if d.Missing[name] {
		return -1
	}
	declared := false
	for _, sh := range d.attached[program] {
		if strings.Contains(d.sources[sh], " "+name+";") {
			declared = true
		}
	}
	if !declared {
		return -1
	}
	locs := d.locations[program]
	if locs == nil {
		locs = make(map[string]int32)
		d.locations[program] = locs
	}
	loc, ok := locs[name]
	if !ok {
		loc = int32(len(locs))
		locs[name] = loc
	}
	return loc
}

func (d *Device) GetAttribLocation(program uint32, name string) int32 {
	loc := d.location(program, name)
	d.record("GetAttribLocation(%d,%s)=%d", program, name, loc)
	return loc
}

func (d *Device) GetUniformLocation(program uint32, name string) int32 {
	loc := d.location(program, name)
	d.record("GetUniformLocation(%d,%s)=%d", program, name, loc)
	return loc
}

func (d *Device) Uniform1i(loc int32, v int32)   { d.record("Uniform1i(%d,%d)", loc, v) }
func (d *Device) Uniform1ui(loc int32, v uint32) { d.record("Uniform1ui(%d,%d)", loc, v) }
func (d *Device) Uniform1f(loc int32, v float32) { d.record("Uniform1f(%d,%g)", loc, v) }
func (d *Device) Uniform1d(loc int32, v float64) { d.record("Uniform1d(%d,%g)", loc, v) }

func (d *Device) Uniform2f(loc int32, v mgl32.Vec2) { d.record("Uniform2f(%d,%v)", loc, v) }
func (d *Device) Uniform3f(loc int32, v mgl32.Vec3) { d.record("Uniform3f(%d,%v)", loc, v) }
func (d *Device) Uniform4f(loc int32, v mgl32.Vec4) { d.record("Uniform4f(%d,%v)", loc, v) }

func (d *Device) UniformMatrix2fv(loc int32, m mgl32.Mat2) { d.record("UniformMatrix2fv(%d)", loc) }
func (d *Device) UniformMatrix3fv(loc int32, m mgl32.Mat3) { d.record("UniformMatrix3fv(%d)", loc) }

func (d *Device) UniformMatrix4fv(loc int32, m mgl32.Mat4) {
	d.record("UniformMatrix4fv(%d)", loc)
	d.Uniforms[loc] = m
}

func (d *Device) EnableVertexAttrib(vao, vbo uint32, loc uint32, components, stride, offset int) {
	d.record("EnableVertexAttrib(%d,%d,%d,%d,%d,%d)", vao, vbo, loc, components, stride, offset)
}

func (d *Device) GetError() error {
	err := d.PendingError
	d.PendingError = nil
	return err
}

func (d *Device) GenVertexArray() uint32 {
	id := d.id()
	d.record("GenVertexArray()=%d", id)
	return id
}

func (d *Device) GenBuffer() uint32 {
	id := d.id()
	d.record("GenBuffer()=%d", id)
	return id
}

func (d *Device) DeleteVertexArray(vao uint32) { d.record("DeleteVertexArray(%d)", vao) }
func (d *Device) DeleteBuffer(vbo uint32)      { d.record("DeleteBuffer(%d)", vbo) }

func (d *Device) BufferData(vbo uint32, size int, data unsafe.Pointer) {
	d.record("BufferData(%d,%d)", vbo, size)
	d.Uploads[vbo] = size
	if data == nil || size == 0 {
		d.Data[vbo] = nil
		return
	}
	d.Data[vbo] = append([]byte(nil), unsafe.Slice((*byte)(data), size)...)
}

func (d *Device) Viewport(width, height int) {
	d.record("Viewport(%d,%d)", width, height)
	d.ViewportSize = [2]int{width, height}
}

func (d *Device) EnableDepthTest()     { d.record("EnableDepthTest()") }
func (d *Device) EnableAlphaBlending() { d.record("EnableAlphaBlending()") }

func (d *Device) SetCullFace(enabled bool) { d.record("SetCullFace(%t)", enabled) }

func (d *Device) SetWireframe(enabled bool) {
	d.record("SetWireframe(%t)", enabled)
	d.Wireframe = enabled
}

func (d *Device) ClearColor(r, g, b, a float32) { d.record("ClearColor(%g,%g,%g,%g)", r, g, b, a) }
func (d *Device) Clear()                        { d.record("Clear()") }

func (d *Device) DrawTriangles(program, vao uint32, first, count int) {
	d.record("DrawTriangles(%d,%d,%d,%d)", program, vao, first, count)
	d.Draws = append(d.Draws, Draw{Program: program, VAO: vao, First: first, Count: count})
}
