package resolver

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/segments/shader"
)

// GL is the subset of the OpenGL API needed to build programs and feed
// their inputs. Object names and locations follow the GL conventions: 0 is
// never a valid object and -1 is an unavailable location.
type GL interface {
	CreateShader(stage shader.Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	// ShaderCompileStatus reports whether the last compile succeeded and
	// returns the info log.
	ShaderCompileStatus(shader uint32) (bool, string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinkStatus(program uint32) (bool, string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32

	Uniform1i(location int32, v int32)
	Uniform1ui(location int32, v uint32)
	Uniform1f(location int32, v float32)
	Uniform1d(location int32, v float64)
	Uniform2f(location int32, v mgl32.Vec2)
	Uniform3f(location int32, v mgl32.Vec3)
	Uniform4f(location int32, v mgl32.Vec4)
	UniformMatrix2fv(location int32, m mgl32.Mat2)
	UniformMatrix3fv(location int32, m mgl32.Mat3)
	UniformMatrix4fv(location int32, m mgl32.Mat4)

	// EnableVertexAttrib enables location on vao and points it at float
	// data in vbo.
	EnableVertexAttrib(vao, vbo uint32, location uint32, components, stride, offset int)

	// GetError returns the pending GL error, or nil.
	GetError() error
}

var (
	ErrSource        = errors.New("shader source unavailable")
	ErrTranslate     = errors.New("shader translation failed")
	ErrCompile       = errors.New("shader failed to compile")
	ErrCreateProgram = errors.New("glCreateProgram() failed")
	ErrLink          = errors.New("program failed to link")
	ErrGL            = errors.New("GL error")
)

// CheckError turns a pending GL error into an error naming the caller's
// file and line.
func CheckError(gl GL) error {
	err := gl.GetError()
	if err == nil {
		return nil
	}
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "?", 0
	}
	return fmt.Errorf("in %s line %d: %w %v", filepath.Base(file), line, ErrGL, err)
}
