// Package resolver compiles and links the programs of a shader.Description
// and resolves their uniform and attribute locations.
//
// Resolution is a strict sequence with no retries:
//
//	Unstarted -> ShadersCompiled -> ProgramsCreated -> Linked -> LocationsResolved
//
// Any failure before LocationsResolved is returned as an error naming the
// offending shader or program. A uniform or attribute missing from its
// linked program is not an error: its handle resolves to -1 and every later
// use of it is a no-op.
package resolver

import (
	"fmt"
	"log/slog"

	"github.com/richinsley/segments/shader"
	"github.com/richinsley/segments/translator"
)

// State is the progress of a resolution.
type State int

const (
	Unstarted State = iota
	ShadersCompiled
	ProgramsCreated
	Linked
	LocationsResolved
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "unstarted"
	case ShadersCompiled:
		return "shaders compiled"
	case ProgramsCreated:
		return "programs created"
	case Linked:
		return "linked"
	case LocationsResolved:
		return "locations resolved"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Translator rewrites a shader source for the target context before it is
// compiled.
type Translator interface {
	Translate(source string, stage shader.Stage) (translator.Result, error)
}

// Set holds the GPU objects and locations created from a description. It
// lives until Delete, normally at process shutdown.
type Set struct {
	gl    GL
	desc  *shader.Description
	state State

	shaders    []uint32
	programs   []uint32
	uniforms   []Uniform
	attributes []Attribute

	// names maps declared identifiers to translated ones, per program.
	names []map[string]string
}

// Resolve builds every program of desc. tr may be nil, in which case sources
// are compiled as written.
func Resolve(gl GL, desc *shader.Description, tr Translator) (*Set, error) {
	if tr == nil {
		tr = translator.Passthrough{}
	}
	s := &Set{
		gl:       gl,
		desc:     desc,
		shaders:  make([]uint32, len(desc.Shaders)),
		programs: make([]uint32, len(desc.Programs)),
		names:    make([]map[string]string, len(desc.Programs)),
	}
	if err := s.resolve(tr); err != nil {
		s.Delete()
		return nil, err
	}
	return s, nil
}

func (s *Set) resolve(tr Translator) error {
	shaderNames, err := s.compileShaders(tr)
	if err != nil {
		return err
	}
	s.state = ShadersCompiled

	for i, p := range s.desc.Programs {
		s.programs[i] = s.gl.CreateProgram()
		if s.programs[i] == 0 {
			return fmt.Errorf("program %q: %w", p.Name, ErrCreateProgram)
		}
	}
	if err := CheckError(s.gl); err != nil {
		return err
	}
	s.state = ProgramsCreated

	for _, l := range s.desc.Links {
		s.gl.AttachShader(s.programs[l.Program], s.shaders[l.Shader])
		for from, to := range shaderNames[l.Shader] {
			if s.names[l.Program] == nil {
				s.names[l.Program] = make(map[string]string)
			}
			s.names[l.Program][from] = to
		}
	}
	if err := CheckError(s.gl); err != nil {
		return err
	}
	for _, program := range s.programs {
		s.gl.LinkProgram(program)
	}
	for i, program := range s.programs {
		if ok, infoLog := s.gl.ProgramLinkStatus(program); !ok {
			return fmt.Errorf("program %q: %w: %s", s.desc.Programs[i].Name, ErrLink, infoLog)
		}
	}
	if err := CheckError(s.gl); err != nil {
		return err
	}
	s.state = Linked

	s.resolveAttributes()
	if err := CheckError(s.gl); err != nil {
		return err
	}
	s.resolveUniforms()
	if err := CheckError(s.gl); err != nil {
		return err
	}
	s.state = LocationsResolved
	slog.Info("shader programs ready", "programs", len(s.programs), "shaders", len(s.shaders))
	return nil
}

// compileShaders creates, sources and compiles every shader, returning the
// translator's name maps indexed by shader.
func (s *Set) compileShaders(tr Translator) ([]map[string]string, error) {
	names := make([]map[string]string, len(s.desc.Shaders))
	for i, info := range s.desc.Shaders {
		source, err := info.Source.Load()
		if err != nil {
			return nil, fmt.Errorf("shader %q: %w: %w", info.Name, ErrSource, err)
		}
		translated, err := tr.Translate(source, info.Stage)
		if err != nil {
			return nil, fmt.Errorf("shader %q: %w: %w", info.Name, ErrTranslate, err)
		}
		names[i] = translated.Names

		s.shaders[i] = s.gl.CreateShader(info.Stage)
		s.gl.ShaderSource(s.shaders[i], translated.Code)
		s.gl.CompileShader(s.shaders[i])
		if ok, infoLog := s.gl.ShaderCompileStatus(s.shaders[i]); !ok {
			return nil, fmt.Errorf("shader %q: %w: %s", info.Name, ErrCompile, infoLog)
		}
	}
	if err := CheckError(s.gl); err != nil {
		return nil, err
	}
	return names, nil
}

// glslName returns the identifier name has in the compiled program.
func (s *Set) glslName(program shader.ProgramKind, name string) string {
	if mapped, ok := s.names[program][name]; ok {
		return mapped
	}
	return name
}

func (s *Set) resolveAttributes() {
	s.attributes = make([]Attribute, len(s.desc.Attributes))
	for i, d := range s.desc.Attributes {
		loc := s.gl.GetAttribLocation(s.programs[d.Program], s.glslName(d.Program, d.Name))
		if loc == -1 {
			slog.Warn("attribute not available", "program", s.desc.ProgramName(d.Program), "attribute", d.Name)
		}
		s.attributes[i] = Attribute{gl: s.gl, location: loc, program: s.desc.ProgramName(d.Program), desc: d}
	}
}

func (s *Set) resolveUniforms() {
	s.uniforms = make([]Uniform, len(s.desc.Uniforms))
	for i, d := range s.desc.Uniforms {
		loc := s.gl.GetUniformLocation(s.programs[d.Program], s.glslName(d.Program, d.Name))
		if loc == -1 {
			slog.Warn("uniform not available", "program", s.desc.ProgramName(d.Program), "uniform", d.Name)
		}
		s.uniforms[i] = Uniform{gl: s.gl, program: s.programs[d.Program], location: loc, desc: d}
	}
}

// State returns how far resolution got.
func (s *Set) State() State { return s.state }

// Program returns the GL program object of p.
func (s *Set) Program(p shader.ProgramKind) uint32 { return s.programs[p] }

// Shader returns the GL shader object of k.
func (s *Set) Shader(k shader.ShaderKind) uint32 { return s.shaders[k] }

func (s *Set) Uniform(u shader.UniformKind) Uniform { return s.uniforms[u] }

func (s *Set) Attribute(a shader.AttributeKind) Attribute { return s.attributes[a] }

// Delete releases every program and shader created so far.
func (s *Set) Delete() {
	for i, p := range s.programs {
		if p != 0 {
			s.gl.DeleteProgram(p)
			s.programs[i] = 0
		}
	}
	for i, sh := range s.shaders {
		if sh != 0 {
			s.gl.DeleteShader(sh)
			s.shaders[i] = 0
		}
	}
}
