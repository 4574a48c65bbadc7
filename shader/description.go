// Package shader holds the static description of every GPU program the
// application draws with: the programs, their shader stages and sources,
// which shaders link into which program, and the uniforms and attributes
// each program exposes. The description is plain data; turning it into live
// GPU objects is the job of package resolver.
package shader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Stage is the pipeline stage a shader compiles for.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// ext is the file extension used for sources loaded from a directory.
func (s Stage) ext() string {
	if s == StageVertex {
		return ".vert"
	}
	return ".frag"
}

// ValueType is the GLSL type of a uniform or attribute.
type ValueType int

const (
	TypeBool ValueType = iota
	TypeInt
	TypeUint
	TypeFloat
	TypeDouble
	TypeVec2
	TypeVec3
	TypeVec4
	TypeMat2
	TypeMat3
	TypeMat4
)

var valueTypeNames = [...]string{
	TypeBool:   "bool",
	TypeInt:    "int",
	TypeUint:   "uint",
	TypeFloat:  "float",
	TypeDouble: "double",
	TypeVec2:   "vec2",
	TypeVec3:   "vec3",
	TypeVec4:   "vec4",
	TypeMat2:   "mat2",
	TypeMat3:   "mat3",
	TypeMat4:   "mat4",
}

func (t ValueType) String() string {
	if t >= 0 && int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return fmt.Sprintf("ValueType(%d)", int(t))
}

// Components returns the number of scalar components of t.
func (t ValueType) Components() int {
	switch t {
	case TypeVec2:
		return 2
	case TypeVec3:
		return 3
	case TypeVec4, TypeMat2:
		return 4
	case TypeMat3:
		return 9
	case TypeMat4:
		return 16
	}
	return 1
}

// Source is the text of a shader, given inline or as a path read at startup.
type Source struct {
	Text string
	Path string
}

// Load returns the source text, reading Path when it is set.
func (s Source) Load() (string, error) {
	if s.Path == "" {
		return s.Text, nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader source %q: %w", s.Path, err)
	}
	return string(data), nil
}

type ProgramInfo struct {
	Name string
}

type ShaderInfo struct {
	Name   string
	Stage  Stage
	Source Source
}

// LinkEdge attaches a shader to a program before linking.
type LinkEdge struct {
	Program ProgramKind
	Shader  ShaderKind
}

type UniformDescriptor struct {
	Program ProgramKind
	Type    ValueType
	Name    string
}

type AttributeDescriptor struct {
	Program ProgramKind
	Type    ValueType
	Name    string
}

// Description is the complete shader table. Programs, Shaders, Uniforms and
// Attributes are indexed by their kind enums.
type Description struct {
	Programs   []ProgramInfo
	Shaders    []ShaderInfo
	Links      []LinkEdge
	Uniforms   []UniformDescriptor
	Attributes []AttributeDescriptor
}

// Validate checks the structural invariants of d: every link edge and
// descriptor refers to an existing program or shader, every program links
// exactly one vertex and one fragment shader, and names are unique within a
// program.
func (d *Description) Validate() error {
	var errs []error
	stages := make([][2]int, len(d.Programs))
	for i, l := range d.Links {
		if int(l.Program) < 0 || int(l.Program) >= len(d.Programs) {
			errs = append(errs, fmt.Errorf("link %d: program index %d out of range", i, l.Program))
			continue
		}
		if int(l.Shader) < 0 || int(l.Shader) >= len(d.Shaders) {
			errs = append(errs, fmt.Errorf("link %d: shader index %d out of range", i, l.Shader))
			continue
		}
		st := d.Shaders[l.Shader].Stage
		if st != StageVertex && st != StageFragment {
			errs = append(errs, fmt.Errorf("shader %q: unknown stage %v", d.Shaders[l.Shader].Name, st))
			continue
		}
		stages[l.Program][st]++
	}
	for i, p := range d.Programs {
		if stages[i][StageVertex] != 1 || stages[i][StageFragment] != 1 {
			errs = append(errs, fmt.Errorf("program %q: links %d vertex and %d fragment shaders, want 1 and 1",
				p.Name, stages[i][StageVertex], stages[i][StageFragment]))
		}
	}
	check := func(what string, program ProgramKind, name string, seen map[string]bool) {
		if int(program) < 0 || int(program) >= len(d.Programs) {
			errs = append(errs, fmt.Errorf("%s %q: program index %d out of range", what, name, program))
			return
		}
		key := d.Programs[program].Name + "." + name
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s %q declared twice", what, key))
		}
		seen[key] = true
	}
	seen := make(map[string]bool)
	for _, u := range d.Uniforms {
		check("uniform", u.Program, u.Name, seen)
	}
	seen = make(map[string]bool)
	for _, a := range d.Attributes {
		check("attribute", a.Program, a.Name, seen)
	}
	return errors.Join(errs...)
}

// WithSourceDir returns a copy of d whose shaders are read from dir, named
// after their program and stage ("line.vert", "line.frag", ...).
func (d *Description) WithSourceDir(dir string) *Description {
	out := *d
	out.Shaders = append([]ShaderInfo(nil), d.Shaders...)
	for _, l := range d.Links {
		s := &out.Shaders[l.Shader]
		s.Source = Source{Path: filepath.Join(dir, d.Programs[l.Program].Name+s.Stage.ext())}
	}
	return &out
}

// ProgramName returns the name of program p, or a placeholder when p is out
// of range.
func (d *Description) ProgramName(p ProgramKind) string {
	if int(p) >= 0 && int(p) < len(d.Programs) {
		return d.Programs[p].Name
	}
	return fmt.Sprintf("program#%d", int(p))
}
