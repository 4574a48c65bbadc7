package shader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableIsValid(t *testing.T) {
	require.NoError(t, Default.Validate())
	assert.Len(t, Default.Programs, int(NumPrograms))
	assert.Len(t, Default.Shaders, int(NumShaders))
	assert.Len(t, Default.Uniforms, int(NumUniforms))
	assert.Len(t, Default.Attributes, int(NumAttributes))
}

func TestDefaultSourcesDeclareTheirNames(t *testing.T) {
	sources := make(map[ProgramKind]string)
	for _, l := range Default.Links {
		sources[l.Program] += Default.Shaders[l.Shader].Source.Text
	}
	for _, u := range Default.Uniforms {
		assert.Contains(t, sources[u.Program], "uniform "+u.Type.String()+" "+u.Name+";",
			"program %s", u.Program)
	}
	for _, a := range Default.Attributes {
		assert.Contains(t, sources[a.Program], "in "+a.Type.String()+" "+a.Name+";",
			"program %s", a.Program)
	}
}

func TestScreenTransformsCoverEveryProgram(t *testing.T) {
	seen := make(map[ProgramKind]bool)
	for _, u := range ScreenTransforms {
		d := Default.Uniforms[u]
		assert.Equal(t, "screenTransform", d.Name)
		assert.Equal(t, TypeMat4, d.Type)
		seen[d.Program] = true
	}
	assert.Len(t, seen, int(NumPrograms))
}

func TestValidateReportsBrokenTables(t *testing.T) {
	d := &Description{
		Programs: []ProgramInfo{{Name: "p"}},
		Shaders:  []ShaderInfo{{Name: "p_vert", Stage: StageVertex}},
		Links: []LinkEdge{
			{Program: 0, Shader: 0},
			{Program: 3, Shader: 0},
			{Program: 0, Shader: 9},
		},
		Uniforms: []UniformDescriptor{
			{Program: 0, Type: TypeMat4, Name: "m"},
			{Program: 0, Type: TypeMat4, Name: "m"},
		},
		Attributes: []AttributeDescriptor{{Program: 7, Type: TypeVec2, Name: "a"}},
	}
	err := d.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "program index 3 out of range")
	assert.Contains(t, msg, "shader index 9 out of range")
	assert.Contains(t, msg, `program "p": links 1 vertex and 0 fragment shaders`)
	assert.Contains(t, msg, `uniform "p.m" declared twice`)
	assert.Contains(t, msg, `attribute "a": program index 7 out of range`)
}

func TestWithSourceDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arc.frag"), []byte("void main() {}"), 0o644))

	d := Default.WithSourceDir(dir)
	assert.Equal(t, filepath.Join(dir, "line.vert"), d.Shaders[ShaderLineVert].Source.Path)
	assert.Equal(t, filepath.Join(dir, "v3.frag"), d.Shaders[ShaderV3Frag].Source.Path)
	assert.Empty(t, Default.Shaders[ShaderLineVert].Source.Path, "default table must not change")

	text, err := d.Shaders[ShaderArcFrag].Source.Load()
	require.NoError(t, err)
	assert.Equal(t, "void main() {}", text)

	_, err = d.Shaders[ShaderArcVert].Source.Load()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "arc.vert"))
}

func TestValueTypeComponents(t *testing.T) {
	assert.Equal(t, 1, TypeFloat.Components())
	assert.Equal(t, 3, TypeVec3.Components())
	assert.Equal(t, 16, TypeMat4.Components())
	assert.Equal(t, "mat3", TypeMat3.String())
	assert.Equal(t, "fragment", StageFragment.String())
	assert.Equal(t, "circle", ProgramCircle.String())
}
