package options

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/segments/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *Options {
	t.Helper()
	o, err := Parse("segments", args, io.Discard)
	require.NoError(t, err)
	return o
}

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "segments.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	o := parse(t)
	assert.Equal(t, 800, *o.Width)
	assert.Equal(t, 600, *o.Height)
	assert.True(t, *o.Translate)
	assert.Equal(t, "torus", *o.Mesh)
	assert.Equal(t, 1, *o.SwapInterval)
	require.NoError(t, o.Validate())

	cfg := o.Scene()
	assert.Equal(t, float32(1), cfg.ZoomMin)
	assert.Equal(t, float32(3), cfg.ZoomMax)
	assert.Equal(t, geometry.MeshTorus, cfg.Mesh)
	assert.True(t, cfg.Color.ApproxEqualThreshold(geometry.AccentColor, 1e-6), "%v", cfg.Color)
}

func TestFlags(t *testing.T) {
	o := parse(t, "-width", "1024", "-mesh", "sphere", "-zoom-min", "0.25", "-line-color", "#ff0000", "-translate=false")
	assert.Equal(t, 1024, *o.Width)
	assert.False(t, *o.Translate)
	require.NoError(t, o.Validate())

	cfg := o.Scene()
	assert.Equal(t, geometry.MeshSphere, cfg.Mesh)
	assert.Equal(t, float32(0.25), cfg.ZoomMin)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, cfg.Color)
}

func TestUnknownFlag(t *testing.T) {
	_, err := Parse("segments", []string{"-shader", "XlSSzV"}, io.Discard)
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := writeConfig(t, "width: 1280\nheight: 720\nmesh: none\nzoom-max: 5\nline-color: \"#00ff00\"\n")
	o := parse(t, "-config", path, "-height", "900")

	assert.Equal(t, 1280, *o.Width)
	// explicit flags win over the file
	assert.Equal(t, 900, *o.Height)
	assert.Equal(t, "none", *o.Mesh)
	assert.Equal(t, 5.0, *o.ZoomMax)
	// keys absent from the file keep their defaults
	assert.Equal(t, 1.0, *o.ZoomMin)
	assert.True(t, *o.Translate)
	require.NoError(t, o.Validate())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, o.Scene().Color)
}

func TestConfigFileErrors(t *testing.T) {
	_, err := Parse("segments", []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeConfig(t, "width: [1, 2\n")
	_, err = Parse("segments", []string{"-config", path}, io.Discard)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"size", []string{"-width", "0"}, "window size 0x600"},
		{"zoom-min", []string{"-zoom-min", "0"}, "zoom-min 0 must be positive"},
		{"zoom order", []string{"-zoom-min", "2", "-zoom-max", "1"}, "zoom-min 2 is above zoom-max 1"},
		{"mesh", []string{"-mesh", "cube"}, `unknown mesh "cube"`},
		{"color", []string{"-line-color", "teal"}, `line-color "teal"`},
		{"swap", []string{"-swap-interval", "-1"}, "swap-interval -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parse(t, tt.args...).Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPrintDefaults(t *testing.T) {
	var out strings.Builder
	o, err := Parse("segments", []string{"-help"}, &out)
	require.NoError(t, err)
	assert.True(t, *o.Help)
	o.PrintDefaults()
	assert.Contains(t, out.String(), "-zoom-max")
}
