// Package options holds the command line and config file settings.
package options

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/richinsley/segments/geometry"
	"github.com/richinsley/segments/renderer"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Help         *bool
	Width        *int
	Height       *int
	Title        *string
	Config       *string // YAML file with defaults for the other options
	ShaderDir    *string // directory with <program>.vert and .frag files replacing the built in sources
	Translate    *bool   // translate shaders to desktop GLSL before compiling
	Mesh         *string
	ZoomMin      *float64
	ZoomMax      *float64
	LineColor    *string
	SwapInterval *int
	Verbose      *bool

	flags *flag.FlagSet
}

// fileOptions is the config file layout. Absent keys leave the option
// alone.
type fileOptions struct {
	Width        *int     `yaml:"width"`
	Height       *int     `yaml:"height"`
	Title        *string  `yaml:"title"`
	ShaderDir    *string  `yaml:"shaderdir"`
	Translate    *bool    `yaml:"translate"`
	Mesh         *string  `yaml:"mesh"`
	ZoomMin      *float64 `yaml:"zoom-min"`
	ZoomMax      *float64 `yaml:"zoom-max"`
	LineColor    *string  `yaml:"line-color"`
	SwapInterval *int     `yaml:"swap-interval"`
	Verbose      *bool    `yaml:"verbose"`
}

// Parse parses args, the command line without the program name. Settings
// from the -config file apply unless the same flag is given explicitly.
func Parse(name string, args []string, output io.Writer) (*Options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	o := &Options{
		Help:         fs.Bool("help", false, "Show help message"),
		Width:        fs.Int("width", 800, "Width of the window"),
		Height:       fs.Int("height", 600, "Height of the window"),
		Title:        fs.String("title", "segments", "Window title"),
		Config:       fs.String("config", "", "YAML config file"),
		ShaderDir:    fs.String("shaderdir", "", "Load <program>.vert/.frag shader sources from this directory"),
		Translate:    fs.Bool("translate", true, "Translate shaders to desktop GLSL 4.10 before compiling"),
		Mesh:         fs.String("mesh", "torus", "3D mesh to draw: torus, sphere or none"),
		ZoomMin:      fs.Float64("zoom-min", 1, "Minimum zoom factor"),
		ZoomMax:      fs.Float64("zoom-max", 3, "Maximum zoom factor"),
		LineColor:    fs.String("line-color", "#66cccc", "Stroke color as #rrggbb"),
		SwapInterval: fs.Int("swap-interval", 1, "Screen refreshes per buffer swap, 0 to disable vsync"),
		Verbose:      fs.Bool("verbose", false, "Log every input event"),
		flags:        fs,
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *o.Config != "" {
		set := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if err := o.load(*o.Config, set); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *Options) load(path string, set map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	var f fileOptions
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	apply(set, "width", o.Width, f.Width)
	apply(set, "height", o.Height, f.Height)
	apply(set, "title", o.Title, f.Title)
	apply(set, "shaderdir", o.ShaderDir, f.ShaderDir)
	apply(set, "translate", o.Translate, f.Translate)
	apply(set, "mesh", o.Mesh, f.Mesh)
	apply(set, "zoom-min", o.ZoomMin, f.ZoomMin)
	apply(set, "zoom-max", o.ZoomMax, f.ZoomMax)
	apply(set, "line-color", o.LineColor, f.LineColor)
	apply(set, "swap-interval", o.SwapInterval, f.SwapInterval)
	apply(set, "verbose", o.Verbose, f.Verbose)
	return nil
}

func apply[T any](set map[string]bool, name string, dst, src *T) {
	if src != nil && !set[name] {
		*dst = *src
	}
}

// PrintDefaults writes the flag usage to the parse output.
func (o *Options) PrintDefaults() { o.flags.PrintDefaults() }

// Validate reports every invalid setting.
func (o *Options) Validate() error {
	var errs []error
	if *o.Width <= 0 || *o.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", *o.Width, *o.Height))
	}
	if *o.ZoomMin <= 0 {
		errs = append(errs, fmt.Errorf("zoom-min %g must be positive", *o.ZoomMin))
	}
	if *o.ZoomMin > *o.ZoomMax {
		errs = append(errs, fmt.Errorf("zoom-min %g is above zoom-max %g", *o.ZoomMin, *o.ZoomMax))
	}
	if *o.SwapInterval < 0 {
		errs = append(errs, fmt.Errorf("swap-interval %d is negative", *o.SwapInterval))
	}
	if _, err := geometry.ParseMesh(*o.Mesh); err != nil {
		errs = append(errs, err)
	}
	if _, err := o.Color(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Color returns the stroke color.
func (o *Options) Color() (mgl32.Vec3, error) {
	c, err := colorful.Hex(*o.LineColor)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("line-color %q: %w", *o.LineColor, err)
	}
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}, nil
}

// Scene returns the renderer configuration. Call Validate first.
func (o *Options) Scene() renderer.Config {
	cfg := renderer.DefaultConfig()
	cfg.ZoomMin = float32(*o.ZoomMin)
	cfg.ZoomMax = float32(*o.ZoomMax)
	if c, err := o.Color(); err == nil {
		cfg.Color = c
	}
	if m, err := geometry.ParseMesh(*o.Mesh); err == nil {
		cfg.Mesh = m
	}
	return cfg
}
