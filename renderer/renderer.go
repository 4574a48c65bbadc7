// Package renderer runs the interactive scene: it turns input events into
// draw state changes, keeps the GPU vertex buffers in step with the
// geometry builder and issues the draw calls of every frame.
package renderer

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/segments/events"
	"github.com/richinsley/segments/geometry"
	"github.com/richinsley/segments/graphics"
	"github.com/richinsley/segments/growbuf"
	"github.com/richinsley/segments/resolver"
	"github.com/richinsley/segments/shader"
)

// Device is the GL API the renderer draws with.
type Device interface {
	resolver.GL

	GenVertexArray() uint32
	GenBuffer() uint32
	DeleteVertexArray(vao uint32)
	DeleteBuffer(vbo uint32)
	// BufferData replaces the contents of vbo with size bytes at data,
	// hinting that they change every frame.
	BufferData(vbo uint32, size int, data unsafe.Pointer)

	Viewport(width, height int)
	EnableDepthTest()
	EnableAlphaBlending()
	SetCullFace(enabled bool)
	SetWireframe(enabled bool)
	ClearColor(r, g, b, a float32)
	// Clear clears the color and depth buffers.
	Clear()
	DrawTriangles(program, vao uint32, first, count int)
}

// Config holds the tunables of the scene.
type Config struct {
	ZoomMin, ZoomMax float32
	// Color is the color of strokes.
	Color mgl32.Vec3
	Mesh  geometry.Mesh
}

func DefaultConfig() Config {
	return Config{
		ZoomMin: 1,
		ZoomMax: 3,
		Color:   geometry.AccentColor,
		Mesh:    geometry.MeshTorus,
	}
}

// Renderer owns the scene. Every method must be called on the thread the
// GL context is current on.
type Renderer struct {
	device  Device
	context graphics.Context
	shaders *resolver.Set
	config  Config

	builder *geometry.Builder
	state   DrawState

	vaos [shader.NumPrograms]uint32
	vbos [shader.NumPrograms]uint32
}

type attributeOffset struct {
	attribute shader.AttributeKind
	offset    uintptr
}

// New builds the mesh, creates a vertex array and buffer per program and
// sets up the fixed GL state.
func New(device Device, ctx graphics.Context, shaders *resolver.Set, cfg Config) (*Renderer, error) {
	r := &Renderer{
		device:  device,
		context: ctx,
		shaders: shaders,
		config:  cfg,
		builder: geometry.NewBuilder(),
	}
	r.builder.Color = cfg.Color
	r.builder.AddMesh(cfg.Mesh)

	r.state.Zoom = mgl32.Clamp(1, cfg.ZoomMin, cfg.ZoomMax)
	r.state.Width, r.state.Height = ctx.GetFramebufferSize()

	for p := range r.vaos {
		r.vaos[p] = device.GenVertexArray()
		r.vbos[p] = device.GenBuffer()
	}

	var lv geometry.LineVertex
	r.enable(shader.ProgramLine, unsafe.Sizeof(lv),
		attributeOffset{shader.AttributeLinePosition, unsafe.Offsetof(lv.Position)},
		attributeOffset{shader.AttributeLineNormal, unsafe.Offsetof(lv.Normal)},
		attributeOffset{shader.AttributeLineColor, unsafe.Offsetof(lv.Color)},
	)
	var cv geometry.CircleVertex
	r.enable(shader.ProgramCircle, unsafe.Sizeof(cv),
		attributeOffset{shader.AttributeCircleCenterPoint, unsafe.Offsetof(cv.CenterPoint)},
		attributeOffset{shader.AttributeCircleDiff, unsafe.Offsetof(cv.Diff)},
		attributeOffset{shader.AttributeCircleColor, unsafe.Offsetof(cv.Color)},
		attributeOffset{shader.AttributeCircleRadius, unsafe.Offsetof(cv.Radius)},
	)
	var av geometry.ArcVertex
	r.enable(shader.ProgramArc, unsafe.Sizeof(av),
		attributeOffset{shader.AttributeArcStartPoint, unsafe.Offsetof(av.StartPoint)},
		attributeOffset{shader.AttributeArcCenterPoint, unsafe.Offsetof(av.CenterPoint)},
		attributeOffset{shader.AttributeArcPosition, unsafe.Offsetof(av.Position)},
		attributeOffset{shader.AttributeArcColor, unsafe.Offsetof(av.Color)},
		attributeOffset{shader.AttributeArcDiffAngle, unsafe.Offsetof(av.DiffAngle)},
		attributeOffset{shader.AttributeArcRadius, unsafe.Offsetof(av.Radius)},
	)
	var vv geometry.V3Vertex
	r.enable(shader.ProgramV3, unsafe.Sizeof(vv),
		attributeOffset{shader.AttributeV3Position, unsafe.Offsetof(vv.Position)},
		attributeOffset{shader.AttributeV3Normal, unsafe.Offsetof(vv.Normal)},
		attributeOffset{shader.AttributeV3Color, unsafe.Offsetof(vv.Color)},
	)

	device.EnableDepthTest()
	device.EnableAlphaBlending()
	device.Viewport(r.state.Width, r.state.Height)
	if err := resolver.CheckError(device); err != nil {
		r.deleteBuffers()
		return nil, fmt.Errorf("failed to set up vertex buffers: %w", err)
	}
	slog.Info("scene ready", "mesh", cfg.Mesh, "vertices", r.builder.Meshes.Len(),
		"width", r.state.Width, "height", r.state.Height)
	return r, nil
}

func (r *Renderer) enable(p shader.ProgramKind, stride uintptr, attrs ...attributeOffset) {
	for _, a := range attrs {
		r.shaders.Attribute(a.attribute).Enable(r.vaos[p], r.vbos[p], int(stride), int(a.offset))
	}
}

// State returns the draw state.
func (r *Renderer) State() *DrawState { return &r.state }

// Builder returns the geometry builder holding the scene's vertices.
func (r *Renderer) Builder() *geometry.Builder { return r.builder }

// HandleEvent applies one input event.
func (r *Renderer) HandleEvent(e events.Event) {
	slog.Debug("event", "event", e)
	switch e.Kind {
	case events.KindKey:
		if e.Action == events.Release {
			return
		}
		r.handleKey(e.Key, e.Action)
	case events.KindMouseButton:
		if e.Button == events.MouseButton1 && e.Action == events.Press {
			r.builder.LineTo(r.state.Mouse)
		}
	case events.KindMouseMove:
		r.state.SetCursor(e.X, e.Y)
	case events.KindScroll:
		r.state.AddZoom(float32(e.Amount), r.config.ZoomMin, r.config.ZoomMax)
	case events.KindResize:
		r.state.Width, r.state.Height = e.Width, e.Height
		r.device.Viewport(e.Width, e.Height)
		slog.Info("window resized", "width", e.Width, "height", e.Height)
	}
}

// handleKey runs the action bound to k. Toggles fire on press only, camera
// rotation on press and repeat.
func (r *Renderer) handleKey(k events.Key, action events.Action) {
	switch k {
	case events.KeyEscape:
		r.state.Quit = true
	case events.KeySpace:
		if action == events.Press {
			r.builder.Obtuse = !r.builder.Obtuse
		}
	case events.KeyBackspace:
		if action == events.Press {
			r.device.SetWireframe(r.state.NextMode() == Line)
		}
	case events.KeyLeft:
		r.state.Yaw = addModulo2Pi(r.state.Yaw, rotationStep)
	case events.KeyRight:
		r.state.Yaw = subModulo2Pi(r.state.Yaw, rotationStep)
	case events.KeyUp:
		r.state.Pitch = addModulo2Pi(r.state.Pitch, rotationStep)
	case events.KeyDown:
		r.state.Pitch = subModulo2Pi(r.state.Pitch, rotationStep)
	}
}

// Frame drains pending events and draws one frame, unless an event asked the
// scene to quit.
func (r *Renderer) Frame() error {
	r.context.PollEvents()
	for r.context.HaveEvents() {
		r.HandleEvent(r.context.Dequeue())
	}
	if r.state.Quit {
		return nil
	}

	r.builder.AppendLive(r.state.Mouse)
	err := r.draw()
	r.builder.RetractLive()
	if err != nil {
		return err
	}
	r.context.SwapBuffers()
	return nil
}

func (r *Renderer) draw() error {
	upload(r.device, r.vbos[shader.ProgramLine], r.builder.Lines)
	upload(r.device, r.vbos[shader.ProgramCircle], r.builder.Circles)
	upload(r.device, r.vbos[shader.ProgramArc], r.builder.Arcs)
	upload(r.device, r.vbos[shader.ProgramV3], r.builder.Meshes)
	if err := resolver.CheckError(r.device); err != nil {
		return err
	}

	r.device.ClearColor(0, 0, 0, 1)
	r.device.Clear()

	transform := r.state.ScreenTransform()
	for _, u := range shader.ScreenTransforms {
		r.shaders.Uniform(u).SetMat4(transform)
	}

	r.device.SetCullFace(false)
	r.drawProgram(shader.ProgramLine, r.builder.Lines.Len())
	r.drawProgram(shader.ProgramCircle, r.builder.Circles.Len())
	r.drawProgram(shader.ProgramArc, r.builder.Arcs.Len())
	r.drawProgram(shader.ProgramV3, r.builder.Meshes.Len())
	return resolver.CheckError(r.device)
}

func (r *Renderer) drawProgram(p shader.ProgramKind, count int) {
	r.device.DrawTriangles(r.shaders.Program(p), r.vaos[p], 0, count)
}

func upload[T any](device Device, vbo uint32, b *growbuf.Buffer[T]) {
	data := b.Slice()
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = unsafe.Pointer(&data[0])
	}
	var zero T
	device.BufferData(vbo, len(data)*int(unsafe.Sizeof(zero)), ptr)
}

// Run draws frames until Escape is pressed or the window is closed.
func (r *Renderer) Run() error {
	slog.Info("starting interactive render loop")
	for !r.state.Quit && !r.context.ShouldClose() {
		if err := r.Frame(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) deleteBuffers() {
	for p := range r.vaos {
		r.device.DeleteBuffer(r.vbos[p])
		r.device.DeleteVertexArray(r.vaos[p])
	}
}

// Shutdown releases the vertex arrays, buffers and shader programs. The
// window is left to its owner.
func (r *Renderer) Shutdown() {
	r.deleteBuffers()
	r.shaders.Delete()
}
