package glfwcontext

import (
	"log/slog"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/segments/events"
)

// Config is what a window is created with.
type Config struct {
	Width, Height int
	Title         string
	// SwapInterval is the number of screen refreshes per buffer swap.
	SwapInterval int
}

var keys = map[glfw.Key]events.Key{
	glfw.KeyEscape:    events.KeyEscape,
	glfw.KeyEnter:     events.KeyEnter,
	glfw.KeySpace:     events.KeySpace,
	glfw.KeyBackspace: events.KeyBackspace,
	glfw.KeyLeft:      events.KeyLeft,
	glfw.KeyRight:     events.KeyRight,
	glfw.KeyUp:        events.KeyUp,
	glfw.KeyDown:      events.KeyDown,
	glfw.KeyF1:        events.KeyF1,
	glfw.KeyF2:        events.KeyF2,
	glfw.KeyF3:        events.KeyF3,
	glfw.KeyF4:        events.KeyF4,
	glfw.KeyF5:        events.KeyF5,
	glfw.KeyF6:        events.KeyF6,
	glfw.KeyF7:        events.KeyF7,
	glfw.KeyF8:        events.KeyF8,
}

var actions = map[glfw.Action]events.Action{
	glfw.Press:   events.Press,
	glfw.Release: events.Release,
	glfw.Repeat:  events.Repeat,
}

// Context is a GLFW window with an OpenGL 4.1 core context. Its callbacks
// translate GLFW input into events.
type Context struct {
	window *glfw.Window
	queue  events.Queue
}

// New creates the window and makes its context current. Call InitGraphics
// first.
func New(cfg Config) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win}
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetScrollCallback(c.glfwScrollCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)

	c.MakeCurrent()
	glfw.SwapInterval(cfg.SwapInterval)
	return c, nil
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k, ok := keys[key]
	if !ok {
		return
	}
	c.queue.Enqueue(events.KeyEvent(k, actions[action]))
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	// GLFW numbers buttons from 0
	c.queue.Enqueue(events.MouseButtonEvent(events.MouseButton(button)+events.MouseButton1, actions[action]))
}

// glfwCursorPosCallback scales window coordinates to framebuffer pixels so
// they match the framebuffer size reported on resize.
func (c *Context) glfwCursorPosCallback(w *glfw.Window, x, y float64) {
	fbWidth, fbHeight := w.GetFramebufferSize()
	winWidth, winHeight := w.GetSize()
	var scaleX, scaleY float64 = 1.0, 1.0
	if winWidth > 0 && winHeight > 0 {
		scaleX = float64(fbWidth) / float64(winWidth)
		scaleY = float64(fbHeight) / float64(winHeight)
	}
	c.queue.Enqueue(events.MouseMoveEvent(x*scaleX, y*scaleY))
}

func (c *Context) glfwScrollCallback(w *glfw.Window, xoff, yoff float64) {
	c.queue.Enqueue(events.ScrollEvent(yoff))
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	c.queue.Enqueue(events.ResizeEvent(width, height))
}

// PollEvents runs the pending GLFW callbacks, filling the event queue.
func (c *Context) PollEvents() {
	glfw.PollEvents()
}

func (c *Context) HaveEvents() bool { return c.queue.HaveEvents() }

func (c *Context) Dequeue() events.Event { return c.queue.Dequeue() }

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	slog.Info("GLFW initialized", "version", glfw.GetVersionString())
	return nil
}

// TerminateGraphics shuts GLFW down. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	slog.Info("GLFW terminated")
}
