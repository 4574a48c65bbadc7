package graphics

import "github.com/richinsley/segments/events"

// Surface is the presentation side of a window with an OpenGL context.
type Surface interface {
	MakeCurrent()
	// SwapBuffers presents the frame, blocking until the next one may be
	// drawn when a swap interval is set.
	SwapBuffers()
	ShouldClose() bool
	GetFramebufferSize() (int, int)
	Shutdown()
}

// EventSource delivers input events. PollEvents never blocks.
type EventSource interface {
	PollEvents()
	HaveEvents() bool
	// Dequeue returns the oldest pending event. It panics when HaveEvents
	// is false.
	Dequeue() events.Event
}

// Context defines the interface for an OpenGL window the scene draws into.
type Context interface {
	Surface
	EventSource
}
