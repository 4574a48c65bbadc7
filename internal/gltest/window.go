package gltest

import "github.com/richinsley/segments/events"

// Window stands in for a GLFW window. Events pushed with Push are delivered
// by the next PollEvents.
type Window struct {
	Width, Height int
	Swaps         int
	Polls         int
	Closed        bool
	ShutDown      bool

	pending []events.Event
	queue   events.Queue
}

func NewWindow(width, height int) *Window {
	return &Window{Width: width, Height: height}
}

// Push schedules events for the next poll.
func (w *Window) Push(evs ...events.Event) {
	w.pending = append(w.pending, evs...)
}

func (w *Window) PollEvents() {
	w.Polls++
	for _, e := range w.pending {
		w.queue.Enqueue(e)
	}
	w.pending = w.pending[:0]
}

func (w *Window) HaveEvents() bool               { return w.queue.HaveEvents() }
func (w *Window) Dequeue() events.Event          { return w.queue.Dequeue() }
func (w *Window) Dropped() uint64                { return w.queue.Dropped() }
func (w *Window) MakeCurrent()                   {}
func (w *Window) SwapBuffers()                   { w.Swaps++ }
func (w *Window) ShouldClose() bool              { return w.Closed }
func (w *Window) Shutdown()                      { w.ShutDown = true }
func (w *Window) GetFramebufferSize() (int, int) { return w.Width, w.Height }
