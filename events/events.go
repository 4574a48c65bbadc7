// Package events defines the input events the scene reacts to and the
// bounded queue a windowing backend delivers them through.
package events

import "fmt"

// Kind discriminates the payload of an Event.
type Kind int

const (
	KindKey Kind = iota
	KindMouseButton
	KindMouseMove
	KindScroll
	KindResize
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindMouseButton:
		return "mouse-button"
	case KindMouseMove:
		return "mouse-move"
	case KindScroll:
		return "scroll"
	case KindResize:
		return "resize"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Key is a keyboard key known to the scene. Keys the backend cannot map are
// not delivered.
type Key int

const (
	KeyEscape Key = iota + 1
	KeyEnter
	KeySpace
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
)

var keyNames = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeySpace:     "space",
	KeyBackspace: "backspace",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Action is what happened to a key or button.
type Action int

const (
	Press Action = iota
	Release
	Repeat
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Release:
		return "release"
	case Repeat:
		return "repeat"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// MouseButton numbers buttons from 1, the primary button.
type MouseButton int

const (
	MouseButton1 MouseButton = iota + 1
	MouseButton2
	MouseButton3
)

// Event is one input event. Which fields are meaningful depends on Kind.
type Event struct {
	Kind Kind

	// KindKey and KindMouseButton
	Key    Key
	Button MouseButton
	Action Action

	// KindMouseMove, in framebuffer pixels from the top left corner
	X, Y float64

	// KindScroll, positive away from the user
	Amount float64

	// KindResize, framebuffer size in pixels
	Width, Height int
}

func KeyEvent(k Key, a Action) Event {
	return Event{Kind: KindKey, Key: k, Action: a}
}

func MouseButtonEvent(b MouseButton, a Action) Event {
	return Event{Kind: KindMouseButton, Button: b, Action: a}
}

func MouseMoveEvent(x, y float64) Event {
	return Event{Kind: KindMouseMove, X: x, Y: y}
}

func ScrollEvent(amount float64) Event {
	return Event{Kind: KindScroll, Amount: amount}
}

func ResizeEvent(width, height int) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

func (e Event) String() string {
	switch e.Kind {
	case KindKey:
		return fmt.Sprintf("key %v %v", e.Key, e.Action)
	case KindMouseButton:
		return fmt.Sprintf("mouse-button %d %v", e.Button, e.Action)
	case KindMouseMove:
		return fmt.Sprintf("mouse-move %g,%g", e.X, e.Y)
	case KindScroll:
		return fmt.Sprintf("scroll %g", e.Amount)
	case KindResize:
		return fmt.Sprintf("resize %dx%d", e.Width, e.Height)
	}
	return e.Kind.String()
}
