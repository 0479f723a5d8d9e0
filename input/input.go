// Package input defines the window-independent event stream consumed by the game.
package input

import (
	"fmt"
	"strings"
)

// Kind classifies an input event.
type Kind uint8

const (
	KindNone            Kind = iota
	Closed                   // Window close request
	KeyPressed               // Key went down this frame
	MouseButtonPressed       // Mouse button went down at (X, Y)
	MouseButtonReleased      // Mouse button went up at (X, Y)
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case Closed:
		return "closed"
	case KeyPressed:
		return "key_pressed"
	case MouseButtonPressed:
		return "mouse_pressed"
	case MouseButtonReleased:
		return "mouse_released"
	default:
		return "none"
	}
}

// Key is a keyboard key code. Values follow GLFW numbering, which raylib shares.
type Key int32

const (
	KeyEscape Key = 256
	KeyF1     Key = 290
)

// Button is a mouse button. Values follow raylib's MouseButton numbering.
type Button int32

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	ButtonSide
	ButtonExtra
	ButtonForward
	ButtonBack
)

var buttonNames = [...]string{"left", "right", "middle", "side", "extra", "forward", "back"}

// Buttons lists every mouse button the event source reports.
var Buttons = []Button{ButtonLeft, ButtonRight, ButtonMiddle, ButtonSide, ButtonExtra, ButtonForward, ButtonBack}

// String returns the button name.
func (b Button) String() string {
	if b >= 0 && int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return fmt.Sprintf("button(%d)", int32(b))
}

// ParseButton maps a button name ("left", "right", ...) to a Button.
func ParseButton(name string) (Button, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range buttonNames {
		if s == n {
			return Button(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mouse button %q", name)
}

// Event is one polled input event.
type Event struct {
	Kind   Kind
	Key    Key    // KeyPressed only
	Button Button // Mouse events only
	X, Y   float64
}

// Source yields the events that arrived since the previous poll.
type Source interface {
	Poll() []Event
}

// Queue is a FIFO Source fed by Push.
type Queue struct {
	events []Event
}

// Push appends events to the queue.
func (q *Queue) Push(events ...Event) {
	q.events = append(q.events, events...)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Poll drains the queue.
func (q *Queue) Poll() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
