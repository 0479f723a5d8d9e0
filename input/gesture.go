package input

import "gonum.org/v1/gonum/spatial/r2"

// Gesture is a completed press→release pair on one mouse button.
type Gesture struct {
	Button  Button
	Press   r2.Vec
	Release r2.Vec
}

// Drag returns the displacement from press to release.
func (g Gesture) Drag() r2.Vec {
	return r2.Sub(g.Release, g.Press)
}

// Tracker pairs presses with releases per button.
type Tracker struct {
	pressed map[Button]r2.Vec
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{pressed: make(map[Button]r2.Vec)}
}

// Press records where b went down. A second press replaces the first.
func (t *Tracker) Press(b Button, at r2.Vec) {
	t.pressed[b] = at
}

// Release completes the gesture for b.
// Returns false when b has no recorded press.
func (t *Tracker) Release(b Button, at r2.Vec) (Gesture, bool) {
	start, ok := t.pressed[b]
	if !ok {
		return Gesture{}, false
	}
	delete(t.pressed, b)
	return Gesture{Button: b, Press: start, Release: at}, true
}

// Pending reports whether b has a press awaiting release.
func (t *Tracker) Pending(b Button) bool {
	_, ok := t.pressed[b]
	return ok
}
