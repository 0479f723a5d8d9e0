// Package window wraps the raylib window as an input source, clock and frame target.
package window

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/planes/config"
	"github.com/pthm-cable/planes/input"
)

// Window is the raylib window. raylib refreshes its input state once per
// presented frame, so events are sampled after every Present and queued
// until the next Poll; frames with no update step lose nothing.
type Window struct {
	queue     input.Queue
	closeSeen bool
	open      bool
}

// Open creates the window described by cfg.
func Open(cfg *config.Config) *Window {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)

	// Escape is handled as a KeyPressed event, not by raylib's exit key.
	rl.SetExitKey(rl.KeyNull)

	if cfg.Screen.TargetFPS > 0 {
		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	}

	slog.Info("window_opened",
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"target_fps", cfg.Screen.TargetFPS,
	)
	return &Window{open: true}
}

// Close closes the window. Safe to call more than once.
func (w *Window) Close() {
	if !w.open {
		return
	}
	w.open = false
	rl.CloseWindow()
	slog.Info("window_closed")
}

// IsOpen reports whether Close has not been called yet.
func (w *Window) IsOpen() bool {
	return w.open
}

// Now returns time since the window was opened.
func (w *Window) Now() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}

// Begin starts a frame.
func (w *Window) Begin() {
	rl.BeginDrawing()
}

// Present ends the frame, which makes raylib poll the OS, then samples input.
func (w *Window) Present() {
	rl.EndDrawing()
	w.sample()
}

// Poll returns the events sampled since the previous Poll.
func (w *Window) Poll() []input.Event {
	return w.queue.Poll()
}

// sample converts raylib's per-frame input state into events.
func (w *Window) sample() {
	if !w.open {
		return
	}
	if !w.closeSeen && rl.WindowShouldClose() {
		w.closeSeen = true
		w.queue.Push(input.Event{Kind: input.Closed})
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		w.queue.Push(input.Event{Kind: input.KeyPressed, Key: input.Key(key)})
	}

	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)
	for _, b := range input.Buttons {
		button := rl.MouseButton(b)
		if rl.IsMouseButtonPressed(button) {
			w.queue.Push(input.Event{Kind: input.MouseButtonPressed, Button: b, X: x, Y: y})
		}
		if rl.IsMouseButtonReleased(button) {
			w.queue.Push(input.Event{Kind: input.MouseButtonReleased, Button: b, X: x, Y: y})
		}
	}
}
