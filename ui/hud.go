// Package ui draws the debug overlay.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/planes/game"
	"github.com/pthm-cable/planes/telemetry"
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Tick     int64
	Launches int64
	FPS      int32
	Frames   telemetry.FrameStats
	Planes   []game.PlaneState
}

// HUD renders the debug heads-up display (toggled with F1).
type HUD struct {
	x, y       float32
	width      float32
	lineHeight float32
	padding    float32
}

// NewHUD creates a HUD anchored at the top-right corner of a screen of the given width.
func NewHUD(screenWidth int32) *HUD {
	const width = 300
	return &HUD{
		x:          float32(screenWidth) - width - 10,
		y:          10,
		width:      width,
		lineHeight: 18,
		padding:    8,
	}
}

// Lines formats the HUD text, one entry per label row.
func (h *HUD) Lines(data HUDData) []string {
	lines := []string{
		fmt.Sprintf("Tick: %d | Launches: %d", data.Tick, data.Launches),
		fmt.Sprintf("FPS: %d | Steps/frame: %.2f (max %d)", data.FPS, data.Frames.AvgSteps, data.Frames.MaxSteps),
		fmt.Sprintf("Idle frames: %d/%d | Dropped: %d", data.Frames.IdleFrames, data.Frames.Frames, data.Frames.TotalDropped),
	}
	for _, p := range data.Planes {
		lines = append(lines, fmt.Sprintf("%s [%s] pos (%.0f, %.0f) vel (%.2f, %.2f) %.0f°",
			p.Name, p.Button, p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y, p.Heading))
	}
	return lines
}

// Draw renders the HUD panel.
func (h *HUD) Draw(data HUDData) {
	lines := h.Lines(data)
	// Title bar of the panel takes one line.
	height := h.padding*2 + h.lineHeight*float32(len(lines)+1)

	gui.Panel(rl.Rectangle{X: h.x, Y: h.y, Width: h.width, Height: height}, "Debug (F1)")

	y := h.y + h.padding + h.lineHeight
	for _, line := range lines {
		gui.Label(rl.Rectangle{X: h.x + h.padding, Y: y, Width: h.width - 2*h.padding, Height: h.lineHeight}, line)
		y += h.lineHeight
	}
}
