// Package renderer draws the scene with raylib.
package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/planes/assets"
	"github.com/pthm-cable/planes/config"
	"github.com/pthm-cable/planes/game"
	"github.com/pthm-cable/planes/telemetry"
	"github.com/pthm-cable/planes/ui"
)

// Frame brackets drawing calls. *window.Window implements it.
type Frame interface {
	Begin()
	Present()
}

// Scene draws background, planes and title, in that order, each frame.
type Scene struct {
	frame  Frame
	game   *game.Game
	hud    *ui.HUD
	frames *telemetry.FrameCollector

	clear rl.Color

	background *BackgroundRenderer
	atlas      rl.Texture2D
	hasAtlas   bool

	title    *Title
	unloaded bool
}

// NewScene loads the assets named in cfg. Missing assets are logged and
// leave their element with raylib's defaults.
func NewScene(cfg *config.Config, frame Frame, g *game.Game, frames *telemetry.FrameCollector) *Scene {
	s := &Scene{
		frame:  frame,
		game:   g,
		hud:    ui.NewHUD(int32(cfg.Screen.Width)),
		frames: frames,
		clear:  toColor(cfg.Screen.ClearColor),

		background: NewBackgroundRenderer(int32(cfg.Screen.Width), int32(cfg.Screen.Height)),
	}

	root := cfg.Assets.Root
	s.background.Init(root, cfg.Assets.Background)
	s.atlas, s.hasAtlas = loadTexture("plane atlas", root, cfg.Assets.Atlas)
	s.title = NewTitle(cfg.Title, root, cfg.Assets.Font)

	slog.Info("scene_loaded",
		"background", s.background.Loaded(),
		"atlas", s.hasAtlas,
		"font", s.title.HasFont(),
	)
	return s
}

// loadTexture loads one texture, reporting failure.
func loadTexture(name, root, rel string) (rl.Texture2D, bool) {
	path, err := assets.Locate(assets.KindTexture, name, root, rel)
	if err != nil {
		assets.Report(err)
		return rl.Texture2D{}, false
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		assets.Report(assets.Failed(assets.KindTexture, name, path))
		return rl.Texture2D{}, false
	}
	return tex, true
}

// Render draws one frame.
func (s *Scene) Render() {
	s.frame.Begin()
	rl.ClearBackground(s.clear)

	s.background.Draw()
	for _, p := range s.game.Planes() {
		s.drawPlane(p)
	}
	s.title.Draw()

	if s.game.ShowHUD() {
		s.hud.Draw(ui.HUDData{
			Tick:     s.game.Tick(),
			Launches: s.game.Launches(),
			FPS:      rl.GetFPS(),
			Frames:   s.frames.Stats(),
			Planes:   s.game.Planes(),
		})
	}

	s.frame.Present()
}

// drawPlane draws one plane rotated about its centre.
func (s *Scene) drawPlane(p game.PlaneState) {
	r := p.Sprite
	dst := rl.Rectangle{
		X:      float32(p.Position.X),
		Y:      float32(p.Position.Y),
		Width:  r.Width,
		Height: r.Height,
	}
	origin := rl.Vector2{X: r.Width / 2, Y: r.Height / 2}

	if !s.hasAtlas {
		rl.DrawRectanglePro(dst, origin, float32(p.Heading), rl.LightGray)
		return
	}
	src := rl.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
	rl.DrawTexturePro(s.atlas, src, dst, origin, float32(p.Heading), rl.White)
}

// Unload releases GPU resources. Must run before the window closes.
func (s *Scene) Unload() {
	if s.unloaded {
		return
	}
	s.unloaded = true
	s.background.Unload()
	if s.hasAtlas {
		rl.UnloadTexture(s.atlas)
	}
	s.title.Unload()
}

func toColor(c [4]uint8) rl.Color {
	return rl.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}
