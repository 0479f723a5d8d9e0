package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/planes/assets"
	"github.com/pthm-cable/planes/config"
)

// Title is the static title text: outlined, optionally underlined.
type Title struct {
	cfg     config.TitleConfig
	font    rl.Font
	hasFont bool
	fill    rl.Color
	outline rl.Color
}

// NewTitle loads the title font, falling back to raylib's default font.
func NewTitle(cfg config.TitleConfig, root, fontPath string) *Title {
	t := &Title{
		cfg:     cfg,
		font:    rl.GetFontDefault(),
		fill:    toColor(cfg.Fill),
		outline: toColor(cfg.Outline),
	}

	path, err := assets.Locate(assets.KindFont, "title font", root, fontPath)
	if err != nil {
		assets.Report(err)
		return t
	}
	font := rl.LoadFontEx(path, int32(cfg.Size), nil)
	if font.Texture.ID == 0 || font.Texture.ID == t.font.Texture.ID {
		assets.Report(assets.Failed(assets.KindFont, "title font", path))
		return t
	}
	t.font = font
	t.hasFont = true
	return t
}

// HasFont reports whether the configured font loaded.
func (t *Title) HasFont() bool {
	return t.hasFont
}

// Draw renders the outline, then the fill, then the underline.
func (t *Title) Draw() {
	if t.cfg.Text == "" {
		return
	}
	pos := rl.Vector2{X: t.cfg.X, Y: t.cfg.Y}
	size, spacing := t.cfg.Size, t.cfg.Spacing

	if th := t.cfg.OutlineThickness; th > 0 {
		for _, d := range [][2]float32{{-th, -th}, {0, -th}, {th, -th}, {-th, 0}, {th, 0}, {-th, th}, {0, th}, {th, th}} {
			rl.DrawTextEx(t.font, t.cfg.Text, rl.Vector2{X: pos.X + d[0], Y: pos.Y + d[1]}, size, spacing, t.outline)
		}
	}
	rl.DrawTextEx(t.font, t.cfg.Text, pos, size, spacing, t.fill)

	if t.cfg.Underline {
		extent := rl.MeasureTextEx(t.font, t.cfg.Text, size, spacing)
		thickness := size / 16
		if thickness < 1 {
			thickness = 1
		}
		rl.DrawRectangleV(
			rl.Vector2{X: pos.X, Y: pos.Y + extent.Y},
			rl.Vector2{X: extent.X, Y: thickness},
			t.fill,
		)
	}
}

// Unload releases the font if it was loaded from disk.
func (t *Title) Unload() {
	if t.hasFont {
		rl.UnloadFont(t.font)
		t.hasFont = false
	}
}
