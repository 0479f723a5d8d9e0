package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer tiles a repeating texture over the whole screen.
type BackgroundRenderer struct {
	tex    rl.Texture2D
	loaded bool

	screenW, screenH float32
	tint             rl.Color
}

// NewBackgroundRenderer creates a background renderer for a screen of the given size.
func NewBackgroundRenderer(screenW, screenH int32) *BackgroundRenderer {
	return &BackgroundRenderer{
		screenW: float32(screenW),
		screenH: float32(screenH),
		tint:    rl.White,
	}
}

// Init loads the texture (must be called after raylib window is created).
// Returns false if the texture could not be loaded; Draw is then a no-op.
func (b *BackgroundRenderer) Init(root, rel string) bool {
	if b.loaded {
		return true
	}
	tex, ok := loadTexture("sky background", root, rel)
	if !ok {
		return false
	}
	rl.SetTextureWrap(tex, rl.WrapRepeat)
	b.tex = tex
	b.loaded = true
	return true
}

// Loaded reports whether a texture is in use.
func (b *BackgroundRenderer) Loaded() bool {
	return b.loaded
}

// Draw covers the screen with the texture, repeating it from the origin.
func (b *BackgroundRenderer) Draw() {
	if !b.loaded {
		return
	}
	// Source larger than the texture repeats it thanks to WrapRepeat.
	src := rl.Rectangle{X: 0, Y: 0, Width: b.screenW, Height: b.screenH}
	dst := rl.Rectangle{X: 0, Y: 0, Width: b.screenW, Height: b.screenH}
	rl.DrawTexturePro(b.tex, src, dst, rl.Vector2{}, 0, b.tint)
}

// Unload releases the texture.
func (b *BackgroundRenderer) Unload() {
	if b.loaded {
		rl.UnloadTexture(b.tex)
		b.loaded = false
	}
}
