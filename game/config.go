package game

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/planes/components"
	"github.com/pthm-cable/planes/config"
	"github.com/pthm-cable/planes/systems"
)

// OptionsFromConfig builds game options from a loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Bounds:  systems.NewBounds(cfg.Derived.WorldW, cfg.Derived.WorldH),
		Planes:  make([]PlaneSpec, len(cfg.Planes)),
		ShowHUD: cfg.HUD.Visible,
	}
	for i, p := range cfg.Planes {
		opts.Planes[i] = PlaneSpec{
			Name:      p.Name,
			Button:    cfg.Derived.Buttons[i],
			Start:     r2.Vec{X: p.Start[0], Y: p.Start[1]},
			Velocity:  r2.Vec{X: p.Velocity[0], Y: p.Velocity[1]},
			Heading:   p.Heading,
			DragScale: p.DragScale,
			Sprite: components.Rect{
				X:      p.Sprite[0],
				Y:      p.Sprite[1],
				Width:  p.Sprite[2],
				Height: p.Sprite[3],
			},
		}
	}
	return opts
}

// NewFromConfig creates a game from a loaded configuration.
func NewFromConfig(cfg *config.Config, onClose func()) (*Game, error) {
	opts := OptionsFromConfig(cfg)
	opts.OnClose = onClose
	return New(opts)
}
