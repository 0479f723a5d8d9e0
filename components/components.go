// Package components defines ECS components for the planes.
package components

import "github.com/pthm-cable/planes/input"

// Position represents an entity's world position.
type Position struct {
	X, Y float64
}

// Velocity represents an entity's per-tick displacement.
type Velocity struct {
	X, Y float64
}

// Heading is the sprite rotation in degrees, clockwise from "up".
type Heading struct {
	Degrees float64
}

// Rect is an axis-aligned rectangle in texture space.
type Rect struct {
	X, Y, Width, Height float32
}

// Plane holds the per-plane launch binding and sprite data.
type Plane struct {
	Index     int          // Position in the plane sequence
	Name      string
	Button    input.Button // Mouse button that launches this plane
	DragScale float64      // Velocity = drag / DragScale
	Sprite    Rect         // Source rect in the plane atlas
}
