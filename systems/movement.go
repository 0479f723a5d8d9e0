package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/planes/components"
)

// MovementSystem advances planes by their velocity and keeps them in bounds.
type MovementSystem struct {
	moving ecs.Filter2[components.Position, components.Velocity]
	placed ecs.Filter1[components.Position]
	bounds r2.Box
}

// NewMovementSystem creates a movement system clamping into bounds.
func NewMovementSystem(w *ecs.World, bounds r2.Box) *MovementSystem {
	return &MovementSystem{
		moving: *ecs.NewFilter2[components.Position, components.Velocity](w),
		placed: *ecs.NewFilter1[components.Position](w),
		bounds: bounds,
	}
}

// Bounds returns the clamp rectangle.
func (s *MovementSystem) Bounds() r2.Box {
	return s.bounds
}

// Update moves every entity, then clamps every entity.
func (s *MovementSystem) Update() {
	s.Move()
	s.Clamp()
}

// Move adds velocity to position for every entity.
func (s *MovementSystem) Move() {
	query := s.moving.Query()
	for query.Next() {
		pos, vel := query.Get()
		pos.X += vel.X
		pos.Y += vel.Y
	}
}

// Clamp pulls every position back into bounds. Idempotent.
func (s *MovementSystem) Clamp() {
	query := s.placed.Query()
	for query.Next() {
		pos := query.Get()
		p := Clamp(r2.Vec{X: pos.X, Y: pos.Y}, s.bounds)
		pos.X, pos.Y = p.X, p.Y
	}
}
