// Package game owns the plane simulation state and its transitions.
package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/planes/components"
	"github.com/pthm-cable/planes/input"
	"github.com/pthm-cable/planes/systems"
)

// PlaneSpec describes one plane at construction time.
type PlaneSpec struct {
	Name      string
	Button    input.Button
	Start     r2.Vec
	Velocity  r2.Vec
	Heading   float64 // degrees
	DragScale float64
	Sprite    components.Rect
}

// Options configures a Game.
type Options struct {
	Bounds  r2.Box
	Planes  []PlaneSpec
	ShowHUD bool

	// OnClose runs once, on the update tick that follows an exit request.
	OnClose func()
}

// PlaneState is a read-only snapshot of one plane.
type PlaneState struct {
	Index    int
	Name     string
	Button   input.Button
	Position r2.Vec
	Velocity r2.Vec
	Heading  float64
	Sprite   components.Rect
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World

	planeMapper *ecs.Map4[
		components.Position,
		components.Velocity,
		components.Heading,
		components.Plane,
	]

	// Planes in sequence order; ECS queries do not preserve it.
	planes   []ecs.Entity
	byButton map[input.Button]int

	movement *systems.MovementSystem
	gestures *input.Tracker

	tick     int64
	launches int64
	exit     bool
	closed   bool
	showHUD  bool
	onClose  func()
}

// New creates a game with the given planes.
func New(opts Options) (*Game, error) {
	if len(opts.Planes) == 0 {
		return nil, errors.New("game: at least one plane is required")
	}

	world := ecs.NewWorld()
	g := &Game{
		world: world,
		planeMapper: ecs.NewMap4[
			components.Position,
			components.Velocity,
			components.Heading,
			components.Plane,
		](world),
		byButton: make(map[input.Button]int, len(opts.Planes)),
		movement: systems.NewMovementSystem(world, opts.Bounds),
		gestures: input.NewTracker(),
		showHUD:  opts.ShowHUD,
		onClose:  opts.OnClose,
	}

	for i, spec := range opts.Planes {
		if spec.DragScale == 0 {
			return nil, fmt.Errorf("game: plane %q: drag scale must be non-zero", spec.Name)
		}
		if prev, dup := g.byButton[spec.Button]; dup {
			return nil, fmt.Errorf("game: plane %q: button %s already launches plane %d", spec.Name, spec.Button, prev+1)
		}
		g.byButton[spec.Button] = i
		g.spawnPlane(i, spec, opts.Bounds)
	}

	return g, nil
}

// spawnPlane creates the ECS entity for one plane.
func (g *Game) spawnPlane(index int, spec PlaneSpec, bounds r2.Box) {
	start := systems.Clamp(spec.Start, bounds)
	pos := components.Position{X: start.X, Y: start.Y}
	vel := components.Velocity{X: spec.Velocity.X, Y: spec.Velocity.Y}
	head := components.Heading{Degrees: spec.Heading}
	plane := components.Plane{
		Index:     index,
		Name:      spec.Name,
		Button:    spec.Button,
		DragScale: spec.DragScale,
		Sprite:    spec.Sprite,
	}
	g.planes = append(g.planes, g.planeMapper.NewEntity(&pos, &vel, &head, &plane))
}

// Apply feeds one input event into the state.
func (g *Game) Apply(ev input.Event) {
	switch ev.Kind {
	case input.Closed:
		g.exit = true
	case input.KeyPressed:
		g.handleKey(ev.Key)
	case input.MouseButtonPressed:
		g.gestures.Press(ev.Button, r2.Vec{X: ev.X, Y: ev.Y})
	case input.MouseButtonReleased:
		g.handleRelease(ev)
	}
}

func (g *Game) handleKey(key input.Key) {
	switch key {
	case input.KeyEscape:
		g.exit = true
	case input.KeyF1:
		g.showHUD = !g.showHUD
	}
}

// handleRelease completes a gesture and launches the bound plane.
func (g *Game) handleRelease(ev input.Event) {
	gesture, ok := g.gestures.Release(ev.Button, r2.Vec{X: ev.X, Y: ev.Y})
	if !ok {
		slog.Debug("release_without_press", "button", ev.Button.String())
		return
	}
	idx, bound := g.byButton[gesture.Button]
	if !bound {
		return
	}
	g.launch(idx, gesture.Drag())
}

// launch sets velocity and heading of plane idx from a drag vector.
func (g *Game) launch(idx int, drag r2.Vec) {
	_, vel, head, plane := g.planeMapper.Get(g.planes[idx])
	v, heading := systems.Launch(drag, plane.DragScale)
	vel.X, vel.Y = v.X, v.Y
	head.Degrees = heading
	g.launches++

	slog.Debug("plane_launched",
		"plane", plane.Name,
		"tick", g.tick,
		"drag_x", drag.X,
		"drag_y", drag.Y,
		"vel_x", v.X,
		"vel_y", v.Y,
		"heading", heading,
	)
}

// Update advances the simulation by one fixed step.
// After an exit request the step closes the game instead of moving anything.
func (g *Game) Update(dt time.Duration) {
	if g.closed {
		return
	}
	if g.exit {
		g.close()
		return
	}
	g.movement.Update()
	g.tick++
}

func (g *Game) close() {
	g.closed = true
	slog.Info("game_closed", "tick", g.tick, "launches", g.launches)
	if g.onClose != nil {
		g.onClose()
	}
}

// Running reports whether the game window should stay open.
func (g *Game) Running() bool {
	return !g.closed
}

// ExitRequested reports whether a close or Escape has been seen.
func (g *Game) ExitRequested() bool {
	return g.exit
}

// Tick returns the number of completed movement steps.
func (g *Game) Tick() int64 {
	return g.tick
}

// Launches returns the number of completed launch gestures.
func (g *Game) Launches() int64 {
	return g.launches
}

// ShowHUD reports whether the debug overlay is visible.
func (g *Game) ShowHUD() bool {
	return g.showHUD
}

// Bounds returns the world rectangle.
func (g *Game) Bounds() r2.Box {
	return g.movement.Bounds()
}

// NumPlanes returns the number of planes.
func (g *Game) NumPlanes() int {
	return len(g.planes)
}

// Plane returns a snapshot of plane idx.
func (g *Game) Plane(idx int) PlaneState {
	pos, vel, head, plane := g.planeMapper.Get(g.planes[idx])
	return PlaneState{
		Index:    plane.Index,
		Name:     plane.Name,
		Button:   plane.Button,
		Position: r2.Vec{X: pos.X, Y: pos.Y},
		Velocity: r2.Vec{X: vel.X, Y: vel.Y},
		Heading:  head.Degrees,
		Sprite:   plane.Sprite,
	}
}

// Planes returns snapshots of every plane in sequence order.
func (g *Game) Planes() []PlaneState {
	out := make([]PlaneState, len(g.planes))
	for i := range g.planes {
		out[i] = g.Plane(i)
	}
	return out
}
