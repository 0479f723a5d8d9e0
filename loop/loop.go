// Package loop drives a simulation with a fixed update step and one render per frame.
package loop

import (
	"context"
	"time"

	"github.com/pthm-cable/planes/input"
	"github.com/pthm-cable/planes/telemetry"
)

// Clock reports monotonic elapsed time.
type Clock interface {
	Now() time.Duration
}

// Simulation is the state the runner advances.
type Simulation interface {
	Running() bool
	Apply(ev input.Event)
	Update(dt time.Duration)
}

// Renderer draws one frame.
type Renderer interface {
	Render()
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func()

// Render calls f.
func (f RenderFunc) Render() { f() }

// Options configures a Runner.
type Options struct {
	Step     time.Duration // Fixed update step
	MaxSteps int           // Cap on updates per frame; 0 = drain fully

	// OnStep runs after every update.
	OnStep func()

	// Frames receives one sample per rendered frame. May be nil.
	Frames *telemetry.FrameCollector
}

// Runner is the fixed-timestep driver.
type Runner struct {
	opts     Options
	clock    Clock
	source   input.Source
	sim      Simulation
	renderer Renderer

	last    time.Duration
	acc     time.Duration
	started bool
	frames  int64
}

// NewRunner creates a runner. A zero Options.Step means 1/60 s.
func NewRunner(opts Options, clock Clock, source input.Source, sim Simulation, renderer Renderer) *Runner {
	if opts.Step <= 0 {
		opts.Step = time.Second / 60
	}
	return &Runner{
		opts:     opts,
		clock:    clock,
		source:   source,
		sim:      sim,
		renderer: renderer,
	}
}

// Run loops until the simulation stops running or ctx is done.
// Returns ctx.Err() when cancelled, nil when the simulation closed.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !r.Frame(ctx) {
			return ctx.Err()
		}
	}
}

// Frame runs one outer iteration: drain the accumulator in fixed steps, each
// with one poll and one update, then render once. Returns false, without
// rendering, once the simulation has stopped or ctx is done. Cancellation is
// checked after every step, so no update runs once ctx is cancelled.
func (r *Runner) Frame(ctx context.Context) bool {
	if !r.sim.Running() {
		return false
	}

	now := r.clock.Now()
	if !r.started {
		r.last = now
		r.started = true
	}
	elapsed := now - r.last
	r.last = now
	r.acc += elapsed

	steps, dropped := 0, 0
	for r.acc >= r.opts.Step {
		if r.opts.MaxSteps > 0 && steps >= r.opts.MaxSteps {
			dropped = int(r.acc / r.opts.Step)
			r.acc %= r.opts.Step
			break
		}
		r.acc -= r.opts.Step

		for _, ev := range r.source.Poll() {
			r.sim.Apply(ev)
		}
		r.sim.Update(r.opts.Step)
		steps++

		if r.opts.OnStep != nil {
			r.opts.OnStep()
		}
		if !r.sim.Running() || ctx.Err() != nil {
			return false
		}
	}

	r.renderer.Render()
	r.frames++
	r.opts.Frames.Record(telemetry.FrameSample{
		Steps:   steps,
		Dropped: dropped,
		Elapsed: elapsed,
	})
	return true
}

// Frames returns the number of rendered frames.
func (r *Runner) Frames() int64 {
	return r.frames
}

// Pending returns the accumulated time not yet consumed by updates.
func (r *Runner) Pending() time.Duration {
	return r.acc
}

// SteppedClock advances by Step on every Now call, so each frame of a
// runner using it performs exactly one update. Used for headless runs.
type SteppedClock struct {
	Step time.Duration
	now  time.Duration
}

// Now returns the next time.
func (c *SteppedClock) Now() time.Duration {
	c.now += c.Step
	return c.now
}
