// Package app wires a game to the fixed-step runner, frame statistics and the trace.
package app

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/planes/config"
	"github.com/pthm-cable/planes/game"
	"github.com/pthm-cable/planes/input"
	"github.com/pthm-cable/planes/loop"
	"github.com/pthm-cable/planes/telemetry"
)

// Session runs one game until it closes, ctx is done, or MaxTicks updates have run.
type Session struct {
	cfg      *config.Config
	game     *game.Game
	trace    *telemetry.TraceWriter
	maxTicks int
	frames   *telemetry.FrameCollector
}

// NewSession creates a session. trace may be nil; maxTicks 0 means unlimited.
func NewSession(cfg *config.Config, g *game.Game, trace *telemetry.TraceWriter, maxTicks int) *Session {
	return &Session{
		cfg:      cfg,
		game:     g,
		trace:    trace,
		maxTicks: maxTicks,
		frames:   telemetry.NewFrameCollector(cfg.Telemetry.FrameHistory, cfg.Derived.StatsWindow),
	}
}

// Frames returns the frame collector, for renderers that display it.
func (s *Session) Frames() *telemetry.FrameCollector {
	return s.frames
}

// Run drives the game with the given clock, event source and renderer.
// Returns context.Canceled when stopped by ctx or by the tick limit.
func (s *Session) Run(ctx context.Context, clock loop.Clock, source input.Source, renderer loop.Renderer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	slog.Info("starting simulation",
		"planes", s.game.NumPlanes(),
		"max_ticks", s.maxTicks,
		"dt", s.cfg.Derived.DT,
	)

	runner := loop.NewRunner(
		loop.Options{
			Step:     s.cfg.Derived.DT,
			MaxSteps: s.cfg.Simulation.MaxStepsPerFrame,
			OnStep:   s.afterStep(cancel),
			Frames:   s.frames,
		},
		clock,
		source,
		s.game,
		renderer,
	)

	err := runner.Run(ctx)
	slog.Info("loop_stopped",
		"tick", s.game.Tick(),
		"frames", runner.Frames(),
		"trace_rows", s.trace.Rows(),
	)
	return err
}

// afterStep records the trace and cancels once maxTicks updates have run.
func (s *Session) afterStep(cancel context.CancelFunc) func() {
	return func() {
		if !s.game.Running() {
			return
		}
		s.trace.Record(s.game.Tick(), s.game.Planes())
		if s.maxTicks > 0 && s.game.Tick() >= int64(s.maxTicks) {
			slog.Info("max ticks reached", "tick", s.game.Tick())
			cancel()
		}
	}
}

// RunHeadless runs the configured game with no window, one update per frame.
func RunHeadless(ctx context.Context, cfg *config.Config, trace *telemetry.TraceWriter, maxTicks int) (*game.Game, error) {
	g, err := game.NewFromConfig(cfg, nil)
	if err != nil {
		return nil, err
	}
	s := NewSession(cfg, g, trace, maxTicks)
	err = s.Run(ctx, &loop.SteppedClock{Step: cfg.Derived.DT}, &input.Queue{}, loop.RenderFunc(func() {}))
	return g, err
}
