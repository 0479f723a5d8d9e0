package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pthm-cable/planes/app"
	"github.com/pthm-cable/planes/config"
	"github.com/pthm-cable/planes/game"
	"github.com/pthm-cable/planes/renderer"
	"github.com/pthm-cable/planes/telemetry"
	"github.com/pthm-cable/planes/window"
)

func main() {
	// CLI flags
	flags, err := app.ParseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: flags.Level()}))
	slog.SetDefault(logger)

	if err := config.Init(flags.ConfigPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if err := flags.Apply(cfg); err != nil {
		slog.Error("invalid flags", "error", err)
		os.Exit(1)
	}

	if flags.WriteConfig != "" {
		if err := cfg.WriteYAML(flags.WriteConfig); err != nil {
			slog.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		slog.Info("config written", "path", flags.WriteConfig)
		return
	}

	trace, err := telemetry.OpenTrace(flags.TracePath, cfg.Telemetry.TraceInterval)
	if err != nil {
		slog.Error("failed to open trace", "error", err)
		os.Exit(1)
	}
	defer trace.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flags.Headless {
		_, err = app.RunHeadless(ctx, cfg, trace, flags.MaxTicks)
	} else {
		err = runWindowed(ctx, cfg, trace, flags.MaxTicks)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// runWindowed opens the window and runs until it is closed.
func runWindowed(ctx context.Context, cfg *config.Config, trace *telemetry.TraceWriter, maxTicks int) error {
	w := window.Open(cfg)
	defer w.Close()

	var scene *renderer.Scene
	// Resources go before the window does.
	onClose := func() {
		if scene != nil {
			scene.Unload()
		}
		w.Close()
	}

	g, err := game.NewFromConfig(cfg, onClose)
	if err != nil {
		return err
	}

	session := app.NewSession(cfg, g, trace, maxTicks)
	scene = renderer.NewScene(cfg, w, g, session.Frames())
	defer scene.Unload()

	return session.Run(ctx, w, w, scene)
}
