package app

import (
	"flag"
	"io"
	"log/slog"

	"github.com/pthm-cable/planes/config"
)

// Flags holds the command-line options.
type Flags struct {
	ConfigPath  string
	Planes      int
	Headless    bool
	MaxTicks    int
	TracePath   string
	AssetsRoot  string
	LogLevel    string
	WriteConfig string
}

// ParseFlags parses args (without the program name).
func ParseFlags(args []string, output io.Writer) (Flags, error) {
	var f Flags
	fs := flag.NewFlagSet("planes", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&f.ConfigPath, "config", "", "Path to config.yaml (empty = use defaults)")
	fs.IntVar(&f.Planes, "planes", 0, "Number of configured planes to spawn (0 = all)")
	fs.BoolVar(&f.Headless, "headless", false, "Run the simulation without a window")
	fs.IntVar(&f.MaxTicks, "max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	fs.StringVar(&f.TracePath, "trace", "", "Write per-tick plane states to this CSV file")
	fs.StringVar(&f.AssetsRoot, "assets", "", "Asset root directory (empty = use config)")
	fs.StringVar(&f.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&f.WriteConfig, "write-config", "", "Write the effective config to this YAML file and exit")

	if err := fs.Parse(args); err != nil {
		return Flags{}, err
	}
	return f, nil
}

// Level returns the slog level named by LogLevel, info if unknown.
func (f Flags) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Apply narrows cfg to the flags: plane count and asset root.
func (f Flags) Apply(cfg *config.Config) error {
	if err := cfg.LimitPlanes(f.Planes); err != nil {
		return err
	}
	if f.AssetsRoot != "" {
		cfg.Assets.Root = f.AssetsRoot
	}
	return nil
}
