// Package config provides configuration loading and access for the planes toy.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/planes/input"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Simulation SimulationConfig `yaml:"simulation"`
	World      WorldConfig      `yaml:"world"`
	Planes     []PlaneConfig    `yaml:"planes"`
	Assets     AssetsConfig     `yaml:"assets"`
	Title      TitleConfig      `yaml:"title"`
	HUD        HUDConfig        `yaml:"hud"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	Title      string   `yaml:"title"`
	TargetFPS  int      `yaml:"target_fps"` // 0 = render as fast as possible
	ClearColor [4]uint8 `yaml:"clear_color"`
}

// SimulationConfig holds fixed-timestep parameters.
type SimulationConfig struct {
	TickRate         float64 `yaml:"tick_rate"`           // Updates per second
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"` // 0 = drain the accumulator fully
}

// WorldConfig holds the clamp rectangle. Zero means "use the screen size".
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlaneConfig describes one launchable plane.
type PlaneConfig struct {
	Name      string     `yaml:"name"`
	Button    string     `yaml:"button"`     // Mouse button that launches this plane
	Start     [2]float64 `yaml:"start"`      // Starting position
	Velocity  [2]float64 `yaml:"velocity"`   // Velocity before the first launch
	Heading   float64    `yaml:"heading"`    // Degrees
	DragScale float64    `yaml:"drag_scale"` // Velocity = drag / drag_scale
	Sprite    [4]float32 `yaml:"sprite"`     // x, y, width, height in the atlas
}

// AssetsConfig holds asset paths relative to Root.
type AssetsConfig struct {
	Root       string `yaml:"root"`
	Font       string `yaml:"font"`
	Background string `yaml:"background"`
	Atlas      string `yaml:"atlas"`
}

// TitleConfig holds the static title text styling.
type TitleConfig struct {
	Text             string   `yaml:"text"`
	X                float32  `yaml:"x"`
	Y                float32  `yaml:"y"`
	Size             float32  `yaml:"size"`
	Spacing          float32  `yaml:"spacing"`
	Fill             [4]uint8 `yaml:"fill"`
	Outline          [4]uint8 `yaml:"outline"`
	OutlineThickness float32  `yaml:"outline_thickness"`
	Underline        bool     `yaml:"underline"`
}

// HUDConfig holds debug overlay settings.
type HUDConfig struct {
	Visible bool `yaml:"visible"` // Initial visibility; F1 toggles
}

// TelemetryConfig holds diagnostics parameters.
type TelemetryConfig struct {
	StatsWindow   float64 `yaml:"stats_window"`   // Seconds between frame_stats log lines
	FrameHistory  int     `yaml:"frame_history"`  // Frames kept for HUD averages
	TraceInterval int     `yaml:"trace_interval"` // Ticks between trace rows
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT          time.Duration  // One fixed update step
	StatsWindow time.Duration  // Telemetry.StatsWindow as a duration
	WorldW      float64        // Effective world width
	WorldH      float64        // Effective world height
	Buttons     []input.Button // Parsed Planes[i].Button
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file.
		// Lists (planes) are replaced as a whole.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LimitPlanes keeps only the first n configured planes.
// n <= 0 leaves the list untouched.
func (c *Config) LimitPlanes(n int) error {
	if n <= 0 {
		return nil
	}
	if n > len(c.Planes) {
		return fmt.Errorf("plane count %d exceeds configured planes (%d)", n, len(c.Planes))
	}
	c.Planes = c.Planes[:n]
	c.Derived.Buttons = c.Derived.Buttons[:n]
	return nil
}

// Validate reports every invalid setting, joined.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Simulation.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("simulation.tick_rate must be positive, got %v", c.Simulation.TickRate))
	}
	if c.Simulation.MaxStepsPerFrame < 0 {
		errs = append(errs, fmt.Errorf("simulation.max_steps_per_frame must not be negative"))
	}
	if c.World.Width < 0 || c.World.Height < 0 {
		errs = append(errs, fmt.Errorf("world size must not be negative"))
	}
	if len(c.Planes) == 0 {
		errs = append(errs, errors.New("at least one plane is required"))
	}
	bound := make(map[input.Button]int, len(c.Planes))
	for i, p := range c.Planes {
		if p.DragScale == 0 {
			errs = append(errs, fmt.Errorf("planes[%d] (%s): drag_scale must be non-zero", i, p.Name))
		}
		b, err := input.ParseButton(p.Button)
		if err != nil {
			errs = append(errs, fmt.Errorf("planes[%d] (%s): %w", i, p.Name, err))
			continue
		}
		if prev, dup := bound[b]; dup {
			errs = append(errs, fmt.Errorf("planes[%d] (%s): button %s already launches planes[%d]", i, p.Name, b, prev))
			continue
		}
		bound[b] = i
	}
	return errors.Join(errs...)
}

// computeDerived validates and calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.Derived.DT = time.Duration(float64(time.Second) / c.Simulation.TickRate)
	c.Derived.StatsWindow = time.Duration(c.Telemetry.StatsWindow * float64(time.Second))

	// World dimensions default to screen size if not specified
	c.Derived.WorldW = c.World.Width
	if c.Derived.WorldW == 0 {
		c.Derived.WorldW = float64(c.Screen.Width)
	}
	c.Derived.WorldH = c.World.Height
	if c.Derived.WorldH == 0 {
		c.Derived.WorldH = float64(c.Screen.Height)
	}

	c.Derived.Buttons = make([]input.Button, len(c.Planes))
	for i, p := range c.Planes {
		b, _ := input.ParseButton(p.Button)
		c.Derived.Buttons[i] = b
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
