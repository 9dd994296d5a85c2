// Package config provides configuration loading and access for the scene.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Camera    CameraConfig    `yaml:"camera"`
	Controls  ControlsConfig  `yaml:"controls"`
	Surface   SurfaceConfig   `yaml:"surface"`
	Pattern   PatternConfig   `yaml:"pattern"`
	Grid      GridConfig      `yaml:"grid"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int      `yaml:"width"`
	Height     int      `yaml:"height"`
	TargetFPS  int      `yaml:"target_fps"`
	Title      string   `yaml:"title"`
	Background [3]uint8 `yaml:"background"` // RGB clear color
	ShowPanel  bool     `yaml:"show_panel"` // Controls panel visible at startup
}

// CameraConfig holds the initial perspective camera pose.
type CameraConfig struct {
	Fovy     float64    `yaml:"fovy"` // Vertical field of view in degrees
	Position [3]float64 `yaml:"position"`
	Target   [3]float64 `yaml:"target"`
}

// ControlsConfig holds orbit control tuning.
type ControlsConfig struct {
	RotateSpeed float64 `yaml:"rotate_speed"` // Radians per pixel of drag
	ZoomSpeed   float64 `yaml:"zoom_speed"`   // Distance fraction per wheel step
	Damping     float64 `yaml:"damping"`      // Fraction of angular velocity kept per 1/60 s
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
}

// SurfaceConfig holds deformed grid generation parameters.
type SurfaceConfig struct {
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	SegmentsX    int        `yaml:"segments_x"`
	SegmentsY    int        `yaml:"segments_y"`
	Displacement float64    `yaml:"displacement"` // Max absolute out-of-plane offset
	Position     [3]float64 `yaml:"position"`     // World position of the surface object
	WireColor    [3]uint8   `yaml:"wire_color"`
}

// PatternConfig holds the initial shader parameters and slider ranges.
type PatternConfig struct {
	Size          [2]float64 `yaml:"size"`
	LineHalfWidth float64    `yaml:"line_half_width"`
	SizeRange     [2]float64 `yaml:"size_range"`
	LineRange     [2]float64 `yaml:"line_range"`
}

// GridConfig holds the reference grid helper drawn under the surface.
type GridConfig struct {
	Size      float64 `yaml:"size"`
	Divisions int     `yaml:"divisions"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
	LogInterval         float64 `yaml:"log_interval"` // Seconds between perf log lines
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32   float32 // Screen.Width as float32
	ScreenH32   float32 // Screen.Height as float32
	GridSpacing float32 // Grid.Size / Grid.Divisions
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

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
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
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the scene cannot be built from.
func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Pattern.SizeRange[0] <= 0 || c.Pattern.SizeRange[0] > c.Pattern.SizeRange[1] {
		return fmt.Errorf("pattern size_range %v must be positive and ordered", c.Pattern.SizeRange)
	}
	if c.Pattern.LineRange[0] < 0 || c.Pattern.LineRange[0] > c.Pattern.LineRange[1] {
		return fmt.Errorf("pattern line_range %v must be non-negative and ordered", c.Pattern.LineRange)
	}
	if c.Controls.MinDistance <= 0 || c.Controls.MinDistance > c.Controls.MaxDistance {
		return fmt.Errorf("controls distance range [%v, %v] is invalid", c.Controls.MinDistance, c.Controls.MaxDistance)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Grid.Divisions > 0 {
		c.Derived.GridSpacing = float32(c.Grid.Size / float64(c.Grid.Divisions))
	}

	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = 60
	}
	if c.Telemetry.PerfCollectorWindow <= 0 {
		c.Telemetry.PerfCollectorWindow = 120
	}
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
