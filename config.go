package grove

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error Config.Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of the program. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Speed is the actor's movement speed in world units per second.
	Speed float64 `yaml:"speed"`
	// ActorHalfSize keeps the actor this far from the viewport edges.
	ActorHalfSize float64 `yaml:"actor_half_size"`
	// ActorScale and TreeScale are the uniform sprite scales.
	ActorScale float64 `yaml:"actor_scale"`
	TreeScale  float64 `yaml:"tree_scale"`
	// PlantFade is how long a new tree takes to fade in, in seconds.
	// Zero shows trees immediately.
	PlantFade float64 `yaml:"plant_fade"`

	Window   WindowConfig        `yaml:"window"`
	Assets   AssetConfig         `yaml:"assets"`
	Bindings map[string][]string `yaml:"bindings"`
	Log      LogConfig           `yaml:"log"`
}

// WindowConfig configures the ebiten window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	ShowFPS   bool   `yaml:"show_fps"`
}

// AssetConfig names the sprite images. Actor and Tree are relative to Dir.
type AssetConfig struct {
	Dir   string `yaml:"dir"`
	Actor string `yaml:"actor"`
	Tree  string `yaml:"tree"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Speed:         500,
		ActorHalfSize: 16,
		ActorScale:    0.1,
		TreeScale:     0.3,
		PlantFade:     0.25,
		Window: WindowConfig{
			Title:     "grove",
			Width:     800,
			Height:    600,
			Resizable: true,
		},
		Assets: AssetConfig{
			Dir:   "assets",
			Actor: "sprites/player.png",
			Tree:  "sprites/tree.png",
		},
		Bindings: map[string][]string{
			"left":  {"ArrowLeft", "A"},
			"right": {"ArrowRight", "D"},
			"up":    {"ArrowUp", "W"},
			"down":  {"ArrowDown", "S"},
			"plant": {"Space"},
		},
		Log: LogConfig{Level: "info", Development: true},
	}
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig overlays YAML data on DefaultConfig and validates the result.
// A bindings entry replaces the default keys for that action only.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	defaults := cfg.Bindings
	cfg.Bindings = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	merged := make(map[string][]string, len(defaults))
	for name, keys := range defaults {
		merged[name] = keys
	}
	for name, keys := range cfg.Bindings {
		merged[name] = keys
	}
	cfg.Bindings = merged
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	switch {
	case c.Speed < 0:
		return fmt.Errorf("%w: speed %v is negative", ErrInvalidConfig, c.Speed)
	case c.ActorHalfSize < 0:
		return fmt.Errorf("%w: actor_half_size %v is negative", ErrInvalidConfig, c.ActorHalfSize)
	case c.ActorScale <= 0:
		return fmt.Errorf("%w: actor_scale must be positive", ErrInvalidConfig)
	case c.TreeScale <= 0:
		return fmt.Errorf("%w: tree_scale must be positive", ErrInvalidConfig)
	case c.PlantFade < 0:
		return fmt.Errorf("%w: plant_fade %v is negative", ErrInvalidConfig, c.PlantFade)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	var bound ActionSet
	for name, keys := range c.Bindings {
		a, err := ParseAction(name)
		if err != nil {
			return fmt.Errorf("%w: bindings: %v", ErrInvalidConfig, err)
		}
		if len(keys) > 0 {
			bound |= Set(a)
		}
	}
	for _, a := range Actions() {
		if !bound.Has(a) {
			return fmt.Errorf("%w: bindings: no keys for %s", ErrInvalidConfig, a)
		}
	}
	return nil
}

// Locomotion returns the locomotion settings from c.
func (c Config) Locomotion() Locomotion {
	return Locomotion{Speed: c.Speed, HalfSize: c.ActorHalfSize}
}

// Spawner returns the placement settings from c.
func (c Config) Spawner() Spawner {
	return Spawner{Scale: c.TreeScale}
}
