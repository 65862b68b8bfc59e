// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
// A loaded Config is treated as immutable; callers that need a variation
// copy it first (see Clone).
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	World       WorldConfig       `yaml:"world"`
	Camera      CameraConfig      `yaml:"camera"`
	Player      PlayerConfig      `yaml:"player"`
	Stamina     StaminaConfig     `yaml:"stamina"`
	Worm        WormConfig        `yaml:"worm"`
	Sensors     SensorsConfig     `yaml:"sensors"`
	Environment EnvironmentConfig `yaml:"environment"`
	Autopilot   AutopilotConfig   `yaml:"autopilot"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Audio       AudioConfig       `yaml:"audio"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the playable world dimensions in world units.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"` // simulation ticks per second
}

// CameraConfig holds zoom limits.
type CameraConfig struct {
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
	ZoomStep float64 `yaml:"zoom_step"`
}

// PlayerConfig holds player body and movement parameters.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // world units per tick
}

// StaminaConfig holds the stamina economy.
type StaminaConfig struct {
	Max   float64 `yaml:"max"`
	Decay float64 `yaml:"decay"` // lost per tick while moving
	Water float64 `yaml:"water"` // gained per water pickup
	Regen float64 `yaml:"regen"` // gained per tick inside a village
}

// WormConfig holds pursuer parameters.
type WormConfig struct {
	Count         int     `yaml:"count"`
	Radius        float64 `yaml:"radius"`
	MaxSpeed      float64 `yaml:"max_speed"`
	Accel         float64 `yaml:"accel"`
	MinSpawnDist  float64 `yaml:"min_spawn_dist"`
	SpawnOffset   float64 `yaml:"spawn_offset"` // max random offset per axis
	SpawnAttempts int     `yaml:"spawn_attempts"`
	InactiveTicks int     `yaml:"inactive_ticks"` // idle ticks tolerated before going dormant
	ParkedX       float64 `yaml:"parked_x"`       // position before first activation
	ParkedY       float64 `yaml:"parked_y"`
}

// SensorsConfig holds ray sensor and avoidance parameters.
type SensorsConfig struct {
	Step          float64   `yaml:"step"`
	Length        float64   `yaml:"length"`
	Angles        []float64 `yaml:"angles"` // degrees relative to heading
	AvoidanceGain float64   `yaml:"avoidance_gain"`
}

// SizeRange bounds the side length of a square environment item.
type SizeRange struct {
	Count   int `yaml:"count"`
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
}

// EnvironmentConfig holds static world item placement.
type EnvironmentConfig struct {
	PlacementAttempts int       `yaml:"placement_attempts"`
	Rocks             SizeRange `yaml:"rocks"`
	Waters            SizeRange `yaml:"waters"`
	Villages          SizeRange `yaml:"villages"`
}

// AutopilotConfig tunes the scripted player used by headless runs.
type AutopilotConfig struct {
	ThirstThreshold float64 `yaml:"thirst_threshold"` // seek water below this stamina
	RestThreshold   float64 `yaml:"rest_threshold"`   // seek a village below this stamina
	FleeRadius      float64 `yaml:"flee_radius"`
	IdleChance      float64 `yaml:"idle_chance"` // per-tick chance to stand still
	IdleTicks       int     `yaml:"idle_ticks"`
	WanderTicks     int     `yaml:"wander_ticks"` // ticks between wander heading changes
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow   float64 `yaml:"stats_window"`    // seconds
	PerfWindow    int     `yaml:"perf_window"`     // ticks in the rolling timing window
	CloseCallDist float64 `yaml:"close_call_dist"` // bookmark thresholds
	SwarmWorms    float64 `yaml:"swarm_worms"`
	CrisisStamina float64 `yaml:"crisis_stamina"`
}

// AudioConfig holds sound cue settings.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // master gain in [0, 1]
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT          float64 // seconds per tick
	WorldBounds r2.Box
	Parked      r2.Vec
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
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.computeDerived()

	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load: %v", err))
	}
	return cfg
}

// Clone returns a deep copy with derived values recomputed.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Sensors.Angles = append([]float64(nil), c.Sensors.Angles...)
	cp.computeDerived()
	return &cp
}

// Recompute refreshes derived values after fields were changed in place.
func (c *Config) Recompute() {
	c.computeDerived()
}

// Validate reports every parameter that would make the simulation ill-defined.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("world.tick_rate", float64(c.World.TickRate))
	positive("player.radius", c.Player.Radius)
	positive("player.speed", c.Player.Speed)
	positive("stamina.max", c.Stamina.Max)
	positive("worm.radius", c.Worm.Radius)
	positive("worm.max_speed", c.Worm.MaxSpeed)
	positive("sensors.step", c.Sensors.Step)
	positive("sensors.length", c.Sensors.Length)
	positive("camera.min_zoom", c.Camera.MinZoom)
	nonNegative("worm.count", c.Worm.Count)
	nonNegative("worm.spawn_attempts", c.Worm.SpawnAttempts)
	nonNegative("worm.inactive_ticks", c.Worm.InactiveTicks)
	nonNegative("environment.rocks.count", c.Environment.Rocks.Count)
	nonNegative("environment.waters.count", c.Environment.Waters.Count)
	nonNegative("environment.villages.count", c.Environment.Villages.Count)

	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %v outside [0, 1]", c.Audio.Volume))
	}
	if c.Camera.MaxZoom < c.Camera.MinZoom {
		errs = append(errs, fmt.Errorf("camera.max_zoom %v below min_zoom %v", c.Camera.MaxZoom, c.Camera.MinZoom))
	}
	if len(c.Sensors.Angles) == 0 {
		errs = append(errs, errors.New("sensors.angles must list at least one angle"))
	}
	if c.World.Width <= 2*c.Worm.Radius || c.World.Height <= 2*c.Worm.Radius {
		errs = append(errs, fmt.Errorf("world %vx%v too small for worm radius %v", c.World.Width, c.World.Height, c.Worm.Radius))
	}
	for name, r := range map[string]SizeRange{
		"rocks":    c.Environment.Rocks,
		"waters":   c.Environment.Waters,
		"villages": c.Environment.Villages,
	} {
		if r.MinSize <= 0 || r.MaxSize < r.MinSize {
			errs = append(errs, fmt.Errorf("environment.%s size range [%d, %d] invalid", name, r.MinSize, r.MaxSize))
		}
	}

	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.World.TickRate > 0 {
		c.Derived.DT = 1.0 / float64(c.World.TickRate)
	}
	c.Derived.WorldBounds = r2.Box{Max: r2.Vec{X: c.World.Width, Y: c.World.Height}}
	c.Derived.Parked = r2.Vec{X: c.Worm.ParkedX, Y: c.Worm.ParkedY}
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
