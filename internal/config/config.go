package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full agent configuration. Keys missing from a YAML file keep their Default() values.
type Config struct {
	Strategy  string          `json:"strategy" yaml:"strategy"`
	Seed      string          `json:"seed,omitempty" yaml:"seed,omitempty"`
	Game      GameConfig      `json:"game" yaml:"game"`
	Gather    GatherConfig    `json:"gather" yaml:"gather"`
	Migrate   MigrateConfig   `json:"migrate" yaml:"migrate"`
	Log       LogConfig       `json:"log" yaml:"log"`
	Telemetry TelemetryConfig `json:"telemetry" yaml:"telemetry"`
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
}

// Point is a field coordinate.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// GameConfig mirrors the rules of the game engine.
type GameConfig struct {
	FieldSize      float64 `json:"field_size" yaml:"field_size"`
	PushersPerSide int     `json:"pushers_per_side" yaml:"pushers_per_side"`
	SpeedLimit     float64 `json:"speed_limit" yaml:"speed_limit"`
	AccelLimit     float64 `json:"accel_limit" yaml:"accel_limit"`
	MarkerRadius   float64 `json:"marker_radius" yaml:"marker_radius"`
	HomeSize       float64 `json:"home_size" yaml:"home_size"`
	Home           Point   `json:"home" yaml:"home"`
	OwnColor       int     `json:"own_color" yaml:"own_color"`
}

// GatherConfig tunes the random gather strategy.
type GatherConfig struct {
	BehindThreshold  float64 `json:"behind_threshold" yaml:"behind_threshold"`
	JobTimeout       int     `json:"job_timeout" yaml:"job_timeout"`
	ArriveRadius     float64 `json:"arrive_radius" yaml:"arrive_radius"`
	RunTolerance     float64 `json:"run_tolerance" yaml:"run_tolerance"`
	MinStandoff      float64 `json:"min_standoff" yaml:"min_standoff"`
	MaxStandoff      float64 `json:"max_standoff" yaml:"max_standoff"`
	PushOffset       float64 `json:"push_offset" yaml:"push_offset"`
	CapManeuverForce bool    `json:"cap_maneuver_force" yaml:"cap_maneuver_force"`
	// CommitClaimsImmediately lets later pushers see jobs claimed earlier in the same turn.
	CommitClaimsImmediately bool `json:"commit_claims_immediately" yaml:"commit_claims_immediately"`
}

// MigrateConfig tunes the boundary migrate strategy.
type MigrateConfig struct {
	BehindThreshold float64 `json:"behind_threshold" yaml:"behind_threshold"`
	JobTimeout      int     `json:"job_timeout" yaml:"job_timeout"`
	OrbitRadius     float64 `json:"orbit_radius" yaml:"orbit_radius"`
	MaxStepDegrees  float64 `json:"max_step_degrees" yaml:"max_step_degrees"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// TelemetryConfig enables the websocket spectator feed when Addr is set.
type TelemetryConfig struct {
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty"`
}

// JournalConfig enables writing the job journal at match end when Path is set.
type JournalConfig struct {
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Default returns the standard game rules and tuning.
func Default() *Config {
	return &Config{
		Strategy: "gather",
		Game: GameConfig{
			FieldSize:      100,
			PushersPerSide: 3,
			SpeedLimit:     6.0,
			AccelLimit:     2.0,
			MarkerRadius:   2,
			HomeSize:       20,
			Home:           Point{X: 10, Y: 10},
			OwnColor:       0,
		},
		Gather: GatherConfig{
			BehindThreshold: 0.7,
			JobTimeout:      35,
			ArriveRadius:    5,
			RunTolerance:    0.1,
			MinStandoff:     6,
			MaxStandoff:     8,
			PushOffset:      1,
		},
		Migrate: MigrateConfig{
			BehindThreshold: -0.8,
			JobTimeout:      60,
			OrbitRadius:     4,
			MaxStepDegrees:  45,
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadYAML decodes a configuration over the defaults. An empty document yields Default().
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadYAML(f)
}

// Validate checks that every limit is usable.
func (c *Config) Validate() error {
	if c.Strategy == "" {
		return fmt.Errorf("%w: strategy is required", ErrInvalidConfig)
	}
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("%w: game: %v", ErrInvalidConfig, err)
	}
	if err := c.Gather.Validate(); err != nil {
		return fmt.Errorf("%w: gather: %v", ErrInvalidConfig, err)
	}
	if err := c.Migrate.Validate(); err != nil {
		return fmt.Errorf("%w: migrate: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (g GameConfig) Validate() error {
	if g.PushersPerSide <= 0 {
		return errors.New("pushers_per_side must be positive")
	}
	if g.SpeedLimit <= 0 || g.AccelLimit <= 0 {
		return errors.New("speed_limit and accel_limit must be positive")
	}
	if g.MarkerRadius < 0 || g.FieldSize <= 2*g.MarkerRadius {
		return errors.New("field_size must exceed the marker diameter")
	}
	// scores only exist for the two playing colours, red (0) and blue (1)
	if g.OwnColor != 0 && g.OwnColor != 1 {
		return fmt.Errorf("own_color %d is not a playing colour", g.OwnColor)
	}
	return nil
}

func (g GatherConfig) Validate() error {
	if g.JobTimeout <= 0 {
		return errors.New("job_timeout must be positive")
	}
	if g.MinStandoff < 0 || g.MaxStandoff < g.MinStandoff {
		return fmt.Errorf("standoff band [%v, %v] is empty", g.MinStandoff, g.MaxStandoff)
	}
	if g.ArriveRadius <= 0 || g.RunTolerance <= 0 {
		return errors.New("arrive_radius and run_tolerance must be positive")
	}
	return nil
}

func (m MigrateConfig) Validate() error {
	if m.JobTimeout <= 0 {
		return errors.New("job_timeout must be positive")
	}
	if m.OrbitRadius <= 0 || m.MaxStepDegrees <= 0 {
		return errors.New("orbit_radius and max_step_degrees must be positive")
	}
	return nil
}

// YAML renders the configuration, used by the CLI to print the effective settings.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
