// Package config loads qmap settings from TOML.
//
//	[router]
//	window = 8
//	decay = 0.5
//	fidelity_penalty = 10.0
//	max_stall = -1          # -1: 2·diameter + 2
//	fidelity_floor = 0.0    # forced swaps avoid couplings below it
//
//	[topology]
//	name = "heavyhex"
//	[[topology.fidelity]]
//	u = 4
//	v = 5
//	value = 0.92
//
//	[log]
//	level = "info"
//	development = false
//
//	[bench]
//	topologies = ["linear4", "grid2x2", "heavyhex"]
//	parallel = 4
//
// Keys left out keep their defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/katalvlaran/qmap/cost"
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Router   RouterConfig   `toml:"router"`
	Topology TopologyConfig `toml:"topology"`
	Log      LogConfig      `toml:"log"`
	Bench    BenchConfig    `toml:"bench"`
}

// RouterConfig holds the routing tunables.
type RouterConfig struct {
	Window          int     `toml:"window"`
	Decay           float64 `toml:"decay"`
	FidelityPenalty float64 `toml:"fidelity_penalty"`
	MaxStall        int     `toml:"max_stall"`
	FidelityFloor   float64 `toml:"fidelity_floor"`
}

// Cost returns the evaluator part of the router settings.
func (r RouterConfig) Cost() cost.Config {
	return cost.Config{Window: r.Window, Decay: r.Decay, FidelityPenalty: r.FidelityPenalty}
}

// EdgeFidelity pins the fidelity of one coupling.
type EdgeFidelity struct {
	U     int     `toml:"u"`
	V     int     `toml:"v"`
	Value float64 `toml:"value"`
}

// TopologyConfig selects the default topology.
type TopologyConfig struct {
	Name     string         `toml:"name"`
	Fidelity []EdgeFidelity `toml:"fidelity"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// BenchConfig configures comparative runs.
type BenchConfig struct {
	Topologies []string `toml:"topologies"`
	Parallel   int      `toml:"parallel"`
}

// Default returns the built-in settings.
func Default() *Config {
	c := cost.DefaultConfig()
	return &Config{
		Router: RouterConfig{
			Window:          c.Window,
			Decay:           c.Decay,
			FidelityPenalty: c.FidelityPenalty,
			MaxStall:        -1,
		},
		Topology: TopologyConfig{Name: "heavyhex"},
		Log:      LogConfig{Level: "info"},
		Bench: BenchConfig{
			Topologies: []string{"linear4", "grid2x2", "heavyhex"},
			Parallel:   4,
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file
// yields Default(). Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML text into cfg, then validates the result.
func Decode(text string, cfg *Config) error {
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return err
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalid)
	}
	return cfg.Validate()
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Router.Cost().Validate(); err != nil {
		return fmt.Errorf("[router]: %w: %w", ErrInvalid, err)
	}
	if c.Router.MaxStall < -1 {
		return fmt.Errorf("[router] max_stall=%d < -1: %w", c.Router.MaxStall, ErrInvalid)
	}
	if c.Router.FidelityFloor < 0 || c.Router.FidelityFloor > 1 {
		return fmt.Errorf("[router] fidelity_floor=%v: %w", c.Router.FidelityFloor, ErrInvalid)
	}
	if strings.TrimSpace(c.Topology.Name) == "" {
		return fmt.Errorf("[topology] name is empty: %w", ErrInvalid)
	}
	for _, f := range c.Topology.Fidelity {
		if f.U == f.V || f.U < 0 || f.V < 0 || !(f.Value > 0 && f.Value <= 1) {
			return fmt.Errorf("[topology] fidelity %d-%d=%v: %w", f.U, f.V, f.Value, ErrInvalid)
		}
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("[log] level %q: %w", c.Log.Level, ErrInvalid)
	}
	if len(c.Bench.Topologies) == 0 {
		return fmt.Errorf("[bench] no topologies: %w", ErrInvalid)
	}
	if c.Bench.Parallel < 1 {
		return fmt.Errorf("[bench] parallel=%d < 1: %w", c.Bench.Parallel, ErrInvalid)
	}
	return nil
}

// Logger builds the zap logger described by the [log] section.
func (l LogConfig) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", l.Level, err)
	}
	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level
	return zc.Build()
}
