// SPDX-License-Identifier: MIT

// Package config holds the mstbench CLI configuration and its viper binding.
package config

import (
	"io"
	"slices"
	"sync"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/generator"
	"github.com/katalvlaran/mstbench/internal/logger"
	"github.com/katalvlaran/mstbench/mst"
)

const EnvPrefix = "MSTBENCH"

var (
	cfg  *Config
	once sync.Once
)

// NewConfig returns the process-wide configuration, filled with defaults on
// first use.
func NewConfig() *Config {
	once.Do(
		func() {
			cfg = Default()
		},
	)
	return cfg
}

type Config struct {
	Log    Log           `mapstructure:"log" yaml:"log" json:"log"`
	Run    Run           `mapstructure:"run" yaml:"run" json:"run"`
	Check  Check         `mapstructure:"check" yaml:"check" json:"check"`
	Suites []bench.Suite `mapstructure:"suites" yaml:"suites" json:"suites"`
}

type Log struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	Level  string `mapstructure:"level" yaml:"level" json:"level,omitempty"`
}

type Run struct {
	Format string `mapstructure:"format" yaml:"format" json:"format,omitempty"`
	// Suites filters Config.Suites by name; empty runs all of them.
	Suites  []string      `mapstructure:"suites" yaml:"suites" json:"suites,omitempty"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout,omitempty"`
}

type Check struct {
	Vertices int            `mapstructure:"vertices" yaml:"vertices" json:"vertices"`
	Mode     generator.Mode `mapstructure:"mode" yaml:"mode" json:"mode"`
	Seed     int64          `mapstructure:"seed" yaml:"seed" json:"seed,omitempty"`
	Methods  []string       `mapstructure:"methods" yaml:"methods" json:"methods,omitempty"`
	Format   string         `mapstructure:"format" yaml:"format" json:"format,omitempty"`
}

// Default returns a fresh configuration with the built-in suites.
func Default() *Config {
	return &Config{
		Log: Log{
			Format: logger.LogFormatTextValue,
			Level:  "info",
		},
		Run: Run{
			Format: bench.FormatTable,
		},
		Check: Check{
			Vertices: 1000,
			Mode:     generator.ModeSparse,
			Seed:     generator.DefaultSeed,
			Format:   bench.FormatTable,
		},
		Suites: bench.DefaultSuites(),
	}
}

// Validate checks cross-field constraints that mapstructure cannot express.
func (c *Config) Validate() error {
	if _, err := logger.New(io.Discard, c.Log.Level, c.Log.Format); err != nil {
		return errors.Wrap(err, "invalid log section")
	}
	if !slices.Contains([]string{bench.FormatTable, bench.FormatSeries, bench.FormatJson, bench.FormatYaml}, c.Run.Format) {
		return errors.Wrapf(bench.ErrUnknownFormat, "run.format %q", c.Run.Format)
	}
	if c.Run.Timeout < 0 {
		return errors.Errorf("run.timeout must not be negative got %s", c.Run.Timeout)
	}

	seen := make(map[string]struct{}, len(c.Suites))
	for _, s := range c.Suites {
		if err := s.Validate(); err != nil {
			return errors.Wrap(err, "invalid suites section")
		}
		if _, ok := seen[s.Name]; ok {
			return errors.Errorf("duplicate suite %q", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	for _, name := range c.Run.Suites {
		if _, ok := seen[name]; !ok {
			return errors.Errorf("run.suites: unknown suite %q", name)
		}
	}

	if c.Check.Vertices < 1 {
		return errors.Errorf("check.vertices must be greater than 0 got %d", c.Check.Vertices)
	}
	if _, err := generator.ParseMode(string(c.Check.Mode)); err != nil {
		return errors.Wrap(err, "check.mode")
	}
	for _, m := range c.Check.Methods {
		if _, err := mst.Lookup(m); err != nil {
			return errors.Wrap(err, "check.methods")
		}
	}
	if !slices.Contains([]string{bench.FormatTable, bench.FormatJson, bench.FormatYaml}, c.Check.Format) {
		return errors.Wrapf(bench.ErrUnknownFormat, "check.format %q", c.Check.Format)
	}
	return nil
}

// SelectedSuites returns the suites to run, in configuration order.
func (c *Config) SelectedSuites() []bench.Suite {
	if len(c.Run.Suites) == 0 {
		return c.Suites
	}
	var res []bench.Suite
	for _, s := range c.Suites {
		if slices.Contains(c.Run.Suites, s.Name) {
			res = append(res, s)
		}
	}
	return res
}

// Load decodes the settings held by v into c and validates the result.
func Load(v *viper.Viper, c *Config) error {
	// mapstructure merges into existing slices by index, so a configured
	// suites list must replace the defaults rather than overlay them.
	if v.IsSet("suites") {
		c.Suites = nil
	}

	decoderCfg := func(cfg *mapstructure.DecoderConfig) {
		cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
		cfg.ErrorUnused = true
	}
	if err := v.Unmarshal(c, decoderCfg); err != nil {
		return errors.Wrap(err, "cannot decode config")
	}
	return c.Validate()
}
