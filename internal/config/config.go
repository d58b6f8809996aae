// Package config provides Viper-based configuration loading for the dice simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cory-johannsen/dicesim/internal/sim"
)

// SimulationConfig holds the simulation parameters. In interactive mode these
// are the defaults offered at each prompt.
type SimulationConfig struct {
	// Sides is the number of faces on each die.
	Sides int `mapstructure:"sides"`
	// Dice is the number of dice thrown per roll.
	Dice int `mapstructure:"dice"`
	// Rolls is the number of rolls to simulate.
	Rolls int64 `mapstructure:"rolls"`
	// Seed selects a deterministic generator when non-zero; zero uses crypto/rand.
	Seed uint64 `mapstructure:"seed"`
	// Interactive enables prompting for sides, dice and rolls.
	Interactive bool `mapstructure:"interactive"`
}

// Params returns the simulation parameters described by s.
func (s SimulationConfig) Params() sim.Params {
	return sim.Params{Sides: s.Sides, Dice: s.Dice, Rolls: s.Rolls}
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// Validate checks the configuration invariants that cannot be overridden later.
// Simulation parameters are excluded: flags and prompts may still replace them,
// so they are checked with sim.Params.Validate once final.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	if err := validateLogging(c.Logging); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides only.
//
// Simulation parameters are not validated here; see Config.Validate.
//
// Postcondition: Returns a Config with valid logging settings or a non-nil error.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// newViper returns a Viper instance carrying the defaults and DICESIM_
// environment variable overrides.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("DICESIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.sides", 6)
	v.SetDefault("simulation.dice", 1)
	v.SetDefault("simulation.rolls", 10000)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.interactive", true)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}
