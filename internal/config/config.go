// Package config loads the gbfs command configuration.
//
// Values are layered: built-in defaults, then an optional TOML file, then
// GBFS_* environment variables. Command-line flags are applied last by the
// caller.
//
// TOML format:
//
//	graph      = "grid13"     # or "toy"
//	start      = "S"
//	goal       = "T"
//	heuristic  = "manhattan"  # euclidean, chebyshev, table
//	cost       = "heuristic"  # or "weighted"
//	max_steps  = 0            # 0 = unlimited
//	timeout    = "2s"         # empty = none
//	log_level  = "info"
//	log_format = "text"
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the command configuration.
type Config struct {
	Graph     string `toml:"graph"`
	Start     string `toml:"start"`
	Goal      string `toml:"goal"`
	Heuristic string `toml:"heuristic"`
	Cost      string `toml:"cost"`
	MaxSteps  int    `toml:"max_steps"`
	Timeout   string `toml:"timeout"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Default returns the configuration that reproduces the worked example.
func Default() *Config {
	return &Config{
		Graph:     "grid13",
		Start:     "S",
		Goal:      "T",
		Heuristic: "manhattan",
		Cost:      "heuristic",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load returns Default overlaid with the TOML file at path (skipped when
// path is empty) and then with GBFS_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config file %q: %w", path, err)
		}
	}

	cfg.Graph = getEnv("GBFS_GRAPH", cfg.Graph)
	cfg.Start = getEnv("GBFS_START", cfg.Start)
	cfg.Goal = getEnv("GBFS_GOAL", cfg.Goal)
	cfg.Heuristic = getEnv("GBFS_HEURISTIC", cfg.Heuristic)
	cfg.Cost = getEnv("GBFS_COST", cfg.Cost)
	maxSteps, err := getEnvAsInt("GBFS_MAX_STEPS", cfg.MaxSteps)
	if err != nil {
		return nil, err
	}
	cfg.MaxSteps = maxSteps
	cfg.Timeout = getEnv("GBFS_TIMEOUT", cfg.Timeout)
	cfg.LogLevel = getEnv("GBFS_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("GBFS_LOG_FORMAT", cfg.LogFormat)

	return cfg, nil
}

// Validate checks enumerated fields and numeric ranges.
func (c *Config) Validate() error {
	switch c.Graph {
	case "grid13", "toy":
	default:
		return fmt.Errorf("%w: graph %q", ErrInvalid, c.Graph)
	}
	switch c.Heuristic {
	case "manhattan", "euclidean", "chebyshev", "table":
	default:
		return fmt.Errorf("%w: heuristic %q", ErrInvalid, c.Heuristic)
	}
	switch c.Cost {
	case "heuristic", "weighted":
	default:
		return fmt.Errorf("%w: cost %q", ErrInvalid, c.Cost)
	}
	if c.Start == "" || c.Goal == "" {
		return fmt.Errorf("%w: start and goal are required", ErrInvalid)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps %d", ErrInvalid, c.MaxSteps)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// TimeoutDuration parses Timeout; an empty value means no timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: timeout %q", ErrInvalid, c.Timeout)
	}

	return d, nil
}

func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

// getEnvAsInt returns defaultValue when key is unset or empty, and an
// ErrInvalid error when it is set to something that is not an integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalid, key, valueStr)
	}
	return value, nil
}
