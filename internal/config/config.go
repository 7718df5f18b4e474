// Package config loads runtime settings from the environment, optionally
// seeded by a .env file in the working directory.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ironsheep/brightpoint-mcp/internal/detection"
)

// Environment variables read by Load.
const (
	EnvLogLevel        = "BRIGHTPOINT_LOG_LEVEL"
	EnvThreshold       = "BRIGHTPOINT_THRESHOLD"
	EnvExclusionRadius = "BRIGHTPOINT_EXCLUSION_RADIUS"
	EnvMedianRadius    = "BRIGHTPOINT_MEDIAN_RADIUS"
	EnvMaxScans        = "BRIGHTPOINT_MAX_SCANS"
)

// DefaultMaxScans bounds the number of detection results the server keeps.
const DefaultMaxScans = 64

type Config struct {
	// LogLevel is "debug" for verbose logging. Anything else is quiet.
	LogLevel string

	// Detection holds the default parameters for tools that do not override them.
	Detection detection.Params

	// MaxScans is the capacity of the server's scan store.
	MaxScans int
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == "debug"
}

// Load reads the configuration. A missing .env file is not an error, but a
// malformed numeric setting is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:  os.Getenv(EnvLogLevel),
		Detection: detection.DefaultParams(),
		MaxScans:  DefaultMaxScans,
	}

	if v, ok := os.LookupEnv(EnvThreshold); ok {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvThreshold, v, err)
		}
		cfg.Detection.Threshold = uint8(n)
	}

	if v, ok := os.LookupEnv(EnvExclusionRadius); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvExclusionRadius, v, err)
		}
		cfg.Detection.ExclusionRadius = f
	}

	if v, ok := os.LookupEnv(EnvMedianRadius); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvMedianRadius, v, err)
		}
		cfg.Detection.MedianRadius = n
	}

	if v, ok := os.LookupEnv(EnvMaxScans); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid %s %q: must be a positive integer", EnvMaxScans, v)
		}
		cfg.MaxScans = n
	}

	if err := cfg.Detection.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
