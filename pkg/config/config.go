// Package config holds the runtime configuration of the compliance
// engine: 12-factor environment variables with safe defaults, plus an
// optional YAML file for settings too structured for env vars.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds engine configuration.
type Config struct {
	LogLevel         string `yaml:"log_level"`
	DatabasePath     string `yaml:"database_path"`
	DefaultFramework string `yaml:"default_framework"`

	TelemetryEnabled bool    `yaml:"telemetry_enabled"`
	OTLPEndpoint     string  `yaml:"otlp_endpoint"`
	SampleRate       float64 `yaml:"sample_rate"`
}

// Load loads configuration from environment variables with defaults that
// let the engine run with nothing set.
func Load() *Config {
	logLevel := os.Getenv("ORBITREG_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "INFO"
	}

	dbPath := os.Getenv("ORBITREG_DB_PATH")
	if dbPath == "" {
		dbPath = "orbitreg.db"
	}

	framework := os.Getenv("ORBITREG_DEFAULT_FRAMEWORK")
	if framework == "" {
		framework = "EU_SPACE_ACT"
	}

	otlpEndpoint := os.Getenv("ORBITREG_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	sampleRate := 1.0
	if raw := os.Getenv("ORBITREG_SAMPLE_RATE"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			sampleRate = v
		}
	}

	return &Config{
		LogLevel:         logLevel,
		DatabasePath:     dbPath,
		DefaultFramework: framework,
		TelemetryEnabled: os.Getenv("ORBITREG_TELEMETRY") == "true",
		OTLPEndpoint:     otlpEndpoint,
		SampleRate:       sampleRate,
	}
}

// LoadFile reads a YAML configuration file over the environment-derived
// base, so file values win only where they are set.
func LoadFile(path string) (*Config, error) {
	cfg := Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
