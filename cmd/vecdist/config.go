package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "VECDIST"

// Config is read from VECDIST_* environment variables.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	// SIMD is the default for --isa. The library applies it on its own too.
	SIMD string `envconfig:"SIMD"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
