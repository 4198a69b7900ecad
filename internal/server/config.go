package server

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the HTTP service configuration, read from environment
// variables with an optional YAML overlay.
type Config struct {
	// Environment selects logger behaviour (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	HTTP struct {
		// Addr is the address and port the HTTP server listens on.
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading a request.
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"30s" yaml:"readTimeout"`
		// WriteTimeout is the maximum duration before timing out a response.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30s" yaml:"writeTimeout"`
		// IdleTimeout is the keep-alive idle limit.
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// ShutdownTimeout bounds graceful shutdown.
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"shutdownTimeout"`
	} `yaml:"http"`

	Data struct {
		// ThresholdsPath points at a thresholds.yaml; empty uses built-ins.
		ThresholdsPath string `env:"DATA_THRESHOLDS_PATH" env-default:"" yaml:"thresholdsPath"`
		// DisregardsPath points at a disregards.yaml; empty uses built-ins.
		DisregardsPath string `env:"DATA_DISREGARDS_PATH" env-default:"" yaml:"disregardsPath"`
		// AuthoritiesPath points at an authorities.yaml; empty uses built-ins.
		AuthoritiesPath string `env:"DATA_AUTHORITIES_PATH" env-default:"" yaml:"authoritiesPath"`
	} `yaml:"data"`
}

// LoadConfig reads configuration from the environment, overlaid on the given
// YAML file when one is supplied.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		return &cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}
	return &cfg, nil
}
