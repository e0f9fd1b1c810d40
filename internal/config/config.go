package config

import (
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultReadHeaderTimeout = 3 * time.Second
	defaultShutdownTimeout   = 3 * time.Second
	defaultLogLevel          = "info"
	defaultLogFormat         = "text"
)

func Parse(r io.Reader) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	var cfg Config

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	if cfg.Server.ReadHeaderTimeout.Duration <= 0 {
		cfg.Server.ReadHeaderTimeout = Duration{Duration: defaultReadHeaderTimeout}
	}

	if cfg.Server.ShutdownTimeout.Duration <= 0 {
		cfg.Server.ShutdownTimeout = Duration{Duration: defaultShutdownTimeout}
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = defaultLogFormat
	}

	v := validator.New()

	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
