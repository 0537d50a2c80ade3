package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/tsawler/policyocr/report"
)

// MaxWorkers bounds the worker pool size.
const MaxWorkers = 256

// Validate checks the config for usable values.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d", MaxWorkers, c.Workers)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// ReportFormat returns the parsed report format.
func (c *Config) ReportFormat() report.Format {
	f, _ := report.ParseFormat(c.Format)
	return f
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
