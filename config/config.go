// Package config loads policyocr settings from a YAML file and the
// environment.
//
// Precedence, lowest to highest: built-in defaults, the YAML file, POLICYOCR_*
// environment variables. Command line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all policyocr configuration.
type Config struct {
	// Workers is the number of goroutines recognizing entries.
	Workers int `yaml:"workers" env:"POLICYOCR_WORKERS"`

	// Format is the report format: text, csv, jsonl or html.
	Format string `yaml:"format" env:"POLICYOCR_FORMAT"`

	// Output is the report path. Empty means stdout.
	Output string `yaml:"output" env:"POLICYOCR_OUTPUT"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"POLICYOCR_LOG_LEVEL"`

	// OCR configures recognition of scanned images.
	OCR OCRConfig `yaml:"ocr" envPrefix:"POLICYOCR_OCR_"`
}

// OCRConfig configures Tesseract for image sources.
type OCRConfig struct {
	Language string `yaml:"language" env:"LANGUAGE"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Workers:  1,
		Format:   "text",
		LogLevel: "info",
		OCR: OCRConfig{
			Language: "eng",
		},
	}
}

// Load reads configuration from a YAML file, then applies environment
// overrides and validates the result. A missing file, or an empty path,
// yields the defaults plus any environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv overlays POLICYOCR_* environment variables onto target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// applyDefaults fills fields a config file may have blanked.
func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.Format == "" {
		cfg.Format = d.Format
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = d.LogLevel
	}
	if cfg.OCR.Language == "" {
		cfg.OCR.Language = d.OCR.Language
	}
}
