package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/policyocr/report"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policyocr.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "nope.yaml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error: %v", path, err)
		}
		if diff := cmp.Diff(Default(), cfg); diff != "" {
			t.Errorf("Load(%q) mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, `
workers: 4
format: csv
output: results.csv
log_level: debug
ocr:
  language: eng+fra
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := &Config{
		Workers:  4,
		Format:   "csv",
		Output:   "results.csv",
		LogLevel: "debug",
		OCR:      OCRConfig{Language: "eng+fra"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if cfg.ReportFormat() != report.CSV {
		t.Errorf("ReportFormat() = %v, want csv", cfg.ReportFormat())
	}
	if cfg.Level() != zapcore.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "workers: 2\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Workers != 2 || cfg.Format != "text" || cfg.OCR.Language != "eng" {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POLICYOCR_WORKERS", "8")
	t.Setenv("POLICYOCR_FORMAT", "html")
	t.Setenv("POLICYOCR_OCR_LANGUAGE", "deu")

	cfg, err := Load(writeConfig(t, "workers: 2\nformat: csv\n"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.Format != "html" {
		t.Errorf("Format = %q, want html", cfg.Format)
	}
	if cfg.OCR.Language != "deu" {
		t.Errorf("OCR.Language = %q, want deu", cfg.OCR.Language)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "workers: [", "parse config"},
		{"zero workers", "workers: 0", "workers must be"},
		{"too many workers", "workers: 100000", "workers must be"},
		{"bad format", "format: xml", "format"},
		{"bad level", "log_level: loud", "log_level"},
	}

	for _, tt := range tests {
		_, err := Load(writeConfig(t, tt.body))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q should contain %q", tt.name, err, tt.want)
		}
	}
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("POLICYOCR_WORKERS", "many")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric POLICYOCR_WORKERS")
	}
}

func TestValidate_Nil(t *testing.T) {
	var cfg *Config
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for nil config")
	}
}
