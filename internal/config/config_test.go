package config

import (
	"errors"
	"testing"
)

// TestNewConfig tests the defaults applied by the constructor.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	if cfg.Path != DefaultPath {
		t.Errorf("expected default path %q, got %q", DefaultPath, cfg.Path)
	}
	if cfg.ErrorLogPath != DefaultErrorLogPath {
		t.Errorf("expected default error log %q, got %q", DefaultErrorLogPath, cfg.ErrorLogPath)
	}
	if cfg.MaxLineBytes != DefaultMaxLineBytes {
		t.Errorf("expected default max line bytes %d, got %d", DefaultMaxLineBytes, cfg.MaxLineBytes)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".txt" {
		t.Errorf("expected default extensions [.txt], got %v", cfg.Extensions)
	}
	if cfg.Verbose {
		t.Error("expected verbose to default to false")
	}
}

// TestConfigValidate tests configuration validation rules.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := NewConfig()
		cfg.Keywords = []string{"example"}
		cfg.OutputFile = "out.json"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "empty path",
			mutate:  func(c *Config) { c.Path = "" },
			wantErr: ErrNoPath,
		},
		{
			name:    "no keywords",
			mutate:  func(c *Config) { c.Keywords = nil },
			wantErr: ErrNoKeywords,
		},
		{
			name:    "no output file",
			mutate:  func(c *Config) { c.OutputFile = "" },
			wantErr: ErrNoOutput,
		},
		{
			name:    "zero max line bytes",
			mutate:  func(c *Config) { c.MaxLineBytes = 0 },
			wantErr: ErrInvalidMaxLineBytes,
		},
		{
			name:    "negative max line bytes",
			mutate:  func(c *Config) { c.MaxLineBytes = -1 },
			wantErr: ErrInvalidMaxLineBytes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestXDGDataDir tests that the data directory ends with the app name.
func TestXDGDataDir(t *testing.T) {
	t.Parallel()

	dir := XDGDataDir()
	if dir == "" {
		t.Fatal("expected non-empty data directory")
	}
}
