package config

import (
	"reflect"
	"testing"
)

// TestFileApply tests merging file values into a config with flag precedence.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("file fills unset keywords", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		f := &File{Keywords: []string{"example", "corp"}}
		f.Apply(cfg)

		if !reflect.DeepEqual(cfg.Keywords, []string{"example", "corp"}) {
			t.Errorf("expected file keywords applied, got %v", cfg.Keywords)
		}
	})

	t.Run("flag keywords win over file", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Keywords = []string{"cli"}
		f := &File{Keywords: []string{"file"}}
		f.Apply(cfg)

		if !reflect.DeepEqual(cfg.Keywords, []string{"cli"}) {
			t.Errorf("expected CLI keywords to win, got %v", cfg.Keywords)
		}
	})

	t.Run("extensions are normalized", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		f := &File{Extensions: []string{"txt", ".log", ""}}
		f.Apply(cfg)

		if !reflect.DeepEqual(cfg.Extensions, []string{".txt", ".log"}) {
			t.Errorf("expected normalized extensions, got %v", cfg.Extensions)
		}
	})

	t.Run("file error log applies only over default", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		f := &File{ErrorLog: "scan-errors.log"}
		f.Apply(cfg)
		if cfg.ErrorLogPath != "scan-errors.log" {
			t.Errorf("expected file error log applied, got %q", cfg.ErrorLogPath)
		}

		cfg2 := NewConfig()
		cfg2.ErrorLogPath = "/tmp/cli.log"
		f.Apply(cfg2)
		if cfg2.ErrorLogPath != "/tmp/cli.log" {
			t.Errorf("expected CLI error log to win, got %q", cfg2.ErrorLogPath)
		}
	})

	t.Run("empty file changes nothing", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		want := *cfg
		(&File{}).Apply(cfg)

		if cfg.ErrorLogPath != want.ErrorLogPath || len(cfg.Keywords) != 0 {
			t.Error("expected empty file to leave config untouched")
		}
	})
}
