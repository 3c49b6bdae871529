package log

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestOpenErrorLog tests error log creation and appending.
func TestOpenErrorLog(t *testing.T) {
	t.Parallel()

	t.Run("creates file with restricted permissions", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "error.log")
		el, err := OpenErrorLog(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer el.Close()

		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if got := info.Mode().Perm(); got != 0600 {
			t.Errorf("expected mode 0600, got %o", got)
		}
	})

	t.Run("appends across opens", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "error.log")

		el, err := OpenErrorLog(path)
		if err != nil {
			t.Fatal(err)
		}
		el.LineError("dump.txt", 5, errors.New("line too long"))
		if err := el.Close(); err != nil {
			t.Fatal(err)
		}

		el2, err := OpenErrorLog(path)
		if err != nil {
			t.Fatal(err)
		}
		el2.FileError("other.txt", errors.New("permission denied"))
		if err := el2.Close(); err != nil {
			t.Fatal(err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		out := string(data)

		if !strings.Contains(out, "dump.txt") || !strings.Contains(out, "line=5") {
			t.Errorf("expected first entry with source and line, got: %s", out)
		}
		if !strings.Contains(out, "other.txt") || !strings.Contains(out, "permission denied") {
			t.Errorf("expected second entry appended, got: %s", out)
		}
	})

	t.Run("unwritable path returns error", func(t *testing.T) {
		t.Parallel()

		if _, err := OpenErrorLog(filepath.Join(t.TempDir(), "missing", "error.log")); err == nil {
			t.Error("expected error for missing parent directory")
		}
	})
}
