package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestSecureHandlerMasksSensitiveKeys tests masking by attribute key.
func TestSecureHandlerMasksSensitiveKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "password key", key: "password", value: "hunter2"},
		{name: "secret key", key: "secret", value: "s3cr3t"},
		{name: "token key", key: "token", value: "abc123"},
		{name: "uppercase key", key: "PASSWORD", value: "hunter2"},
		{name: "raw line key", key: "raw_line", value: "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
			logger.Info("test", tt.key, tt.value)

			out := buf.String()
			if strings.Contains(out, tt.value) {
				t.Errorf("expected %q to be masked, got: %s", tt.value, out)
			}
			if !strings.Contains(out, MaskValue) {
				t.Errorf("expected mask value in output, got: %s", out)
			}
		})
	}
}

// TestSecureHandlerMasksCredentialLines tests value-based masking of
// url:username:password triples regardless of key name.
func TestSecureHandlerMasksCredentialLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("test", "content", "https://example.com/login:alice:secret1")

	out := buf.String()
	if strings.Contains(out, "secret1") {
		t.Errorf("expected credential line to be masked, got: %s", out)
	}
	if !strings.Contains(out, MaskValue) {
		t.Errorf("expected mask value in output, got: %s", out)
	}
}

// TestSecureHandlerPassesNormalAttrs tests that regular attributes survive.
func TestSecureHandlerPassesNormalAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("scan done", "file", "dump.txt", "line", 42)

	out := buf.String()
	if !strings.Contains(out, "dump.txt") {
		t.Errorf("expected file attribute to pass through, got: %s", out)
	}
	if !strings.Contains(out, "line=42") {
		t.Errorf("expected integer line number to pass through, got: %s", out)
	}
}

// TestSecureHandlerMasksGroups tests masking inside attribute groups.
func TestSecureHandlerMasksGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
	logger.Info("test", slog.Group("record",
		slog.String("username", "alice"),
		slog.String("password", "hunter2"),
	))

	out := buf.String()
	if strings.Contains(out, "hunter2") {
		t.Errorf("expected grouped password to be masked, got: %s", out)
	}
	if !strings.Contains(out, "alice") {
		t.Errorf("expected grouped username to pass through, got: %s", out)
	}
}

// TestSecureHandlerWithAttrs tests masking of pre-bound attributes.
func TestSecureHandlerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSecureHandler(slog.NewTextHandler(&buf, nil)))
	logger.With("password", "hunter2").Info("test")

	out := buf.String()
	if strings.Contains(out, "hunter2") {
		t.Errorf("expected bound password to be masked, got: %s", out)
	}
}

// TestNewSecureLogger tests log level selection.
func TestNewSecureLogger(t *testing.T) {
	t.Parallel()

	t.Run("quiet logger drops debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, false)
		logger.Debug("should not appear")
		logger.Info("should not appear either")
		logger.Warn("should appear")

		out := buf.String()
		if strings.Contains(out, "should not appear") {
			t.Errorf("expected debug and info to be dropped, got: %s", out)
		}
		if !strings.Contains(out, "should appear") {
			t.Errorf("expected warn to be logged, got: %s", out)
		}
	})

	t.Run("verbose logger keeps debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := NewSecureLogger(&buf, true)
		logger.Debug("debug message")

		if !strings.Contains(buf.String(), "debug message") {
			t.Errorf("expected debug to be logged, got: %s", buf.String())
		}
	})
}
