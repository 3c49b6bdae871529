package log

import (
	"fmt"
	"log/slog"
	"os"
)

// ErrorLog is the append-only file logger that receives recoverable per-line
// scan failures. Each failure becomes one line containing the source file,
// line number, and error description.
//
// The logger is wrapped in a SecureHandler so a failing input line's content
// can never end up in error.log, only its location.
type ErrorLog struct {
	// Logger records recoverable failures. It is never nil.
	*slog.Logger

	file *os.File
}

// OpenErrorLog opens (or creates) the error log file in append mode.
// The file is created with 0600 permissions: even though credential values
// are masked, scan error logs still reveal which files were scanned.
func OpenErrorLog(path string) (*ErrorLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // User-provided log path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open error log %s: %w", path, err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &ErrorLog{
		Logger: slog.New(NewSecureHandler(handler)),
		file:   f,
	}, nil
}

// LineError records a recoverable per-line failure.
func (e *ErrorLog) LineError(source string, line int, err error) {
	e.Error("line scan failed", "file", source, "line", line, "error", err.Error())
}

// FileError records a recoverable per-file failure (unreadable file).
func (e *ErrorLog) FileError(source string, err error) {
	e.Error("file scan failed", "file", source, "error", err.Error())
}

// Close closes the underlying log file.
func (e *ErrorLog) Close() error {
	return e.file.Close()
}
