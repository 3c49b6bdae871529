package collector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
)

// ErrPathNotFound is returned when the input path does not exist.
// This is a fatal, run-level error.
var ErrPathNotFound = errors.New("input path not found")

// Collector resolves an input path into the list of files to scan.
type Collector struct {
	// extensions is the set of file extensions (lowercase, with leading dot)
	// kept during a directory walk.
	extensions map[string]bool

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithExtensions sets the file extensions collected during directory walks.
// Extensions are matched case-insensitively and may be given with or without
// a leading dot. The default is ".txt" only.
func WithExtensions(exts []string) Option {
	return func(c *Collector) {
		if len(exts) == 0 {
			return
		}
		c.extensions = make(map[string]bool, len(exts))
		for _, ext := range exts {
			if ext == "" {
				continue
			}
			if ext[0] != '.' {
				ext = "." + ext
			}
			c.extensions[strings.ToLower(ext)] = true
		}
	}
}

// WithLogger sets a custom logger for the collector.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// New creates a Collector with the given options.
func New(opts ...Option) *Collector {
	c := &Collector{
		extensions: map[string]bool{".txt": true},
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Collect resolves path into a sorted list of files to scan.
//
// If path is a regular file it is returned as-is, regardless of extension:
// a user who names a file explicitly wants it scanned. If path is a
// directory it is walked recursively and files matching the extension set
// are collected. A nonexistent path returns ErrPathNotFound.
//
// Unreadable subdirectories are skipped with a warning rather than aborting
// the walk; a partially readable tree still produces a useful scan.
func (c *Collector) Collect(ctx context.Context, path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat input path: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = godirwalk.Walk(path, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			if de.IsDir() {
				return nil
			}
			if c.extensions[strings.ToLower(filepath.Ext(osPathname))] {
				files = append(files, osPathname)
			}
			return nil
		},
		ErrorCallback: func(osPathname string, err error) godirwalk.ErrorAction {
			// Callback errors also arrive here; cancellation must abort
			// the walk instead of being skipped.
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return godirwalk.Halt
			}
			c.logger.Warn("skipping unreadable path", "path", osPathname, "error", err)
			return godirwalk.SkipNode
		},
		Unsorted: true, // we sort the final list ourselves
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, err)
	}

	sort.Strings(files)

	c.logger.Debug("collected files", "path", path, "count", len(files))
	return files, nil
}
