package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/credscan/internal/model"
)

// Default configuration values.
const (
	// DefaultPath is the input path scanned when --path is not given.
	DefaultPath = "."

	// DefaultErrorLogPath is the append-only log file that receives
	// recoverable per-line scan failures.
	DefaultErrorLogPath = "error.log"

	// DefaultMaxLineBytes caps how long a single input line may be before
	// it is treated as a recoverable per-line error. Credential dump files
	// occasionally contain binary garbage; 1 MiB is far beyond any real
	// credential line while keeping memory bounded.
	DefaultMaxLineBytes = 1 << 20

	// AppName is the application name used for XDG directory paths.
	AppName = "credscan"
)

// DefaultExtensions is the file extension set collected when scanning a
// directory. Extensions are matched case-insensitively. The set only applies
// to directory walks; a single-file input path is always scanned as-is.
var DefaultExtensions = []string{".txt"}

// Config holds all configuration options for a credscan run.
// This struct is populated from CLI flags (and optionally the YAML config
// file) and passed through the application via dependency injection rather
// than global state.
type Config struct {
	// Path is the input file or directory to scan.
	Path string

	// Keywords is the list of keywords used to filter credential URLs.
	// Matching is a case-insensitive substring test; a record is kept if
	// any keyword occurs in its URL.
	Keywords []string

	// OutputFile is the export destination. Its extension selects the
	// export format and must be one of .json, .csv, or .txt.
	OutputFile string

	// Format is the export format derived from OutputFile at startup.
	Format model.Format

	// ErrorLogPath is the append-only file that receives recoverable
	// per-line failures (decode errors, oversize lines, unreadable files).
	ErrorLogPath string

	// Extensions is the file extension set used when walking a directory.
	// If empty, DefaultExtensions applies.
	Extensions []string

	// MaxLineBytes caps the length of a single input line.
	MaxLineBytes int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the YAML configuration file.
	// If empty, the tool searches for .credscan in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// SaveToDB indicates whether to record the run in the history database.
	SaveToDB bool

	// DBDir is the directory holding the SQLite run-history database.
	// Defaults to the XDG data directory.
	DBDir string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults; callers override specific
// values from CLI flags after creation.
func NewConfig() *Config {
	return &Config{
		Path:         DefaultPath,
		ErrorLogPath: DefaultErrorLogPath,
		Extensions:   append([]string(nil), DefaultExtensions...),
		MaxLineBytes: DefaultMaxLineBytes,
	}
}

// XDGDataDir returns the XDG data directory for credscan.
// On Linux: ~/.local/share/credscan
// On macOS: ~/Library/Application Support/credscan
// On Windows: %LOCALAPPDATA%\credscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for credscan.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It is called once after CLI parsing, before any scanning begins, so that
// fatal configuration errors abort the run with a clear message up front.
// It returns the first error found.
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrNoPath
	}

	// The CLI requires at least one keyword. The filter itself treats an
	// empty keyword set as match-all, but an empty --keywords flag is
	// almost always a mistake on the command line.
	if len(c.Keywords) == 0 {
		return ErrNoKeywords
	}

	if c.OutputFile == "" {
		return ErrNoOutput
	}

	if c.MaxLineBytes <= 0 {
		return ErrInvalidMaxLineBytes
	}

	return nil
}
