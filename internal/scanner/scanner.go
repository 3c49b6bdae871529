package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/nao1215/credscan/internal/config"
	"github.com/nao1215/credscan/internal/log"
	"github.com/nao1215/credscan/internal/model"
)

// credentialPattern extracts url:username:password triples from a line.
//
// The URL part is <scheme>://<host>[:port][/path] where the scheme is any
// non-colon, non-slash prefix ending in "://". The username may not contain
// colons or slashes; the password may not contain slashes. The pattern is a
// substring search, so a credential embedded in surrounding text still
// matches.
var credentialPattern = regexp.MustCompile(
	`([^\s:/]+://[^\s:/]+(?::\d+)?(?:/[^\s]*)?):([^:/\s]+):([^/\s]+)`,
)

// errLineTooLong is reported for lines exceeding the configured length cap.
var errLineTooLong = errors.New("line exceeds maximum length")

// ParseLine extracts a credential from a single line.
// It returns the zero Credential and false when the line does not contain
// a credential triple.
func ParseLine(line string) (model.Credential, bool) {
	m := credentialPattern.FindStringSubmatch(line)
	if m == nil {
		return model.Credential{}, false
	}
	return model.Credential{URL: m[1], Username: m[2], Password: m[3]}, true
}

// Scanner reads files line by line and extracts credential matches into a
// scan report. All failures below the run level are recoverable: unreadable
// files and unprocessable lines are written to the error log and counted,
// and the scan moves on.
type Scanner struct {
	// maxLineBytes caps the length of a single line. Longer lines are
	// recorded as recoverable errors and skipped.
	maxLineBytes int

	// errLog receives recoverable failures. May be nil, in which case
	// failures are only counted and logged via logger.
	errLog *log.ErrorLog

	// logger for structured logging.
	logger *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithMaxLineBytes sets the line length cap.
func WithMaxLineBytes(n int) Option {
	return func(s *Scanner) {
		s.maxLineBytes = n
	}
}

// WithErrorLog sets the error log that receives recoverable failures.
func WithErrorLog(errLog *log.ErrorLog) Option {
	return func(s *Scanner) {
		s.errLog = errLog
	}
}

// WithLogger sets a custom logger for the scanner.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// New creates a Scanner with the given options.
func New(opts ...Option) *Scanner {
	s := &Scanner{
		maxLineBytes: config.DefaultMaxLineBytes,
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ScanFile scans a single file and appends matches to the report.
// It returns an error only when the context is cancelled; everything else
// is recoverable and recorded in the report's stats and the error log.
func (s *Scanner) ScanFile(ctx context.Context, path string, report *model.ScanReport) error {
	f, err := os.Open(path) //nolint:gosec // Scanning user-supplied paths is the tool's purpose
	if err != nil {
		s.recordFileError(path, err, report)
		return nil
	}
	defer f.Close() //nolint:errcheck // Read-only file

	if err := s.scanLines(ctx, path, newDecodingReader(f), report); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		// Mid-file read failure: keep what we found so far.
		s.recordFileError(path, err, report)
		return nil
	}

	report.Stats.FilesScanned++
	return nil
}

// scanLines reads r line by line and extracts credentials.
func (s *Scanner) scanLines(ctx context.Context, path string, r io.Reader, report *model.ScanReport) error {
	br := bufio.NewReader(r)
	lineNo := 0

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, tooLong, err := readLine(br, s.maxLineBytes)
		if err != nil && err != io.EOF {
			return err
		}
		atEOF := err == io.EOF

		if line != "" || !atEOF {
			lineNo++
			report.Stats.LinesScanned++

			switch {
			case tooLong:
				s.recordLineError(path, lineNo, errLineTooLong, report)
			default:
				s.matchLine(path, lineNo, line, report)
			}
		}

		if atEOF {
			return nil
		}
	}
}

// matchLine applies the credential pattern to one line.
//
// Lines that fail the pattern but clearly attempted the credential shape
// (a URL followed by further colon-separated fields, like "ftp://x:y") are
// recorded as malformed in the error log. Lines with no credential shape at
// all are silently skipped; most lines in a scanned corpus are unrelated
// text and logging them would bury real problems.
func (s *Scanner) matchLine(path string, lineNo int, line string, report *model.ScanReport) {
	if cred, ok := ParseLine(line); ok {
		report.AddMatch(model.Match{Credential: cred, Source: path, Line: lineNo})
		return
	}

	if looksMalformed(line) {
		s.recordLineError(path, lineNo, errors.New("malformed credential line"), report)
	}
}

// looksMalformed reports whether a non-matching line appears to be a broken
// credential entry: it contains a URL scheme and at least one extra
// colon-separated field after the scheme part.
func looksMalformed(line string) bool {
	_, rest, ok := strings.Cut(line, "://")
	if !ok {
		return false
	}
	return strings.Contains(rest, ":")
}

// recordLineError logs a recoverable per-line failure and counts it.
func (s *Scanner) recordLineError(path string, lineNo int, err error, report *model.ScanReport) {
	report.Stats.LineErrors++
	if s.errLog != nil {
		s.errLog.LineError(path, lineNo, err)
	}
	s.logger.Debug("line skipped", "file", path, "lineNumber", lineNo, "error", err)
}

// recordFileError logs a recoverable per-file failure and counts it.
func (s *Scanner) recordFileError(path string, err error, report *model.ScanReport) {
	report.Stats.FilesSkipped++
	if s.errLog != nil {
		s.errLog.FileError(path, err)
	}
	s.logger.Warn("file skipped", "file", path, "error", err)
}

// readLine reads one line from br, up to max bytes. If the line is longer,
// the remainder is consumed and discarded and tooLong is true. The trailing
// newline (and any carriage return) is stripped. io.EOF is returned together
// with the final line when the input does not end in a newline.
func readLine(br *bufio.Reader, max int) (line string, tooLong bool, err error) {
	var buf []byte

	for {
		frag, err := br.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(frag) > max {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, frag...)
			}
		}

		switch {
		case err == nil, err == io.EOF:
			return strings.TrimRight(string(buf), "\r\n"), tooLong, err
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		default:
			return "", tooLong, fmt.Errorf("read failed: %w", err)
		}
	}
}
