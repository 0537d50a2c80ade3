package policyocr

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/tsawler/policyocr/entry"
	"github.com/tsawler/policyocr/report"
	"github.com/tsawler/policyocr/source"
)

// Scanner provides a fluent interface for recognizing and validating policy
// numbers. Each configuration method returns a new Scanner instance, making it
// safe for concurrent use and allowing method chaining.
type Scanner struct {
	// Source
	filename  string
	lines     []string
	linesRead bool

	// Configuration
	options scanOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Scanner. Lines are shared; they are never
// modified after being read.
func (s *Scanner) clone() *Scanner {
	return &Scanner{
		filename:  s.filename,
		lines:     s.lines,
		linesRead: s.linesRead,
		options:   s.options.clone(),
		err:       s.err,
	}
}

// ============================================================================
// Configuration Methods (return new Scanner instance)
// ============================================================================

// Workers sets how many goroutines recognize entries. Report order is the
// same for any value.
//
// Example:
//
//	entries, err := policyocr.Open("batch.txt").Workers(8).Entries()
func (s *Scanner) Workers(n int) *Scanner {
	newScan := s.clone()
	newScan.options.workers = n
	return newScan
}

// Logger sets the logger used for debug output while reading and parsing.
// A nil logger disables logging.
func (s *Scanner) Logger(l *zap.Logger) *Scanner {
	newScan := s.clone()
	if l == nil {
		l = zap.NewNop()
	}
	newScan.options.logger = l
	return newScan
}

// Language sets the Tesseract language for image sources.
func (s *Scanner) Language(lang string) *Scanner {
	newScan := s.clone()
	newScan.options.ocrLanguage = lang
	return newScan
}

// Context sets a context that cancels parsing between entries.
func (s *Scanner) Context(ctx context.Context) *Scanner {
	newScan := s.clone()
	if ctx == nil {
		ctx = context.Background()
	}
	newScan.options.ctx = ctx
	return newScan
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Lines returns the raw source lines.
func (s *Scanner) Lines() ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.linesRead {
		if len(s.lines) == 0 {
			return nil, &source.Error{Source: s.filename, Kind: source.Empty}
		}
		return s.lines, nil
	}
	if s.filename == "" {
		return nil, &source.Error{Kind: source.NotFound, Err: errors.New("no filename specified")}
	}

	return source.ReadFileWithConfig(s.filename, source.Config{
		OCRLanguage: s.options.ocrLanguage,
		Logger:      s.options.logger,
	})
}

// Entries recognizes and validates every entry in the source, in source
// order. Only source failures are returned as errors; illegible digits and
// bad checksums are reported through each entry's Status.
//
// Example:
//
//	entries, err := policyocr.Open("batch.txt").Entries()
func (s *Scanner) Entries() ([]entry.Entry, error) {
	lines, err := s.Lines()
	if err != nil {
		return nil, err
	}

	entries, err := entry.ParseWithConfig(s.options.ctx, lines, entry.Config{
		Workers: s.options.workers,
		Logger:  s.options.logger,
	})
	if errors.Is(err, source.ErrEmpty) {
		return nil, &source.Error{Source: s.filename, Kind: source.Empty}
	}
	if err != nil {
		return nil, err
	}

	s.options.logger.Debug("parsed source",
		zap.String("source", s.filename),
		zap.Int("lines", len(lines)),
		zap.Int("entries", len(entries)))
	return entries, nil
}

// Summary returns the count of entries by status.
func (s *Scanner) Summary() (entry.Summary, error) {
	entries, err := s.Entries()
	if err != nil {
		return entry.Summary{}, err
	}
	return entry.Summarize(entries), nil
}

// Report writes the report for every entry to w in the given format.
//
// Example:
//
//	err := policyocr.Open("batch.txt").Report(os.Stdout, report.Text)
func (s *Scanner) Report(w io.Writer, format report.Format) error {
	entries, err := s.Entries()
	if err != nil {
		return err
	}
	return report.Write(w, entries, format)
}

// WriteFile writes the report to filename, replacing any existing content.
// The file is not touched if the source cannot be read.
//
// Example:
//
//	err := policyocr.Open("batch.txt").WriteFile("results.txt", report.Text)
func (s *Scanner) WriteFile(filename string, format report.Format) error {
	entries, err := s.Entries()
	if err != nil {
		return err
	}
	return report.WriteFile(filename, entries, format)
}
