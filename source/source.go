// Package source reads policy number batches into text lines.
//
// A batch is either a text file of glyph rows or a scanned image of one. Text
// is decoded through a byte order mark sniffer so UTF-8 and UTF-16 exports
// from scan stations read the same way; images are passed through OCR.
//
// Every failure is returned as an [*Error] whose Kind distinguishes a missing
// source, an unreadable one and an empty one:
//
//	lines, err := source.ReadFile("batch.txt")
//	if errors.Is(err, source.ErrNotFound) {
//	    // ...
//	}
package source

import (
	"bufio"
	"errors"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/tsawler/policyocr/format"
	"github.com/tsawler/policyocr/ocr"
)

// maxLineLength bounds a single input line.
const maxLineLength = 1024 * 1024

// Config holds options for reading sources.
type Config struct {
	// OCRLanguage is the Tesseract language used for image sources.
	OCRLanguage string

	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns the default source configuration.
func DefaultConfig() Config {
	return Config{
		OCRLanguage: "eng",
		Logger:      zap.NewNop(),
	}
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// ReadFile reads the file at path into lines using the default configuration.
func ReadFile(path string) ([]string, error) {
	return ReadFileWithConfig(path, DefaultConfig())
}

// ReadFileWithConfig reads the file at path into lines. Text files are read
// directly; image files are recognized with OCR.
func ReadFileWithConfig(path string, cfg Config) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, classify(path, err)
	}
	if info.IsDir() {
		return nil, &Error{Source: path, Kind: Unreadable, Err: errors.New("is a directory")}
	}

	kind := format.Detect(path)
	if kind == format.Unknown {
		kind, err = format.DetectFromReader(f)
		if err != nil {
			return nil, classify(path, err)
		}
	}
	cfg.logger().Debug("reading source",
		zap.String("source", path),
		zap.Stringer("format", kind),
		zap.Int64("bytes", info.Size()))

	if kind.IsImage() {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, classify(path, err)
		}
		return ReadImageWithConfig(path, data, cfg)
	}
	return Read(path, f)
}

// Read reads text lines from r. Line terminators ("\n" or "\r\n") are
// removed and all other characters, including trailing spaces, are kept. A
// leading UTF-8 or UTF-16 byte order mark selects the decoding. name is used
// only in error messages.
func Read(name string, r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, classify(name, err)
	}
	if len(lines) == 0 {
		return nil, &Error{Source: name, Kind: Empty}
	}
	return lines, nil
}

// ReadImage recognizes a scanned glyph sheet using the default configuration.
func ReadImage(name string, data []byte) ([]string, error) {
	return ReadImageWithConfig(name, data, DefaultConfig())
}

// ReadImageWithConfig recognizes a scanned glyph sheet with OCR and returns
// its lines. OCR being unavailable is reported as Unreadable.
func ReadImageWithConfig(name string, data []byte, cfg Config) ([]string, error) {
	client, err := ocr.New()
	if err != nil {
		return nil, &Error{Source: name, Kind: Unreadable, Err: err}
	}
	defer client.Close()

	if cfg.OCRLanguage != "" {
		if err := client.SetLanguage(cfg.OCRLanguage); err != nil {
			return nil, &Error{Source: name, Kind: Unreadable, Err: err}
		}
	}

	lines, err := client.RecognizeLines(data)
	if err != nil {
		return nil, &Error{Source: name, Kind: Unreadable, Err: err}
	}
	cfg.logger().Debug("recognized image", zap.String("source", name), zap.Int("lines", len(lines)))

	if len(lines) == 0 {
		return nil, &Error{Source: name, Kind: Empty}
	}
	return lines, nil
}
