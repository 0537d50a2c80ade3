// Package report writes validated policy number entries to a destination.
//
// The default [Text] format writes one line per entry: the bare number when
// it is valid, otherwise the number followed by ERR or ILL:
//
//	457508000
//	664371495 ERR
//	86110??36 ILL
//
// [CSV], [JSONL] and [HTML] carry the same information for downstream tools.
// Files are always overwritten, never appended to.
package report

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tsawler/policyocr/entry"
)

// Format defines the available report formats
type Format int

const (
	// Text writes one formatted policy number per line
	Text Format = iota
	// CSV writes number,status,valid records
	CSV
	// JSONL writes one JSON object per entry
	JSONL
	// HTML writes a standalone HTML page with a results table
	HTML
)

// String returns the lower-case name of the format
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case CSV:
		return "csv"
	case JSONL:
		return "jsonl"
	case HTML:
		return "html"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case CSV:
		return ".csv"
	case JSONL:
		return ".jsonl"
	case HTML:
		return ".html"
	default:
		return ".txt"
	}
}

// ParseFormat converts a format name ("text", "csv", "jsonl", "html") into a
// Format. The empty string selects Text.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return Text, nil
	case "csv":
		return CSV, nil
	case "jsonl", "ndjson":
		return JSONL, nil
	case "html", "htm":
		return HTML, nil
	default:
		return Text, fmt.Errorf("unsupported report format %q", name)
	}
}

// Config holds configuration options for report output
type Config struct {
	// Format specifies the output format
	Format Format

	// IncludeHeader writes a header row for CSV output
	IncludeHeader bool

	// Title is used as the HTML page title and heading
	Title string
}

// DefaultConfig returns the plain text report configuration
func DefaultConfig() Config {
	return Config{
		Format:        Text,
		IncludeHeader: true,
		Title:         "Policy number report",
	}
}

// Writer renders entries in a configured format
type Writer struct {
	config Config
}

// NewWriter creates a writer with the default configuration
func NewWriter() *Writer {
	return &Writer{config: DefaultConfig()}
}

// NewWriterWithConfig creates a writer with a custom configuration
func NewWriterWithConfig(config Config) *Writer {
	return &Writer{config: config}
}

// Record is the serialized form of an entry in CSV and JSONL output
type Record struct {
	Number string `json:"number"`
	Status string `json:"status"`
	Valid  bool   `json:"valid"`
	Line   int    `json:"line,omitempty"`
}

func toRecord(e entry.Entry) Record {
	return Record{
		Number: e.Number,
		Status: e.Status.String(),
		Valid:  e.Valid,
		Line:   e.Line,
	}
}

// Write renders entries to w
func (rw *Writer) Write(entries []entry.Entry, w io.Writer) error {
	switch rw.config.Format {
	case Text:
		return writeText(entries, w)
	case CSV:
		return rw.writeCSV(entries, w)
	case JSONL:
		return writeJSONL(entries, w)
	case HTML:
		return rw.writeHTML(entries, w)
	default:
		return fmt.Errorf("unsupported report format: %v", rw.config.Format)
	}
}

// WriteFile renders entries to filename, creating it or truncating any
// existing content.
func (rw *Writer) WriteFile(entries []entry.Entry, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	if err := rw.Write(entries, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report file: %w", err)
	}
	return nil
}

// WriteString renders entries to a string
func (rw *Writer) WriteString(entries []entry.Entry) (string, error) {
	var buf bytes.Buffer
	if err := rw.Write(entries, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders entries to w in the given format with default options
func Write(w io.Writer, entries []entry.Entry, format Format) error {
	cfg := DefaultConfig()
	cfg.Format = format
	return NewWriterWithConfig(cfg).Write(entries, w)
}

// WriteFile renders entries to filename in the given format with default
// options, overwriting the file.
func WriteFile(filename string, entries []entry.Entry, format Format) error {
	cfg := DefaultConfig()
	cfg.Format = format
	return NewWriterWithConfig(cfg).WriteFile(entries, filename)
}

// writeText writes one newline-terminated report line per entry
func writeText(entries []entry.Entry, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(e.String() + "\n"); err != nil {
			return fmt.Errorf("writing entry %s: %w", e.Number, err)
		}
	}
	return bw.Flush()
}

// writeCSV writes number,status,valid,line records
func (rw *Writer) writeCSV(entries []entry.Entry, w io.Writer) error {
	csvWriter := csv.NewWriter(w)

	if rw.config.IncludeHeader {
		if err := csvWriter.Write([]string{"number", "status", "valid", "line"}); err != nil {
			return fmt.Errorf("writing CSV header: %w", err)
		}
	}

	for i, e := range entries {
		r := toRecord(e)
		row := []string{r.Number, r.Status, strconv.FormatBool(r.Valid), strconv.Itoa(r.Line)}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

// writeJSONL writes one JSON object per line
func writeJSONL(entries []entry.Entry, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for i, e := range entries {
		if err := encoder.Encode(toRecord(e)); err != nil {
			return fmt.Errorf("encoding entry %d: %w", i, err)
		}
	}
	return nil
}
