// Package policyocr provides a fluent API for reading policy numbers from
// glyph documents and scanned images, validating their checksums and writing
// an annotated report.
//
// Basic usage:
//
//	entries, err := policyocr.Open("batch.txt").Entries()
//	if err != nil {
//	    // handle error
//	}
//	for _, e := range entries {
//	    fmt.Println(e) // "457508000", "664371495 ERR", "86110??36 ILL"
//	}
//
// With options:
//
//	err := policyocr.Open("batch.txt").
//	    Workers(8).
//	    Logger(logger).
//	    WriteFile("results.txt", report.Text)
//
// For lower-level control, use the glyph, policy, entry, source and report
// packages directly.
package policyocr

import (
	"io"

	"github.com/tsawler/policyocr/source"
)

// Open returns a Scanner reading the file at filename. Nothing is read until
// a terminal operation such as Entries is called.
//
// Example:
//
//	entries, err := policyocr.Open("batch.txt").Entries()
func Open(filename string) *Scanner {
	return &Scanner{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromLines returns a Scanner over lines that have already been read, for
// example from a network source.
//
// Example:
//
//	entries, err := policyocr.FromLines(lines).Entries()
func FromLines(lines []string) *Scanner {
	return &Scanner{
		lines:     append([]string{}, lines...),
		linesRead: true,
		options:   defaultOptions(),
	}
}

// FromReader reads all lines from r immediately and returns a Scanner over
// them. name identifies the source in error messages. Read failures are
// reported by the first terminal operation.
//
// Example:
//
//	entries, err := policyocr.FromReader("stdin", os.Stdin).Entries()
func FromReader(name string, r io.Reader) *Scanner {
	lines, err := source.Read(name, r)
	return &Scanner{
		filename:  name,
		lines:     lines,
		linesRead: true,
		options:   defaultOptions(),
		err:       err,
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	entries := policyocr.Must(policyocr.Open("batch.txt").Entries())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
