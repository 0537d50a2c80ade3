// Package entry turns the lines of a glyph document into validated policy
// number entries.
//
// A document is a sequence of entries, each four lines long: three glyph rows
// followed by a blank separator. The separator is never inspected, and a final
// entry missing its separator is still read.
//
//	entries, err := entry.Parse(lines)
//	for _, e := range entries {
//	    fmt.Println(e)
//	}
package entry

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/policyocr/glyph"
	"github.com/tsawler/policyocr/policy"
	"github.com/tsawler/policyocr/source"
)

// LinesPerEntry is the number of source lines one entry occupies, including
// the separator.
const LinesPerEntry = glyph.Rows + 1

// Entry is one recognized policy number and its validation outcome.
type Entry struct {
	// Number is the 9-character recognized number; illegible digits are '?'.
	Number string
	// Status is the classification of Number.
	Status policy.Status
	// Valid is the raw checksum result. It is false whenever Status is ILL.
	Valid bool
	// Line is the 1-based source line of the entry's first glyph row.
	Line int
}

// String returns the report line for the entry.
func (e Entry) String() string {
	return policy.FormatStatus(e.Number, e.Status)
}

// New recognizes the three glyph rows and classifies the result.
func New(rows [glyph.Rows]string, line int) Entry {
	number := glyph.Recognize(rows)
	return Entry{
		Number: number,
		Status: policy.Classify(number),
		Valid:  policy.IsValid(number),
		Line:   line,
	}
}

// Config holds configuration for parsing.
type Config struct {
	// Workers is the number of goroutines recognizing entries. Values below 1
	// are treated as 1. Output order never depends on this value.
	Workers int

	// Logger receives debug output about skipped groups and ILL/ERR entries.
	// Nil disables logging.
	Logger *zap.Logger
}

// DefaultConfig returns the default parsing configuration: one worker and no
// logging.
func DefaultConfig() Config {
	return Config{
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}

// Parse splits lines into entries and validates each one, using the default
// configuration. It returns source.ErrEmpty if lines is empty.
func Parse(lines []string) ([]Entry, error) {
	return ParseWithConfig(context.Background(), lines, DefaultConfig())
}

// ParseWithConfig splits lines into groups of LinesPerEntry, recognizes the
// first three lines of every group and returns one Entry per group in source
// order. A trailing group of fewer than three lines is discarded. Illegible
// digits and bad checksums are reported through Entry.Status, never as errors;
// the only failures are an empty input and a cancelled context.
func ParseWithConfig(ctx context.Context, lines []string, cfg Config) ([]Entry, error) {
	if len(lines) == 0 {
		return nil, source.ErrEmpty
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	groups := len(lines) / LinesPerEntry
	if rem := len(lines) % LinesPerEntry; rem >= glyph.Rows {
		groups++
	} else if rem > 0 {
		log.Debug("discarding incomplete entry",
			zap.Int("line", groups*LinesPerEntry+1),
			zap.Int("lines", rem))
	}

	entries := make([]Entry, groups)
	parse := func(i int) {
		start := i * LinesPerEntry
		var rows [glyph.Rows]string
		copy(rows[:], lines[start:start+glyph.Rows])
		entries[i] = New(rows, start+1)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > groups {
		workers = groups
	}

	if workers <= 1 {
		for i := 0; i < groups; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			parse(i)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := 0; i < groups; i++ {
			if err := gctx.Err(); err != nil {
				break
			}
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				parse(i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	for _, e := range entries {
		if e.Status != policy.OK {
			log.Debug("entry flagged",
				zap.Int("line", e.Line),
				zap.String("number", e.Number),
				zap.Stringer("status", e.Status))
		}
	}
	return entries, nil
}

// Filter returns the entries whose status is one of statuses, in their
// original order. With no statuses it returns entries unchanged.
func Filter(entries []Entry, statuses ...policy.Status) []Entry {
	if len(statuses) == 0 {
		return entries
	}
	keep := make(map[policy.Status]bool, len(statuses))
	for _, s := range statuses {
		keep[s] = true
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if keep[e.Status] {
			out = append(out, e)
		}
	}
	return out
}

// Summary counts entries by status.
type Summary struct {
	Total int
	OK    int
	ILL   int
	ERR   int
}

// Summarize counts entries by status.
func Summarize(entries []Entry) Summary {
	s := Summary{Total: len(entries)}
	for _, e := range entries {
		switch e.Status {
		case policy.OK:
			s.OK++
		case policy.ILL:
			s.ILL++
		case policy.ERR:
			s.ERR++
		}
	}
	return s
}

// String returns a one-line description of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("%d entries: %d OK, %d ILL, %d ERR", s.Total, s.OK, s.ILL, s.ERR)
}
