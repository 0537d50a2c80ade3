package source

import (
	"errors"
	"io/fs"
)

// Kind classifies why a source could not be turned into lines.
type Kind int

const (
	// NotFound means the source does not exist.
	NotFound Kind = iota + 1
	// Unreadable means the source exists but could not be read, for example
	// because of permissions or an I/O failure.
	Unreadable
	// Empty means the source was read but contained no lines.
	Empty
)

// Sentinel errors matched by errors.Is against any *Error of the same Kind.
var (
	ErrNotFound   = errors.New("source not found")
	ErrUnreadable = errors.New("source unreadable")
	ErrEmpty      = errors.New("source empty")
)

// String returns a short description of the kind.
func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Unreadable:
		return "unreadable"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case NotFound:
		return ErrNotFound
	case Unreadable:
		return ErrUnreadable
	case Empty:
		return ErrEmpty
	default:
		return nil
	}
}

// Error reports a source access failure. It names the source and the kind of
// failure, and wraps the underlying cause when there is one.
type Error struct {
	Source string
	Kind   Kind
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := "source " + quote(e.Source) + ": " + e.Kind.String()
	switch {
	case e.Err == nil, e.Kind == NotFound:
	case errors.Is(e.Err, fs.ErrPermission):
		msg += ": permission denied"
	default:
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error for e.Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func quote(name string) string {
	if name == "" {
		return "<input>"
	}
	return `"` + name + `"`
}

// classify maps an os.Open or read error onto the source taxonomy.
func classify(name string, err error) *Error {
	if errors.Is(err, fs.ErrNotExist) {
		return &Error{Source: name, Kind: NotFound, Err: err}
	}
	return &Error{Source: name, Kind: Unreadable, Err: err}
}
