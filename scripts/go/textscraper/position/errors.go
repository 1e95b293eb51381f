package position

import (
	"errors"
	"fmt"
)

// ErrMalformedLine matches any *MalformedLineError.
var ErrMalformedLine = errors.New("malformed line")

// MalformedLineError reports a line that split into fewer than three tokens.
type MalformedLineError struct {
	// Line is 1-based; zero when the line was parsed on its own.
	Line   int
	Text   string
	Tokens int
}

func (e *MalformedLineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: expected 3 space-separated tokens, got %d: %q", e.Line, e.Tokens, e.Text)
	}
	return fmt.Sprintf("expected 3 space-separated tokens, got %d: %q", e.Tokens, e.Text)
}

func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedLine }

// FileAccessError wraps a failure to open or read the input.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string { return "read " + e.Path + ": " + e.Err.Error() }
func (e *FileAccessError) Unwrap() error { return e.Err }

// OutputError wraps a failure to write records out.
type OutputError struct {
	Err error
}

func (e *OutputError) Error() string { return "write records: " + e.Err.Error() }
func (e *OutputError) Unwrap() error { return e.Err }
