package subtitle

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned for a format tag or extension other than srt and ass.
	ErrUnsupportedFormat = errors.New("unsupported subtitle format")

	// ErrNegativeResult is returned when an offset would move a cue before time zero.
	ErrNegativeResult = errors.New("time cannot be shifted before zero")

	// ErrNoCueFound is returned when a file has no recognizable cue line.
	ErrNoCueFound = errors.New("no cue line found")

	// ErrOffsetOutOfRange is returned when a shift component cannot be held in a time.Duration.
	ErrOffsetOutOfRange = errors.New("shift offset out of range")
)

// FormatError reports a timestamp that does not match its format's grammar.
type FormatError struct {
	Format Format
	Text   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("wrong %s time format: %q", e.Format, e.Text)
}

// IOError wraps a failure to read or write a subtitle file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func unsupported(format Format) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
