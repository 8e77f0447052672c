package subtitle

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"
)

// represents supported subtitle formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatASS Format = "ass"
)

var formats = []Format{FormatSRT, FormatASS}

// each offset component is held to half the Duration range so their sum
// cannot overflow either
const (
	maxOffsetSeconds = math.MaxInt64 / int64(time.Second) / 2
	maxOffsetMillis  = math.MaxInt64 / int64(time.Millisecond) / 2
)

// parameters of one shifting run, fixed for every file it touches
type ShiftConfig struct {
	// signed amount added to every start and end time
	Offset time.Duration
	// 1-based line number from which cues are shifted; 0 or 1 means all lines
	StartLine int
}

// builds the shift offset from the whole-second and millisecond components
func NewOffset(seconds, millis int) (time.Duration, error) {
	if s := int64(seconds); s > maxOffsetSeconds || s < -maxOffsetSeconds {
		return 0, fmt.Errorf("%w: %d seconds", ErrOffsetOutOfRange, seconds)
	}
	if ms := int64(millis); ms > maxOffsetMillis || ms < -maxOffsetMillis {
		return 0, fmt.Errorf("%w: %d milliseconds", ErrOffsetOutOfRange, millis)
	}
	return time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}

// subtitle format based on file extension
func FormatFromExtension(path string) (Format, error) {
	ext := filepath.Ext(path)
	for _, format := range formats {
		if ExtensionForFormat(format) == ext {
			return format, nil
		}
	}
	return "", unsupported(Format(strings.TrimPrefix(ext, ".")))
}

// file extension for a format
func ExtensionForFormat(format Format) string {
	return "." + string(format)
}
