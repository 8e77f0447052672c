package subtitle

import (
	"fmt"
	"time"
)

// converts a timestamp in the given format to a duration
func Parse(text string, format Format) (time.Duration, error) {
	switch format {
	case FormatSRT:
		return parseSRTTimestamp(text)
	case FormatASS:
		return parseASSTimestamp(text)
	default:
		return 0, unsupported(format)
	}
}

// renders a duration as a timestamp in the given format.
// Sub-resolution remainders are truncated. Negative durations are rejected;
// clamping is the caller's job.
func Render(d time.Duration, format Format) (string, error) {
	if d < 0 {
		return "", fmt.Errorf("render %v: %w", d, ErrNegativeResult)
	}
	switch format {
	case FormatSRT:
		return formatSRTTime(d), nil
	case FormatASS:
		return formatASSTime(d), nil
	default:
		return "", unsupported(format)
	}
}

// splits a non-negative duration into total hours and the remaining fields
func clockFields(d time.Duration) (hours, minutes, seconds, millis int) {
	hours = int(d / time.Hour)
	minutes = int(d/time.Minute) % 60
	seconds = int(d/time.Second) % 60
	millis = int(d/time.Millisecond) % 1000
	return
}

func clockDuration(hours, minutes, seconds, millis int) time.Duration {
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond
}

// reports whether text has exactly the shape of layout, where '0' in the
// layout stands for one ASCII digit and every other byte must match literally
func matchLayout(text, layout string) bool {
	if len(text) != len(layout) {
		return false
	}
	for i := 0; i < len(layout); i++ {
		if layout[i] == '0' {
			if !isDigit(text[i]) {
				return false
			}
			continue
		}
		if text[i] != layout[i] {
			return false
		}
	}
	return true
}

// value of a run of ASCII digits already checked by matchLayout
func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
