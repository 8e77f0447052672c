package subtitle

import (
	"fmt"
	"strings"
	"time"
)

const (
	assLayout         = "0:00:00.00"
	assDialogueMarker = "Dialogue:"
)

// parses H:MM:SS.cc, widening centiseconds to milliseconds
func parseASSTimestamp(ts string) (time.Duration, error) {
	if !matchLayout(ts, assLayout) {
		return 0, &FormatError{Format: FormatASS, Text: ts}
	}
	return clockDuration(
		atoi(ts[0:1]),
		atoi(ts[2:4]),
		atoi(ts[5:7]),
		atoi(ts[8:10])*10,
	), nil
}

// hours are not padded and may grow past one digit
func formatASSTime(d time.Duration) string {
	hours, minutes, seconds, millis := clockFields(d)
	centis := millis / 10

	return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}

// matches "Dialogue:<ws><digit>,<start>,<end>,<rest>". The prefix up to and
// including the layer comma is kept verbatim, as is everything after the end
// time's comma.
func matchASSLine(content string) (Cue, bool) {
	if !strings.HasPrefix(content, assDialogueMarker) {
		return Cue{}, false
	}
	i := len(assDialogueMarker)
	if i+3 > len(content) ||
		!isSpace(content[i]) ||
		!isDigit(content[i+1]) ||
		content[i+2] != ',' {
		return Cue{}, false
	}
	prefixLen := i + 3
	rest := content[prefixLen:]

	start, rest, ok := cutTimestamp(rest)
	if !ok {
		return Cue{}, false
	}
	end, rest, ok := cutTimestamp(rest)
	if !ok {
		return Cue{}, false
	}

	return Cue{
		Prefix: content[:prefixLen],
		Start:  start,
		End:    end,
		Suffix: rest,
	}, true
}

// takes one timestamp and its trailing comma off the front of s
func cutTimestamp(s string) (ts, rest string, ok bool) {
	n := len(assLayout)
	if len(s) < n+1 || s[n] != ',' || !matchLayout(s[:n], assLayout) {
		return "", "", false
	}
	return s[:n], s[n+1:], true
}

// dialogue line: Dialogue: 0,0:00:00.00,0:00:00.00,<rest>
func buildASSLine(prefix, start, end, suffix string) string {
	return prefix + start + "," + end + "," + suffix
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r', '\n':
		return true
	}
	return false
}
