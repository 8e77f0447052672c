package subtitle

import (
	"fmt"
	"strings"
	"time"
)

const (
	srtLayout = "00:00:00,000"
	srtArrow  = "-->"
)

// parses HH:MM:SS,mmm
func parseSRTTimestamp(ts string) (time.Duration, error) {
	if !matchLayout(ts, srtLayout) {
		return 0, &FormatError{Format: FormatSRT, Text: ts}
	}
	return clockDuration(
		atoi(ts[0:2]),
		atoi(ts[3:5]),
		atoi(ts[6:8]),
		atoi(ts[9:12]),
	), nil
}

func formatSRTTime(d time.Duration) string {
	hours, minutes, seconds, millis := clockFields(d)

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// any line containing the arrow is a timing line; both sides are trimmed
// and left for the codec to validate
func matchSRTLine(content string) (Cue, bool) {
	start, end, ok := strings.Cut(content, srtArrow)
	if !ok {
		return Cue{}, false
	}
	return Cue{
		Start: strings.TrimSpace(start),
		End:   strings.TrimSpace(end),
	}, true
}

// timestamps: 00:00:00,000 --> 00:00:00,000
func buildSRTLine(start, end string) string {
	return start + " " + srtArrow + " " + end
}
