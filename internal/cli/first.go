package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/mgpai22/subshift/internal/subtitle"
)

type firstCue struct {
	path  string
	start time.Duration
}

// prints when the first cue of each file starts, or only the earliest one
func printFirstCueTimes(out io.Writer, files []string, onlyMin bool) error {
	times := make([]firstCue, 0, len(files))
	for _, path := range files {
		start, err := subtitle.FirstCueTime(path)
		if err != nil {
			return fmt.Errorf("failed to find first line: %w", err)
		}
		times = append(times, firstCue{path: path, start: start})
	}

	if onlyMin {
		if len(times) == 0 {
			return fmt.Errorf("no subtitle files selected")
		}
		earliest := times[0]
		for _, t := range times[1:] {
			if t.start < earliest.start || (t.start == earliest.start && t.path < earliest.path) {
				earliest = t
			}
		}
		times = []firstCue{earliest}
	}

	fmt.Fprintln(out, "First line starts at:")
	for _, t := range times {
		fmt.Fprintf(out, "%s: %s seconds\n", t.path, formatSeconds(t.start))
	}
	return nil
}

// seconds.millis, e.g. 3.200
func formatSeconds(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%d.%03d", ms/1000, ms%1000)
}
