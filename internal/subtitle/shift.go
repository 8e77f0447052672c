package subtitle

import (
	"fmt"
	"time"
)

// adds offset to d. The result may not fall before zero.
func Shift(d, offset time.Duration) (time.Duration, error) {
	shifted := d + offset
	if shifted < 0 {
		return 0, fmt.Errorf("%v shifted by %v: %w", d, offset, ErrNegativeResult)
	}
	return shifted, nil
}

// start time of the first cue line in a file. Read-only: no offset and no
// zero floor apply here.
func FirstCueTime(path string) (time.Duration, error) {
	doc, err := Open(path)
	if err != nil {
		return 0, err
	}
	return doc.FirstCueTime()
}

func (d *Document) FirstCueTime() (time.Duration, error) {
	for i, l := range d.Lines {
		line, err := Match(l.Content, d.Format)
		if err != nil {
			return 0, err
		}
		cue, ok := line.(Cue)
		if !ok {
			continue
		}
		start, err := Parse(cue.Start, d.Format)
		if err != nil {
			return 0, fmt.Errorf("%s line %d: %w", d.Path, i+1, err)
		}
		return start, nil
	}
	return 0, fmt.Errorf("%s: %w", d.Path, ErrNoCueFound)
}

// shifts both ends of a cue and renders the replacement line content
func shiftCue(cue Cue, format Format, offset time.Duration) (string, error) {
	start, err := shiftTimestamp(cue.Start, format, offset)
	if err != nil {
		return "", err
	}
	end, err := shiftTimestamp(cue.End, format, offset)
	if err != nil {
		return "", err
	}
	return cue.build(format, start, end)
}

func shiftTimestamp(ts string, format Format, offset time.Duration) (string, error) {
	d, err := Parse(ts, format)
	if err != nil {
		return "", err
	}
	d, err = Shift(d, offset)
	if err != nil {
		return "", err
	}
	return Render(d, format)
}
