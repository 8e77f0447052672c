package subtitle

import (
	"fmt"
)

// outcome of rewriting one file
type RewriteResult struct {
	Path        string
	Format      Format
	ShiftedCues int
	// false when the shifted content equals the original and nothing was written
	Changed bool
}

// shifts every cue at or after cfg.StartLine in the file at path and writes
// the result back. Nothing is written if any cue fails to shift.
func Rewrite(path string, cfg ShiftConfig) (RewriteResult, error) {
	doc, err := Open(path)
	if err != nil {
		return RewriteResult{}, err
	}

	result := RewriteResult{Path: path, Format: doc.Format}

	shifted, changed, err := doc.Shift(cfg)
	if err != nil {
		return result, err
	}
	result.ShiftedCues = shifted
	result.Changed = changed

	if !changed {
		return result, nil
	}
	if err := doc.Write(); err != nil {
		return result, err
	}
	return result, nil
}

// applies cfg to the document in memory. Lines before cfg.StartLine and
// opaque lines are left as they are. On error the document is unchanged.
func (d *Document) Shift(cfg ShiftConfig) (int, bool, error) {
	var (
		shifted int
		changed bool
	)
	out := make([]TextLine, len(d.Lines))
	copy(out, d.Lines)

	for i, l := range d.Lines {
		lineNum := i + 1
		if lineNum < cfg.StartLine {
			continue
		}

		line, err := Match(l.Content, d.Format)
		if err != nil {
			return 0, false, err
		}
		cue, ok := line.(Cue)
		if !ok {
			continue
		}

		content, err := shiftCue(cue, d.Format, cfg.Offset)
		if err != nil {
			return 0, false, fmt.Errorf("%s line %d: %w", d.Path, lineNum, err)
		}

		eol := l.EOL
		if eol == "" {
			eol = "\n"
		}
		next := TextLine{Content: content, EOL: eol}
		if next != l {
			changed = true
		}
		out[i] = next
		shifted++
	}

	d.Lines = out
	return shifted, changed, nil
}
