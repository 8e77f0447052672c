package subtitle

// result of matching one line: either a Cue or an Opaque line
type Line interface {
	isLine()
}

// timing line split into the literal text around its two timestamps.
// Start and End are raw timestamp text, not yet parsed.
type Cue struct {
	Prefix string
	Start  string
	End    string
	Suffix string
}

// line that carries no timestamps and passes through unchanged
type Opaque struct {
	Text string
}

func (Cue) isLine()    {}
func (Opaque) isLine() {}

// classifies a line's content (without its terminator) for the given format
func Match(content string, format Format) (Line, error) {
	var (
		cue Cue
		ok  bool
	)
	switch format {
	case FormatSRT:
		cue, ok = matchSRTLine(content)
	case FormatASS:
		cue, ok = matchASSLine(content)
	default:
		return nil, unsupported(format)
	}
	if !ok {
		return Opaque{Text: content}, nil
	}
	return cue, nil
}

// reassembles a cue line from rendered timestamps
func (c Cue) build(format Format, start, end string) (string, error) {
	switch format {
	case FormatSRT:
		return buildSRTLine(start, end), nil
	case FormatASS:
		return buildASSLine(c.Prefix, start, end, c.Suffix), nil
	default:
		return "", unsupported(format)
	}
}
