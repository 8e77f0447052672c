package subtitle

import (
	"fmt"
	"os"
	"strings"
)

// one line of a file split from its terminator ("\n", "\r\n" or "" at EOF)
type TextLine struct {
	Content string
	EOL     string
}

func (l TextLine) String() string {
	return l.Content + l.EOL
}

// subtitle file held in memory, decoded to UTF-8
type Document struct {
	Path     string
	Format   Format
	Encoding Encoding
	Lines    []TextLine
}

func Open(path string) (*Document, error) {
	format, err := FormatFromExtension(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	text, enc, err := decode(raw)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}

	return &Document{
		Path:     path,
		Format:   format,
		Encoding: enc,
		Lines:    splitLines(text),
	}, nil
}

// file content in the document's original encoding
func (d *Document) Bytes() ([]byte, error) {
	var sb strings.Builder
	for _, l := range d.Lines {
		sb.WriteString(l.String())
	}
	return encode(sb.String(), d.Encoding)
}

// replaces the file at d.Path with the document's content
func (d *Document) Write() error {
	data, err := d.Bytes()
	if err != nil {
		return &IOError{Op: "write", Path: d.Path, Err: err}
	}
	if err := os.WriteFile(d.Path, data, 0644); err != nil {
		return &IOError{Op: "write", Path: d.Path, Err: err}
	}
	return nil
}

func splitLines(text string) []TextLine {
	if text == "" {
		return nil
	}

	parts := strings.SplitAfter(text, "\n")
	lines := make([]TextLine, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		switch {
		case strings.HasSuffix(part, "\r\n"):
			lines = append(lines, TextLine{Content: part[:len(part)-2], EOL: "\r\n"})
		case strings.HasSuffix(part, "\n"):
			lines = append(lines, TextLine{Content: part[:len(part)-1], EOL: "\n"})
		default:
			lines = append(lines, TextLine{Content: part})
		}
	}
	return lines
}
