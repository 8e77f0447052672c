package subtitle

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// text encoding of a subtitle file, detected from its byte order mark
type Encoding int

const (
	// no BOM; bytes pass through untouched
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

func detectEncoding(raw []byte) Encoding {
	switch {
	case bytes.HasPrefix(raw, utf8BOM):
		return EncodingUTF8BOM
	case bytes.HasPrefix(raw, utf16LEBOM):
		return EncodingUTF16LE
	case bytes.HasPrefix(raw, utf16BEBOM):
		return EncodingUTF16BE
	default:
		return EncodingUTF8
	}
}

// the x/text codec for UTF-16 variants, nil for UTF-8 ones
func (e Encoding) codec() encoding.Encoding {
	switch e {
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	default:
		return nil
	}
}

// decodes raw file content to UTF-8 text without a BOM
func decode(raw []byte) (string, Encoding, error) {
	enc := detectEncoding(raw)
	switch enc {
	case EncodingUTF8:
		return string(raw), enc, nil
	case EncodingUTF8BOM:
		return string(raw[len(utf8BOM):]), enc, nil
	}

	text, _, err := transform.Bytes(enc.codec().NewDecoder(), raw)
	if err != nil {
		return "", enc, fmt.Errorf("decode %s: %w", enc, err)
	}
	return string(text), enc, nil
}

// encodes UTF-8 text back to enc, restoring the BOM
func encode(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingUTF8:
		return []byte(text), nil
	case EncodingUTF8BOM:
		return append(append([]byte{}, utf8BOM...), text...), nil
	}

	raw, _, err := transform.Bytes(enc.codec().NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", enc, err)
	}
	return raw, nil
}
