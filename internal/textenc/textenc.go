// Package textenc converts between Go strings and the four ID3v2 text
// encodings selected by a frame's encoding byte.
//
//	0  ISO-8859-1
//	1  UTF-16 with byte-order mark (little-endian when the BOM is absent)
//	2  UTF-16BE without BOM
//	3  UTF-8
package textenc

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/simonhull/id3tag/internal/types"
)

var (
	utf16BOM = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	utf16BE  = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
)

// Valid reports whether enc is one of the four ID3v2 text encodings.
func Valid(enc int) bool {
	return enc >= types.EncodingISO88591 && enc <= types.EncodingUTF8
}

// Wide reports whether enc uses two bytes per code unit.
func Wide(enc int) bool {
	return enc == types.EncodingUTF16 || enc == types.EncodingUTF16BE
}

// Decode converts data in encoding enc into a Go string.
// Unknown encodings are treated as ISO-8859-1.
func Decode(data []byte, enc int) string {
	if len(data) == 0 {
		return ""
	}

	switch enc {
	case types.EncodingUTF16:
		return decodeWith(utf16BOM.NewDecoder(), evenLength(data))

	case types.EncodingUTF16BE:
		return decodeWith(utf16BE.NewDecoder(), evenLength(data))

	case types.EncodingUTF8:
		return string(data)

	default:
		return decodeWith(charmap.ISO8859_1.NewDecoder(), data)
	}
}

// Encode converts s into encoding enc. Runes that ISO-8859-1 can't
// represent are replaced.
func Encode(s string, enc int) ([]byte, error) {
	switch enc {
	case types.EncodingISO88591:
		return encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).Bytes([]byte(s))

	case types.EncodingUTF16:
		return utf16BOM.NewEncoder().Bytes([]byte(s))

	case types.EncodingUTF16BE:
		return utf16BE.NewEncoder().Bytes([]byte(s))

	case types.EncodingUTF8:
		return []byte(s), nil

	default:
		return nil, fmt.Errorf("unknown text encoding %d", enc)
	}
}

// Terminator returns the string terminator for enc.
func Terminator(enc int) []byte {
	if Wide(enc) {
		return []byte{0, 0}
	}
	return []byte{0}
}

// IndexTerminator returns the offset of the first terminator in data, or -1.
// Wide encodings only match on code-unit boundaries.
func IndexTerminator(data []byte, enc int) int {
	if !Wide(enc) {
		return bytes.IndexByte(data, 0)
	}

	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			return i
		}
	}
	return -1
}

// TrimTerminators drops trailing terminators from data.
func TrimTerminators(data []byte, enc int) []byte {
	term := Terminator(enc)
	for len(data) >= len(term) && bytes.HasSuffix(data, term) {
		if Wide(enc) && len(data)%2 != 0 {
			break
		}
		data = data[:len(data)-len(term)]
	}
	return data
}

func decodeWith(d *encoding.Decoder, data []byte) string {
	if len(data) == 0 {
		return ""
	}
	out, err := d.Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(out)
}

func evenLength(data []byte) []byte {
	if len(data)%2 != 0 {
		return data[:len(data)-1]
	}
	return data
}
