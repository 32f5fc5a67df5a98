package id3

import (
	"errors"
	"fmt"
	"math"

	"github.com/simonhull/id3tag/internal/registry"
	"github.com/simonhull/id3tag/internal/textenc"
	"github.com/simonhull/id3tag/internal/types"
)

// layout describes how a field is laid out inside a frame body.
type layout int

const (
	layoutByte    layout = iota // single unsigned byte
	layoutCounter               // big-endian integer filling the rest of the body
	layoutFixed3                // three ISO-8859-1 bytes (language, v2.2 image format)
	layoutLatin1                // terminated ISO-8859-1 string
	layoutText                  // terminated string in the frame's encoding
	layoutData                  // raw bytes filling the rest of the body
)

func layoutOf(def *registry.FieldDef) layout {
	switch def.ID {
	case registry.FieldCounter:
		return layoutCounter
	case registry.FieldLanguage, registry.FieldImageFormat:
		return layoutFixed3
	case registry.FieldText, registry.FieldDescription, registry.FieldFilename:
		return layoutText
	}

	switch def.Kind {
	case types.KindInteger:
		return layoutByte
	case types.KindBinary:
		return layoutData
	default:
		return layoutLatin1
	}
}

var errTruncated = errors.New("truncated frame body")

// decodeBody fills a fresh frame for def from an on-disk frame body.
func decodeBody(def *registry.FrameDef, body []byte) (*Frame, error) {
	f := newFrame(def)
	enc := types.EncodingISO88591

	for i, fl := range f.fields {
		last := i == len(f.fields)-1

		switch layoutOf(fl.def) {
		case layoutByte:
			if len(body) < 1 {
				return nil, fmt.Errorf("%s %s: %w", def.ID, fl.def.ID, errTruncated)
			}
			fl.integer = int(body[0])
			body = body[1:]
			if fl.def.ID == registry.FieldTextEnc {
				enc = fl.integer
				if !textenc.Valid(enc) {
					return nil, fmt.Errorf("%s: invalid text encoding %d", def.ID, enc)
				}
			}

		case layoutCounter:
			n := len(body)
			if !last {
				n = min(n, 4)
			}
			v := 0
			for _, b := range body[:n] {
				if v > math.MaxInt>>8 {
					break
				}
				v = v<<8 | int(b)
			}
			fl.integer = v
			body = body[n:]

		case layoutFixed3:
			if len(body) < 3 {
				return nil, fmt.Errorf("%s %s: %w", def.ID, fl.def.ID, errTruncated)
			}
			fl.text = textenc.Decode(body[:3], types.EncodingISO88591)
			body = body[3:]

		case layoutLatin1:
			var raw []byte
			raw, body = splitString(body, types.EncodingISO88591, last)
			fl.text = textenc.Decode(raw, types.EncodingISO88591)

		case layoutText:
			var raw []byte
			raw, body = splitString(body, enc, last)
			fl.text = textenc.Decode(raw, enc)
			fl.enc = enc

		case layoutData:
			fl.binary = append([]byte(nil), body...)
			body = nil
		}
	}

	return f, nil
}

// splitString cuts one string off the front of body. The last field of a
// frame runs to the end of the body; trailing terminators are dropped.
func splitString(body []byte, enc int, last bool) (value, rest []byte) {
	if !last {
		if i := textenc.IndexTerminator(body, enc); i >= 0 {
			return body[:i], body[i+len(textenc.Terminator(enc)):]
		}
	}
	return textenc.TrimTerminators(body, enc), nil
}

// encodeBody renders a frame body in field order.
func encodeBody(f *Frame) ([]byte, error) {
	enc := f.encoding()
	if !textenc.Valid(enc) {
		return nil, fmt.Errorf("%s: invalid text encoding %d", f.def.ID, enc)
	}

	var body []byte
	for i, fl := range f.fields {
		last := i == len(f.fields)-1

		switch layoutOf(fl.def) {
		case layoutByte:
			if fl.integer < 0 || fl.integer > 0xFF {
				return nil, fmt.Errorf("%s %s: value %d does not fit in a byte", f.def.ID, fl.def.ID, fl.integer)
			}
			body = append(body, byte(fl.integer))

		case layoutCounter:
			body = append(body, encodeCounter(fl.integer)...)

		case layoutFixed3:
			code := []byte("XXX")
			if b, err := textenc.Encode(fl.text, types.EncodingISO88591); err == nil && len(b) > 0 {
				code = append(b, ' ', ' ', ' ')[:3]
			}
			body = append(body, code...)

		case layoutLatin1, layoutText:
			e := types.EncodingISO88591
			if layoutOf(fl.def) == layoutText {
				e = enc
			}
			b, err := textenc.Encode(fl.text, e)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", f.def.ID, fl.def.ID, err)
			}
			body = append(body, b...)
			if !last {
				body = append(body, textenc.Terminator(e)...)
			}

		case layoutData:
			body = append(body, fl.binary...)
		}
	}

	return body, nil
}

// encodeCounter writes v big-endian in at least four bytes.
func encodeCounter(v int) []byte {
	if v < 0 {
		v = 0
	}
	var out []byte
	for u := uint64(v); u > 0; u >>= 8 {
		out = append([]byte{byte(u)}, out...)
	}
	for len(out) < 4 {
		out = append([]byte{0}, out...)
	}
	return out
}
