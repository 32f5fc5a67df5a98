package id3

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dhowden/tag"

	"github.com/simonhull/id3tag/internal/registry"
	"github.com/simonhull/id3tag/internal/textenc"
	"github.com/simonhull/id3tag/internal/types"
)

const (
	v1Size     = 128
	v1NoGenre  = 255
	v1Language = "eng"
)

// hasV1 reports whether data ends with an ID3v1 trailer.
func hasV1(data []byte) bool {
	return len(data) >= v1Size && string(data[len(data)-v1Size:len(data)-v1Size+3]) == "TAG"
}

// fileSource is what the v1 reader needs from an open file.
type fileSource interface {
	io.ReadSeeker
	io.ReaderAt
}

// parseV1 reads an ID3v1/v1.1 trailer and maps it onto v2 frames.
func (e *Engine) parseV1(r fileSource, size int64) ([]*Frame, bool, error) {
	if size < v1Size {
		return nil, false, nil
	}

	m, err := tag.ReadID3v1Tags(r)
	if errors.Is(err, tag.ErrNotID3v1) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read ID3v1: %w", err)
	}

	genre := []byte{v1NoGenre}
	if _, err := r.ReadAt(genre, size-1); err != nil {
		e.warn("v1", fmt.Sprintf("read genre byte: %v", err), size-1)
	}

	var frames []*Frame
	add := func(id, text string) {
		text = latin1(text)
		if text == "" {
			return
		}
		def, _ := e.reg.Frame(id)
		f := newFrame(def)
		f.fieldByID(registry.FieldText).text = text
		if lang := f.fieldByID(registry.FieldLanguage); lang != nil {
			lang.text = v1Language
		}
		frames = append(frames, f)
	}

	add("TIT2", m.Title())
	add("TPE1", m.Artist())
	add("TALB", m.Album())
	if year := m.Year(); year > 0 {
		add("TYER", strconv.Itoa(year))
	}
	add("COMM", m.Comment())
	if track, _ := m.Track(); track > 0 {
		add("TRCK", strconv.Itoa(track))
	}
	if _, ok := e.reg.GenreName(int(genre[0])); ok {
		add("TCON", fmt.Sprintf("(%d)", genre[0]))
	}

	return frames, true, nil
}

// latin1 re-decodes strings that arrive as raw ISO-8859-1 bytes.
func latin1(s string) string {
	s = strings.TrimRight(s, "\x00 ")
	if utf8.ValidString(s) {
		return s
	}
	return textenc.Decode([]byte(s), types.EncodingISO88591)
}

// renderV1 builds a v1.1 trailer from the frames that have a v1 slot.
// It returns nil when none of them carry a value.
func renderV1(frames []*Frame, reg *registry.Registry) []byte {
	first := func(id string) string {
		for _, f := range frames {
			if f.ID() == id {
				return f.text(registry.FieldText)
			}
		}
		return ""
	}

	title, artist, album := first("TIT2"), first("TPE1"), first("TALB")
	year, comment := first("TYER"), first("COMM")
	track := leadingInt(first("TRCK"))
	genre := genreIndex(first("TCON"), reg)

	if title == "" && artist == "" && album == "" && year == "" &&
		comment == "" && track <= 0 && genre == v1NoGenre {
		return nil
	}

	b := make([]byte, v1Size)
	copy(b, "TAG")
	putLatin1(b[3:33], title)
	putLatin1(b[33:63], artist)
	putLatin1(b[63:93], album)
	putLatin1(b[93:97], year)
	putLatin1(b[97:125], comment)
	if track > 0 && track <= 0xFF {
		b[126] = byte(track)
	}
	b[127] = byte(genre)
	return b
}

func putLatin1(dst []byte, s string) {
	enc, err := textenc.Encode(s, types.EncodingISO88591)
	if err != nil {
		return
	}
	copy(dst, enc)
}

// genreIndex resolves "(13)", "13" or "Pop" to a v1 genre byte.
func genreIndex(s string, reg *registry.Registry) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return v1NoGenre
	}

	num := s
	if strings.HasPrefix(s, "(") {
		if end := strings.IndexByte(s, ')'); end > 0 {
			num = s[1:end]
		}
	}
	if n, err := strconv.Atoi(num); err == nil {
		if _, ok := reg.GenreName(n); ok {
			return n
		}
		return v1NoGenre
	}

	if n, ok := reg.GenreIndex(s); ok && n < v1NoGenre {
		return n
	}
	return v1NoGenre
}

// leadingInt parses the number before an optional "/total".
func leadingInt(s string) int {
	s, _, _ = strings.Cut(strings.TrimSpace(s), "/")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
