package id3

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	binutil "github.com/simonhull/id3tag/internal/binary"
)

// fakeAudio stands in for MPEG frames; the engine never looks inside it.
var fakeAudio = bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x64}, 64)

func frameV23(id string, flags uint16, body []byte) []byte {
	out := []byte(id)
	out = binary.BigEndian.AppendUint32(out, uint32(len(body)))
	out = binary.BigEndian.AppendUint16(out, flags)
	return append(out, body...)
}

func textFrameV23(id, text string) []byte {
	return frameV23(id, 0, append([]byte{0}, text...))
}

func commFrameV23(desc, text string) []byte {
	body := []byte{0, 'e', 'n', 'g'}
	body = append(body, desc...)
	body = append(body, 0)
	body = append(body, text...)
	return frameV23("COMM", 0, body)
}

func tagV2(major byte, frames ...[]byte) []byte {
	var body []byte
	for _, f := range frames {
		body = append(body, f...)
	}
	body = append(body, make([]byte, 16)...)

	out := []byte{'I', 'D', '3', major, 0, 0}
	out = append(out, binutil.EncodeSynchsafe(uint32(len(body)))...)
	return append(out, body...)
}

func v1Trailer(title, artist, album, year, comment string, track, genre byte) []byte {
	b := make([]byte, v1Size)
	copy(b, "TAG")
	copy(b[3:33], title)
	copy(b[33:63], artist)
	copy(b[63:93], album)
	copy(b[93:97], year)
	copy(b[97:125], comment)
	b[126] = track
	b[127] = genre
	return b
}

// sampleTag is the eight-frame tag used throughout the tests.
func sampleTag() []byte {
	return tagV2(3,
		textFrameV23("TIT2", "Dummy Title"),
		textFrameV23("TPE1", "Dummy Artist"),
		textFrameV23("TALB", "Dummy Album"),
		textFrameV23("TRCK", "1/10"),
		textFrameV23("TYER", "2000"),
		commFrameV23("", "Dummy Comment"),
		commFrameV23("Description", "Dummy Comment 2"),
		textFrameV23("TCON", "Pop"),
	)
}

func writeTemp(t *testing.T, parts ...[]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mp3")
	if err := os.WriteFile(path, bytes.Join(parts, nil), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func newTestEngine() *Engine {
	return New(zerolog.Nop())
}

func frameIDs(e *Engine) []string {
	var ids []string
	for f := range e.Frames() {
		ids = append(ids, f.(*Frame).ID())
	}
	return ids
}

func findFrame(e *Engine, id string) *Frame {
	for f := range e.Frames() {
		if fr := f.(*Frame); fr.ID() == id {
			return fr
		}
	}
	return nil
}
