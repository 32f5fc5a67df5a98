package id3tag

import (
	"bytes"
	"encoding/binary"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/rs/zerolog"

	binutil "github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/registry"
)

// The byte builders duplicate internal/id3's test helpers so the public API
// tests stay independent of the engine package.

var fakeAudio = bytes.Repeat([]byte{0xFF, 0xFB, 0x90, 0x64}, 64)

func textFrame(id, text string) []byte {
	body := append([]byte{0}, text...)
	out := []byte(id)
	out = binary.BigEndian.AppendUint32(out, uint32(len(body)))
	out = append(out, 0, 0)
	return append(out, body...)
}

func commFrame(desc, text string) []byte {
	body := []byte{0, 'e', 'n', 'g'}
	body = append(body, desc...)
	body = append(body, 0)
	body = append(body, text...)
	out := []byte("COMM")
	out = binary.BigEndian.AppendUint32(out, uint32(len(body)))
	out = append(out, 0, 0)
	return append(out, body...)
}

func tagV23(frames ...[]byte) []byte {
	body := bytes.Join(frames, nil)
	body = append(body, make([]byte, 32)...)
	out := []byte{'I', 'D', '3', 3, 0, 0}
	out = append(out, binutil.EncodeSynchsafe(uint32(len(body)))...)
	return append(out, body...)
}

func trailerV1(title, artist string, genre byte) []byte {
	b := make([]byte, 128)
	copy(b, "TAG")
	copy(b[3:33], title)
	copy(b[33:63], artist)
	b[127] = genre
	return b
}

// sampleTag has eight frames: three text frames, track, year, two
// comments and a genre.
func sampleTag() []byte {
	return tagV23(
		textFrame("TIT2", "Dummy Title"),
		textFrame("TPE1", "Dummy Artist"),
		textFrame("TALB", "Dummy Album"),
		textFrame("TRCK", "1/10"),
		textFrame("TYER", "2000"),
		commFrame("", "Dummy Comment"),
		commFrame("Description", "Dummy Comment 2"),
		textFrame("TCON", "Pop"),
	)
}

var sampleIDs = []string{"TIT2", "TPE1", "TALB", "TRCK", "TYER", "COMM", "COMM", "TCON"}

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
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func openTag(t *testing.T, path string, scope Scope, opts ...Option) *Tag {
	t.Helper()
	tag, err := Open(path, scope, opts...)
	if err != nil {
		t.Fatalf("Open(%s): %v", path, err)
	}
	return tag
}

func ids(tag *Tag) []string {
	var out []string
	for f := range tag.All() {
		out = append(out, f.ID())
	}
	return out
}

// fakeField is an in-memory RawField that records which text setter ran.
type fakeField struct {
	num     int
	kind    FieldKind
	integer int
	binary  []byte
	text    string
	enc     int
	wide    bool
}

func (f *fakeField) Num() int           { return f.num }
func (f *fakeField) Kind() FieldKind    { return f.kind }
func (f *fakeField) Integer() int       { return f.integer }
func (f *fakeField) SetInteger(v int)   { f.integer = v }
func (f *fakeField) Binary() []byte     { return f.binary }
func (f *fakeField) SetBinary(v []byte) { f.binary = bytes.Clone(v) }
func (f *fakeField) ASCII() string      { return f.text }
func (f *fakeField) Wide() string       { return f.text }
func (f *fakeField) Encoding() int      { return f.enc }
func (f *fakeField) SetEncoding(e int)  { f.enc = e }

func (f *fakeField) SetASCII(v string) {
	f.text = v
	f.wide = false
}

func (f *fakeField) SetWide(v string) {
	f.text = v
	f.wide = true
}

type fakeFrame struct {
	num    int
	fields []*fakeField
}

func (f *fakeFrame) Num() int { return f.num }

func (f *fakeFrame) Field(num int) RawField {
	for _, fl := range f.fields {
		if fl.num == num {
			return fl
		}
	}
	return nil
}

func (f *fakeFrame) field(id string) *fakeField {
	fd, ok := registry.Default().Field(id)
	if !ok {
		return nil
	}
	for _, fl := range f.fields {
		if fl.num == fd.Num {
			return fl
		}
	}
	return nil
}

// newFakeFrame builds a frame with every field of id, leaving out the
// fields named in omit.
func newFakeFrame(id string, omit ...string) *fakeFrame {
	def, ok := registry.Default().Frame(id)
	if !ok {
		panic("unregistered frame " + id)
	}
	f := &fakeFrame{num: def.Num}
	for _, fd := range def.Fields {
		if slices.Contains(omit, fd.ID) {
			continue
		}
		f.fields = append(f.fields, &fakeField{num: fd.Num, kind: fd.Kind})
	}
	return f
}

// fakeEngine keeps frames in memory. Update and Link failures can be
// injected.
type fakeEngine struct {
	linked   []RawFrame
	frames   []RawFrame
	found    Scope
	padding  bool
	stripped bool
	warnings []Warning

	linkErr error
	update  func(Scope) (Scope, error)
	updates []Scope
}

func (e *fakeEngine) option() Option {
	return WithEngine(func(zerolog.Logger) Engine { return e })
}

func (e *fakeEngine) Link(string, Scope) error {
	if e.linkErr != nil {
		return e.linkErr
	}
	e.frames = slices.Clone(e.linked)
	e.stripped = false
	return nil
}

func (e *fakeEngine) Frames() iter.Seq[RawFrame] {
	return func(yield func(RawFrame) bool) {
		if e.stripped {
			return
		}
		for _, f := range e.frames {
			if !yield(f) {
				return
			}
		}
	}
}

func (e *fakeEngine) NewFrame(num int) (RawFrame, error) {
	def, ok := registry.Default().FrameNum(num)
	if !ok {
		return nil, ErrUnknownFrameID
	}
	return newFakeFrame(def.ID), nil
}

func (e *fakeEngine) AddFrame(f RawFrame) error {
	e.frames = append(e.frames, f)
	return nil
}

func (e *fakeEngine) RemoveFrame(f RawFrame) {
	e.frames = slices.DeleteFunc(e.frames, func(x RawFrame) bool { return x == f })
}

func (e *fakeEngine) ClearFrames()            { e.frames = nil }
func (e *fakeEngine) SetPadding(enabled bool) { e.padding = enabled }
func (e *fakeEngine) Size() int               { return 10 * len(e.frames) }
func (e *fakeEngine) Warnings() []Warning     { return e.warnings }

func (e *fakeEngine) HasTagType(scope Scope) bool { return e.found&scope != 0 }

func (e *fakeEngine) Strip(scope Scope) (Scope, error) {
	removed := e.found & scope
	e.found &^= removed
	e.frames = nil
	e.stripped = true
	return removed, nil
}

func (e *fakeEngine) Update(scope Scope) (Scope, error) {
	e.updates = append(e.updates, scope)
	if e.update != nil {
		return e.update(scope)
	}
	written := scope & VBoth
	e.linked = slices.Clone(e.frames)
	e.found |= written
	return written, nil
}
