package id3tag

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/simonhull/id3tag/internal/registry"
)

// accessor maps a friendly name onto a frame id. read and write convert
// between the frame text and a richer Go value; nil means plain text.
type accessor struct {
	frameID string
	read    func(string) any
	write   func(any) (string, bool)
}

var accessors = map[string]accessor{
	"title":          {frameID: "TIT2"},
	"performer":      {frameID: "TPE1"},
	"album":          {frameID: "TALB"},
	"genre":          {frameID: "TCON"},
	"year":           {frameID: "TYER", read: readInt, write: writeInt},
	"track":          {frameID: "TRCK", read: readPair, write: writePair},
	"part_of_set":    {frameID: "TPOS", read: readPair, write: writePair},
	"comment":        {frameID: "COMM"},
	"composer":       {frameID: "TCOM"},
	"grouping":       {frameID: "TIT1"},
	"bpm":            {frameID: "TBPM"},
	"subtitle":       {frameID: "TIT3"},
	"date":           {frameID: "TDAT"},
	"time":           {frameID: "TIME"},
	"language":       {frameID: "TLAN"},
	"lyrics":         {frameID: "USLT"},
	"lyricist":       {frameID: "TEXT"},
	"band":           {frameID: "TPE2"},
	"conductor":      {frameID: "TPE3"},
	"interpreted_by": {frameID: "TPE4"},
	"publisher":      {frameID: "TPUB"},
	"encoded_by":     {frameID: "TENC"},
}

var aliases = map[string]string{
	"artist":       "performer",
	"disc":         "part_of_set",
	"content_type": "genre",
	"remixed_by":   "interpreted_by",
}

func lookupAccessor(name string) (accessor, bool) {
	name = strings.ToLower(name)
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	acc, ok := accessors[name]
	return acc, ok
}

// resolveID turns an accessor name into its frame id. Anything else is
// taken to be a frame id already.
func resolveID(idOrName string) string {
	if acc, ok := lookupAccessor(idOrName); ok {
		return acc.frameID
	}
	return idOrName
}

// AccessorNames returns every accessor name and alias, sorted.
func AccessorNames() []string {
	names := make([]string, 0, len(accessors)+len(aliases))
	for name := range accessors {
		names = append(names, name)
	}
	for name := range aliases {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Value returns the value behind an accessor name: []int for track and
// part_of_set, int for year, the frame text otherwise. Text that doesn't
// parse is returned as is.
func (t *Tag) Value(name string) (any, bool) {
	acc, ok := lookupAccessor(name)
	if !ok {
		return nil, false
	}
	f := t.Frame(acc.frameID)
	if f == nil {
		return nil, false
	}
	if acc.read != nil {
		return acc.read(f.Text()), true
	}
	return f.Text(), true
}

// SetValue sets the frame behind an accessor name. A nil value removes
// the frame.
func (t *Tag) SetValue(name string, v any) error {
	acc, ok := lookupAccessor(name)
	if !ok {
		return &FrameError{FrameID: name, Err: ErrUnknownFrameID}
	}
	if v == nil {
		t.RemoveFrame(acc.frameID)
		return nil
	}

	write := acc.write
	if write == nil {
		write = writeText
	}
	text, ok := write(v)
	if !ok {
		return &TypeMismatchError{Value: v, FrameID: acc.frameID, Field: registry.FieldText, Kind: KindText}
	}
	return t.SetText(acc.frameID, text)
}

func writeText(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	}
	return "", false
}

func readInt(s string) any {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return s
}

func writeInt(v any) (string, bool) {
	if n, ok := v.(int); ok {
		return strconv.Itoa(n), true
	}
	return writeText(v)
}

// readPair parses "N" or "N/M".
func readPair(s string) any {
	parts := strings.Split(s, "/")
	if len(parts) > 2 {
		return s
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return s
		}
		out = append(out, n)
	}
	return out
}

func writePair(v any) (string, bool) {
	switch p := v.(type) {
	case []int:
		switch len(p) {
		case 1:
			return strconv.Itoa(p[0]), true
		case 2:
			return strconv.Itoa(p[0]) + "/" + strconv.Itoa(p[1]), true
		}
		return "", false
	case int:
		return strconv.Itoa(p), true
	}
	return writeText(v)
}

// Title returns the TIT2 text.
func (t *Tag) Title() string { return t.Text("TIT2") }

// SetTitle sets the TIT2 text.
func (t *Tag) SetTitle(s string) error { return t.SetText("TIT2", s) }

// Artist returns the TPE1 text.
func (t *Tag) Artist() string { return t.Text("TPE1") }

// SetArtist sets the TPE1 text.
func (t *Tag) SetArtist(s string) error { return t.SetText("TPE1", s) }

// Album returns the TALB text.
func (t *Tag) Album() string { return t.Text("TALB") }

// SetAlbum sets the TALB text.
func (t *Tag) SetAlbum(s string) error { return t.SetText("TALB", s) }

// Genre returns the content type. ID3v1-style references such as "(13)"
// are resolved to the genre name.
func (t *Tag) Genre() string {
	text := t.Text("TCON")
	if strings.HasPrefix(text, "(") {
		if end := strings.IndexByte(text, ')'); end > 0 {
			if rest := text[end+1:]; rest != "" {
				return rest
			}
			if n, err := strconv.Atoi(text[1:end]); err == nil {
				if name, ok := GenreName(n); ok {
					return name
				}
			}
		}
	}
	return text
}

// SetGenre sets the content type text.
func (t *Tag) SetGenre(s string) error { return t.SetText("TCON", s) }

// Year returns the TYER year, or 0 when absent or not a number.
func (t *Tag) Year() int {
	n, _ := readInt(t.Text("TYER")).(int)
	return n
}

// SetYear sets TYER.
func (t *Tag) SetYear(year int) error { return t.SetText("TYER", strconv.Itoa(year)) }

// Track returns the track number and total; zero when unknown.
func (t *Tag) Track() (number, total int) {
	return pair(t.Text("TRCK"))
}

// SetTrack sets TRCK. A zero total writes the number alone.
func (t *Tag) SetTrack(number, total int) error {
	return t.SetText("TRCK", formatPair(number, total))
}

// Disc returns the disc number and total; zero when unknown.
func (t *Tag) Disc() (number, total int) {
	return pair(t.Text("TPOS"))
}

// SetDisc sets TPOS. A zero total writes the number alone.
func (t *Tag) SetDisc(number, total int) error {
	return t.SetText("TPOS", formatPair(number, total))
}

func pair(s string) (number, total int) {
	p, ok := readPair(s).([]int)
	if !ok {
		return 0, 0
	}
	if len(p) > 1 {
		total = p[1]
	}
	return p[0], total
}

func formatPair(number, total int) string {
	if total > 0 {
		return strconv.Itoa(number) + "/" + strconv.Itoa(total)
	}
	return strconv.Itoa(number)
}

// Comment returns the text of the first COMM frame.
func (t *Tag) Comment() string { return t.Text("COMM") }

// SetComment replaces every COMM frame with one English comment that has
// an empty description.
func (t *Tag) SetComment(s string) error {
	_, err := t.SetFrame("COMM", func(f *Frame) error {
		if err := f.Set(registry.FieldLanguage, "eng"); err != nil {
			return err
		}
		if err := f.Set(registry.FieldDescription, ""); err != nil {
			return err
		}
		return f.SetText(s)
	})
	return err
}

// CommentFrames returns every COMM frame.
func (t *Tag) CommentFrames() []*Frame { return t.Select("COMM") }
