package id3

import (
	"github.com/simonhull/id3tag/internal/registry"
	"github.com/simonhull/id3tag/internal/types"
)

// Frame is the engine-native frame: one slot per field of its definition.
type Frame struct {
	def    *registry.FrameDef
	fields []*Field
}

func newFrame(def *registry.FrameDef) *Frame {
	f := &Frame{def: def, fields: make([]*Field, len(def.Fields))}
	for i, fd := range def.Fields {
		f.fields[i] = &Field{def: fd}
	}
	return f
}

// Num returns the registry frame number.
func (f *Frame) Num() int { return f.def.Num }

// ID returns the 4-letter frame id.
func (f *Frame) ID() string { return f.def.ID }

// Field returns the slot for field number num, or nil.
func (f *Frame) Field(num int) types.RawField {
	if fl := f.field(num); fl != nil {
		return fl
	}
	return nil
}

func (f *Frame) field(num int) *Field {
	for _, fl := range f.fields {
		if fl.def.Num == num {
			return fl
		}
	}
	return nil
}

func (f *Frame) fieldByID(id string) *Field {
	for _, fl := range f.fields {
		if fl.def.ID == id {
			return fl
		}
	}
	return nil
}

// encoding returns the frame's text encoding, 0 when it has no textenc field.
func (f *Frame) encoding() int {
	if fl := f.fieldByID(registry.FieldTextEnc); fl != nil {
		return fl.integer
	}
	return 0
}

// withEncoding returns a copy of f whose textenc field is enc. f is left
// untouched.
func (f *Frame) withEncoding(enc int) *Frame {
	out := &Frame{def: f.def, fields: make([]*Field, len(f.fields))}
	for i, fl := range f.fields {
		c := *fl
		if fl.def.ID == registry.FieldTextEnc {
			c.integer = enc
		}
		out.fields[i] = &c
	}
	return out
}

// text returns the string value of field id, "" when absent.
func (f *Frame) text(id string) string {
	if fl := f.fieldByID(id); fl != nil {
		return fl.text
	}
	return ""
}

// Field is a single value slot. Text is held decoded; the frame's encoding
// byte decides how it is rendered.
type Field struct {
	def     *registry.FieldDef
	text    string
	binary  []byte
	integer int
	enc     int
}

// Num returns the registry field number.
func (f *Field) Num() int { return f.def.Num }

// Kind returns the field's value kind.
func (f *Field) Kind() types.FieldKind { return f.def.Kind }

// Integer returns the integer value.
func (f *Field) Integer() int { return f.integer }

// SetInteger stores an integer value.
func (f *Field) SetInteger(v int) { f.integer = v }

// Binary returns the binary value.
func (f *Field) Binary() []byte { return f.binary }

// SetBinary stores a copy of v.
func (f *Field) SetBinary(v []byte) {
	f.binary = append([]byte(nil), v...)
}

// ASCII returns the text value.
func (f *Field) ASCII() string { return f.text }

// SetASCII stores v as ISO-8859-1 text.
func (f *Field) SetASCII(v string) {
	f.text = v
	f.enc = types.EncodingISO88591
}

// Wide returns the text value.
func (f *Field) Wide() string { return f.text }

// SetWide stores v as Unicode text, defaulting the encoding to UTF-16.
func (f *Field) SetWide(v string) {
	f.text = v
	if f.enc == types.EncodingISO88591 {
		f.enc = types.EncodingUTF16
	}
}

// Encoding returns the text encoding recorded by the last setter.
func (f *Field) Encoding() int { return f.enc }

// SetEncoding records the text encoding.
func (f *Field) SetEncoding(enc int) { f.enc = enc }
