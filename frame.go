package id3tag

import (
	"bytes"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/simonhull/id3tag/internal/registry"
)

// Frame is one ID3v2 frame: a registered frame kind plus its field values.
//
// Field values are held as Go values: int for integer fields, []byte for
// binary fields and string for text fields. Text is kept as UTF-8 in
// memory; the textenc field only selects the on-disk encoding of the
// frame's text, description and filename fields.
//
// Frames created with LooseFrame may carry an unregistered id or fields
// outside their definition. Such frames are reported by InvalidFrames and
// skipped on commit.
type Frame struct {
	def    *registry.FrameDef // nil when id is unregistered
	id     string
	fields map[string]any
	raw    RawFrame // engine frame last read or written
	dirty  bool
}

// NewFrame returns an empty frame for a registered frame id.
func NewFrame(id string) (*Frame, error) {
	def, ok := registry.Default().Frame(id)
	if !ok {
		return nil, &FrameError{FrameID: id, Err: ErrUnknownFrameID}
	}
	return &Frame{def: def, id: id, fields: make(map[string]any), dirty: true}, nil
}

// LooseFrame builds a frame without checking id or fields against the
// registry. Values are stored as given.
func LooseFrame(id string, fields map[string]any) *Frame {
	def, _ := registry.Default().Frame(id)
	f := &Frame{def: def, id: id, fields: make(map[string]any, len(fields)), dirty: true}
	maps.Copy(f.fields, fields)
	return f
}

// ID returns the 4-letter frame id.
func (f *Frame) ID() string { return f.id }

// Def returns the frame's registry definition, or nil for an unregistered id.
func (f *Frame) Def() *FrameDef { return f.def }

// AllowedFields returns the field ids the frame's definition allows, in
// definition order.
func (f *Frame) AllowedFields() []string {
	if f.def == nil {
		return nil
	}
	return f.def.FieldIDs()
}

// Fields returns the ids of the fields that hold a value: allowed fields in
// definition order, then any others sorted.
func (f *Frame) Fields() []string {
	var ids []string
	for _, id := range f.AllowedFields() {
		if _, ok := f.fields[id]; ok {
			ids = append(ids, id)
		}
	}
	var extra []string
	for id := range f.fields {
		if f.def == nil || !f.def.Allows(id) {
			extra = append(extra, id)
		}
	}
	slices.Sort(extra)
	return append(ids, extra...)
}

// Get returns the value of field.
func (f *Frame) Get(field string) (any, bool) {
	v, ok := f.fields[field]
	return v, ok
}

// Set stores v in field. The field must be allowed by the frame's
// definition.
//
// Any Go integer is stored as int for integer fields, and a string is
// stored as []byte for binary fields. Other mismatched values are kept and
// reported as a TypeMismatchError on commit.
func (f *Frame) Set(field string, v any) error {
	if f.def == nil {
		return &FrameError{FrameID: f.id, Field: field, Err: ErrUnknownFrameID}
	}
	fd := fieldDef(f.def, field)
	if fd == nil {
		if _, known := registry.Default().Field(field); !known {
			return &FrameError{FrameID: f.id, Field: field, Err: fmt.Errorf("%w: %w", ErrInvalidField, ErrUnknownFieldID)}
		}
		return &FrameError{FrameID: f.id, Field: field, Err: ErrInvalidField}
	}

	f.fields[field] = normalize(fd.Kind, v)
	f.dirty = true
	return nil
}

// Delete removes field from the frame.
func (f *Frame) Delete(field string) {
	if _, ok := f.fields[field]; ok {
		delete(f.fields, field)
		f.dirty = true
	}
}

// Text returns the text field, or "" when it is absent.
func (f *Frame) Text() string {
	s, _ := f.fields[registry.FieldText].(string)
	return s
}

// SetText sets the text field.
func (f *Frame) SetText(s string) error {
	return f.Set(registry.FieldText, s)
}

// Encoding returns the textenc value, EncodingISO88591 when unset.
func (f *Frame) Encoding() int {
	n, _ := f.fields[registry.FieldTextEnc].(int)
	return n
}

// Dirty reports whether the frame changed since it was last read or
// serialized.
func (f *Frame) Dirty() bool { return f.dirty }

// Equal reports whether both frames have the same id and field values.
func (f *Frame) Equal(other *Frame) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.id == other.id && maps.EqualFunc(f.fields, other.fields, valueEqual)
}

func valueEqual(a, b any) bool {
	ab, aok := a.([]byte)
	bb, bok := b.([]byte)
	if aok || bok {
		return aok && bok && bytes.Equal(ab, bb)
	}
	return reflect.DeepEqual(a, b)
}

// String renders the frame as TIT2{textenc=0, text="Title"}.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.WriteString(f.id)
	sb.WriteByte('{')
	for i, id := range f.Fields() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(id)
		sb.WriteByte('=')
		switch v := f.fields[id].(type) {
		case string:
			sb.WriteString(strconv.Quote(v))
		case []byte:
			fmt.Fprintf(&sb, "<%d bytes>", len(v))
		default:
			fmt.Fprint(&sb, v)
		}
	}
	sb.WriteByte('}')
	return sb.String()
}

func fieldDef(def *registry.FrameDef, id string) *registry.FieldDef {
	for _, fd := range def.Fields {
		if fd.ID == id {
			return fd
		}
	}
	return nil
}

func normalize(kind FieldKind, v any) any {
	switch kind {
	case KindInteger:
		switch n := v.(type) {
		case int8:
			return int(n)
		case int16:
			return int(n)
		case int32:
			return int(n)
		case int64:
			return int(n)
		case uint:
			return int(n)
		case uint8:
			return int(n)
		case uint16:
			return int(n)
		case uint32:
			return int(n)
		case uint64:
			return int(n)
		}
	case KindBinary:
		switch b := v.(type) {
		case string:
			return []byte(b)
		case []byte:
			return bytes.Clone(b)
		}
	}
	return v
}

// encodedText lists the text fields whose encoding follows textenc.
func encodedText(field string) bool {
	switch field {
	case registry.FieldText, registry.FieldDescription, registry.FieldFilename:
		return true
	}
	return false
}

// frameFromRaw reads every allowed field of an engine frame. Fields the
// engine doesn't provide are skipped and reported as warnings.
func frameFromRaw(raw RawFrame) (*Frame, []Warning, error) {
	def, ok := registry.Default().FrameNum(raw.Num())
	if !ok {
		return nil, nil, &FrameError{FrameID: "#" + strconv.Itoa(raw.Num()), Err: ErrUnknownFrameID}
	}

	f := &Frame{def: def, id: def.ID, fields: make(map[string]any, len(def.Fields)), raw: raw}

	wide := false
	if enc, ok := registry.Default().Field(registry.FieldTextEnc); ok && def.Allows(enc.ID) {
		if fl := raw.Field(enc.Num); fl != nil {
			wide = fl.Integer() > 0
		}
	}

	var warnings []Warning
	for _, fd := range def.Fields {
		fl := raw.Field(fd.Num)
		if fl == nil {
			warnings = append(warnings, Warning{
				Stage:   "frame",
				Message: fmt.Sprintf("%s: engine frame has no %s field", def.ID, fd.ID),
			})
			continue
		}

		switch fd.Kind {
		case KindInteger:
			f.fields[fd.ID] = fl.Integer()
		case KindBinary:
			f.fields[fd.ID] = bytes.Clone(fl.Binary())
		case KindText:
			if wide {
				f.fields[fd.ID] = fl.Wide()
			} else {
				f.fields[fd.ID] = fl.ASCII()
			}
		}
	}

	return f, warnings, nil
}

// toRaw serializes the frame into an engine frame. A clean frame returns
// the engine frame it was read from.
func (f *Frame) toRaw(e Engine) (RawFrame, error) {
	if f.def == nil {
		return nil, &FrameError{FrameID: f.id, Err: ErrUnknownFrameID}
	}
	if !f.dirty && f.raw != nil {
		return f.raw, nil
	}

	if err := f.checkKinds(); err != nil {
		return nil, err
	}

	raw, err := e.NewFrame(f.def.Num)
	if err != nil {
		return nil, fmt.Errorf("frame %s: %w", f.id, err)
	}

	enc := f.Encoding()
	if v, ok := f.fields[registry.FieldTextEnc]; ok {
		if fd := fieldDef(f.def, registry.FieldTextEnc); fd != nil {
			if fl := raw.Field(fd.Num); fl != nil {
				fl.SetInteger(v.(int))
			}
		}
	}

	for _, fd := range f.def.Fields {
		v, ok := f.fields[fd.ID]
		if !ok || fd.ID == registry.FieldTextEnc {
			continue
		}
		fl := raw.Field(fd.Num)
		if fl == nil {
			continue
		}

		switch fd.Kind {
		case KindInteger:
			fl.SetInteger(v.(int))
		case KindBinary:
			fl.SetBinary(v.([]byte))
		case KindText:
			if enc > 0 && encodedText(fd.ID) {
				fl.SetEncoding(enc)
				fl.SetWide(v.(string))
			} else {
				fl.SetASCII(v.(string))
			}
		}
	}

	f.raw = raw
	f.dirty = false
	return raw, nil
}

// checkKinds verifies every allowed field holds a value of its kind.
func (f *Frame) checkKinds() error {
	for _, fd := range f.def.Fields {
		v, ok := f.fields[fd.ID]
		if !ok {
			continue
		}

		var match bool
		switch fd.Kind {
		case KindInteger:
			_, match = v.(int)
		case KindBinary:
			_, match = v.([]byte)
		case KindText:
			_, match = v.(string)
		}
		if !match {
			return &TypeMismatchError{Value: v, FrameID: f.id, Field: fd.ID, Kind: fd.Kind}
		}
	}
	return nil
}
