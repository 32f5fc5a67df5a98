// Package registry holds the immutable catalogue of ID3v2 frame definitions,
// field definitions and ID3v1 genres.
//
// The catalogue is built once at package initialization and never mutated.
// Definitions live in arenas indexed by their stable numeric ids; lookups by
// symbolic id go through maps pointing into those arenas.
package registry

import (
	"iter"
	"strings"

	"github.com/simonhull/id3tag/internal/types"
)

// FieldDef describes one field slot.
type FieldDef struct {
	ID          string
	Description string
	Num         int
	Kind        types.FieldKind
}

// FrameDef describes one frame kind and the ordered fields it allows.
type FrameDef struct {
	ID          string
	Description string
	Fields      []*FieldDef
	Num         int
}

// Allows reports whether field is part of the frame's allowed set.
func (d *FrameDef) Allows(field string) bool {
	for _, f := range d.Fields {
		if f.ID == field {
			return true
		}
	}
	return false
}

// FieldIDs returns the symbolic ids of the allowed fields, in order.
func (d *FrameDef) FieldIDs() []string {
	ids := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		ids[i] = f.ID
	}
	return ids
}

// Registry is a read-only catalogue. The zero value is empty; use Default.
type Registry struct {
	frames       []*FrameDef // indexed by Num
	fields       []*FieldDef // indexed by Num
	framesByID   map[string]*FrameDef
	fieldsByID   map[string]*FieldDef
	genres       []string
	genresByName map[string]int
}

var std = build()

// Default returns the process-wide registry.
func Default() *Registry {
	return std
}

func build() *Registry {
	r := &Registry{
		framesByID:   make(map[string]*FrameDef, len(frameTable)),
		fieldsByID:   make(map[string]*FieldDef, len(fieldTable)),
		genres:       genreTable,
		genresByName: make(map[string]int, len(genreTable)),
	}

	maxField := 0
	for _, f := range fieldTable {
		maxField = max(maxField, f.num)
	}
	r.fields = make([]*FieldDef, maxField+1)
	for _, f := range fieldTable {
		def := &FieldDef{Num: f.num, ID: f.id, Description: f.desc, Kind: f.kind}
		r.fields[f.num] = def
		r.fieldsByID[f.id] = def
	}

	maxFrame := 0
	for _, f := range frameTable {
		maxFrame = max(maxFrame, f.num)
	}
	r.frames = make([]*FrameDef, maxFrame+1)
	for _, f := range frameTable {
		def := &FrameDef{Num: f.num, ID: f.id, Description: f.desc}
		for _, id := range f.fields {
			fd, ok := r.fieldsByID[id]
			if !ok {
				panic("registry: frame " + f.id + " references unknown field " + id)
			}
			def.Fields = append(def.Fields, fd)
		}
		r.frames[f.num] = def
		r.framesByID[f.id] = def
	}

	for i, g := range genreTable {
		key := strings.ToLower(strings.TrimSpace(g))
		if _, dup := r.genresByName[key]; !dup {
			r.genresByName[key] = i
		}
	}

	return r
}

// Frame looks up a frame definition by its 4-letter id.
func (r *Registry) Frame(id string) (*FrameDef, bool) {
	def, ok := r.framesByID[id]
	return def, ok
}

// FrameNum looks up a frame definition by numeric id.
func (r *Registry) FrameNum(num int) (*FrameDef, bool) {
	if num <= 0 || num >= len(r.frames) || r.frames[num] == nil {
		return nil, false
	}
	return r.frames[num], true
}

// Field looks up a field definition by symbolic id.
func (r *Registry) Field(id string) (*FieldDef, bool) {
	def, ok := r.fieldsByID[id]
	return def, ok
}

// FieldNum looks up a field definition by numeric id.
func (r *Registry) FieldNum(num int) (*FieldDef, bool) {
	if num <= 0 || num >= len(r.fields) || r.fields[num] == nil {
		return nil, false
	}
	return r.fields[num], true
}

// Frames iterates over all frame definitions in numeric order.
func (r *Registry) Frames() iter.Seq[*FrameDef] {
	return func(yield func(*FrameDef) bool) {
		for _, def := range r.frames {
			if def == nil {
				continue
			}
			if !yield(def) {
				return
			}
		}
	}
}

// GenreIndex returns the ID3v1 genre index for name (case-insensitive).
func (r *Registry) GenreIndex(name string) (int, bool) {
	i, ok := r.genresByName[strings.ToLower(strings.TrimSpace(name))]
	return i, ok
}

// GenreName returns the genre name for an ID3v1 genre index.
func (r *Registry) GenreName(index int) (string, bool) {
	if index < 0 || index >= len(r.genres) {
		return "", false
	}
	return strings.TrimSpace(r.genres[index]), true
}

// Genres returns a copy of the genre table.
func (r *Registry) Genres() []string {
	out := make([]string, len(r.genres))
	copy(out, r.genres)
	return out
}
