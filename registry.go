package id3tag

import (
	"iter"

	"github.com/simonhull/id3tag/internal/registry"
)

// FrameDef describes a registered frame kind and its ordered fields.
type FrameDef = registry.FrameDef

// FieldDef describes a registered field.
type FieldDef = registry.FieldDef

// LookupFrame returns the definition for a 4-letter frame id.
func LookupFrame(id string) (*FrameDef, bool) {
	return registry.Default().Frame(id)
}

// LookupField returns the definition for a symbolic field id.
func LookupField(id string) (*FieldDef, bool) {
	return registry.Default().Field(id)
}

// FrameDefs iterates over every registered frame in numeric order.
func FrameDefs() iter.Seq[*FrameDef] {
	return registry.Default().Frames()
}

// GenreIndex returns the ID3v1 genre index for name, ignoring case.
func GenreIndex(name string) (int, bool) {
	return registry.Default().GenreIndex(name)
}

// GenreName returns the genre at an ID3v1 genre index.
func GenreName(index int) (string, bool) {
	return registry.Default().GenreName(index)
}

// Genres returns a copy of the 148-entry genre table.
func Genres() []string {
	return registry.Default().Genres()
}
