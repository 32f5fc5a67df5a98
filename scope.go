package id3tag

import (
	"github.com/simonhull/id3tag/internal/types"
)

// Scope is an alias to types.Scope: a bitmask of tag versions.
type Scope = types.Scope

// Version scopes.
const (
	VNone = types.VNone
	V1    = types.V1
	V2    = types.V2
	VBoth = types.VBoth
	VAll  = types.VAll
)

// ParseScope converts "v1", "v2", "both", "all" or "none" into a Scope.
func ParseScope(s string) (Scope, bool) {
	return types.ParseScope(s)
}

// FieldKind is an alias to types.FieldKind.
type FieldKind = types.FieldKind

// Field kinds.
const (
	KindInteger = types.KindInteger
	KindBinary  = types.KindBinary
	KindText    = types.KindText
)

// Text encodings for the textenc field.
const (
	EncodingISO88591 = types.EncodingISO88591
	EncodingUTF16    = types.EncodingUTF16
	EncodingUTF16BE  = types.EncodingUTF16BE
	EncodingUTF8     = types.EncodingUTF8
)

// Engine is the tag engine contract. Most callers never implement it; see
// WithEngine.
type Engine = types.Engine

// RawFrame is an engine-native frame.
type RawFrame = types.RawFrame

// RawField is an engine-native field slot.
type RawField = types.RawField
