// Package types provides the core value types shared between the public
// id3tag API, the frame registry and tag engines.
//
// This package defines version scopes, field kinds, the tag engine contract
// and the error taxonomy. The root package re-exports all of it.
package types

import "strings"

// Scope is a bitmask selecting which tag versions an operation applies to.
type Scope int

const (
	// VNone selects no tag at all.
	VNone Scope = 0
	// V1 selects the fixed 128-byte ID3v1 trailer.
	V1 Scope = 1
	// V2 selects the frame-based ID3v2 header.
	V2 Scope = 2
	// VBoth selects both ID3v1 and ID3v2.
	VBoth = V1 | V2
	// VAll is the superset sentinel. It is not a third version bit.
	VAll Scope = 0xFF
)

// Has reports whether s includes every version bit of other.
func (s Scope) Has(other Scope) bool {
	return other != VNone && s&other == other
}

// String returns a readable form such as "v1|v2".
func (s Scope) String() string {
	switch s {
	case VNone:
		return "none"
	case VAll:
		return "all"
	}

	var parts []string
	if s&V1 != 0 {
		parts = append(parts, "v1")
	}
	if s&V2 != 0 {
		parts = append(parts, "v2")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// ParseScope converts the names accepted by String back into a Scope.
func ParseScope(s string) (Scope, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "0":
		return VNone, true
	case "v1", "1":
		return V1, true
	case "v2", "2":
		return V2, true
	case "both", "v1|v2", "3":
		return VBoth, true
	case "all", "":
		return VAll, true
	}
	return VNone, false
}
