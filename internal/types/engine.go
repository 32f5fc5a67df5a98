package types

import "iter"

// Engine is the tag engine contract: everything below the frame object model.
//
// An engine binds to one file at a time. Link is non-destructive; Update and
// Strip rewrite the file. After Strip the frame enumerator is invalid and
// yields nothing until the engine is linked again.
//
// Engines hold file-scoped mutable state and are not safe for concurrent use.
type Engine interface {
	// Link binds the engine to path for the given scope and reads its tags.
	// A missing tag is not an error; an unreadable file is.
	Link(path string, scope Scope) error

	// Frames enumerates the linked frames in on-disk order.
	Frames() iter.Seq[RawFrame]

	// NewFrame creates an empty engine-native frame for a registry frame number.
	NewFrame(num int) (RawFrame, error)

	// AddFrame appends a frame to the set that Update will write.
	AddFrame(f RawFrame) error

	// RemoveFrame removes a single frame from the set.
	RemoveFrame(f RawFrame)

	// ClearFrames removes every frame from the set.
	ClearFrames()

	// SetPadding toggles free space after the ID3v2 tag data.
	SetPadding(enabled bool)

	// Size estimates the number of bytes needed to store the tag data.
	Size() int

	// HasTagType reports whether a tag of the given scope was found by the
	// last Link. Only meaningful for scopes covered by that Link.
	HasTagType(scope Scope) bool

	// Strip removes tag data of scope from the file and returns the
	// versions actually removed.
	Strip(scope Scope) (Scope, error)

	// Update writes the frame set for scope and returns the versions
	// actually written. Zero means nothing was written.
	Update(scope Scope) (Scope, error)
}

// RawFrame is an engine-native frame.
type RawFrame interface {
	// Num returns the registry frame number.
	Num() int

	// Field returns the field with the registry field number, or nil.
	Field(num int) RawField
}

// RawField is a single engine-native field slot.
type RawField interface {
	Num() int
	Kind() FieldKind

	Integer() int
	SetInteger(v int)

	Binary() []byte
	SetBinary(v []byte)

	ASCII() string
	SetASCII(v string)

	// Wide returns text stored in a Unicode encoding.
	Wide() string
	SetWide(v string)

	Encoding() int
	SetEncoding(enc int)
}
