package types

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every structured error below unwraps to one of these so
// callers can test with errors.Is.
var (
	ErrUnknownFrameID = errors.New("unknown frame id")
	ErrUnknownFieldID = errors.New("unknown field id")
	ErrInvalidField   = errors.New("field not allowed for frame")
	ErrTypeMismatch   = errors.New("field value has wrong type")
	ErrCommitFailed   = errors.New("no tag written")
	ErrNotLinked      = errors.New("engine not linked")
)

// FrameError reports a registry miss or a disallowed field on a frame.
type FrameError struct {
	FrameID string
	Field   string // empty for frame-level errors
	Err     error
}

func (e *FrameError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("frame %s: field %q: %v", e.FrameID, e.Field, e.Err)
	}
	return fmt.Sprintf("frame %q: %v", e.FrameID, e.Err)
}

func (e *FrameError) Unwrap() error { return e.Err }

// TypeMismatchError is returned at serialization time when a field value
// does not match the field's kind.
type TypeMismatchError struct {
	Value   any
	FrameID string
	Field   string
	Kind    FieldKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("frame %s: field %q expects %s, got %T", e.FrameID, e.Field, e.Kind, e.Value)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// CommitError is returned when an engine write produced no tag.
//
// The in-memory frames are left untouched so the caller can retry.
type CommitError struct {
	Err   error
	Path  string
	Scope Scope
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("%s: commit %s: %v", e.Path, e.Scope, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }

// CorruptedTagError is returned when tag structure is invalid.
type CorruptedTagError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedTagError) Error() string {
	return fmt.Sprintf("%s: corrupted tag at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// UnsupportedVersionError is returned for ID3v2 revisions the engine can't read.
type UnsupportedVersionError struct {
	Path     string
	Major    byte
	Revision byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("%s: unsupported ID3v2 version: 2.%d.%d", e.Path, e.Major, e.Revision)
}

// Warning represents a non-fatal issue encountered while reading a tag.
//
// Examples include:
//   - a raw frame lacking a field its definition declares
//   - an unregistered or compressed frame skipped by the engine
//   - a truncated frame body
type Warning struct {
	// Stage where the warning occurred ("link", "frame", "v1", "v2")
	Stage string

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
