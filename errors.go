package id3tag

import (
	"github.com/simonhull/id3tag/internal/types"
)

// Sentinel errors, usable with errors.Is on every structured error below.
var (
	ErrUnknownFrameID = types.ErrUnknownFrameID
	ErrUnknownFieldID = types.ErrUnknownFieldID
	ErrInvalidField   = types.ErrInvalidField
	ErrTypeMismatch   = types.ErrTypeMismatch
	ErrCommitFailed   = types.ErrCommitFailed
	ErrNotLinked      = types.ErrNotLinked
)

// FrameError is an alias to types.FrameError.
// Re-exporting from internal/types to maintain public API.
type FrameError = types.FrameError

// TypeMismatchError is an alias to types.TypeMismatchError.
type TypeMismatchError = types.TypeMismatchError

// CommitError is an alias to types.CommitError.
type CommitError = types.CommitError

// CorruptedTagError is an alias to types.CorruptedTagError.
type CorruptedTagError = types.CorruptedTagError

// UnsupportedVersionError is an alias to types.UnsupportedVersionError.
type UnsupportedVersionError = types.UnsupportedVersionError

// Warning is an alias to types.Warning.
type Warning = types.Warning
