// Package id3 is a file-backed tag engine for ID3v2.3/2.4 headers and
// ID3v1.1 trailers.
//
// The engine holds no open file between calls. Link reads the file once;
// Update and Strip rewrite it through a temporary file that is renamed over
// the original, so a failed write never leaves a half-written file behind.
package id3

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"slices"

	"github.com/rs/zerolog"

	binutil "github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/registry"
	"github.com/simonhull/id3tag/internal/types"
)

// Engine implements types.Engine over a single file.
type Engine struct {
	log zerolog.Logger
	reg *registry.Registry

	path     string
	linked   bool
	stripped bool
	padding  bool
	found    types.Scope

	frames   []*Frame
	warnings []types.Warning
}

var _ types.Engine = (*Engine)(nil)

// New returns an unlinked engine that logs to log.
func New(log zerolog.Logger) *Engine {
	return &Engine{
		log:     log.With().Str("component", "id3").Logger(),
		reg:     registry.Default(),
		padding: true,
	}
}

// Link binds the engine to path and reads the tags selected by scope.
//
// A directory links with no frames; writes to it later report nothing
// written. A missing or unreadable file is an error.
func (e *Engine) Link(path string, scope types.Scope) error {
	e.path = path
	e.linked = false
	e.stripped = false
	e.found = types.VNone
	e.frames = nil
	e.warnings = nil

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("link: %w", err)
	}
	if info.IsDir() {
		e.log.Debug().Str("path", path).Msg("linked directory with no tags")
		e.linked = true
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("link: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only handle

	size := info.Size()
	sr := binutil.NewSafeReader(f, size, path)

	if scope&types.V2 != 0 {
		frames, found, err := e.parseV2(sr)
		if err != nil {
			var corrupt *types.CorruptedTagError
			if !errors.As(err, &corrupt) {
				return fmt.Errorf("link: %w", err)
			}
			e.log.Warn().Err(err).Str("path", path).Msg("corrupted ID3v2 tag")
			e.warn("v2", corrupt.Reason, corrupt.Offset)
		}
		if found {
			e.found |= types.V2
		}
		e.frames = append(e.frames, frames...)
	}

	if scope&types.V1 != 0 {
		frames, found, err := e.parseV1(f, size)
		if err != nil {
			e.log.Warn().Err(err).Str("path", path).Msg("unreadable ID3v1 trailer")
			e.warn("v1", err.Error(), size-v1Size)
		}
		if found {
			e.found |= types.V1
		}
		for _, fr := range frames {
			if scope&types.V2 != 0 && e.hasFrame(fr.ID()) {
				continue
			}
			e.frames = append(e.frames, fr)
		}
	}

	e.linked = true
	e.log.Debug().
		Str("path", path).
		Stringer("scope", scope).
		Stringer("found", e.found).
		Int("frames", len(e.frames)).
		Msg("linked")
	return nil
}

func (e *Engine) hasFrame(id string) bool {
	return slices.ContainsFunc(e.frames, func(f *Frame) bool { return f.ID() == id })
}

// Frames enumerates linked frames in file order. It yields nothing after
// Strip until the engine is linked again.
func (e *Engine) Frames() iter.Seq[types.RawFrame] {
	return func(yield func(types.RawFrame) bool) {
		if !e.linked || e.stripped {
			return
		}
		for _, f := range e.frames {
			if !yield(f) {
				return
			}
		}
	}
}

// NewFrame returns an empty frame for registry frame number num.
func (e *Engine) NewFrame(num int) (types.RawFrame, error) {
	def, ok := e.reg.FrameNum(num)
	if !ok {
		return nil, fmt.Errorf("frame number %d: %w", num, types.ErrUnknownFrameID)
	}
	return newFrame(def), nil
}

// AddFrame appends f. Only frames created by this engine are accepted.
func (e *Engine) AddFrame(f types.RawFrame) error {
	fr, ok := f.(*Frame)
	if !ok || fr == nil {
		return fmt.Errorf("add frame: foreign frame type %T", f)
	}
	e.frames = append(e.frames, fr)
	return nil
}

// RemoveFrame removes f if present.
func (e *Engine) RemoveFrame(f types.RawFrame) {
	fr, ok := f.(*Frame)
	if !ok {
		return
	}
	e.frames = slices.DeleteFunc(e.frames, func(x *Frame) bool { return x == fr })
}

// ClearFrames drops every frame.
func (e *Engine) ClearFrames() {
	e.frames = nil
}

// SetPadding toggles free space after the ID3v2 frames.
func (e *Engine) SetPadding(enabled bool) {
	e.padding = enabled
}

// Size returns the size of the ID3v2 tag Update would write, padding
// included, or 0 when there are no frames.
func (e *Engine) Size() int {
	if len(e.frames) == 0 {
		return 0
	}
	b, err := renderV2(e.frames, e.padding)
	if err != nil {
		return 0
	}
	return len(b)
}

// HasTagType reports whether the last Link, Update or Strip left a tag of
// any version in scope on disk.
func (e *Engine) HasTagType(scope types.Scope) bool {
	return e.found&scope != 0
}

// Warnings returns the non-fatal problems found by the last Link.
func (e *Engine) Warnings() []types.Warning {
	return e.warnings
}

func (e *Engine) warn(stage, msg string, offset int64) {
	e.warnings = append(e.warnings, types.Warning{Stage: stage, Message: msg, Offset: offset})
}
