package id3tag

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"

	"github.com/rs/zerolog"
)

type tagState int

const (
	stateUnlinked tagState = iota
	stateLinked
	stateStripped
)

// Tag is the ordered set of frames attached to one file.
//
// Frames are kept in read order followed by append order. All mutation is
// in memory until Commit writes the whole set back through the engine.
//
// A Tag is not safe for concurrent use, and two Tags must not operate on
// the same file at the same time.
type Tag struct {
	// Warnings encountered while reading (non-fatal issues)
	Warnings []Warning

	path    string
	scope   Scope
	padding bool
	frames  []*Frame
	engine  Engine
	state   tagState
	dirty   bool
	log     zerolog.Logger
	opts    *openOptions
}

// Open links path and reads every frame selected by scope.
//
// A file without tags is not an error: the tag simply has no frames.
// A missing or unreadable file is.
//
// Example:
//
//	tag, err := id3tag.Open("song.mp3", id3tag.VAll)
//	if err != nil {
//		return err
//	}
//	fmt.Println(tag.Title(), "-", tag.Artist())
func Open(path string, scope Scope, opts ...Option) (*Tag, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	t := &Tag{
		path:    path,
		scope:   scope,
		padding: options.padding,
		engine:  options.newEngine(options.logger),
		log:     options.logger.With().Str("path", path).Logger(),
		opts:    options,
	}

	if err := t.link(); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if options.strictParsing && len(t.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", t.Warnings[0])
	}

	return t, nil
}

// link (re)binds the engine and rebuilds the frame list from it.
func (t *Tag) link() error {
	if err := t.engine.Link(t.path, t.scope); err != nil {
		return err
	}

	t.frames = nil
	t.Warnings = nil
	if w, ok := t.engine.(interface{ Warnings() []Warning }); ok {
		t.Warnings = append(t.Warnings, w.Warnings()...)
	}

	for raw := range t.engine.Frames() {
		f, warnings, err := frameFromRaw(raw)
		if err != nil {
			t.log.Debug().Err(err).Msg("skipping engine frame")
			t.Warnings = append(t.Warnings, Warning{Stage: "link", Message: err.Error()})
			continue
		}
		for _, w := range warnings {
			t.log.Debug().Str("frame", f.id).Msg(w.Message)
		}
		t.Warnings = append(t.Warnings, warnings...)
		t.frames = append(t.frames, f)
	}

	if t.opts.ignoreWarnings {
		t.Warnings = nil
	}

	t.state = stateLinked
	t.dirty = false
	return nil
}

// Relink re-reads the file, discarding unsaved changes. It is required
// after Strip before the tag can be read again.
func (t *Tag) Relink() error {
	if err := t.link(); err != nil {
		return fmt.Errorf("relink %s: %w", t.path, err)
	}
	return nil
}

// Path returns the file the tag is bound to.
func (t *Tag) Path() string { return t.path }

// Scope returns the versions the tag was opened with.
func (t *Tag) Scope() Scope { return t.scope }

// Frame returns the first frame matching an accessor name or frame id.
func (t *Tag) Frame(idOrName string) *Frame {
	id := resolveID(idOrName)
	for _, f := range t.frames {
		if f.id == id {
			return f
		}
	}
	return nil
}

// Select returns every frame matching an accessor name or frame id.
func (t *Tag) Select(idOrName string) []*Frame {
	id := resolveID(idOrName)
	var out []*Frame
	for _, f := range t.frames {
		if f.id == id {
			out = append(out, f)
		}
	}
	return out
}

// All iterates over the frames in order.
func (t *Tag) All() iter.Seq[*Frame] {
	return func(yield func(*Frame) bool) {
		for _, f := range t.frames {
			if !yield(f) {
				return
			}
		}
	}
}

// Len returns the number of frames.
func (t *Tag) Len() int { return len(t.frames) }

// SetFrame builds a new frame for idOrName and replaces every frame with
// that id by it, appended at the end. When build fails the tag is left
// unchanged.
func (t *Tag) SetFrame(idOrName string, build func(*Frame) error) (*Frame, error) {
	f, err := NewFrame(resolveID(idOrName))
	if err != nil {
		return nil, err
	}
	if err := build(f); err != nil {
		return nil, err
	}
	t.frames = slices.DeleteFunc(t.frames, func(old *Frame) bool { return old.id == f.id })
	t.frames = append(t.frames, f)
	t.dirty = true
	return f, nil
}

// Text returns the text of the first matching frame, or "".
func (t *Tag) Text(idOrName string) string {
	if f := t.Frame(idOrName); f != nil {
		return f.Text()
	}
	return ""
}

// SetText replaces every matching frame with a single text frame.
func (t *Tag) SetText(idOrName, text string) error {
	_, err := t.SetFrame(idOrName, func(f *Frame) error {
		return f.SetText(text)
	})
	return err
}

// RemoveFrame removes every frame matching idOrName and returns how many
// were removed.
func (t *Tag) RemoveFrame(idOrName string) int {
	id := resolveID(idOrName)
	before := len(t.frames)
	t.frames = slices.DeleteFunc(t.frames, func(f *Frame) bool { return f.id == id })
	removed := before - len(t.frames)
	if removed > 0 {
		t.dirty = true
	}
	return removed
}

// Add appends frames without validating them. Use InvalidFrames to check
// a tag assembled this way.
func (t *Tag) Add(frames ...*Frame) {
	for _, f := range frames {
		if f != nil {
			t.frames = append(t.frames, f)
			t.dirty = true
		}
	}
}

// Padding reports whether commits reserve free space after the frames.
func (t *Tag) Padding() bool { return t.padding }

// SetPadding sets the padding policy for the next commit.
func (t *Tag) SetPadding(enabled bool) {
	t.padding = enabled
}

// Dirty reports whether the tag has uncommitted changes.
func (t *Tag) Dirty() bool {
	return t.dirty || slices.ContainsFunc(t.frames, (*Frame).Dirty)
}

// HasTag reports whether the file carried a tag of the opened scope when
// it was last linked or committed. It is false after Strip until Relink.
func (t *Tag) HasTag() bool {
	return t.HasTagType(t.scope)
}

// HasTagType reports whether the file carries a tag of any version in scope.
func (t *Tag) HasTagType(scope Scope) bool {
	if t.state != stateLinked {
		return false
	}
	return t.engine.HasTagType(scope)
}

// Size estimates the size of the ID3v2 tag a commit would write.
func (t *Tag) Size() int {
	if t.state != stateLinked {
		return 0
	}
	raws, err := t.serialize()
	if err != nil {
		return 0
	}
	if err := t.load(raws); err != nil {
		return 0
	}
	return t.engine.Size()
}

// serialize converts every frame to an engine frame. Frames whose id no
// longer resolves are dropped; a type mismatch aborts.
func (t *Tag) serialize() ([]RawFrame, error) {
	raws := make([]RawFrame, 0, len(t.frames))
	for _, f := range t.frames {
		if f.dirty {
			t.dirty = true
		}
		raw, err := f.toRaw(t.engine)
		if err != nil {
			if errors.Is(err, ErrTypeMismatch) {
				return nil, err
			}
			t.log.Debug().Err(err).Str("frame", f.id).Msg("dropping frame from commit")
			continue
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

// load replaces the engine's frame set and applies the padding policy.
func (t *Tag) load(raws []RawFrame) error {
	t.engine.ClearFrames()
	for _, raw := range raws {
		if err := t.engine.AddFrame(raw); err != nil {
			return err
		}
	}
	t.engine.SetPadding(t.padding)
	return nil
}

// Commit writes every frame to the versions the tag was opened with.
// See CommitScope.
func (t *Tag) Commit(opts ...CommitOption) (Scope, error) {
	return t.CommitScope(t.scope, opts...)
}

// CommitScope writes the full frame set to the versions in scope and
// returns the versions actually written.
//
// Frames with an unregistered id are dropped silently. A field holding a
// value of the wrong kind aborts the commit with a TypeMismatchError before
// anything is written. If the engine writes nothing a CommitError wrapping
// ErrCommitFailed is returned; the in-memory frames are left as they were
// so the commit can be retried.
//
// Example:
//
//	tag.SetTitle("New Title")
//	if _, err := tag.Commit(id3tag.WithBackup(".bak")); err != nil {
//		return err
//	}
func (t *Tag) CommitScope(scope Scope, opts ...CommitOption) (Scope, error) {
	if t.state == stateUnlinked {
		return VNone, ErrNotLinked
	}

	options := defaultCommitOptions()
	for _, opt := range opts {
		opt(options)
	}

	raws, err := t.serialize()
	if err != nil {
		return VNone, err
	}

	var origInfo os.FileInfo
	if options.preserveModTime {
		if info, err := os.Stat(t.path); err == nil {
			origInfo = info
		}
	}

	if options.backupSuffix != "" {
		if err := copyFile(t.path, t.path+options.backupSuffix); err != nil {
			return VNone, fmt.Errorf("create backup: %w", err)
		}
	}

	if err := t.load(raws); err != nil {
		return VNone, &CommitError{Path: t.path, Scope: scope, Err: fmt.Errorf("%w: %w", ErrCommitFailed, err)}
	}

	written, err := t.engine.Update(scope)
	if written == VNone {
		cause := ErrCommitFailed
		if err != nil {
			cause = fmt.Errorf("%w: %w", ErrCommitFailed, err)
		}
		t.log.Warn().Err(cause).Stringer("scope", scope).Msg("commit wrote no tag")
		return VNone, &CommitError{Path: t.path, Scope: scope, Err: cause}
	}

	t.dirty = false
	t.state = stateLinked

	if origInfo != nil {
		_ = os.Chtimes(t.path, origInfo.ModTime(), origInfo.ModTime()) //nolint:errcheck // Non-fatal: tag was written successfully
	}

	if options.validate {
		if err := t.validateWritten(written); err != nil {
			return written, fmt.Errorf("validation failed: %w", err)
		}
	}

	t.log.Debug().Stringer("written", written).Int("frames", len(raws)).Msg("committed")
	return written, nil
}

// validateWritten re-reads the file and compares key text frames.
func (t *Tag) validateWritten(written Scope) error {
	scope := V2
	if written&V2 == 0 {
		scope = V1
	}

	reread, err := Open(t.path, scope, WithLogger(t.opts.logger), WithEngine(t.opts.newEngine))
	if err != nil {
		return fmt.Errorf("re-open: %w", err)
	}

	for _, id := range []string{"TIT2", "TPE1", "TALB"} {
		want := t.Text(id)
		if scope == V1 {
			want = truncateV1(want)
		}
		if got := reread.Text(id); got != want {
			return fmt.Errorf("%s mismatch: got %q, want %q", id, got, want)
		}
	}
	return nil
}

// truncateV1 cuts s to the 30 bytes an ID3v1 text slot holds.
func truncateV1(s string) string {
	const slot = 30
	if len(s) <= slot {
		return s
	}
	return s[:slot]
}

// Strip removes tags of scope from the file and clears the in-memory
// frames. The tag must be relinked before it is read again.
func (t *Tag) Strip(scope Scope) (Scope, error) {
	if t.state == stateUnlinked {
		return VNone, ErrNotLinked
	}

	removed, err := t.engine.Strip(scope)
	if err != nil {
		return VNone, fmt.Errorf("strip %s: %w", t.path, err)
	}

	t.frames = nil
	t.dirty = false
	t.state = stateStripped
	return removed, nil
}

// Strip removes tags of scope from the file at path.
func Strip(path string, scope Scope, opts ...Option) (Scope, error) {
	t, err := Open(path, scope, opts...)
	if err != nil {
		return VNone, err
	}
	return t.Strip(scope)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // read-only handle

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close() //nolint:errcheck // Best effort cleanup
		return err
	}
	return out.Close()
}
