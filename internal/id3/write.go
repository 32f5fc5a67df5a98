package id3

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/simonhull/id3tag/internal/types"
)

// fileLayout splits file contents into leading tag, audio and trailer.
type fileLayout struct {
	data  []byte
	v2End int
	v1Len int
}

func (l fileLayout) audio() []byte {
	return l.data[l.v2End : len(l.data)-l.v1Len]
}

func (l fileLayout) v2() []byte { return l.data[:l.v2End] }
func (l fileLayout) v1() []byte { return l.data[len(l.data)-l.v1Len:] }

func readLayout(path string) (fileLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileLayout{}, err
	}
	l := fileLayout{data: data, v2End: v2Extent(data)}
	if hasV1(data[l.v2End:]) {
		l.v1Len = v1Size
	}
	return l, nil
}

// Update writes the frame set for scope and returns the versions written.
//
// Versions in scope that have nothing to write are removed from the file.
// When no version in scope has anything to write the file is left alone and
// VNone is returned.
func (e *Engine) Update(scope types.Scope) (types.Scope, error) {
	if !e.linked {
		return types.VNone, types.ErrNotLinked
	}

	info, err := os.Stat(e.path)
	if err != nil {
		return types.VNone, fmt.Errorf("update: %w", err)
	}
	if info.IsDir() {
		e.log.Debug().Str("path", e.path).Msg("refusing to write tags to a directory")
		return types.VNone, nil
	}

	var written types.Scope
	var head, tail []byte

	if scope&types.V2 != 0 && len(e.frames) > 0 {
		head, err = renderV2(e.frames, e.padding)
		if err != nil {
			return types.VNone, fmt.Errorf("render ID3v2: %w", err)
		}
		written |= types.V2
	}
	if scope&types.V1 != 0 {
		if tail = renderV1(e.frames, e.reg); tail != nil {
			written |= types.V1
		}
	}

	if written == types.VNone {
		e.log.Debug().Str("path", e.path).Stringer("scope", scope).Msg("nothing to write")
		return types.VNone, nil
	}

	l, err := readLayout(e.path)
	if err != nil {
		return types.VNone, fmt.Errorf("update: %w", err)
	}
	if scope&types.V2 == 0 {
		head = l.v2()
	}
	if scope&types.V1 == 0 {
		tail = l.v1()
	}

	if err := writeAtomic(e.path, info.Mode().Perm(), head, l.audio(), tail); err != nil {
		return types.VNone, fmt.Errorf("update: %w", err)
	}

	e.stripped = false
	e.found = e.found&^scope | written
	e.log.Debug().Str("path", e.path).Stringer("written", written).Int("frames", len(e.frames)).Msg("updated")
	return written, nil
}

// Strip removes tags of scope from the file and returns the versions
// actually removed. The frame enumerator stays empty until the next Link.
func (e *Engine) Strip(scope types.Scope) (types.Scope, error) {
	if !e.linked {
		return types.VNone, types.ErrNotLinked
	}
	e.stripped = true
	e.frames = nil

	info, err := os.Stat(e.path)
	if err != nil {
		return types.VNone, fmt.Errorf("strip: %w", err)
	}
	if info.IsDir() {
		return types.VNone, nil
	}

	l, err := readLayout(e.path)
	if err != nil {
		return types.VNone, fmt.Errorf("strip: %w", err)
	}

	var removed types.Scope
	head, tail := l.v2(), l.v1()
	if scope&types.V2 != 0 && l.v2End > 0 {
		head = nil
		removed |= types.V2
	}
	if scope&types.V1 != 0 && l.v1Len > 0 {
		tail = nil
		removed |= types.V1
	}

	if removed != types.VNone {
		if err := writeAtomic(e.path, info.Mode().Perm(), head, l.audio(), tail); err != nil {
			return types.VNone, fmt.Errorf("strip: %w", err)
		}
	}

	e.found &^= removed
	e.log.Debug().Str("path", e.path).Stringer("removed", removed).Msg("stripped")
	return removed, nil
}

// writeAtomic replaces path with the concatenation of parts.
//
// The data goes to a temporary file in the same directory, is synced, and
// is then renamed over path. On any failure the original file is untouched.
func writeAtomic(path string, perm os.FileMode, parts ...[]byte) error {
	tempFile, err := os.CreateTemp(filepath.Dir(path), ".id3tag-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	for _, p := range parts {
		if _, err := tempFile.Write(p); err != nil {
			return fmt.Errorf("write temp file: %w", err)
		}
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}
