package id3tag

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpenMany(t *testing.T) {
	paths := []string{
		writeTemp(t, tagV23(textFrame("TIT2", "One")), fakeAudio),
		writeTemp(t, tagV23(textFrame("TIT2", "Two")), fakeAudio),
		writeTemp(t, fakeAudio),
		writeTemp(t, tagV23(textFrame("TIT2", "Four")), fakeAudio),
	}

	tags, err := OpenMany(context.Background(), VAll, paths...)
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != len(paths) {
		t.Fatalf("got %d tags, want %d", len(tags), len(paths))
	}

	want := []string{"One", "Two", "", "Four"}
	for i, tag := range tags {
		if tag.Path() != paths[i] {
			t.Errorf("tags[%d].Path() = %s, want %s", i, tag.Path(), paths[i])
		}
		if tag.Title() != want[i] {
			t.Errorf("tags[%d].Title() = %q, want %q", i, tag.Title(), want[i])
		}
	}
}

func TestOpenMany_Empty(t *testing.T) {
	tags, err := OpenMany(context.Background(), VAll)
	if err != nil || tags != nil {
		t.Errorf("OpenMany() = %v, %v", tags, err)
	}
}

func TestOpenMany_Error(t *testing.T) {
	paths := []string{
		writeTemp(t, sampleTag(), fakeAudio),
		filepath.Join(t.TempDir(), "missing.mp3"),
	}
	tags, err := OpenMany(context.Background(), VAll, paths...)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if tags != nil {
		t.Error("no tags should be returned on error")
	}
}

func TestOpenMany_Cancelled(t *testing.T) {
	paths := []string{
		writeTemp(t, sampleTag(), fakeAudio),
		writeTemp(t, sampleTag(), fakeAudio),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := OpenMany(ctx, VAll, paths...); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestOpenManyWith_Options(t *testing.T) {
	path := writeTemp(t, tagV23(textFrame("TIT2", "x"), textFrame("XYZW", "y")), fakeAudio)

	if _, err := OpenManyWith(context.Background(), V2, []string{path}, []Option{WithStrictParsing()}); err == nil {
		t.Error("options should reach every Open")
	}
}
