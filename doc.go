// Package id3tag reads and writes ID3 metadata tags (v1 and v2) through a
// typed frame and field model.
//
// Every frame kind is described by an immutable registry: a 4-letter id
// such as TIT2 or APIC, and the ordered list of fields it allows. A Tag is
// the ordered set of frames attached to one file. Reading and editing
// happen in memory; Commit writes the whole set back.
//
// # Quick Start
//
//	tag, err := id3tag.Open("song.mp3", id3tag.VAll)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("%s - %s\n", tag.Artist(), tag.Title())
//
//	tag.SetTitle("New Title")
//	if _, err := tag.Commit(); err != nil {
//		log.Fatal(err)
//	}
//
// # Version Scopes
//
// ID3v1 is a fixed 128-byte trailer; ID3v2 is a frame-based header. A
// Scope selects which of them an operation applies to:
//
//	id3tag.V1    // trailer only
//	id3tag.V2    // header only
//	id3tag.VAll  // both
//
// When both are read, ID3v1 values only fill in frames the ID3v2 tag lacks.
//
// # Frames and Fields
//
// Frames hold typed values: int for integer fields, []byte for binary
// fields and string for text fields. Unknown fields are rejected:
//
//	f, _ := id3tag.NewFrame("COMM")
//	f.Set("textenc", id3tag.EncodingUTF16)
//	f.Set("language", "eng")
//	f.Set("description", "")
//	f.SetText("Recorded live")
//	tag.Add(f)
//
// The textenc field picks how text, description and filename are encoded
// on disk: ISO-8859-1, UTF-16 with a byte-order mark, UTF-16BE or UTF-8.
// In memory text is always a Go string.
//
// # Accessors
//
// Common frames have friendly names. Track and disc numbers are exposed as
// []int, the year as int:
//
//	tag.SetValue("track", []int{3, 12})   // TRCK "3/12"
//	v, _ := tag.Value("track")            // []int{3, 12}
//
// # Committing
//
// Commit is a full resync: the engine's frame set is replaced by the
// in-memory frames and written. A commit that writes nothing returns a
// CommitError; the in-memory tag is left alone so it can be retried.
//
// After Strip the tag has no frames and must be relinked before it is
// read again:
//
//	tag.Strip(id3tag.VAll)
//	tag.Relink()
//
// # Error Handling
//
// Errors are structured types that unwrap to sentinels usable with
// errors.Is: ErrUnknownFrameID, ErrInvalidField, ErrTypeMismatch,
// ErrCommitFailed. Non-fatal read problems are collected in Tag.Warnings.
//
// # Logging
//
// The library is silent by default. Pass a zerolog logger with WithLogger
// to see skipped frames and failed commits.
package id3tag
