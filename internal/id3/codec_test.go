package id3

import (
	"bytes"
	"testing"

	"github.com/simonhull/id3tag/internal/registry"
	"github.com/simonhull/id3tag/internal/types"
)

func mustDef(t *testing.T, id string) *registry.FrameDef {
	t.Helper()
	def, ok := registry.Default().Frame(id)
	if !ok {
		t.Fatalf("frame %s not registered", id)
	}
	return def
}

func TestDecodeBody_APIC(t *testing.T) {
	body := []byte{0}
	body = append(body, "image/png"...)
	body = append(body, 0, 3)
	body = append(body, "Cover"...)
	body = append(body, 0)
	body = append(body, 0x89, 'P', 'N', 'G', 0, 0)

	f, err := decodeBody(mustDef(t, "APIC"), body)
	if err != nil {
		t.Fatal(err)
	}

	if got := f.text(registry.FieldMimeType); got != "image/png" {
		t.Errorf("mimetype = %q", got)
	}
	if got := f.fieldByID(registry.FieldPictureType).Integer(); got != 3 {
		t.Errorf("picturetype = %d, want 3", got)
	}
	if got := f.text(registry.FieldDescription); got != "Cover" {
		t.Errorf("description = %q", got)
	}
	// Trailing zero bytes belong to the picture.
	if got := f.fieldByID(registry.FieldData).Binary(); !bytes.Equal(got, []byte{0x89, 'P', 'N', 'G', 0, 0}) {
		t.Errorf("data = %x", got)
	}

	out, err := encodeBody(f)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, body) {
		t.Errorf("re-encoded body = %x, want %x", out, body)
	}
}

func TestDecodeBody_POPM(t *testing.T) {
	body := []byte("someone@example.com\x00")
	body = append(body, 196, 0, 0, 1, 0x2C)

	f, err := decodeBody(mustDef(t, "POPM"), body)
	if err != nil {
		t.Fatal(err)
	}
	if f.text(registry.FieldEmail) != "someone@example.com" {
		t.Errorf("email = %q", f.text(registry.FieldEmail))
	}
	if f.fieldByID(registry.FieldRating).Integer() != 196 {
		t.Errorf("rating = %d", f.fieldByID(registry.FieldRating).Integer())
	}
	if f.fieldByID(registry.FieldCounter).Integer() != 300 {
		t.Errorf("counter = %d, want 300", f.fieldByID(registry.FieldCounter).Integer())
	}
}

func TestDecodeBody_UTF16Comment(t *testing.T) {
	body := []byte{1, 'e', 'n', 'g', 0xFF, 0xFE, 0, 0, 0xFF, 0xFE, 'H', 0, 'i', 0}

	f, err := decodeBody(mustDef(t, "COMM"), body)
	if err != nil {
		t.Fatal(err)
	}
	if f.encoding() != types.EncodingUTF16 {
		t.Errorf("encoding = %d", f.encoding())
	}
	if f.text(registry.FieldDescription) != "" || f.text(registry.FieldText) != "Hi" {
		t.Errorf("COMM = %q/%q", f.text(registry.FieldDescription), f.text(registry.FieldText))
	}
	if f.fieldByID(registry.FieldText).Encoding() != types.EncodingUTF16 {
		t.Error("text field should carry the frame encoding")
	}
}

func TestDecodeBody_Errors(t *testing.T) {
	tests := []struct {
		name string
		id   string
		body []byte
	}{
		{"empty text frame", "TIT2", nil},
		{"bad encoding", "TIT2", []byte{7, 'x'}},
		{"short language", "COMM", []byte{0, 'e'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeBody(mustDef(t, tt.id), tt.body); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeBody_MissingTerminator(t *testing.T) {
	// A TXXX without a separator keeps everything as the description.
	f, err := decodeBody(mustDef(t, "TXXX"), []byte{0, 'a', 'b', 'c'})
	if err != nil {
		t.Fatal(err)
	}
	if f.text(registry.FieldDescription) != "abc" || f.text(registry.FieldText) != "" {
		t.Errorf("TXXX = %q/%q", f.text(registry.FieldDescription), f.text(registry.FieldText))
	}
}

func TestEncodeBody_Language(t *testing.T) {
	f := newFrame(mustDef(t, "USLT"))
	f.fieldByID(registry.FieldText).SetASCII("la la")

	out, err := encodeBody(f)
	if err != nil {
		t.Fatal(err)
	}
	want := append([]byte{0, 'X', 'X', 'X', 0}, "la la"...)
	if !bytes.Equal(out, want) {
		t.Errorf("body = %q, want %q", out, want)
	}

	f.fieldByID(registry.FieldLanguage).SetASCII("de")
	out, _ = encodeBody(f)
	if string(out[1:4]) != "de " {
		t.Errorf("short language padded to %q", out[1:4])
	}
}

func TestEncodeBody_ByteOverflow(t *testing.T) {
	f := newFrame(mustDef(t, "APIC"))
	f.fieldByID(registry.FieldPictureType).SetInteger(300)
	if _, err := encodeBody(f); err == nil {
		t.Error("expected error for picture type over 255")
	}
}

func TestEncodeCounter(t *testing.T) {
	tests := []struct {
		v    int
		want []byte
	}{
		{0, []byte{0, 0, 0, 0}},
		{300, []byte{0, 0, 1, 0x2C}},
		{1 << 32, []byte{1, 0, 0, 0, 0}},
		{-5, []byte{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := encodeCounter(tt.v); !bytes.Equal(got, tt.want) {
			t.Errorf("encodeCounter(%d) = %x, want %x", tt.v, got, tt.want)
		}
	}
}

func TestGenreIndex(t *testing.T) {
	reg := registry.Default()
	tests := []struct {
		in   string
		want int
	}{
		{"(13)", 13},
		{"(17)Rock", 17},
		{"79", 79},
		{"pop", 13},
		{"Synthpop", 147},
		{"Nonexistent Genre", v1NoGenre},
		{"(999)", v1NoGenre},
		{"", v1NoGenre},
	}
	for _, tt := range tests {
		if got := genreIndex(tt.in, reg); got != tt.want {
			t.Errorf("genreIndex(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLeadingInt(t *testing.T) {
	tests := map[string]int{"1/10": 1, "7": 7, " 3 / 4": 3, "": 0, "x": 0}
	for in, want := range tests {
		if got := leadingInt(in); got != want {
			t.Errorf("leadingInt(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestPaddingFor(t *testing.T) {
	tests := map[int]int{0: 2048, 100: 1948, 2048: 2048, 2049: 2047}
	for n, want := range tests {
		if got := paddingFor(n); got != want {
			t.Errorf("paddingFor(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestRenderV1_Empty(t *testing.T) {
	if b := renderV1(nil, registry.Default()); b != nil {
		t.Errorf("expected nil trailer for no frames, got %d bytes", len(b))
	}
}
