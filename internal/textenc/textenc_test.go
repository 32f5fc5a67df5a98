package textenc

import (
	"bytes"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		enc  int
		want string
	}{
		{"latin1 ascii", []byte("Shy Boy"), 0, "Shy Boy"},
		{"latin1 high byte", []byte{'C', 0xE6}, 0, "Cæ"},
		{"utf16 LE with BOM", []byte{0xFF, 0xFE, 0x60, 0x4F, 0x7D, 0x59}, 1, "你好"},
		{"utf16 BE with BOM", []byte{0xFE, 0xFF, 0x4F, 0x60, 0x59, 0x7D}, 1, "你好"},
		{"utf16 without BOM defaults to LE", []byte{0x60, 0x4F, 0x7D, 0x59}, 1, "你好"},
		{"utf16 above 127 with BOM", []byte{0xFF, 0xFE, 0xE6, 0x00, 0x43, 0x00}, 1, "æC"},
		{"utf16 odd length trimmed", []byte{0xFF, 0xFE, 0x41, 0x00, 0x42}, 1, "A"},
		{"utf16 BOM only", []byte{0xFF, 0xFE}, 1, ""},
		{"utf16BE", []byte{0x4F, 0x60, 0x59, 0x7D}, 2, "你好"},
		{"utf8", []byte("你好"), 3, "你好"},
		{"unknown encoding as latin1", []byte("abc"), 9, "abc"},
		{"empty", nil, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.data, tt.enc); got != tt.want {
				t.Errorf("Decode(%x, %d) = %q, want %q", tt.data, tt.enc, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		s    string
		enc  int
		want []byte
	}{
		{"latin1", "Cæ", 0, []byte{'C', 0xE6}},
		{"utf16 writes LE BOM", "你好", 1, []byte{0xFF, 0xFE, 0x60, 0x4F, 0x7D, 0x59}},
		{"utf16BE has no BOM", "你好", 2, []byte{0x4F, 0x60, 0x59, 0x7D}},
		{"utf8 passthrough", "你好", 3, []byte("你好")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.s, tt.enc)
			if err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode(%q, %d) = %x, want %x", tt.s, tt.enc, got, tt.want)
			}
		})
	}

	if _, err := Encode("x", 7); err == nil {
		t.Error("Encode with unknown encoding should fail")
	}
}

func TestEncode_Latin1ReplacesUnsupported(t *testing.T) {
	got, err := Encode("a你", 0)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if len(got) != 2 || got[0] != 'a' {
		t.Errorf("Encode = %x, want 'a' plus one replacement byte", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, enc := range []int{0, 1, 2, 3} {
		for _, s := range []string{"", "Dummy Title", "Ærø"} {
			b, err := Encode(s, enc)
			if err != nil {
				t.Fatalf("Encode(%q, %d): %v", s, enc, err)
			}
			if got := Decode(b, enc); got != s {
				t.Errorf("round trip enc %d: got %q, want %q", enc, got, s)
			}
		}
	}
}

func TestIndexTerminator(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		enc  int
		want int
	}{
		{"latin1", []byte{'a', 'b', 0, 'c'}, 0, 2},
		{"latin1 none", []byte("abc"), 0, -1},
		{"utf16 aligned", []byte{'a', 0, 0, 0, 'b', 0}, 1, 2},
		{"utf16 skips unaligned zeros", []byte{0x00, 0x61, 0x00, 0x62, 0, 0}, 2, 4},
		{"utf8", []byte{'x', 0}, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexTerminator(tt.data, tt.enc); got != tt.want {
				t.Errorf("IndexTerminator = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTrimTerminators(t *testing.T) {
	if got := TrimTerminators([]byte{'a', 0, 0}, 0); !bytes.Equal(got, []byte{'a'}) {
		t.Errorf("latin1 trim = %v", got)
	}
	if got := TrimTerminators([]byte{'a', 0, 0, 0}, 1); !bytes.Equal(got, []byte{'a', 0}) {
		t.Errorf("utf16 trim = %v", got)
	}
}

func TestValidAndWide(t *testing.T) {
	for enc := 0; enc <= 3; enc++ {
		if !Valid(enc) {
			t.Errorf("Valid(%d) = false", enc)
		}
	}
	if Valid(4) || Valid(-1) {
		t.Error("Valid should reject out-of-range encodings")
	}
	if !Wide(1) || !Wide(2) || Wide(0) || Wide(3) {
		t.Error("Wide mismatch")
	}
}
