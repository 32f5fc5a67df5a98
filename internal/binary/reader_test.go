package binary

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// mockReader implements io.ReaderAt for testing.
type mockReader struct {
	data []byte
}

func (m *mockReader) ReadAt(p []byte, off int64) (n int, err error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func TestSafeReader_ReadAt_Success(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.mp3")

	buf := make([]byte, 2)
	if err := sr.ReadAt(buf, 0, "test read"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf[0] != 0x01 || buf[1] != 0x02 {
		t.Errorf("expected [0x01, 0x02], got [0x%02x, 0x%02x]", buf[0], buf[1])
	}
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.mp3")

	tests := []struct {
		name string
		off  int64
		n    int
		want string
	}{
		{"offset past end", 10, 2, "out of bounds"},
		{"negative offset", -1, 1, "out of bounds"},
		{"read past end", 3, 2, "would exceed file size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tt.n), tt.off, "frame header")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			msg := err.Error()
			for _, want := range []string{"test.mp3", "frame header", tt.want} {
				if !strings.Contains(msg, want) {
					t.Errorf("error %q should contain %q", msg, want)
				}
			}
		})
	}
}

func TestSafeReader_Slice(t *testing.T) {
	data := []byte("ID3\x03\x00")
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "x.mp3")

	got, err := sr.Slice(0, 3, "magic")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "ID3" {
		t.Errorf("Slice = %q, want ID3", got)
	}

	empty, err := sr.Slice(100, 0, "nothing")
	if err != nil || len(empty) != 0 {
		t.Errorf("zero-length Slice = %v, %v; want empty, nil", empty, err)
	}
}

func TestRead_BigEndian(t *testing.T) {
	data := []byte{0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC, 0xDE, 0xF0}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "x")

	if v, err := Read[uint8](sr, 0, "u8"); err != nil || v != 0x12 {
		t.Errorf("Read[uint8] = %#x, %v", v, err)
	}
	if v, err := Read[uint16](sr, 0, "u16"); err != nil || v != 0x1234 {
		t.Errorf("Read[uint16] = %#x, %v", v, err)
	}
	if v, err := Read[uint32](sr, 0, "u32"); err != nil || v != 0x12345678 {
		t.Errorf("Read[uint32] = %#x, %v", v, err)
	}
	if v, err := Read[uint64](sr, 0, "u64"); err != nil || v != 0x123456789ABCDEF0 {
		t.Errorf("Read[uint64] = %#x, %v", v, err)
	}
	if _, err := Read[uint32](sr, 6, "u32 at end"); err == nil {
		t.Error("expected error reading past end")
	}
}

func TestReadSynchsafe(t *testing.T) {
	data := []byte{0x00, 0x00, 0x02, 0x01}
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "x")

	v, err := ReadSynchsafe(sr, 0, "size")
	if err != nil {
		t.Fatal(err)
	}
	if v != 257 {
		t.Errorf("ReadSynchsafe = %d, want 257", v)
	}
}

func TestSynchsafe(t *testing.T) {
	tests := []struct {
		input    []byte
		expected uint32
	}{
		{[]byte{0x00, 0x00, 0x00, 0x00}, 0},
		{[]byte{0x00, 0x00, 0x00, 0x7F}, 127},
		{[]byte{0x00, 0x00, 0x01, 0x00}, 128},
		{[]byte{0x00, 0x00, 0x02, 0x00}, 256},
		{[]byte{0x7F, 0x7F, 0x7F, 0x7F}, 0x0FFFFFFF},
	}

	for _, tt := range tests {
		if got := DecodeSynchsafe(tt.input); got != tt.expected {
			t.Errorf("DecodeSynchsafe(%v) = %d, expected %d", tt.input, got, tt.expected)
		}
		if got := EncodeSynchsafe(tt.expected); !bytes.Equal(got, tt.input) {
			t.Errorf("EncodeSynchsafe(%d) = %v, expected %v", tt.expected, got, tt.input)
		}
	}

	if got := DecodeSynchsafe([]byte{0x01}); got != 0 {
		t.Errorf("DecodeSynchsafe(short) = %d, want 0", got)
	}
}
