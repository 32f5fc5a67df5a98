package binary

import (
	"encoding/binary"
	"fmt"
	"io"
)

// SafeWriter wraps io.Writer with position tracking.
type SafeWriter struct {
	w      io.Writer
	offset int64
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{
		w:      w,
		offset: 0,
	}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	return err
}

// WriteString writes a string as bytes to the underlying writer.
func (sw *SafeWriter) WriteString(s string) error {
	return sw.WriteBytes([]byte(s))
}

// WriteZeros writes n zero bytes (ID3v2 padding).
func (sw *SafeWriter) WriteZeros(n int) error {
	if n <= 0 {
		return nil
	}
	return sw.WriteBytes(make([]byte, n))
}

// WriteSynchsafe writes v as a 4-byte synchsafe integer.
func (sw *SafeWriter) WriteSynchsafe(v uint32) error {
	if v > MaxSynchsafe {
		return fmt.Errorf("synchsafe overflow: %d exceeds %d", v, MaxSynchsafe)
	}
	return sw.WriteBytes(EncodeSynchsafe(v))
}

// Write writes a value of type T in big-endian byte order.
func Write[T uint8 | uint16 | uint32 | uint64](sw *SafeWriter, val T) error {
	var buf []byte

	var zero T
	switch any(zero).(type) {
	case uint8:
		buf = []byte{byte(val)}
	case uint16:
		buf = make([]byte, 2)
		binary.BigEndian.PutUint16(buf, uint16(val))
	case uint32:
		buf = make([]byte, 4)
		binary.BigEndian.PutUint32(buf, uint32(val))
	case uint64:
		buf = make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(val))
	}

	return sw.WriteBytes(buf)
}
