package types

// FieldKind defines how a field value is stored and serialized.
type FieldKind int

const (
	// KindInteger fields hold an int (encoding byte, picture type, counter).
	KindInteger FieldKind = iota
	// KindBinary fields hold raw bytes (picture data, private data).
	KindBinary
	// KindText fields hold a string; encodings only apply on the wire.
	KindText
)

// String returns the lower-case kind name.
func (k FieldKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindBinary:
		return "binary"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Text encodings selected by the textenc field.
const (
	EncodingISO88591 = 0 // ISO-8859-1
	EncodingUTF16    = 1 // UTF-16 with byte-order mark
	EncodingUTF16BE  = 2 // UTF-16BE without BOM (ID3v2.4)
	EncodingUTF8     = 3 // UTF-8 (ID3v2.4)
)
