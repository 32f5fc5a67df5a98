package binary

// DecodeSynchsafe decodes a synchsafe integer (7 bits per byte).
// ID3v2 uses 7-bit encoding where bit 7 is always 0.
func DecodeSynchsafe(b []byte) uint32 {
	if len(b) != 4 {
		return 0
	}
	return uint32(b[0]&0x7F)<<21 |
		uint32(b[1]&0x7F)<<14 |
		uint32(b[2]&0x7F)<<7 |
		uint32(b[3]&0x7F)
}

// EncodeSynchsafe encodes v (at most 28 bits) as a 4-byte synchsafe integer.
func EncodeSynchsafe(v uint32) []byte {
	return []byte{
		byte(v>>21) & 0x7F,
		byte(v>>14) & 0x7F,
		byte(v>>7) & 0x7F,
		byte(v) & 0x7F,
	}
}

// MaxSynchsafe is the largest value a 4-byte synchsafe integer can hold.
const MaxSynchsafe = 1<<28 - 1
