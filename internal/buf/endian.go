// Package buf contains bounds-aware helpers for reading fixed-width values
// out of an immutable byte buffer at arbitrary offsets.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U16At reads a little-endian uint16 at off. ok is false when the two bytes
// are not inside b.
func U16At(b []byte, off int) (v uint16, ok bool) {
	s, ok := Slice(b, off, 2)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(s), true
}

// U32At reads a little-endian uint32 at off. ok is false when the four bytes
// are not inside b.
func U32At(b []byte, off int) (v uint32, ok bool) {
	s, ok := Slice(b, off, 4)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint32(s), true
}

// IsZeroWord reports whether the WORD at off exists and is 0x0000.
func IsZeroWord(b []byte, off int) bool {
	v, ok := U16At(b, off)
	return ok && v == 0
}
