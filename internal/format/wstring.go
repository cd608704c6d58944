package format

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/malwarology/versioninfo/internal/buf"
)

// WideString is a decoded szKey or String value.
type WideString struct {
	Raw  []byte // code units without the terminator (alias of the input buffer)
	Text string
}

// ReadWideString reads a null-terminated UTF-16LE run starting at off. The
// read stops at the first 0x0000 code unit or at limit, whichever comes
// first; limit is clamped to len(b).
//
// The returned cursor is two bytes past the terminator. When no terminator is
// found the cursor is limit, never beyond it. A trailing odd byte before limit
// is kept in Raw and makes the run invalid.
func ReadWideString(b []byte, off, limit int) (WideString, int, error) {
	limit = buf.Clamp(limit, 0, len(b))
	if off < 0 || off >= limit {
		return WideString{}, max(off, 0), nil
	}

	cursor := limit
	end := limit
	for i := off; i < limit; i += WordSize {
		if i+WordSize <= limit && b[i] == 0 && b[i+1] == 0 {
			end = i
			cursor = i + WordSize
			break
		}
	}

	raw := b[off:end]
	text, err := decodeUTF16LE(raw)
	if err != nil {
		return WideString{Raw: raw}, cursor, fmt.Errorf("wide string at %#x: %w", off, err)
	}
	return WideString{Raw: raw, Text: text}, cursor, nil
}

// CountPadding counts zero WORDs starting at off. Counting stops at the first
// nonzero WORD, at boundary, or at the end of b. It returns the count and the
// advanced cursor.
func CountPadding(b []byte, off, boundary int) (int, int) {
	boundary = buf.Clamp(boundary, 0, len(b))
	n := 0
	for buf.Fits(off, WordSize, boundary) && buf.IsZeroWord(b, off) {
		n++
		off += WordSize
	}
	return n, off
}

// validUTF16LE reports whether raw is a whole number of code units with every
// surrogate correctly paired.
func validUTF16LE(raw []byte) bool {
	if len(raw)%WordSize != 0 {
		return false
	}
	for i := 0; i < len(raw); i += WordSize {
		u := uint16(raw[i]) | uint16(raw[i+1])<<8
		switch {
		case u >= utf16HighSurrogateStart && u <= utf16HighSurrogateEnd:
			if i+2*WordSize > len(raw) {
				return false
			}
			next := uint16(raw[i+2]) | uint16(raw[i+3])<<8
			if next < utf16LowSurrogateStart || next > utf16LowSurrogateEnd {
				return false
			}
			i += WordSize
		case u >= utf16LowSurrogateStart && u <= utf16LowSurrogateEnd:
			return false
		}
	}
	return true
}

// decodeUTF16LE converts raw UTF-16LE to a Go string. The x/text decoder
// substitutes U+FFFD for malformed input, so the run is validated first to
// keep corruption visible to the caller.
func decodeUTF16LE(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	if !validUTF16LE(raw) {
		return "", ErrInvalidUTF16
	}
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidUTF16, err)
	}
	return string(out), nil
}
