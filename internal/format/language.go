package format

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/malwarology/versioninfo/internal/buf"
)

// LangCode is a language identifier and code page pair.
type LangCode struct {
	LangID   uint16
	CodePage uint16
}

// ParseLanguageKey parses the 8-hex-digit StringTable key ("040904B0"). The
// digits are read big-endian: the first four are the language, the last four
// the code page.
func ParseLanguageKey(key string) (LangCode, error) {
	if len(key) != LanguageKeyLen {
		return LangCode{}, fmt.Errorf("%w: %q has %d characters", ErrNotLanguageKey, key, len(key))
	}
	raw, err := hex.DecodeString(key)
	if err != nil {
		return LangCode{}, fmt.Errorf("%w: %q: %w", ErrNotLanguageKey, key, err)
	}
	return LangCode{
		LangID:   binary.BigEndian.Uint16(raw[0:2]),
		CodePage: binary.BigEndian.Uint16(raw[2:4]),
	}, nil
}

// DecodeLangCode reads one Translation DWORD (two little-endian WORDs) at off.
func DecodeLangCode(b []byte, off, limit int) (LangCode, int, error) {
	limit = buf.Clamp(limit, 0, len(b))
	if !buf.Fits(off, LangCodeSize, limit) {
		return LangCode{}, off, fmt.Errorf("translation at %#x: %w", off, ErrTruncated)
	}
	id, _ := buf.U16At(b, off)
	cp, _ := buf.U16At(b, off+2)
	return LangCode{LangID: id, CodePage: cp}, off + LangCodeSize, nil
}
