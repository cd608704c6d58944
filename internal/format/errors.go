package format

import "errors"

var (
	// ErrTruncated indicates the region lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrInvalidUTF16 indicates a wide string run is not valid UTF-16LE
	// (odd length or unpaired surrogate).
	ErrInvalidUTF16 = errors.New("format: invalid UTF-16")
	// ErrNotLanguageKey indicates a key is not an 8-digit hex language/code page pair.
	ErrNotLanguageKey = errors.New("format: not a language key")
)
