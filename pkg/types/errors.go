package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies decode failures so callers can branch on intent rather
// than text.
type ErrKind int

const (
	ErrKindEmptyInput      ErrKind = iota // zero-length buffer
	ErrKindTruncatedInput                 // start offset or root wLength past the buffer
	ErrKindBadHeader                      // header fields or key cannot be decoded
	ErrKindCorruptedString                // String record shorter/longer than its contents
	ErrKindZeroKey                        // root key has no code units
	ErrKindLimit                          // record cap exceeded
)

var errKindNames = [...]string{
	ErrKindEmptyInput:      "EmptyInputError",
	ErrKindTruncatedInput:  "TruncatedInputError",
	ErrKindBadHeader:       "BadHeaderError",
	ErrKindCorruptedString: "CorruptedStringError",
	ErrKindZeroKey:         "ZeroKeyError",
	ErrKindLimit:           "LimitExceededError",
}

func (k ErrKind) String() string {
	if k >= 0 && int(k) < len(errKindNames) {
		return errKindNames[k]
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// Error is a typed decode error. Offset is the byte offset (relative to the
// start of the input buffer) where the problem was detected.
type Error struct {
	Kind   ErrKind
	Offset int
	Msg    string
	Err    error // optional underlying cause
}

// NewError builds an Error of the given kind.
func NewError(kind ErrKind, offset int, msg string, cause error) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: msg, Err: cause}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := fmt.Sprintf("%s at offset %#x: %s", e.Kind, e.Offset, e.Msg)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrBadHeader)
// works regardless of offset and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is.
var (
	ErrEmptyInput      = &Error{Kind: ErrKindEmptyInput, Msg: "empty input"}
	ErrTruncatedInput  = &Error{Kind: ErrKindTruncatedInput, Msg: "input shorter than declared length"}
	ErrBadHeader       = &Error{Kind: ErrKindBadHeader, Msg: "malformed record header"}
	ErrCorruptedString = &Error{Kind: ErrKindCorruptedString, Msg: "string record does not match its length"}
	ErrZeroKey         = &Error{Kind: ErrKindZeroKey, Msg: "root key is empty"}
	ErrLimitExceeded   = &Error{Kind: ErrKindLimit, Msg: "record limit exceeded"}
)
