package format

import (
	"fmt"

	"github.com/malwarology/versioninfo/internal/buf"
)

// Header is the decoded common prefix of every version resource record.
type Header struct {
	Start       int // offset of wLength
	Length      uint16
	ValueLength uint16
	Type        uint16
	Key         WideString
	Padding     int // zero WORDs after the key terminator

	// RecordEnd is Start+Length clamped to the enclosing limit. When Length is
	// smaller than HeaderSize it is Start+HeaderSize.
	RecordEnd int
	// Clamped reports that Start+Length ran past the enclosing limit.
	Clamped bool
	// Cursor is the offset just past the key padding.
	Cursor int
}

// HeaderOptions bound a header decode.
type HeaderOptions struct {
	// Limit is the exclusive end of the enclosing region. Zero or a value past
	// the buffer means len(b).
	Limit int
	// BoundValue stops key padding at Start+Length-ValueLength, the first byte
	// of a binary value array. Translation arrays may legitimately begin with
	// zero WORDs.
	BoundValue bool
	// AlignValue stops key padding at the first 32-bit boundary (relative to
	// Start) after the key terminator when wValueLength is nonzero; the value
	// array starts there even if its leading bytes are zero.
	AlignValue bool
}

// ShortRecord reports whether wLength cannot even hold the fixed fields.
func (h Header) ShortRecord() bool {
	return int(h.Length) < HeaderSize
}

// ValueStart returns Start+Length-ValueLength clamped to [Cursor, RecordEnd].
func (h Header) ValueStart() int {
	return buf.Clamp(h.Start+int(h.Length)-int(h.ValueLength), h.Cursor, h.RecordEnd)
}

// PeekFields reads only wLength, wValueLength and wType at off. ok is false
// when the six bytes do not fit before limit.
func PeekFields(b []byte, off, limit int) (length, valueLength, typ uint16, ok bool) {
	limit = buf.Clamp(limit, 0, len(b))
	if !buf.Fits(off, HeaderSize, limit) {
		return 0, 0, 0, false
	}
	length, _ = buf.U16At(b, off+LengthOffset)
	valueLength, _ = buf.U16At(b, off+ValueLengthOffset)
	typ, _ = buf.U16At(b, off+TypeOffset)
	return length, valueLength, typ, true
}

// DecodeHeader decodes the three WORD fields, the key and the key padding of
// the record at off. The key read never passes the record end and padding
// never passes the record end (or the value start with BoundValue).
func DecodeHeader(b []byte, off int, opts HeaderOptions) (Header, error) {
	limit := opts.Limit
	if limit <= 0 || limit > len(b) {
		limit = len(b)
	}

	length, valueLength, typ, ok := PeekFields(b, off, limit)
	if !ok {
		return Header{}, fmt.Errorf("header at %#x: %w (need %d bytes, limit %#x)",
			off, ErrTruncated, HeaderSize, limit)
	}

	h := Header{
		Start:       off,
		Length:      length,
		ValueLength: valueLength,
		Type:        typ,
	}

	declared := max(int(length), HeaderSize)
	end, inside := buf.End(off, declared, limit)
	h.RecordEnd = end
	h.Clamped = !inside

	key, cursor, err := ReadWideString(b, off+KeyOffset, h.RecordEnd)
	h.Key = key
	if err != nil {
		return h, fmt.Errorf("header key: %w", err)
	}

	padBoundary := h.RecordEnd
	switch {
	case opts.BoundValue:
		padBoundary = buf.Clamp(off+int(length)-int(valueLength), cursor, h.RecordEnd)
	case opts.AlignValue && valueLength != 0:
		padBoundary = buf.Clamp(off+Align4(cursor-off), cursor, h.RecordEnd)
	}
	h.Padding, h.Cursor = CountPadding(b, cursor, padBoundary)
	return h, nil
}
