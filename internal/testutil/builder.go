// Package testutil builds VS_VERSIONINFO buffers for tests. The builder lays
// records out the way resource compilers do (key padded to a 32-bit boundary,
// every child starting on a 32-bit boundary, trailing alignment of the last
// child excluded from the parent's wLength) and exposes knobs to corrupt each
// field individually.
package testutil

import (
	"encoding/binary"
	"unicode/utf16"
)

// Record describes one record to encode.
type Record struct {
	Key    string
	KeyRaw []byte // replaces the encoded Key (terminator included) when non-nil
	Type   uint16
	Value  []byte
	// Children are encoded after the value, each on a 32-bit boundary.
	Children []Record

	// ValueLength overrides the computed wValueLength when non-nil.
	ValueLength *uint16
	// Length overrides the computed wLength when non-nil.
	Length *uint16
	// LengthDelta is added to the computed wLength.
	LengthDelta int
	// Trailer is appended after the children and counted in wLength.
	Trailer []byte
}

// U16 returns a pointer to v, for the override fields.
func U16(v uint16) *uint16 { return &v }

// UTF16Z encodes s as UTF-16LE with a terminating NUL.
func UTF16Z(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, 2*len(units)+2)
	for _, u := range units {
		out = binary.LittleEndian.AppendUint16(out, u)
	}
	return append(out, 0, 0)
}

// Encode lays the record out as if it started at absolute offset base.
func (r Record) Encode(base int) []byte {
	out := make([]byte, 6, 64)

	key := r.KeyRaw
	if key == nil {
		key = UTF16Z(r.Key)
	}
	out = append(out, key...)
	out = align(out, base)
	out = append(out, r.Value...)

	for _, c := range r.Children {
		out = align(out, base)
		out = append(out, c.Encode(base+len(out))...)
	}
	out = append(out, r.Trailer...)

	length := len(out) + r.LengthDelta
	if r.Length != nil {
		length = int(*r.Length)
	}
	valueLength := len(r.Value)
	if r.Type == 1 {
		valueLength /= 2
	}
	if r.ValueLength != nil {
		valueLength = int(*r.ValueLength)
	}

	binary.LittleEndian.PutUint16(out[0:], uint16(length))
	binary.LittleEndian.PutUint16(out[2:], uint16(valueLength))
	binary.LittleEndian.PutUint16(out[4:], r.Type)
	return out
}

// Bytes encodes the record at offset zero.
func (r Record) Bytes() []byte { return r.Encode(0) }

func align(b []byte, base int) []byte {
	for (base+len(b))%4 != 0 {
		b = append(b, 0)
	}
	return b
}

// String builds a text String record.
func String(key, value string) Record {
	return Record{Key: key, Type: 1, Value: UTF16Z(value)}
}

// StringTable builds a StringTable keyed by an 8-digit language/code page key.
func StringTable(key string, strings ...Record) Record {
	return Record{Key: key, Type: 1, Children: strings}
}

// StringFileInfo builds the StringFileInfo container.
func StringFileInfo(tables ...Record) Record {
	return Record{Key: "StringFileInfo", Type: 1, Children: tables}
}

// Translation builds the value array of a Var record from (LangID, CodePage)
// pairs.
func Translation(pairs ...[2]uint16) []byte {
	out := make([]byte, 0, 4*len(pairs))
	for _, p := range pairs {
		out = binary.LittleEndian.AppendUint16(out, p[0])
		out = binary.LittleEndian.AppendUint16(out, p[1])
	}
	return out
}

// Var builds a binary Translation record.
func Var(pairs ...[2]uint16) Record {
	return Record{Key: "Translation", Type: 0, Value: Translation(pairs...)}
}

// VarFileInfo builds the VarFileInfo container.
func VarFileInfo(vars ...Record) Record {
	return Record{Key: "VarFileInfo", Type: 1, Children: vars}
}

// FixedInfo holds the VS_FIXEDFILEINFO fields in on-disk order.
type FixedInfo struct {
	Signature         uint32
	StrucVersionMinor uint16
	StrucVersionMajor uint16
	FileVersionMS     uint32
	FileVersionLS     uint32
	ProductVersionMS  uint32
	ProductVersionLS  uint32
	FileFlagsMask     uint32
	FileFlags         uint32
	FileOS            uint32
	FileType          uint32
	FileSubtype       uint32
	FileDateMS        uint32
	FileDateLS        uint32
}

// Bytes encodes the 52-byte block.
func (f FixedInfo) Bytes() []byte {
	out := make([]byte, 0, 52)
	out = binary.LittleEndian.AppendUint32(out, f.Signature)
	out = binary.LittleEndian.AppendUint16(out, f.StrucVersionMinor)
	out = binary.LittleEndian.AppendUint16(out, f.StrucVersionMajor)
	for _, v := range []uint32{
		f.FileVersionMS, f.FileVersionLS, f.ProductVersionMS, f.ProductVersionLS,
		f.FileFlagsMask, f.FileFlags, f.FileOS, f.FileType, f.FileSubtype,
		f.FileDateMS, f.FileDateLS,
	} {
		out = binary.LittleEndian.AppendUint32(out, v)
	}
	return out
}

// CSRSSFixedInfo returns the fixed info block of the csrss.exe fixture.
func CSRSSFixedInfo() FixedInfo {
	return FixedInfo{
		Signature:         0xFEEF04BD,
		StrucVersionMajor: 1,
		FileVersionMS:     393217,
		FileVersionLS:     498089985,
		ProductVersionMS:  393217,
		ProductVersionLS:  498089985,
		FileFlagsMask:     0x3F,
		FileOS:            0x40004,
		FileType:          1,
	}
}

// Root builds a VS_VERSION_INFO record. A nil fixed info gives wValueLength 0.
func Root(fixed *FixedInfo, children ...Record) Record {
	r := Record{Key: "VS_VERSION_INFO", Type: 0, Children: children}
	if fixed != nil {
		r.Value = fixed.Bytes()
	}
	return r
}

// CSRSS rebuilds the csrss.exe fixture from its parts.
func CSRSS() Record {
	fixed := CSRSSFixedInfo()
	return Root(&fixed,
		StringFileInfo(
			StringTable("040904B0",
				String("CompanyName", "Microsoft Corporation"),
				String("FileDescription", "Client Server Runtime Process"),
				String("FileVersion", "6.1.7600.16385 (win7_rtm.090713-1255)"),
				String("InternalName", "CSRSS.Exe"),
				String("LegalCopyright", "© Microsoft Corporation. All rights reserved."),
				String("OriginalFilename", "CSRSS.Exe"),
				String("ProductName", "Microsoft® Windows® Operating System"),
				String("ProductVersion", "6.1.7600.16385"),
			),
		),
		VarFileInfo(Var([2]uint16{0x0409, 1200})),
	)
}
