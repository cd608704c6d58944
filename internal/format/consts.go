// Package format houses the low-level decoders for the VS_VERSIONINFO
// resource layout. Everything here works on an immutable byte slice plus
// explicit offsets and limits; it never allocates a tree and never decides
// what a record means. Higher-level packages own classification and the
// public node model.
package format

// Record header layout shared by VS_VERSIONINFO, StringFileInfo, StringTable,
// String, VarFileInfo and Var (all offsets relative to the record start):
//
//	Offset  Size  Field
//	0x00    2     wLength       total record length in bytes, excluding trailing alignment
//	0x02    2     wValueLength  value length (WCHARs for text, bytes for binary)
//	0x04    2     wType         1 = text value, 0 = binary value
//	0x06    ...   szKey         null-terminated UTF-16LE key
//	...     ...   Padding       zero WORDs up to the next 32-bit boundary
const (
	LengthOffset      = 0x00
	ValueLengthOffset = 0x02
	TypeOffset        = 0x04
	KeyOffset         = 0x06

	// HeaderSize is the size of the three fixed WORD fields.
	HeaderSize = KeyOffset

	// WordSize is the size of one UTF-16 code unit and of one padding WORD.
	WordSize = 2

	// DwordSize is the alignment of every record and of every value array.
	DwordSize = 4
)

// Well-known key names.
const (
	KeyVersionInfo    = "VS_VERSION_INFO"
	KeyStringFileInfo = "StringFileInfo"
	KeyVarFileInfo    = "VarFileInfo"
	KeyTranslation    = "Translation"
)

// VS_FIXEDFILEINFO layout (little-endian).
const (
	FFISignatureOffset        = 0x00
	FFIStrucVersionMinor      = 0x04 // low WORD of dwStrucVersion
	FFIStrucVersionMajor      = 0x06 // high WORD of dwStrucVersion
	FFIFileVersionMSOffset    = 0x08
	FFIFileVersionLSOffset    = 0x0C
	FFIProductVersionMSOffset = 0x10
	FFIProductVersionLSOffset = 0x14
	FFIFileFlagsMaskOffset    = 0x18
	FFIFileFlagsOffset        = 0x1C
	FFIFileOSOffset           = 0x20
	FFIFileTypeOffset         = 0x24
	FFIFileSubtypeOffset      = 0x28
	FFIFileDateMSOffset       = 0x2C
	FFIFileDateLSOffset       = 0x30

	// FixedFileInfoSize is the only wValueLength for which the root carries a
	// VS_FIXEDFILEINFO block.
	FixedFileInfoSize = 0x34

	// FixedFileInfoSignature is the expected dwSignature value.
	FixedFileInfoSignature = 0xFEEF04BD
)

const (
	// LangCodeSize is the size of one Translation entry (LangID + CodePage).
	LangCodeSize = 4

	// LanguageKeyLen is the number of hex digits in a StringTable key.
	LanguageKeyLen = 8
)

// UTF-16 surrogate ranges.
const (
	utf16HighSurrogateStart = 0xD800
	utf16HighSurrogateEnd   = 0xDBFF
	utf16LowSurrogateStart  = 0xDC00
	utf16LowSurrogateEnd    = 0xDFFF
)
