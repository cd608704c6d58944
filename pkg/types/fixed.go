package types

import (
	"fmt"
	"strings"
)

// FixedFileInfoSignature is the dwSignature of a valid VS_FIXEDFILEINFO.
const FixedFileInfoSignature = 0xFEEF04BD

// FixedFileInfo is the decoded VS_FIXEDFILEINFO block. Fields are reported
// as found; nothing is validated.
type FixedFileInfo struct {
	Signature        Dword        `json:"dwSignature"`
	StrucVersion     StrucVersion `json:"dwStrucVersion"`
	FileVersionMS    uint32       `json:"dwFileVersionMS"`
	FileVersionLS    uint32       `json:"dwFileVersionLS"`
	ProductVersionMS uint32       `json:"dwProductVersionMS"`
	ProductVersionLS uint32       `json:"dwProductVersionLS"`
	FileFlagsMask    Dword        `json:"dwFileFlagsMask"`
	FileFlags        Dword        `json:"dwFileFlags"`
	FileOS           Dword        `json:"dwFileOS"`
	FileType         Dword        `json:"dwFileType"`
	FileSubtype      Dword        `json:"dwFileSubtype"`
	FileDateMS       uint32       `json:"dwFileDateMS"`
	FileDateLS       uint32       `json:"dwFileDateLS"`
}

// StrucVersion is dwStrucVersion split into its halves.
type StrucVersion struct {
	Major uint16 `json:"major"`
	Minor uint16 `json:"minor"`
}

// Dword is a 32-bit field in several renderings. Bytes is kept only for the
// fields whose raw form matters (signature and flags mask).
type Dword struct {
	Bytes       []byte   `json:"Bytes,omitempty"`
	Decimal     uint32   `json:"Decimal"`
	Hexadecimal string   `json:"Hexadecimal"`
	Symbols     []string `json:"Symbols,omitempty"`
}

// NewDword renders v. raw and symbols may be nil.
func NewDword(v uint32, raw []byte, symbols []string) Dword {
	return Dword{Bytes: raw, Decimal: v, Hexadecimal: hex32(v), Symbols: symbols}
}

// SignatureValid reports whether dwSignature is 0xFEEF04BD.
func (f FixedFileInfo) SignatureValid() bool {
	return f.Signature.Decimal == FixedFileInfoSignature
}

// FileVersion renders dwFileVersionMS/LS as "a.b.c.d".
func (f FixedFileInfo) FileVersion() string {
	return versionQuad(f.FileVersionMS, f.FileVersionLS)
}

// ProductVersion renders dwProductVersionMS/LS as "a.b.c.d".
func (f FixedFileInfo) ProductVersion() string {
	return versionQuad(f.ProductVersionMS, f.ProductVersionLS)
}

func versionQuad(ms, ls uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", ms>>16, ms&0xFFFF, ls>>16, ls&0xFFFF)
}

// -----------------------------------------------------------------------------
// Symbolic names (winver.h / verrsrc.h)
// -----------------------------------------------------------------------------

const (
	VS_FF_DEBUG        = 0x00000001
	VS_FF_PRERELEASE   = 0x00000002
	VS_FF_PATCHED      = 0x00000004
	VS_FF_PRIVATEBUILD = 0x00000008
	VS_FF_INFOINFERRED = 0x00000010
	VS_FF_SPECIALBUILD = 0x00000020
)

const (
	VOS_UNKNOWN       = 0x00000000
	VOS_DOS           = 0x00010000
	VOS_OS216         = 0x00020000
	VOS_OS232         = 0x00030000
	VOS_NT            = 0x00040000
	VOS_WINCE         = 0x00050000
	VOS__BASE         = 0x00000000
	VOS__WINDOWS16    = 0x00000001
	VOS__PM16         = 0x00000002
	VOS__PM32         = 0x00000003
	VOS__WINDOWS32    = 0x00000004
	VOS_DOS_WINDOWS16 = 0x00010001
	VOS_DOS_WINDOWS32 = 0x00010004
	VOS_OS216_PM16    = 0x00020002
	VOS_OS232_PM32    = 0x00030003
	VOS_NT_WINDOWS32  = 0x00040004
)

const (
	VFT_UNKNOWN    = 0x00000000
	VFT_APP        = 0x00000001
	VFT_DLL        = 0x00000002
	VFT_DRV        = 0x00000003
	VFT_FONT       = 0x00000004
	VFT_VXD        = 0x00000005
	VFT_STATIC_LIB = 0x00000007
)

const (
	VFT2_UNKNOWN               = 0x00000000
	VFT2_DRV_PRINTER           = 0x00000001
	VFT2_DRV_KEYBOARD          = 0x00000002
	VFT2_DRV_LANGUAGE          = 0x00000003
	VFT2_DRV_DISPLAY           = 0x00000004
	VFT2_DRV_MOUSE             = 0x00000005
	VFT2_DRV_NETWORK           = 0x00000006
	VFT2_DRV_SYSTEM            = 0x00000007
	VFT2_DRV_INSTALLABLE       = 0x00000008
	VFT2_DRV_SOUND             = 0x00000009
	VFT2_DRV_COMM              = 0x0000000A
	VFT2_DRV_VERSIONED_PRINTER = 0x0000000C
	VFT2_FONT_RASTER           = 0x00000001
	VFT2_FONT_VECTOR           = 0x00000002
	VFT2_FONT_TRUETYPE         = 0x00000003
)

type symbol struct {
	value uint32
	name  string
}

var fileFlagNames = []symbol{
	{VS_FF_DEBUG, "VS_FF_DEBUG"},
	{VS_FF_PRERELEASE, "VS_FF_PRERELEASE"},
	{VS_FF_PATCHED, "VS_FF_PATCHED"},
	{VS_FF_PRIVATEBUILD, "VS_FF_PRIVATEBUILD"},
	{VS_FF_INFOINFERRED, "VS_FF_INFOINFERRED"},
	{VS_FF_SPECIALBUILD, "VS_FF_SPECIALBUILD"},
}

var osHighNames = map[uint32]string{
	VOS_DOS:   "VOS_DOS",
	VOS_OS216: "VOS_OS216",
	VOS_OS232: "VOS_OS232",
	VOS_NT:    "VOS_NT",
	VOS_WINCE: "VOS_WINCE",
}

var osLowNames = map[uint32]string{
	VOS__WINDOWS16: "VOS__WINDOWS16",
	VOS__PM16:      "VOS__PM16",
	VOS__PM32:      "VOS__PM32",
	VOS__WINDOWS32: "VOS__WINDOWS32",
}

var osComboNames = map[uint32]string{
	VOS_DOS_WINDOWS16: "VOS_DOS_WINDOWS16",
	VOS_DOS_WINDOWS32: "VOS_DOS_WINDOWS32",
	VOS_OS216_PM16:    "VOS_OS216_PM16",
	VOS_OS232_PM32:    "VOS_OS232_PM32",
	VOS_NT_WINDOWS32:  "VOS_NT_WINDOWS32",
}

var fileTypeNames = map[uint32]string{
	VFT_UNKNOWN:    "VFT_UNKNOWN",
	VFT_APP:        "VFT_APP",
	VFT_DLL:        "VFT_DLL",
	VFT_DRV:        "VFT_DRV",
	VFT_FONT:       "VFT_FONT",
	VFT_VXD:        "VFT_VXD",
	VFT_STATIC_LIB: "VFT_STATIC_LIB",
}

var driverSubtypeNames = map[uint32]string{
	VFT2_UNKNOWN:               "VFT2_UNKNOWN",
	VFT2_DRV_PRINTER:           "VFT2_DRV_PRINTER",
	VFT2_DRV_KEYBOARD:          "VFT2_DRV_KEYBOARD",
	VFT2_DRV_LANGUAGE:          "VFT2_DRV_LANGUAGE",
	VFT2_DRV_DISPLAY:           "VFT2_DRV_DISPLAY",
	VFT2_DRV_MOUSE:             "VFT2_DRV_MOUSE",
	VFT2_DRV_NETWORK:           "VFT2_DRV_NETWORK",
	VFT2_DRV_SYSTEM:            "VFT2_DRV_SYSTEM",
	VFT2_DRV_INSTALLABLE:       "VFT2_DRV_INSTALLABLE",
	VFT2_DRV_SOUND:             "VFT2_DRV_SOUND",
	VFT2_DRV_COMM:              "VFT2_DRV_COMM",
	VFT2_DRV_VERSIONED_PRINTER: "VFT2_DRV_VERSIONED_PRINTER",
}

var fontSubtypeNames = map[uint32]string{
	VFT2_UNKNOWN:       "VFT2_UNKNOWN",
	VFT2_FONT_RASTER:   "VFT2_FONT_RASTER",
	VFT2_FONT_VECTOR:   "VFT2_FONT_VECTOR",
	VFT2_FONT_TRUETYPE: "VFT2_FONT_TRUETYPE",
}

// FileFlagNames lists the VS_FF_* bits set in v, lowest first. Unknown bits
// are reported as one hexadecimal entry.
func FileFlagNames(v uint32) []string {
	var out []string
	rest := v
	for _, s := range fileFlagNames {
		if v&s.value != 0 {
			out = append(out, s.name)
			rest &^= s.value
		}
	}
	if rest != 0 {
		out = append(out, hex32(rest))
	}
	return out
}

// FileOSNames names dwFileOS. Combined values that have no single constant
// are split into their high and low parts.
func FileOSNames(v uint32) []string {
	if v == VOS_UNKNOWN {
		return []string{"VOS_UNKNOWN"}
	}
	if name, ok := osComboNames[v]; ok {
		return []string{name}
	}
	var out []string
	if hi := v & 0xFFFF0000; hi != 0 {
		if name, ok := osHighNames[hi]; ok {
			out = append(out, name)
		} else {
			out = append(out, hex32(hi))
		}
	}
	if lo := v & 0x0000FFFF; lo != 0 {
		if name, ok := osLowNames[lo]; ok {
			out = append(out, name)
		} else {
			out = append(out, hex32(lo))
		}
	}
	return out
}

// FileTypeNames names dwFileType, or returns nil for an unknown value.
func FileTypeNames(v uint32) []string {
	if name, ok := fileTypeNames[v]; ok {
		return []string{name}
	}
	return nil
}

// FileSubtypeNames names dwFileSubtype. Only driver and font files define
// subtypes; a VXD subtype is a device identifier and has no name.
func FileSubtypeNames(fileType, v uint32) []string {
	var table map[uint32]string
	switch fileType {
	case VFT_DRV:
		table = driverSubtypeNames
	case VFT_FONT:
		table = fontSubtypeNames
	default:
		return nil
	}
	if name, ok := table[v]; ok {
		return []string{name}
	}
	return nil
}

// FlagsString joins the symbolic names of a Dword, or returns its
// hexadecimal form when it has none.
func (d Dword) FlagsString() string {
	if len(d.Symbols) == 0 {
		return d.Hexadecimal
	}
	return strings.Join(d.Symbols, "|")
}
