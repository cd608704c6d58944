package format

import (
	"fmt"

	"github.com/malwarology/versioninfo/internal/buf"
)

// FixedFileInfo is the raw VS_FIXEDFILEINFO block.
type FixedFileInfo struct {
	SignatureRaw      []byte
	Signature         uint32
	StrucVersionMajor uint16
	StrucVersionMinor uint16
	FileVersionMS     uint32
	FileVersionLS     uint32
	ProductVersionMS  uint32
	ProductVersionLS  uint32
	FileFlagsMaskRaw  []byte
	FileFlagsMask     uint32
	FileFlags         uint32
	FileOS            uint32
	FileType          uint32
	FileSubtype       uint32
	FileDateMS        uint32
	FileDateLS        uint32
}

// DecodeFixedFileInfo decodes the fixed 52-byte block at off. The block must
// end at or before limit.
func DecodeFixedFileInfo(b []byte, off, limit int) (FixedFileInfo, int, error) {
	limit = buf.Clamp(limit, 0, len(b))
	if !buf.Fits(off, FixedFileInfoSize, limit) {
		return FixedFileInfo{}, off, fmt.Errorf("fixed file info at %#x: %w (need %d bytes, limit %#x)",
			off, ErrTruncated, FixedFileInfoSize, limit)
	}
	p := b[off : off+FixedFileInfoSize]

	ffi := FixedFileInfo{
		SignatureRaw:      p[FFISignatureOffset : FFISignatureOffset+4],
		Signature:         buf.U32LE(p[FFISignatureOffset:]),
		StrucVersionMinor: buf.U16LE(p[FFIStrucVersionMinor:]),
		StrucVersionMajor: buf.U16LE(p[FFIStrucVersionMajor:]),
		FileVersionMS:     buf.U32LE(p[FFIFileVersionMSOffset:]),
		FileVersionLS:     buf.U32LE(p[FFIFileVersionLSOffset:]),
		ProductVersionMS:  buf.U32LE(p[FFIProductVersionMSOffset:]),
		ProductVersionLS:  buf.U32LE(p[FFIProductVersionLSOffset:]),
		FileFlagsMaskRaw:  p[FFIFileFlagsMaskOffset : FFIFileFlagsMaskOffset+4],
		FileFlagsMask:     buf.U32LE(p[FFIFileFlagsMaskOffset:]),
		FileFlags:         buf.U32LE(p[FFIFileFlagsOffset:]),
		FileOS:            buf.U32LE(p[FFIFileOSOffset:]),
		FileType:          buf.U32LE(p[FFIFileTypeOffset:]),
		FileSubtype:       buf.U32LE(p[FFIFileSubtypeOffset:]),
		FileDateMS:        buf.U32LE(p[FFIFileDateMSOffset:]),
		FileDateLS:        buf.U32LE(p[FFIFileDateLSOffset:]),
	}
	return ffi, off + FixedFileInfoSize, nil
}
