package versioninfo

import (
	"fmt"

	"github.com/malwarology/versioninfo/internal/buf"
	"github.com/malwarology/versioninfo/internal/format"
	"github.com/malwarology/versioninfo/pkg/types"
)

// Decode decodes the VS_VERSIONINFO record starting at offset in data. It
// returns the root and the offset just past it.
func Decode(data []byte, offset int) (*types.RootInfo, int, error) {
	return DecodeWithOptions(data, offset, DefaultOptions())
}

// DecodeWithOptions is Decode with explicit options. Diagnostics collected
// through opts are discarded; use Inspect to read them.
func DecodeWithOptions(data []byte, offset int, opts Options) (*types.RootInfo, int, error) {
	d := newDecoder(data, opts)
	return d.decodeRoot(offset)
}

// Inspect decodes like DecodeWithOptions and always collects diagnostics.
// The report is returned even when decoding fails, holding whatever was
// noted before the failure (Root is nil in that case).
func Inspect(data []byte, offset int, opts Options) (*types.Report, error) {
	opts.CollectDiagnostics = true
	d := newDecoder(data, opts)
	root, end, err := d.decodeRoot(offset)
	if err != nil {
		d.report.Finalize()
		return d.report, err
	}
	d.report.Root = root
	d.report.End = end
	d.report.Finalize()
	return d.report, nil
}

func (d *decoder) decodeRoot(off int) (*types.RootInfo, int, error) {
	if len(d.data) == 0 {
		return nil, off, types.NewError(types.ErrKindEmptyInput, off, "no bytes to decode", nil)
	}
	if off < 0 || off >= len(d.data) {
		return nil, off, types.NewError(types.ErrKindTruncatedInput, off,
			fmt.Sprintf("start offset outside %d-byte buffer", len(d.data)), nil)
	}

	// Only wLength is read before the length check, so a short buffer is
	// always reported as truncated rather than as a bad header.
	length, ok := buf.U16At(d.data, off)
	if !ok {
		return nil, off, types.NewError(types.ErrKindTruncatedInput, off,
			"buffer ends inside wLength", format.ErrTruncated)
	}
	if end, inside := buf.End(off, int(length), len(d.data)); !inside {
		return nil, off, types.NewError(types.ErrKindTruncatedInput, off,
			fmt.Sprintf("declared length %d exceeds the %d bytes available", length, end-off), nil)
	}

	if err := d.count(off); err != nil {
		return nil, off, err
	}
	fh, err := format.DecodeHeader(d.data, off, format.HeaderOptions{Limit: len(d.data), AlignValue: true})
	if err != nil {
		return nil, off, headerError(off, types.KindRootInfo.String(), err)
	}
	if fh.ShortRecord() {
		return nil, off, types.NewError(types.ErrKindBadHeader, off,
			fmt.Sprintf("root wLength %d is smaller than its %d-byte header", fh.Length, format.HeaderSize), nil)
	}
	if len(fh.Key.Raw) == 0 {
		return nil, off, types.NewError(types.ErrKindZeroKey, off+format.KeyOffset,
			"root key is empty or overwritten with NULs", nil)
	}

	d.base = off
	d.rootEnd = fh.RecordEnd
	end := fh.RecordEnd

	th := toHeader(fh)
	d.expectKey(&th, off, types.KindRootInfo.String(), format.KeyVersionInfo)
	root := &types.RootInfo{
		Span:     types.Span{Start: off, End: end},
		Header:   th,
		Padding1: fh.Padding,
	}

	cursor := fh.Cursor
	switch fh.ValueLength {
	case 0:
	case format.FixedFileInfoSize:
		ffi, next, err := format.DecodeFixedFileInfo(d.data, cursor, end)
		if err != nil {
			return nil, off, types.NewError(types.ErrKindBadHeader, cursor,
				"VS_FIXEDFILEINFO runs past the root record", err)
		}
		if ffi.Signature != format.FixedFileInfoSignature {
			d.note(types.SevWarning, cursor, types.KindFixedInfo.String(),
				"signature 0x%08x, expected 0x%08x", ffi.Signature, uint32(format.FixedFileInfoSignature))
		}
		root.Value = &types.FixedInfo{
			Span:          types.Span{Start: cursor, End: next},
			FixedFileInfo: fixedFileInfo(ffi),
		}
		root.Padding2, cursor = format.CountPadding(d.data, next, end)
	default:
		n := int(fh.ValueLength)
		if fh.Type == 1 {
			n *= format.WordSize
		}
		valueEnd := buf.Clamp(cursor+n, cursor, end)
		d.note(types.SevInfo, cursor, types.KindRootInfo.String(),
			"wValueLength %d is not a VS_FIXEDFILEINFO; kept as raw bytes", fh.ValueLength)
		root.RawValue = d.data[cursor:valueEnd]
		root.Padding2, cursor = format.CountPadding(d.data, valueEnd, end)
	}

	children, cursor, err := d.decodeFileInfos(cursor, end)
	if err != nil {
		return nil, off, err
	}
	root.Children = children

	if d.log != nil {
		d.log.Debug("versioninfo: decoded",
			"offset", off,
			"length", fh.Length,
			"records", d.records)
	}
	return root, max(cursor, end), nil
}

func fixedFileInfo(f format.FixedFileInfo) types.FixedFileInfo {
	return types.FixedFileInfo{
		Signature: types.NewDword(f.Signature, f.SignatureRaw, nil),
		StrucVersion: types.StrucVersion{
			Major: f.StrucVersionMajor,
			Minor: f.StrucVersionMinor,
		},
		FileVersionMS:    f.FileVersionMS,
		FileVersionLS:    f.FileVersionLS,
		ProductVersionMS: f.ProductVersionMS,
		ProductVersionLS: f.ProductVersionLS,
		FileFlagsMask:    types.NewDword(f.FileFlagsMask, f.FileFlagsMaskRaw, types.FileFlagNames(f.FileFlagsMask)),
		FileFlags:        types.NewDword(f.FileFlags, nil, types.FileFlagNames(f.FileFlags)),
		FileOS:           types.NewDword(f.FileOS, nil, types.FileOSNames(f.FileOS)),
		FileType:         types.NewDword(f.FileType, nil, types.FileTypeNames(f.FileType)),
		FileSubtype:      types.NewDword(f.FileSubtype, nil, types.FileSubtypeNames(f.FileType, f.FileSubtype)),
		FileDateMS:       f.FileDateMS,
		FileDateLS:       f.FileDateLS,
	}
}
