package versioninfo

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/malwarology/versioninfo/internal/buf"
	"github.com/malwarology/versioninfo/internal/codepage"
	"github.com/malwarology/versioninfo/internal/format"
	"github.com/malwarology/versioninfo/pkg/types"
)

// decoder holds the state of one decode. It is never shared.
type decoder struct {
	data []byte

	// base is the offset of the root record; alignment is relative to it.
	base int
	// rootEnd bounds String value padding, which may run past its own
	// record into the alignment gap before the next container.
	rootEnd int

	records    int
	maxRecords int

	report *types.Report // nil unless diagnostics are collected
	log    *slog.Logger  // nil when silent
}

func newDecoder(data []byte, opts Options) *decoder {
	d := &decoder{
		data:       data,
		maxRecords: opts.maxRecords(),
		log:        opts.Logger,
	}
	if opts.CollectDiagnostics {
		d.report = types.NewReport()
	}
	return d
}

// count charges one record against the cap.
func (d *decoder) count(off int) error {
	d.records++
	if d.records > d.maxRecords {
		return types.NewError(types.ErrKindLimit, off,
			fmt.Sprintf("more than %d records", d.maxRecords), nil)
	}
	return nil
}

// note records a non-fatal condition.
func (d *decoder) note(sev types.Severity, off int, structure, msg string, args ...any) {
	if d.report == nil && d.log == nil {
		return
	}
	issue := fmt.Sprintf(msg, args...)
	if d.report != nil {
		d.report.Add(types.Diagnostic{Severity: sev, Offset: off, Structure: structure, Issue: issue})
	}
	if d.log != nil {
		d.log.Debug("versioninfo: "+issue,
			"severity", string(sev),
			"offset", off,
			"structure", structure)
	}
}

// header decodes the record header at off inside [off, limit). Key padding
// stops at the value array when boundValue is set.
func (d *decoder) header(off, limit int, structure string, boundValue bool) (format.Header, types.Header, error) {
	if err := d.count(off); err != nil {
		return format.Header{}, types.Header{}, err
	}

	fh, err := format.DecodeHeader(d.data, off, format.HeaderOptions{Limit: limit, BoundValue: boundValue})
	if err != nil {
		return fh, types.Header{}, headerError(off, structure, err)
	}
	if fh.ShortRecord() {
		return fh, types.Header{}, types.NewError(types.ErrKindBadHeader, off,
			fmt.Sprintf("%s wLength %d is smaller than its %d-byte header", structure, fh.Length, format.HeaderSize), nil)
	}
	if fh.Clamped {
		d.note(types.SevWarning, off, structure,
			"wLength %d runs past the enclosing end %#x; clamped", fh.Length, limit)
	}
	return fh, toHeader(fh), nil
}

func headerError(off int, structure string, err error) error {
	switch {
	case errors.Is(err, format.ErrInvalidUTF16):
		return types.NewError(types.ErrKindBadHeader, off, structure+" key is not valid UTF-16", err)
	case errors.Is(err, format.ErrTruncated):
		return types.NewError(types.ErrKindBadHeader, off, structure+" header does not fit", err)
	default:
		return types.NewError(types.ErrKindBadHeader, off, structure+" header", err)
	}
}

func toHeader(fh format.Header) types.Header {
	return types.Header{
		Length:      fh.Length,
		ValueLength: fh.ValueLength,
		Type:        fh.Type,
		Key: types.Key{Value: types.KeyValue{
			Bytes:   fh.Key.Raw,
			Decoded: fh.Key.Text,
		}},
	}
}

// expectKey sets Standard by comparing the key with the expected name.
func (d *decoder) expectKey(h *types.Header, off int, structure, want string) {
	ok := h.Key.Value.Decoded == want
	h.Key.Standard = &ok
	if !ok {
		d.note(types.SevInfo, off, structure, "key %q, expected %q", h.Key.Value.Decoded, want)
	}
}

// expectLanguageKey parses a StringTable key. A key that is not 8 hex
// digits is reported as non-standard and left unparsed.
func (d *decoder) expectLanguageKey(h *types.Header, off int) {
	lc, err := format.ParseLanguageKey(h.Key.Value.Decoded)
	ok := err == nil
	h.Key.Standard = &ok
	if !ok {
		d.note(types.SevWarning, off, "StringTable", "language key: %v", err)
		return
	}
	parsed := languageCode(lc)
	h.Key.Value.Parsed = &parsed
}

func languageCode(lc format.LangCode) types.LanguageCode {
	return types.NewLanguageCode(lc.LangID, lc.CodePage, codepage.Name(lc.CodePage))
}

// align skips one zero WORD left between a record that ended on a 16-bit
// boundary and the next 32-bit aligned sibling.
func (d *decoder) align(cursor, end int) int {
	if (cursor-d.base)%4 == 2 && buf.Fits(cursor, format.WordSize, end) && buf.IsZeroWord(d.data, cursor) {
		return cursor + format.WordSize
	}
	return cursor
}

// hasRecord reports whether a header fits at cursor before end, noting
// the stray bytes when it does not.
func (d *decoder) hasRecord(cursor, end int, structure string) bool {
	if buf.Fits(cursor, format.HeaderSize, end) {
		return true
	}
	if cursor < end {
		d.note(types.SevWarning, cursor, structure, "%d trailing bytes cannot hold a record header", end-cursor)
	}
	return false
}
