package versioninfo

import (
	"github.com/malwarology/versioninfo/internal/format"
	"github.com/malwarology/versioninfo/pkg/types"
)

// Every list below is read by a loop that stops once the cursor reaches the
// enclosing end. A record always advances the cursor to at least its own
// end, which is at least one header past its start, so each loop terminates.

// decodeFileInfos reads the top-level children of the root.
func (d *decoder) decodeFileInfos(cursor, end int) ([]types.Node, int, error) {
	nodes := make([]types.Node, 0, 2)
	for cursor < end {
		cursor = d.align(cursor, end)
		if !d.hasRecord(cursor, end, "FileInfo") {
			return nodes, end, nil
		}
		n, next, err := d.decodeFileInfo(cursor, end)
		if err != nil {
			return nil, cursor, err
		}
		nodes = append(nodes, n)
		cursor = next
	}
	return nodes, cursor, nil
}

// decodeFileInfo classifies and decodes one StringFileInfo or VarFileInfo.
func (d *decoder) decodeFileInfo(start, limit int) (types.Node, int, error) {
	fh, th, err := d.header(start, limit, "FileInfo", false)
	if err != nil {
		return nil, start, err
	}
	span := types.Span{Start: start, End: fh.RecordEnd}
	v := d.classify(fh)

	var (
		children []types.Node
		cursor   = fh.Cursor
		shape    = types.ShapeStandard
	)
	switch v {
	case variantStringFileInfo:
		children, cursor, err = d.decodeStringTables(fh.Cursor, fh.RecordEnd)
	case variantVarFileInfo:
		children, cursor, err = d.decodeVars(fh.Cursor, fh.RecordEnd)
	case variantStringShaped:
		shape = types.ShapeStringChildren
		d.note(types.SevWarning, start, th.Key.Text(), "children are String records")
		children, cursor, err = d.decodeStrings(fh.Cursor, fh.RecordEnd)
	case variantKeyOnly:
		children = []types.Node{}
		if fh.Cursor < fh.RecordEnd {
			shape = types.ShapeKeyOnly
			d.note(types.SevWarning, fh.Cursor, th.Key.Text(),
				"%d bytes of children cannot hold a record header", fh.RecordEnd-fh.Cursor)
		}
	case variantUnknown:
		d.note(types.SevWarning, start, "Unknown", "unclassifiable record %q", th.Key.Text())
		return &types.Unknown{
			Span:    span,
			Header:  &th,
			Padding: fh.Padding,
			Bytes:   d.data[fh.Cursor:fh.RecordEnd],
		}, fh.RecordEnd, nil
	}
	if err != nil {
		return nil, start, err
	}
	cursor = max(cursor, fh.RecordEnd)

	// The first child decides the children's shape; the key decides the tag.
	sfi := v == variantStringFileInfo ||
		(v != variantVarFileInfo && th.Key.Text() == format.KeyStringFileInfo)
	if sfi {
		d.expectKey(&th, start, "StringFileInfo", format.KeyStringFileInfo)
		return &types.StringFileInfo{
			Span:     span,
			Header:   th,
			Padding:  fh.Padding,
			Shape:    shape,
			Children: children,
		}, cursor, nil
	}
	d.expectKey(&th, start, "VarFileInfo", format.KeyVarFileInfo)
	return &types.VarFileInfo{
		Span:     span,
		Header:   th,
		Padding:  fh.Padding,
		Shape:    shape,
		Children: children,
	}, cursor, nil
}

// decodeStringTables reads the StringTable children of a StringFileInfo.
func (d *decoder) decodeStringTables(cursor, end int) ([]types.Node, int, error) {
	nodes := make([]types.Node, 0, 1)
	for cursor < end {
		cursor = d.align(cursor, end)
		if !d.hasRecord(cursor, end, "StringTable") {
			return nodes, end, nil
		}
		n, next, err := d.decodeStringTable(cursor, end)
		if err != nil {
			return nil, cursor, err
		}
		nodes = append(nodes, n)
		cursor = next
	}
	return nodes, cursor, nil
}

func (d *decoder) decodeStringTable(start, limit int) (*types.StringTable, int, error) {
	fh, th, err := d.header(start, limit, "StringTable", false)
	if err != nil {
		return nil, start, err
	}
	d.expectLanguageKey(&th, start)

	children, cursor, err := d.decodeStrings(fh.Cursor, fh.RecordEnd)
	if err != nil {
		return nil, start, err
	}
	return &types.StringTable{
		Span:     types.Span{Start: start, End: fh.RecordEnd},
		Header:   th,
		Padding:  fh.Padding,
		Children: children,
	}, max(cursor, fh.RecordEnd), nil
}

// decodeStrings reads a run of String records.
func (d *decoder) decodeStrings(cursor, end int) ([]types.Node, int, error) {
	nodes := make([]types.Node, 0, 8)
	for cursor < end {
		cursor = d.align(cursor, end)
		if !d.hasRecord(cursor, end, "String") {
			return nodes, end, nil
		}
		n, next, err := d.decodeString(cursor, end)
		if err != nil {
			return nil, cursor, err
		}
		nodes = append(nodes, n)
		cursor = next
	}
	return nodes, cursor, nil
}

// decodeString reads one key/value pair. The value never extends past the
// record, but the zero WORDs after it are counted up to the root end: the
// last String of a table routinely ends on a 16-bit boundary and the
// alignment WORD before the next container belongs to no record.
func (d *decoder) decodeString(start, limit int) (*types.String, int, error) {
	fh, th, err := d.header(start, limit, "String", false)
	if err != nil {
		return nil, start, err
	}
	s := &types.String{
		Span:    types.Span{Start: start, End: fh.RecordEnd},
		Header:  th,
		Padding: fh.Padding,
	}

	cursor := fh.Cursor
	if cursor < fh.RecordEnd {
		ws, next, err := format.ReadWideString(d.data, cursor, fh.RecordEnd)
		if err != nil {
			return nil, start, types.NewError(types.ErrKindBadHeader, cursor,
				"String value is not valid UTF-16", err)
		}
		pad, next := format.CountPadding(d.data, next, d.rootEnd)
		s.Value = &types.StringValue{Bytes: ws.Raw, Decoded: ws.Text, Padding: pad}
		cursor = next
	}

	if cursor < fh.RecordEnd {
		return nil, start, types.NewError(types.ErrKindCorruptedString, cursor,
			"String "+th.Key.Text()+" value ends before its record", nil)
	}
	return s, cursor, nil
}

// decodeVars reads the Var children of a VarFileInfo.
func (d *decoder) decodeVars(cursor, end int) ([]types.Node, int, error) {
	nodes := make([]types.Node, 0, 1)
	for cursor < end {
		cursor = d.align(cursor, end)
		if !d.hasRecord(cursor, end, "Var") {
			return nodes, end, nil
		}
		n, next, err := d.decodeVar(cursor, end)
		if err != nil {
			return nil, cursor, err
		}
		nodes = append(nodes, n)
		cursor = next
	}
	return nodes, cursor, nil
}

// decodeVar reads one Var. Key padding stops where wValueLength says the
// value array starts, since a language identifier of 0x0000 is itself a
// zero WORD.
func (d *decoder) decodeVar(start, limit int) (*types.Var, int, error) {
	fh, th, err := d.header(start, limit, "Var", true)
	if err != nil {
		return nil, start, err
	}
	d.expectKey(&th, start, "Var", format.KeyTranslation)

	children, cursor, err := d.decodeValues(fh.Cursor, fh.RecordEnd)
	if err != nil {
		return nil, start, err
	}
	return &types.Var{
		Span:     types.Span{Start: start, End: fh.RecordEnd},
		Header:   th,
		Padding:  fh.Padding,
		Children: children,
	}, max(cursor, fh.RecordEnd), nil
}

// decodeValues reads language/code page pairs up to end.
func (d *decoder) decodeValues(cursor, end int) ([]types.Node, int, error) {
	nodes := make([]types.Node, 0, 1)
	for cursor < end {
		if err := d.count(cursor); err != nil {
			return nil, cursor, err
		}
		lc, next, err := format.DecodeLangCode(d.data, cursor, end)
		if err != nil {
			d.note(types.SevWarning, cursor, "VarValue",
				"%d trailing bytes cannot hold a language/code page pair", end-cursor)
			return nodes, end, nil
		}
		nodes = append(nodes, &types.Value{
			Span:         types.Span{Start: cursor, End: next},
			LanguageCode: languageCode(lc),
		})
		cursor = next
	}
	return nodes, cursor, nil
}
