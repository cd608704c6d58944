package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/malwarology/versioninfo/pkg/types"
)

type textItem struct {
	node  types.Node
	depth int
}

// printTreeText writes one line per node (plus the fixed info fields),
// indented by depth.
func (p *Printer) printTreeText(root *types.RootInfo) error {
	tw := &textWriter{w: p.writer, indent: p.opts.Indent}

	stack := []textItem{{node: root}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tw.node(it.node, it.depth)

		kids := it.node.Nodes()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, textItem{node: kids[i], depth: it.depth + 1})
		}
		if r, ok := it.node.(*types.RootInfo); ok && r.Value != nil {
			// fixed info prints before the children
			stack = append(stack, textItem{node: r.Value, depth: it.depth + 1})
		}
	}
	return tw.err
}

type textWriter struct {
	w      io.Writer
	indent int
	err    error
}

func (t *textWriter) line(depth int, format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, "%s%s\n", strings.Repeat(" ", depth*t.indent), fmt.Sprintf(format, args...))
}

func (t *textWriter) node(n types.Node, depth int) {
	at := n.Range().Start
	switch x := n.(type) {
	case *types.RootInfo:
		t.line(depth, "%s %s @%#x%s", x.Kind(), headerText(x.Header), at, standardMark(x.Key))
		if len(x.RawValue) > 0 {
			t.line(depth+1, "Value: % x", x.RawValue)
		}
	case *types.FixedInfo:
		t.line(depth, "%s @%#x", x.Kind(), at)
		t.line(depth+1, "Signature:      %s", x.Signature.Hexadecimal)
		t.line(depth+1, "StrucVersion:   %d.%d", x.StrucVersion.Major, x.StrucVersion.Minor)
		t.line(depth+1, "FileVersion:    %s", x.FileVersion())
		t.line(depth+1, "ProductVersion: %s", x.ProductVersion())
		t.line(depth+1, "FileFlagsMask:  %s", x.FileFlagsMask.FlagsString())
		t.line(depth+1, "FileFlags:      %s", x.FileFlags.FlagsString())
		t.line(depth+1, "FileOS:         %s", x.FileOS.FlagsString())
		t.line(depth+1, "FileType:       %s", x.FileType.FlagsString())
		t.line(depth+1, "FileSubtype:    %s", x.FileSubtype.FlagsString())
		t.line(depth+1, "FileDate:       0x%08x%08x", x.FileDateMS, x.FileDateLS)
	case *types.StringFileInfo:
		t.line(depth, "%s @%#x%s%s", x.Kind(), at, shapeMark(x.Shape), standardMark(x.Key))
	case *types.StringTable:
		lang := ""
		if p := x.Key.Value.Parsed; p != nil {
			lang = " (" + languageText(*p) + ")"
		}
		t.line(depth, "%s %s%s @%#x%s", x.Kind(), strconv.Quote(x.Key.Text()), lang, at, standardMark(x.Key))
	case *types.String:
		value := "<no value>"
		if x.Value != nil {
			value = strconv.Quote(x.Value.Decoded)
		}
		t.line(depth, "%s = %s", x.Key.Text(), value)
	case *types.VarFileInfo:
		t.line(depth, "%s @%#x%s%s", x.Kind(), at, shapeMark(x.Shape), standardMark(x.Key))
	case *types.Var:
		t.line(depth, "%s %s @%#x%s", x.Kind(), strconv.Quote(x.Key.Text()), at, standardMark(x.Key))
	case *types.Value:
		t.line(depth, "%s", languageText(x.LanguageCode))
	case *types.Unknown:
		key := ""
		if x.Header != nil {
			key = strconv.Quote(x.Key.Text()) + " "
		}
		t.line(depth, "%s %s@%#x (%d bytes)", x.Kind(), key, at, len(x.Bytes))
	}
}

func headerText(h types.Header) string {
	return fmt.Sprintf("%q (wLength %d, wValueLength %d, wType %d)", h.Key.Text(), h.Length, h.ValueLength, h.Type)
}

func languageText(lc types.LanguageCode) string {
	s := fmt.Sprintf("language %s, code page %d", lc.LangID.Hexadecimal, lc.CodePage.Decimal)
	if lc.CodePage.Name != "" {
		s += " " + lc.CodePage.Name
	}
	return s
}

func standardMark(k types.Key) string {
	if k.Standard != nil && !*k.Standard {
		return " [non-standard key]"
	}
	return ""
}

func shapeMark(s types.Shape) string {
	if s == types.ShapeStandard {
		return ""
	}
	return " [" + string(s) + "]"
}
