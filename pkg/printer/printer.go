// Package printer renders decoded version resources as JSON, YAML or an
// indented text tree.
package printer

import (
	"fmt"
	"io"

	"github.com/malwarology/versioninfo/pkg/types"
)

// DefaultIndentSize is the number of spaces per nesting level.
const DefaultIndentSize = 2

// Format specifies the output format for printing.
type Format string

const (
	// FormatJSON outputs the converted tree as JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs the converted tree as YAML.
	FormatYAML Format = "yaml"

	// FormatText outputs a human-readable tree.
	FormatText Format = "text"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, yaml or text)", s)
}

// Options controls printing behavior.
type Options struct {
	// Format specifies the output format.
	// Default: FormatJSON
	Format Format

	// Indent is the number of spaces per level. Zero gives compact JSON.
	// Default: 2
	Indent int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format: FormatJSON,
		Indent: DefaultIndentSize,
	}
}

// Printer writes decoded trees to a writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a Printer writing to w.
//
// Example:
//
//	root, _, err := versioninfo.Decode(data, 0)
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.Print(root)
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	return &Printer{opts: opts, writer: w}
}

// Print writes the whole tree.
func (p *Printer) Print(root *types.RootInfo) error {
	if root == nil {
		return fmt.Errorf("printer: nil root")
	}
	if p.opts.Format == FormatText {
		return p.printTreeText(root)
	}
	return p.PrintValue(root)
}

// PrintValue converts v and writes it as JSON or YAML. Text format falls back
// to indented JSON for values that are not trees.
func (p *Printer) PrintValue(v any) error {
	converted, err := Convert(v)
	if err != nil {
		return err
	}
	return p.emit(converted)
}

func (p *Printer) emit(converted any) error {
	switch p.opts.Format {
	case FormatYAML:
		return writeYAML(p.writer, converted, p.opts.Indent)
	case FormatText:
		return writeJSON(p.writer, converted, max(p.opts.Indent, DefaultIndentSize))
	default:
		return writeJSON(p.writer, converted, p.opts.Indent)
	}
}

// PrintReport writes a diagnostics report.
func (p *Printer) PrintReport(r *types.Report) error {
	if p.opts.Format == FormatText {
		_, err := io.WriteString(p.writer, r.FormatText())
		return err
	}
	return p.PrintValue(r)
}

// StringGroup is the flat key/value listing of one string container.
type StringGroup struct {
	// Name is the StringTable key, or the container key for String records
	// found directly under a FileInfo container.
	Name    string
	Strings []*types.String
}

// Strings collects every String record grouped by its parent, in order.
func Strings(root *types.RootInfo) []StringGroup {
	var groups []StringGroup
	types.Walk(root, func(n types.Node) bool {
		var name string
		switch x := n.(type) {
		case *types.StringTable:
			name = x.Key.Text()
		case *types.StringFileInfo:
			if x.Shape != types.ShapeStringChildren {
				return true
			}
			name = x.Key.Text()
		case *types.VarFileInfo:
			if x.Shape != types.ShapeStringChildren {
				return false
			}
			name = x.Key.Text()
		case *types.RootInfo:
			return true
		default:
			return false
		}
		g := StringGroup{Name: name}
		for _, c := range n.Nodes() {
			if s, ok := c.(*types.String); ok {
				g.Strings = append(g.Strings, s)
			}
		}
		groups = append(groups, g)
		return false
	})
	return groups
}

// PrintStrings writes a flat "key = value" listing per string table.
func (p *Printer) PrintStrings(root *types.RootInfo) error {
	groups := Strings(root)
	if p.opts.Format == FormatText {
		for i, g := range groups {
			if i > 0 {
				if _, err := fmt.Fprintln(p.writer); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(p.writer, "[%s]\n", g.Name); err != nil {
				return err
			}
			for _, s := range g.Strings {
				if _, err := fmt.Fprintf(p.writer, "%s = %s\n", s.Key.Text(), s.Text()); err != nil {
					return err
				}
			}
		}
		return nil
	}

	out := make(Object, 0, len(groups))
	for _, g := range groups {
		table := make(Object, 0, len(g.Strings))
		for _, s := range g.Strings {
			table = append(table, Field{Key: s.Key.Text(), Value: s.Text()})
		}
		out = append(out, Field{Key: g.Name, Value: table})
	}
	return p.emit(out)
}
