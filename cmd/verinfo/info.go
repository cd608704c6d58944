package main

import (
	"github.com/spf13/cobra"

	"github.com/malwarology/versioninfo/pkg/printer"
	"github.com/malwarology/versioninfo/pkg/types"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Summarize the fixed file information and languages",
		Long: `The info command prints the version numbers, flags, target OS and file
type from VS_FIXEDFILEINFO together with the languages named by the string
tables and the Translation value.

Example:
  verinfo info version.res
  verinfo info version.res --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// Summary is the info command's structured output.
type Summary struct {
	Key            string   `json:"Key"`
	FileVersion    string   `json:"FileVersion,omitempty"`
	ProductVersion string   `json:"ProductVersion,omitempty"`
	FileFlags      []string `json:"FileFlags,omitempty"`
	FileOS         string   `json:"FileOS,omitempty"`
	FileType       string   `json:"FileType,omitempty"`
	FileSubtype    string   `json:"FileSubtype,omitempty"`
	SignatureValid bool     `json:"SignatureValid"`
	StringTables   []string `json:"StringTables"`
	Translations   []string `json:"Translations"`
}

func summarize(root *types.RootInfo) Summary {
	s := Summary{
		Key:          root.Key.Text(),
		StringTables: []string{},
		Translations: []string{},
	}
	if root.Value != nil {
		ffi := root.Value.FixedFileInfo
		s.FileVersion = ffi.FileVersion()
		s.ProductVersion = ffi.ProductVersion()
		s.FileFlags = ffi.FileFlags.Symbols
		s.FileOS = ffi.FileOS.FlagsString()
		s.FileType = ffi.FileType.FlagsString()
		if len(ffi.FileSubtype.Symbols) > 0 || ffi.FileSubtype.Decimal != 0 {
			s.FileSubtype = ffi.FileSubtype.FlagsString()
		}
		s.SignatureValid = ffi.SignatureValid()
	}

	types.Walk(root, func(n types.Node) bool {
		switch x := n.(type) {
		case *types.StringTable:
			s.StringTables = append(s.StringTables, x.Key.Text())
			return false
		case *types.Value:
			s.Translations = append(s.Translations, x.LanguageCode.Key())
		}
		return true
	})
	return s
}

func runInfo(args []string) error {
	p, err := newPrinter()
	if err != nil {
		return err
	}

	root, release, err := decodeFile(args[0])
	if err != nil {
		return err
	}
	defer release()

	s := summarize(root)
	if outFormat != string(printer.FormatText) {
		return p.PrintValue(s)
	}

	printInfo("%s\n", s.Key)
	if root.Value == nil {
		printInfo("  (no fixed file information)\n")
	} else {
		printInfo("  File version:    %s\n", s.FileVersion)
		printInfo("  Product version: %s\n", s.ProductVersion)
		printInfo("  File flags:      %s\n", root.Value.FileFlags.FlagsString())
		printInfo("  File OS:         %s\n", s.FileOS)
		printInfo("  File type:       %s\n", s.FileType)
		if s.FileSubtype != "" {
			printInfo("  File subtype:    %s\n", s.FileSubtype)
		}
		if !s.SignatureValid {
			printInfo("  Signature:       %s (expected 0xfeef04bd)\n", root.Value.Signature.Hexadecimal)
		}
	}
	for _, k := range s.StringTables {
		printInfo("  String table:    %s\n", k)
	}
	for _, k := range s.Translations {
		printInfo("  Translation:     %s\n", k)
	}
	return nil
}
