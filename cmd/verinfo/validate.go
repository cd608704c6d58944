package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/malwarology/versioninfo/pkg/printer"
	"github.com/malwarology/versioninfo/pkg/types"
	"github.com/malwarology/versioninfo/pkg/versioninfo"
)

var (
	validateStrict  bool
	validateCompact bool
)

func init() {
	cmd := newValidateCmd()
	cmd.Flags().BoolVar(&validateStrict, "strict", false, "Treat warnings as failures")
	cmd.Flags().BoolVar(&validateCompact, "compact", false, "One line per diagnostic (text format)")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a resource and report anomalies",
		Long: `The validate command decodes a resource with diagnostics enabled and
reports every unusual condition the decoder tolerated: non-standard keys,
unparseable language keys, clamped record lengths, trailing bytes and
reinterpreted containers.

The command fails (exit status 2) when the resource cannot be decoded, and
with --strict also when any warning was reported.

Example:
  verinfo validate version.res
  verinfo validate version.res --strict
  verinfo validate version.res --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

// ValidationResult is the validate command's structured output.
type ValidationResult struct {
	File        string             `json:"file"`
	Valid       bool               `json:"valid"`
	End         int                `json:"end"`
	Error       *ValidationError   `json:"error,omitempty"`
	Diagnostics []types.Diagnostic `json:"diagnostics"`
	Summary     types.DiagSummary  `json:"summary"`
}

// ValidationError describes a failed decode.
type ValidationError struct {
	Kind    string `json:"kind"`
	Offset  int    `json:"offset"`
	Message string `json:"message"`
}

var errWarnings = errors.New("warnings reported in strict mode")

func runValidate(args []string) error {
	path := args[0]

	p, err := newPrinter()
	if err != nil {
		return err
	}

	data, release, err := loadInput(path)
	if err != nil {
		return err
	}
	defer release()

	printVerbose("Validating %s at offset %#x\n", path, offset)
	report, decodeErr := versioninfo.Inspect(data, offset, decodeOptions())

	result := ValidationResult{
		File:        path,
		Valid:       decodeErr == nil,
		End:         report.End,
		Diagnostics: report.Diagnostics,
		Summary:     report.Summary,
	}
	if decodeErr != nil {
		result.Error = &ValidationError{Message: decodeErr.Error()}
		var derr *types.Error
		if errors.As(decodeErr, &derr) {
			result.Error.Kind = derr.Kind.String()
			result.Error.Offset = derr.Offset
		}
	}
	if validateStrict && report.HasWarnings() {
		result.Valid = false
	}

	if outFormat != string(printer.FormatText) {
		if err := p.PrintValue(result); err != nil {
			return err
		}
	} else if err := printValidationText(p, result, report); err != nil {
		return err
	}

	switch {
	case decodeErr != nil:
		return decodeErr
	case !result.Valid:
		return fmt.Errorf("%s: %d warning(s): %w", path, report.Summary.Warnings, errWarnings)
	}
	return nil
}

func printValidationText(p *printer.Printer, result ValidationResult, report *types.Report) error {
	printInfo("Validating %s...\n\n", result.File)

	switch {
	case len(report.Diagnostics) == 0:
	case validateCompact:
		printInfo("%s", report.FormatTextCompact())
	case !quiet:
		if err := p.PrintReport(report); err != nil {
			return err
		}
		printInfo("\n")
	}

	if result.Error != nil {
		printInfo("  ✗ %s at offset %#x\n", result.Error.Kind, result.Error.Offset)
		printInfo("\nResult: ✗ INVALID\n")
		return nil
	}

	printInfo("  ✓ Decoded %d bytes (%d warning(s), %d info)\n",
		result.End-offset, result.Summary.Warnings, result.Summary.Info)
	if result.Valid {
		printInfo("\nResult: ✓ VALID\n")
	} else {
		printInfo("\nResult: ✗ INVALID (strict)\n")
	}
	return nil
}
