package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/malwarology/versioninfo/internal/logger"
	"github.com/malwarology/versioninfo/internal/mmfile"
	"github.com/malwarology/versioninfo/pkg/printer"
	"github.com/malwarology/versioninfo/pkg/types"
	"github.com/malwarology/versioninfo/pkg/versioninfo"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	outFormat  string
	indent     int
	offset     int
	maxRecords int
)

var rootCmd = &cobra.Command{
	Use:   "verinfo",
	Short: "Decode Windows VS_VERSIONINFO resources",
	Long: `verinfo decodes the VS_VERSIONINFO resource found in Windows PE files
into a structured tree: the fixed file information block, the string tables
and the translation list, with every key, length and padding word preserved.

Input is the raw resource bytes, or a larger file with --offset pointing at
the resource. Use "-" to read from stdin.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{Verbose: verbose, Quiet: quiet})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log decoder diagnostics to stderr")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "format", "f", string(printer.FormatText),
		"Output format: json, yaml or text")
	rootCmd.PersistentFlags().IntVar(&indent, "indent", printer.DefaultIndentSize, "Spaces per level (0 = compact JSON)")
	rootCmd.PersistentFlags().IntVarP(&offset, "offset", "o", 0, "Byte offset of the resource in the input (accepts 0x...)")
	rootCmd.PersistentFlags().IntVar(&maxRecords, "max-records", 0,
		fmt.Sprintf("Record cap (0 = %d, negative = unlimited)", versioninfo.DefaultMaxRecords))
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for malformed input and 1 for everything else.
func exitCode(err error) int {
	var derr *types.Error
	if errors.As(err, &derr) {
		return 2
	}
	return 1
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints to stderr so structured output on stdout stays clean
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// newPrinter builds a printer on stdout from the global flags.
func newPrinter() (*printer.Printer, error) {
	f, err := printer.ParseFormat(outFormat)
	if err != nil {
		return nil, err
	}
	return printer.New(os.Stdout, printer.Options{Format: f, Indent: indent}), nil
}

func decodeOptions() versioninfo.Options {
	return versioninfo.Options{MaxRecords: maxRecords, Logger: logger.L}
}

// loadInput returns the bytes of path ("-" for stdin) and a release func.
func loadInput(path string) ([]byte, func() error, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, func() error { return nil }, nil
	}
	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	logger.Debug("mapped input", "path", path, "bytes", len(data))
	return data, release, nil
}

// decodeFile loads path and decodes the resource at the global offset. The
// tree aliases the input, so release must only be called once the caller is
// done with it.
func decodeFile(path string) (*types.RootInfo, func() error, error) {
	data, release, err := loadInput(path)
	if err != nil {
		return nil, nil, err
	}

	root, end, err := versioninfo.DecodeWithOptions(data, offset, decodeOptions())
	if err != nil {
		release()
		return nil, nil, err
	}
	logger.Info("decoded", "path", path, "offset", offset, "end", end)
	printVerbose("Decoded %s: resource spans %#x-%#x\n", path, offset, end)
	return root, release, nil
}
