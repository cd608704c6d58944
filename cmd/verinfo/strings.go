package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStringsCmd())
}

func newStringsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strings <file>",
		Short: "List the string table entries",
		Long: `The strings command prints each string table as a flat list of
key = value pairs, grouped under the table's language key.

Example:
  verinfo strings version.res
  verinfo strings version.res --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrings(args)
		},
	}
	return cmd
}

func runStrings(args []string) error {
	p, err := newPrinter()
	if err != nil {
		return err
	}

	root, release, err := decodeFile(args[0])
	if err != nil {
		return err
	}
	defer release()

	return p.PrintStrings(root)
}
