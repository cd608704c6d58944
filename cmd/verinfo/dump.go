package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the full decoded tree",
		Long: `The dump command decodes a VS_VERSIONINFO resource and prints every
record: headers, keys (raw bytes and decoded text), padding counts, the fixed
file information block and all string and translation values.

JSON and YAML output carry raw byte fields as standard base64.

Example:
  verinfo dump version.res
  verinfo dump csrss.exe --offset 0x1798 --format json
  verinfo dump version.res -f yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	p, err := newPrinter()
	if err != nil {
		return err
	}

	root, release, err := decodeFile(args[0])
	if err != nil {
		return err
	}
	defer release()

	return p.Print(root)
}
