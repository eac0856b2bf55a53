package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set via ldflags at build time.
var (
	version   = ""
	commit    = ""
	buildDate = ""
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := version
			if v == "" {
				v = "dev"
			}
			c := commit
			if c == "" {
				c = "unknown"
			}
			d := buildDate
			if d == "" {
				d = "unknown"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "patternotp version %s\ncommit: %s\nbuilt: %s\n", v, c, d)
			return nil
		},
	}
}
