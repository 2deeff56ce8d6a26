package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xalexb/hjarta-loader/app"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tilefetch %s\n", app.Version)
			fmt.Fprintf(out, "  built: %s\n", app.CompiledAt)
		},
	}
}
