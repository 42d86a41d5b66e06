package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dogeorg/wifiwatch/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Get wifiwatch version information",
		Args:  cobra.NoArgs,
		// Skips the root setup; printing a version needs no config or log file.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v := version.Get()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Release: %s\n", v.Release)
			fmt.Fprintf(out, "Git: %s\n", v.Git.Commit)
			fmt.Fprintf(out, "Dirty: %t\n", v.Git.Dirty)
		},
	}
}
