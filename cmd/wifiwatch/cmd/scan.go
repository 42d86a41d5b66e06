package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newScanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List visible networks eligible for connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			available, err := a.nm.AvailableNetworks(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Available networks:")
			for _, ssid := range available {
				fmt.Fprintln(out, ssid)
			}
			return nil
		},
	}
}
