package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConnectedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connected",
		Short: "Print the wifi network currently connected to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ssid, ok, err := a.nm.ConnectedNetwork(cmd.Context())
			if err != nil {
				return err
			}

			if ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s.\n", ssid)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Not connected to any network.")
			}
			return nil
		},
	}
}
