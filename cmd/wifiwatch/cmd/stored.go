package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dogeorg/wifiwatch/pkg/store"
)

func newListStoredCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list-stored",
		Short: "Print every stored SSID and its password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := store.NewCredentialFile(a.config.NetworksFile).Load()
			if err != nil {
				return err
			}

			for _, ssid := range store.SortedSSIDs(creds) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", ssid, creds[ssid])
			}
			return nil
		},
	}
}
