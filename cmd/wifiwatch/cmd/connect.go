package cmd

import (
	"github.com/spf13/cobra"
)

func newConnectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connect <ssid> <password> [interface]",
		Short: "Connect to a specified network once",
		Long: `Connect to a specified network once. The interface argument, when given,
takes precedence over --interface. Exits non-zero if nmcli reports failure.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			iface := a.config.Interface
			if len(args) == 3 {
				iface = args[2]
			}

			_, err := a.nm.Connect(cmd.Context(), args[0], args[1], iface)
			return err
		},
	}
}
