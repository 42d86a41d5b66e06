package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListWifiInterfacesCmd(a *app) *cobra.Command {
	var useNetlink bool

	listCmd := &cobra.Command{
		Use:   "list-wifi-interfaces",
		Short: "List network interfaces of wireless type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var names []string
			if useNetlink {
				ifaces, err := a.netlink.WirelessInterfaces()
				if err != nil {
					return err
				}
				names = ifaces
			} else {
				devices, err := a.nm.WifiDevices(cmd.Context())
				if err != nil {
					return err
				}
				for _, d := range devices {
					names = append(names, d.Name)
				}
			}

			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	listCmd.Flags().BoolVar(&useNetlink, "netlink", false, "ask the kernel over nl80211 instead of nmcli")
	return listCmd
}
