package cmd

import (
	"context"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/dogeorg/wifiwatch/pkg/store"
	"github.com/dogeorg/wifiwatch/pkg/watcher"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep checking the connection and reconnect when needed (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context())
		},
	}
}

func (a *app) watch(ctx context.Context) error {
	w := watcher.New(a.config, watcher.Deps{
		Inspector:   a.nm,
		Lister:      a.nm,
		Connector:   a.nm,
		Credentials: store.NewCredentialFile(a.config.NetworksFile),
		Clock:       a.clock,
		Logger:      a.log,
	})

	err := w.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
