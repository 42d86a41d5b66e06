package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	wifiwatch "github.com/dogeorg/wifiwatch/pkg"
	"github.com/dogeorg/wifiwatch/pkg/logging"
	"github.com/dogeorg/wifiwatch/pkg/system/command"
	"github.com/dogeorg/wifiwatch/pkg/system/network/nmcli"
	network_wifi "github.com/dogeorg/wifiwatch/pkg/system/network/wifi"
)

// app carries everything a command needs. It is built once per
// invocation; nothing here is package level state.
type app struct {
	// set by flags
	envFile      string
	iface        string
	networksFile string
	logFile      string
	nmcliPath    string
	verbose      bool

	// injectable, defaulted in setup
	runner  command.Runner
	clock   clock.Clock
	console io.Writer
	netlink network_wifi.InterfaceLister

	config wifiwatch.Config
	log    *logrus.Logger
	closer io.Closer
	nm     *nmcli.Client
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wifiwatch",
		Short: "wifiwatch keeps this machine connected to a known wifi network",
		Long: `wifiwatch checks every five minutes whether a wifi network is active and,
if not, connects to the first visible network listed in the networks file.
Run without a subcommand to start watching.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.iface, "interface", "i", wifiwatch.DefaultInterface, "network interface to connect with")
	flags.StringVar(&a.networksFile, "networks", wifiwatch.DefaultNetworksFile, "JSON file mapping SSIDs to passwords")
	flags.StringVar(&a.logFile, "log-file", wifiwatch.DefaultLogFile, "file to append log output to, empty to disable")
	flags.StringVar(&a.nmcliPath, "nmcli", wifiwatch.DefaultNmcliPath, "path to the nmcli binary")
	flags.StringVar(&a.envFile, "env-file", ".env", "optional dotenv file with WIFIWATCH_* settings")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")

	rootCmd.AddCommand(
		newScanCmd(a),
		newConnectedCmd(a),
		newListWifiInterfacesCmd(a),
		newListStoredCmd(a),
		newConnectCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup resolves the configuration, flags set on the command line
// taking precedence over the environment, and wires the collaborators.
func (a *app) setup(cmd *cobra.Command) error {
	config, err := wifiwatch.LoadConfig(a.envFile)
	if err != nil {
		return errors.Trace(err)
	}

	flags := cmd.Flags()
	if flags.Changed("interface") {
		config.Interface = a.iface
	}
	if flags.Changed("networks") {
		config.NetworksFile = a.networksFile
	}
	if flags.Changed("log-file") {
		config.LogFile = a.logFile
	}
	if flags.Changed("nmcli") {
		config.NmcliPath = a.nmcliPath
	}
	config.Verbose = a.verbose
	a.config = config

	if a.console == nil {
		a.console = os.Stderr
	}
	log, closer, err := logging.New(logging.Options{
		Console: a.console,
		File:    config.LogFile,
		Verbose: config.Verbose,
	})
	if err != nil {
		return errors.Trace(err)
	}
	a.log, a.closer = log, closer

	if a.runner == nil {
		a.runner = command.NewExecRunner(log)
	}
	if a.clock == nil {
		a.clock = clock.WallClock
	}
	if a.netlink == nil {
		a.netlink = network_wifi.NewInterfaceLister()
	}
	a.nm = nmcli.New(a.runner, config.NmcliPath, log)
	return nil
}

func (a *app) close() {
	if a.closer != nil {
		a.closer.Close()
	}
}

func Execute() {
	a := &app{}
	err := newRootCmd(a).ExecuteContext(context.Background())
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
