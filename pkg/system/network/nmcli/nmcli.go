// Package nmcli drives NetworkManager's command line client. Every
// fact about the host's wireless state comes from parsing its output,
// and every change to it goes through its connect command.
package nmcli

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	wifiwatch "github.com/dogeorg/wifiwatch/pkg"
	"github.com/dogeorg/wifiwatch/pkg/system/command"
)

var (
	_ wifiwatch.NetworkLister       = &Client{}
	_ wifiwatch.ConnectionInspector = &Client{}
	_ wifiwatch.Connector           = &Client{}
)

type Client struct {
	runner command.Runner
	path   string
	log    logrus.FieldLogger
}

func New(runner command.Runner, path string, log logrus.FieldLogger) *Client {
	if path == "" {
		path = wifiwatch.DefaultNmcliPath
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{runner: runner, path: path, log: log}
}

func (c *Client) run(ctx context.Context, args ...string) (command.Result, error) {
	return c.runner.Run(ctx, c.path, args...)
}

// lines splits utility output into lines with trailing
// whitespace and carriage returns removed.
func lines(out string) []string {
	raw := strings.Split(out, "\n")
	res := make([]string, 0, len(raw))
	for _, l := range raw {
		res = append(res, strings.TrimRight(l, " \t\r"))
	}
	return res
}
