package nmcli

import (
	"context"
	"strings"

	"github.com/juju/errors"

	wifiwatch "github.com/dogeorg/wifiwatch/pkg"
)

func connectArgs(ssid, password, iface string) []string {
	args := []string{"dev", "wifi", "connect", ssid, "ifname", iface}
	if password != "" {
		args = append(args, "password", password)
	}
	return args
}

// Connect makes a single attempt and reports the outcome. On failure
// the utility's stderr is logged as is and carried in the result.
func (c *Client) Connect(ctx context.Context, ssid, password, iface string) (wifiwatch.ConnectResult, error) {
	res, err := c.run(ctx, connectArgs(ssid, password, iface)...)
	result := wifiwatch.ConnectResult{
		SSID:      ssid,
		Interface: iface,
		Stderr:    strings.TrimSpace(res.Stderr),
	}

	if err != nil {
		reason := result.Stderr
		if reason == "" {
			// nothing from nmcli itself, e.g. it could not be started
			reason = err.Error()
		}
		c.log.Errorf("Failed to connect to %s.\nError: %s", ssid, reason)
		return result, errors.Annotatef(err, "connecting to %s on %s", ssid, iface)
	}

	c.log.Infof("Successfully connected to %s.", ssid)
	return result, nil
}
