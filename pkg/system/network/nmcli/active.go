package nmcli

import (
	"context"
	"strings"

	"github.com/juju/errors"
)

var activeArgs = []string{"-t", "-f", "active,ssid", "dev", "wifi"}

// ConnectedNetwork never fails because nmcli failed: a utility that
// cannot be run or exits non-zero reads as "not connected". Malformed
// output is still an error.
func (c *Client) ConnectedNetwork(ctx context.Context) (string, bool, error) {
	res, err := c.run(ctx, activeArgs...)
	if err != nil {
		c.log.Debugf("Could not query active connection, assuming none: %v", err)
	}
	return ParseActive(res.Stdout)
}

// ParseActive returns the SSID of the first "yes:<ssid>" line. SSIDs
// are taken as printed, so only line terminators are stripped.
func ParseActive(out string) (string, bool, error) {
	for _, line := range terminatedLines(out) {
		active, ssid, found := strings.Cut(line, ":")
		if !found {
			return "", false, errors.Errorf("malformed line in active connection list: %q", line)
		}
		if active == "yes" {
			return ssid, true, nil
		}
	}
	return "", false, nil
}

// terminatedLines splits out into newline terminated lines. The final
// newline ends the last line rather than starting an empty one.
func terminatedLines(out string) []string {
	if out == "" {
		return nil
	}
	raw := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	for i, l := range raw {
		raw[i] = strings.TrimSuffix(l, "\r")
	}
	return raw
}
