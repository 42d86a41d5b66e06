package nmcli

import (
	"context"
	"regexp"
	"strconv"

	"github.com/juju/errors"
)

const (
	// UnnamedSSID is what nmcli prints for networks that hide their name.
	UnnamedSSID = "--"

	// MaxSignal is the strongest signal quality still offered. Networks
	// reporting more than this are left out of the available list.
	MaxSignal = 75
)

var scanArgs = []string{"--fields", "SSID,SIGNAL", "device", "wifi", "list"}

var ssidSignalRE = regexp.MustCompile(`(\S+)\s+(\d+)`)

// ScannedNetwork is one row of the wifi list table.
type ScannedNetwork struct {
	SSID   string
	Signal int
}

func (c *Client) AvailableNetworks(ctx context.Context) ([]string, error) {
	res, err := c.run(ctx, scanArgs...)
	if err != nil {
		return nil, errors.Annotate(err, "listing wifi networks")
	}
	return FilterNetworks(ParseNetworkList(res.Stdout)), nil
}

// ParseNetworkList reads the SSID,SIGNAL table. Lines that do not
// carry an SSID followed by a number, including the header, are
// skipped.
func ParseNetworkList(out string) []ScannedNetwork {
	var networks []ScannedNetwork
	for _, line := range lines(out) {
		m := ssidSignalRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		signal, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		networks = append(networks, ScannedNetwork{SSID: m[1], Signal: signal})
	}
	return networks
}

// FilterNetworks drops unnamed networks and those above MaxSignal,
// keeping scan order.
func FilterNetworks(scanned []ScannedNetwork) []string {
	available := []string{}
	for _, n := range scanned {
		if n.SSID == UnnamedSSID {
			continue
		}
		if n.Signal > MaxSignal {
			continue
		}
		available = append(available, n.SSID)
	}
	return available
}
