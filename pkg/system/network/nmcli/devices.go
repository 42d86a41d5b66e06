package nmcli

import (
	"context"
	"strings"

	"github.com/juju/errors"

	wifiwatch "github.com/dogeorg/wifiwatch/pkg"
)

const wifiType = "wifi"

var deviceArgs = []string{"-t", "-f", "DEVICE,TYPE", "device"}

func (c *Client) WifiDevices(ctx context.Context) ([]wifiwatch.Device, error) {
	res, err := c.run(ctx, deviceArgs...)
	if err != nil {
		return nil, errors.Annotate(err, "listing network devices")
	}

	wifi := []wifiwatch.Device{}
	for _, d := range ParseDevices(res.Stdout) {
		if d.Type == wifiType {
			wifi = append(wifi, d)
		}
	}
	return wifi, nil
}

// ParseDevices reads "device:type" lines, skipping any without a colon.
func ParseDevices(out string) []wifiwatch.Device {
	var devices []wifiwatch.Device
	for _, line := range lines(out) {
		name, typ, found := strings.Cut(line, ":")
		if !found || name == "" {
			continue
		}
		devices = append(devices, wifiwatch.Device{Name: name, Type: typ})
	}
	return devices
}
