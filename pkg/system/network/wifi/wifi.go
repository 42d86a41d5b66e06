package network_wifi

import (
	"github.com/juju/errors"
	"github.com/mdlayher/wifi"
)

// InterfaceLister enumerates wireless interfaces without going
// through nmcli.
type InterfaceLister interface {
	WirelessInterfaces() ([]string, error)
}

func NewInterfaceLister() InterfaceLister {
	return NL80211Lister{}
}

var _ InterfaceLister = &NL80211Lister{}

// NL80211Lister asks the kernel directly over generic netlink.
type NL80211Lister struct{}

func (NL80211Lister) WirelessInterfaces() ([]string, error) {
	client, err := wifi.New()
	if err != nil {
		return nil, errors.Annotate(err, "could not init a wifi interface client")
	}
	defer client.Close()

	ifaces, err := client.Interfaces()
	if err != nil {
		return nil, errors.Annotate(err, "could not list wifi interfaces")
	}
	return interfaceNames(ifaces), nil
}

// interfaceNames drops the nameless entries nl80211 reports for
// P2P devices and the like.
func interfaceNames(ifaces []*wifi.Interface) []string {
	names := []string{}
	for _, iface := range ifaces {
		if iface == nil || iface.Name == "" {
			continue
		}
		names = append(names, iface.Name)
	}
	return names
}
