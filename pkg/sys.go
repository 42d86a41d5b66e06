package wifiwatch

import "context"

// see ./system/ and ./store/ for implementations

// lists visible wireless networks, already filtered
// and in the order the control utility reported them
type NetworkLister interface {
	AvailableNetworks(ctx context.Context) ([]string, error)
}

// reports the SSID of the active wireless network,
// ok is false when nothing is active
type ConnectionInspector interface {
	ConnectedNetwork(ctx context.Context) (ssid string, ok bool, err error)
}

// asks the control utility to join a network on an
// interface, an empty password joins an open network
type Connector interface {
	Connect(ctx context.Context, ssid, password, iface string) (ConnectResult, error)
}

// loads the operator owned SSID -> password map,
// a fresh read on every call
type CredentialSource interface {
	Load() (map[string]string, error)
}

// Connector returns one of these for every attempt.
type ConnectResult struct {
	SSID      string
	Interface string
	Stderr    string
}

// A wireless capable network device.
type Device struct {
	Name string
	Type string
}
