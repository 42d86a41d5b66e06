// Package watcher keeps the host on a known wireless network: each
// cycle checks the active connection and, when there is none, connects
// to the first visible network with stored credentials, then sleeps.
package watcher

import (
	"context"

	"github.com/juju/clock"
	"github.com/juju/errors"
	"github.com/sirupsen/logrus"

	wifiwatch "github.com/dogeorg/wifiwatch/pkg"
)

// Outcome says how a cycle ended when it did not fail.
type Outcome int

const (
	AlreadyConnected Outcome = iota
	Connected
	ConnectFailed
	NoPreferredNetwork
)

func (o Outcome) String() string {
	switch o {
	case AlreadyConnected:
		return "already connected"
	case Connected:
		return "connected"
	case ConnectFailed:
		return "connect failed"
	case NoPreferredNetwork:
		return "no preferred network"
	}
	return "unknown"
}

// Deps are the collaborators a Watcher drives.
type Deps struct {
	Inspector   wifiwatch.ConnectionInspector
	Lister      wifiwatch.NetworkLister
	Connector   wifiwatch.Connector
	Credentials wifiwatch.CredentialSource
	Clock       clock.Clock
	Logger      logrus.FieldLogger
}

type Watcher struct {
	Deps
	config wifiwatch.Config
}

func New(config wifiwatch.Config, deps Deps) *Watcher {
	if config.Interval <= 0 {
		config.Interval = wifiwatch.WatchInterval
	}
	if deps.Clock == nil {
		deps.Clock = clock.WallClock
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	return &Watcher{Deps: deps, config: config}
}

// Run repeats Cycle forever, pausing config.Interval after each one
// whatever its result. It only returns once ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	w.Logger.Infof("Watching wifi on %s every %s", w.config.Interface, w.config.Interval)
	for {
		if _, err := w.Cycle(ctx); err != nil {
			w.Logger.Errorf("An error occurred: %v", err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.Clock.After(w.config.Interval):
		}
	}
}

// Cycle performs one check and, when disconnected, at most one
// connection attempt. A failed attempt is reported by the Connector
// and is not an error here.
func (w *Watcher) Cycle(ctx context.Context) (Outcome, error) {
	ssid, connected, err := w.Inspector.ConnectedNetwork(ctx)
	if err != nil {
		return 0, errors.Annotate(err, "checking connection")
	}
	if connected {
		w.Logger.Infof("Already connected to %s.", ssid)
		return AlreadyConnected, nil
	}

	w.Logger.Info("No active connection. Scanning for available networks...")
	available, err := w.Lister.AvailableNetworks(ctx)
	if err != nil {
		return 0, errors.Trace(err)
	}
	stored, err := w.Credentials.Load()
	if err != nil {
		return 0, errors.Trace(err)
	}

	ssid, ok := FirstKnown(available, stored)
	if !ok {
		w.Logger.Info("No preferred networks found.")
		return NoPreferredNetwork, nil
	}

	w.Logger.Infof("Attempting to connect to %s...", ssid)
	if _, err := w.Connector.Connect(ctx, ssid, stored[ssid], w.config.Interface); err != nil {
		w.Logger.Debugf("Connect attempt ended: %v", err)
		return ConnectFailed, nil
	}
	return Connected, nil
}

// FirstKnown walks available in scan order and returns the first SSID
// that has an entry in stored.
func FirstKnown(available []string, stored map[string]string) (string, bool) {
	for _, ssid := range available {
		if _, ok := stored[ssid]; ok {
			return ssid, true
		}
	}
	return "", false
}
