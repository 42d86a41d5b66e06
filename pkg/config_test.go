package wifiwatch

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func clearEnv(c *qt.C) {
	for _, key := range []string{EnvInterface, EnvNetworksFile, EnvLogFile, EnvNmcliPath} {
		c.Unsetenv(key)
	}
}

func TestDefaultConfig(t *testing.T) {
	c := qt.New(t)
	c.Assert(DefaultConfig(), qt.DeepEquals, Config{
		Interface:    "wlan1",
		NetworksFile: "networks.json",
		LogFile:      "wifiwatch.log",
		NmcliPath:    "nmcli",
		Interval:     WatchInterval,
	})
	c.Assert(WatchInterval.Seconds(), qt.Equals, float64(300))
}

func TestApplyEnv(t *testing.T) {
	c := qt.New(t)
	got := ApplyEnv(DefaultConfig(), map[string]string{
		EnvInterface:    "wlan0",
		EnvNetworksFile: "",
		EnvLogFile:      "",
		"UNRELATED":     "x",
	})
	want := DefaultConfig()
	want.Interface = "wlan0"
	want.LogFile = ""
	c.Assert(got, qt.DeepEquals, want)
}

func TestLoadConfigMissingEnvFile(t *testing.T) {
	c := qt.New(t)
	clearEnv(c)

	config, err := LoadConfig(filepath.Join(c.TempDir(), ".env"))
	c.Assert(err, qt.IsNil)
	c.Assert(config, qt.DeepEquals, DefaultConfig())
}

func TestLoadConfigPrecedence(t *testing.T) {
	c := qt.New(t)
	clearEnv(c)
	path := filepath.Join(c.TempDir(), ".env")
	c.Assert(os.WriteFile(path, []byte("WIFIWATCH_INTERFACE=wlan5\nWIFIWATCH_NETWORKS=/etc/wifiwatch/networks.json\n"), 0600), qt.IsNil)
	c.Setenv(EnvInterface, "wlan6")

	config, err := LoadConfig(path)
	c.Assert(err, qt.IsNil)
	c.Assert(config.Interface, qt.Equals, "wlan6")
	c.Assert(config.NetworksFile, qt.Equals, "/etc/wifiwatch/networks.json")
	c.Assert(config.LogFile, qt.Equals, DefaultLogFile)
}

func TestLoadConfigUnreadableEnvFile(t *testing.T) {
	c := qt.New(t)
	clearEnv(c)

	// a directory cannot be read as a dotenv file
	_, err := LoadConfig(c.TempDir())
	c.Assert(err, qt.ErrorMatches, `reading .*: .*`)
}
