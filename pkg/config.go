package wifiwatch

import (
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/juju/errors"
)

const (
	DefaultInterface    = "wlan1"
	DefaultNetworksFile = "networks.json"
	DefaultLogFile      = "wifiwatch.log"
	DefaultNmcliPath    = "nmcli"

	// WatchInterval is the pause between two watch cycles.
	WatchInterval = 300 * time.Second
)

// Environment variables consulted by LoadConfig.
const (
	EnvInterface    = "WIFIWATCH_INTERFACE"
	EnvNetworksFile = "WIFIWATCH_NETWORKS"
	EnvLogFile      = "WIFIWATCH_LOG_FILE"
	EnvNmcliPath    = "WIFIWATCH_NMCLI"
)

type Config struct {
	Interface    string
	NetworksFile string
	LogFile      string
	NmcliPath    string
	Interval     time.Duration
	Verbose      bool
}

func DefaultConfig() Config {
	return Config{
		Interface:    DefaultInterface,
		NetworksFile: DefaultNetworksFile,
		LogFile:      DefaultLogFile,
		NmcliPath:    DefaultNmcliPath,
		Interval:     WatchInterval,
	}
}

// LoadConfig builds a Config from the defaults, an optional dotenv file
// and the process environment, in increasing order of precedence.
// A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	values := map[string]string{}

	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			values = fileValues
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, errors.Annotatef(err, "reading %s", envFile)
		}
	}

	for _, key := range []string{EnvInterface, EnvNetworksFile, EnvLogFile, EnvNmcliPath} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	return ApplyEnv(DefaultConfig(), values), nil
}

// ApplyEnv overlays the recognised WIFIWATCH_* keys of env onto c.
// Empty values are ignored, except for the log file.
func ApplyEnv(c Config, env map[string]string) Config {
	if v := env[EnvInterface]; v != "" {
		c.Interface = v
	}
	if v := env[EnvNetworksFile]; v != "" {
		c.NetworksFile = v
	}
	if v, ok := env[EnvLogFile]; ok {
		// An explicitly empty log file disables file logging.
		c.LogFile = v
	}
	if v := env[EnvNmcliPath]; v != "" {
		c.NmcliPath = v
	}
	return c
}
