package store

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/juju/errors"

	wifiwatch "github.com/dogeorg/wifiwatch/pkg"
)

var _ wifiwatch.CredentialSource = &CredentialFile{}

// CredentialFile is the operator maintained JSON object mapping
// SSIDs to passwords. It is re-read on every Load so edits made
// while the watcher runs are picked up on the next cycle.
type CredentialFile struct {
	Path string
}

func NewCredentialFile(path string) *CredentialFile {
	return &CredentialFile{Path: path}
}

func (f *CredentialFile) Load() (map[string]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("credential store %s", f.Path)
		}
		return nil, errors.Annotatef(err, "reading credential store %s", f.Path)
	}

	var credentials map[string]string
	if err := json.Unmarshal(data, &credentials); err != nil {
		return nil, errors.Annotatef(err, "parsing credential store %s", f.Path)
	}
	if credentials == nil {
		// "null" decodes without error but is not an object.
		return nil, errors.NotValidf("credential store %s", f.Path)
	}
	return credentials, nil
}

// SortedSSIDs returns the keys of credentials in lexical order.
func SortedSSIDs(credentials map[string]string) []string {
	ssids := make([]string, 0, len(credentials))
	for ssid := range credentials {
		ssids = append(ssids, ssid)
	}
	sort.Strings(ssids)
	return ssids
}
