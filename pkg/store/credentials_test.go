package store

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/juju/errors"
)

func writeFile(c *qt.C, content string) string {
	path := filepath.Join(c.TempDir(), "networks.json")
	c.Assert(os.WriteFile(path, []byte(content), 0600), qt.IsNil)
	return path
}

func TestLoad(t *testing.T) {
	c := qt.New(t)
	path := writeFile(c, `{"Guest": "pw1", "HomeNet": "hunter2"}`)

	creds, err := NewCredentialFile(path).Load()
	c.Assert(err, qt.IsNil)
	c.Assert(creds, qt.DeepEquals, map[string]string{"Guest": "pw1", "HomeNet": "hunter2"})
}

func TestLoadMissingFile(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(c.TempDir(), "missing.json")

	creds, err := NewCredentialFile(path).Load()
	c.Assert(creds, qt.IsNil)
	c.Assert(errors.Is(err, errors.NotFound), qt.IsTrue)
	c.Assert(err, qt.ErrorMatches, `credential store .*missing.json not found`)
}

func TestLoadInvalid(t *testing.T) {
	for name, content := range map[string]string{
		"not json":      `{"Guest": `,
		"wrong shape":   `["Guest", "pw1"]`,
		"non string pw": `{"Guest": 12}`,
		"null":          `null`,
	} {
		t.Run(name, func(t *testing.T) {
			c := qt.New(t)
			_, err := NewCredentialFile(writeFile(c, content)).Load()
			c.Assert(err, qt.ErrorMatches, `.*credential store .*networks.json.*`)
			c.Assert(errors.Is(err, errors.NotFound), qt.IsFalse)
		})
	}
}

func TestLoadRereadsFile(t *testing.T) {
	c := qt.New(t)
	path := writeFile(c, `{"Guest": "pw1"}`)
	f := NewCredentialFile(path)

	creds, err := f.Load()
	c.Assert(err, qt.IsNil)
	c.Assert(creds, qt.HasLen, 1)

	c.Assert(os.WriteFile(path, []byte(`{"Guest": "pw2", "Cafe": "latte"}`), 0600), qt.IsNil)
	creds, err = f.Load()
	c.Assert(err, qt.IsNil)
	c.Assert(creds, qt.DeepEquals, map[string]string{"Guest": "pw2", "Cafe": "latte"})
}

func TestSortedSSIDs(t *testing.T) {
	c := qt.New(t)
	c.Assert(SortedSSIDs(map[string]string{"b": "1", "a": "2", "c": "3"}), qt.DeepEquals, []string{"a", "b", "c"})
	c.Assert(SortedSSIDs(nil), qt.DeepEquals, []string{})
}
