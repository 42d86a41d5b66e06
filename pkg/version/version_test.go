package version

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestGetDefaultsRelease(t *testing.T) {
	c := qt.New(t)
	c.Patch(&release, "")
	c.Assert(Get().Release, qt.Equals, "unknown")

	c.Patch(&release, "1.2.0")
	c.Assert(Get().Release, qt.Equals, "1.2.0")
}
