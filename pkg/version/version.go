package version

import (
	"github.com/carlmjohnson/versioninfo"
)

/* injected with -ldflags "-X github.com/dogeorg/wifiwatch/pkg/version.release=..." */

var release string

type VersionInfoGit struct {
	Commit string `json:"commit"`
	Dirty  bool   `json:"dirty"`
}

type VersionInfo struct {
	Release string         `json:"release"`
	Git     VersionInfoGit `json:"git"`
}

func Get() *VersionInfo {
	r := release
	if r == "" {
		r = "unknown"
	}

	return &VersionInfo{
		Release: r,
		Git: VersionInfoGit{
			Commit: versioninfo.Revision,
			Dirty:  versioninfo.DirtyBuild,
		},
	}
}
