package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time using -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
)

// Product is the product token sent in the default User-Agent header.
const Product = "resourcekit"

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Dirty     bool   `json:"dirty"`
}

// Get returns the build information, filling unset fields from the
// binary's embedded build settings.
func Get() Info {
	info := Info{Version: Version, GitCommit: GitCommit}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = shortCommit(s.Value)
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// Short returns the version with the abbreviated commit, e.g. "1.2.0-3f9c2ab".
func (i Info) Short() string {
	if i.GitCommit == "" {
		return i.Version
	}
	v := fmt.Sprintf("%s-%s", i.Version, i.GitCommit)
	if i.Dirty {
		v += "-dirty"
	}
	return v
}

// UserAgent returns the default User-Agent header value, e.g.
// "resourcekit/1.2.0".
func UserAgent() string {
	return Product + "/" + Version
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
