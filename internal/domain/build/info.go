// Package build describes the running binary.
package build

import (
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

// Info identifies a build. Release builds set the fields with ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Resolve fills the fields ldflags left at their defaults from the module
// and VCS data embedded by the Go toolchain, so `go install` builds still
// report something useful.
func Resolve(version, commit, date string) Info {
	info := Info{Version: version, Commit: commit, BuildDate: date, GoVersion: runtime.Version()}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = info.withEmbedded(bi)
	}
	return info
}

func (i Info) withEmbedded(bi *debug.BuildInfo) Info {
	if (i.Version == "" || i.Version == "dev") && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && (i.Commit == "" || i.Commit == unknown):
			i.Commit = s.Value
		case s.Key == "vcs.time" && (i.BuildDate == "" || i.BuildDate == unknown):
			i.BuildDate = s.Value
		}
	}
	return i
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/kkc-shortcuts"
}
