// Package version reports the cellprefs build version.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/cellprefs/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/cellprefs/internal/version.Commit=abc123"
//
// Otherwise they are filled from the module and VCS build info, falling back
// to "dev-<timestamp>" and "unknown".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(info)
	}
	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills whichever of Version and Commit are still empty.
// A module version from "go install ...@vX" wins over the VCS date.
func fromBuildInfo(info *debug.BuildInfo) {
	var revision, modified, vcsTime string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if Commit == "" && revision != "" {
		Commit = revision
		if len(Commit) > 7 {
			Commit = Commit[:7]
		}
		if modified == "true" {
			Commit += "-dirty"
		}
	}

	if Version != "" {
		return
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		Version = v
		return
	}
	if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
		Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
	}
}

// Full returns the version string including the commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
