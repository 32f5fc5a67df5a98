package id3tag

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the id3tag library.
const Version = "0.1.0"

// Variables populated at build time via -ldflags, e.g.
//
//	go build -ldflags="-X github.com/simonhull/id3tag.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/id3tag.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

// BuildInfo describes the running build.
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetBuildInfo returns version details. When the commit wasn't injected
// with -ldflags it falls back to the VCS revision Go embeds in binaries.
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if info.GitCommit == "unknown" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				switch s.Key {
				case "vcs.revision":
					info.GitCommit = s.Value
				case "vcs.time":
					if info.BuildTime == "unknown" {
						info.BuildTime = s.Value
					}
				}
			}
		}
	}

	return info
}

// String formats the build info on one line.
func (b BuildInfo) String() string {
	return fmt.Sprintf("id3tag %s (commit %s, built %s, %s)", b.Version, b.GitCommit, b.BuildTime, b.GoVersion)
}
