package mediadissect

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the mediadissect library.
const Version = "0.1.0"

// Build metadata injected via -ldflags, for example:
//
//	go build -ldflags="-X github.com/simonhull/mediadissect.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/mediadissect.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	gitCommit = ""
	buildTime = ""
)

// VersionInfo describes the library build.
type VersionInfo struct {
	Version   string // semantic version
	GitCommit string // commit hash, "unknown" when not recorded
	BuildTime string // build timestamp, "unknown" when not recorded
	GoVersion string // toolchain that built the binary
}

// GetVersionInfo reports the library version together with build metadata.
// When no ldflags values were injected, the commit and timestamp fall back
// to the VCS stamp the Go toolchain embeds in module builds.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = s.Value
				}
			}
		}
	}

	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	return info
}
