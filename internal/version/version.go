// Package version holds build metadata, injected at link time via
// -ldflags for release builds.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the server version reported to MCP hosts.
	Version = "1.0.0"

	buildDate = "unknown"
	gitCommit = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version, BuildDate, GitCommit, GoVersion, Platform string
}

// GetBuildInfo returns the binary's build metadata.
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
