// Package version exposes build identification for logs and the health
// endpoint.
package version

import (
	"fmt"
	"runtime/debug"
)

// AppName is the application identifier used in logs and version strings.
const AppName = "maestro"

// gitCommitOverride can be set at build time:
//
//	go build -ldflags "-X github.com/taskfleet/maestro/pkg/version.gitCommitOverride=abc123"
var gitCommitOverride string

// GitCommit returns the short git commit hash of the build.
func GitCommit() string {
	if gitCommitOverride != "" {
		return gitCommitOverride
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				if len(setting.Value) >= 8 {
					return setting.Value[:8]
				}
				return setting.Value
			}
		}
	}
	return "unknown"
}

// Full returns the "name/commit" version string.
func Full() string {
	return fmt.Sprintf("%s/%s", AppName, GitCommit())
}
