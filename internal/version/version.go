// Package version exposes build-time version information for the CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// BuildInfo bundles version, git and toolchain details.
type BuildInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information for the running binary. When the binary
// was built without ldflags, the git commit is recovered from the embedded
// VCS metadata if available.
func Get() BuildInfo {
	commit := GitCommit
	if commit == "unknown" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range bi.Settings {
				if setting.Key == "vcs.revision" {
					commit = setting.Value
				}
			}
		}
	}

	return BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: commit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Full returns a multi-line human-readable version report.
func Full() string {
	info := Get()

	var b strings.Builder
	fmt.Fprintf(&b, "textprogressbar %s\n", info.Version)
	fmt.Fprintf(&b, "  Build Date: %s\n", info.BuildDate)
	fmt.Fprintf(&b, "  Git Commit: %s\n", info.GitCommit)
	fmt.Fprintf(&b, "  Go Version: %s\n", info.GoVersion)
	fmt.Fprintf(&b, "  Platform:   %s\n", info.Platform)
	return b.String()
}
