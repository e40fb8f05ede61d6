// Package version exposes the build metadata injected at release time.
package version

import (
	"fmt"
	"runtime"
)

// Set through -ldflags at build time; the zero values identify a source
// build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
	BuiltBy = "unknown"
)

// Info returns the full version report shown by `frameprof version`.
func Info() string {
	return fmt.Sprintf(
		"frameprof %s\nCommit: %s\nBuilt: %s\nGo: %s\nOS/Arch: %s/%s",
		Version, Commit, Date,
		runtime.Version(), runtime.GOOS, runtime.GOARCH,
	)
}

// Short returns just the version string.
func Short() string {
	return Version
}
