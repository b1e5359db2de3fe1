package utils

import (
	"runtime/debug"
	"strings"
)

// version is set via ldflags on release builds.
var version string

// GetVersion returns the build version, falling back to Go's module
// build info, with any leading "v" stripped.
func GetVersion() string {
	v := version
	if v == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v = info.Main.Version
		} else {
			v = "unknown"
		}
	}
	return strings.TrimPrefix(v, "v")
}
