package utils

import (
	"runtime/debug"
	"strings"
)

// version is injected via ldflags on release builds.
var version string

// GetVersion returns the running version, falling back to Go build info
// when no ldflags value was injected. Any leading "v" is stripped.
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
