// Package version reports the stamper build version.
package version

import (
	"runtime/debug"
	"strings"
)

// version is set at build time with -ldflags "-X github.com/indaco/stamper/internal/version.version=1.2.3".
var version = ""

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the version without a leading "v".
// It falls back to the module version recorded by "go install", then "dev".
func GetVersion() string {
	if version != "" {
		return strings.TrimPrefix(version, "v")
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}
	return "dev"
}
