// Package version reports the build version of filterpanel.
package version

import "runtime/debug"

// version is set at build time with
// -ldflags "-X github.com/rshade/filterpanel/pkg/version.version=v1.2.3".
var version = "" //nolint:gochecknoglobals // Set via ldflags.

// devVersion is reported for builds without version information.
const devVersion = "dev"

// GetVersion returns the ldflags version, the module version of an installed
// binary, or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return devVersion
}
