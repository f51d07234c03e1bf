// Package version records the tagcheck build version.
package version

import "runtime/debug"

// Version is the release version, overridden via ldflags on release builds.
var Version = "0.0.0-dev"

// Revision is the VCS revision the binary was built from.
var Revision = revision()

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}

	return "unknown"
}
