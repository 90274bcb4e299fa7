package tui

import (
	"fmt"

	"github.com/akyairhashvil/tock/internal/config"
)

// Set at build time via -ldflags "-X".
var (
	AppVersion = config.Version
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

// VersionLabel describes the running build.
func VersionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}
