// Package version provides centralized version information for testscaffold.
//
// Build-time injection:
//
//	-ldflags "-X testscaffold/internal/version.version=v1.0.0 -X testscaffold/internal/version.commit=abc123 -X testscaffold/internal/version.buildTime=2025-01-01T00:00:00Z"
package version

import (
	"fmt"
	"io"
)

// These variables are set via ldflags during build.
//
//nolint:gochecknoglobals // Required for build-time injection via ldflags.
var (
	version   string
	commit    string
	buildTime string
)

// ApplicationName is the name displayed in version output.
const ApplicationName = "testscaffold"

// Default values used when build information is not available.
const (
	DefaultVersion   = "dev"
	DefaultCommit    = "unknown"
	DefaultBuildTime = "unknown"
)

// Info holds resolved version information.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
}

// Get resolves the build-time variables, falling back to defaults.
func Get() Info {
	info := Info{Version: version, Commit: commit, BuildTime: buildTime}
	if info.Version == "" {
		info.Version = DefaultVersion
	}
	if info.Commit == "" {
		info.Commit = DefaultCommit
	}
	if info.BuildTime == "" {
		info.BuildTime = DefaultBuildTime
	}
	return info
}

// GetVersion returns the resolved version string only.
func GetVersion() string {
	return Get().Version
}

// FormatShort returns just the version number.
func (i Info) FormatShort() string {
	return i.Version
}

// FormatFull returns the multi-line version output.
func (i Info) FormatFull() string {
	return fmt.Sprintf("%s %s\ncommit: %s\nbuilt:  %s\n",
		ApplicationName, i.Version, i.Commit, i.BuildTime)
}

// Write renders the version info to w, short or full.
func (i Info) Write(w io.Writer, short bool) error {
	out := i.FormatFull()
	if short {
		out = i.FormatShort() + "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}
