// Package build provides build-time information for the CLI application.
// Version is read from the VERSION file or set via ldflags during build.
package build

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Values overridable via ldflags:
// -X github.com/tacogips/stubgen/internal/build.version=x.y.z
var (
	version   string
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Version returns the application version.
// Priority: ldflags > embedded VERSION file
func Version() string {
	if version != "" {
		return version
	}
	return strings.TrimSpace(embeddedVersion)
}

// GitCommit returns the commit the binary was built from.
func GitCommit() string {
	return gitCommit
}

// BuildDate returns the build timestamp.
func BuildDate() string {
	return buildDate
}

// Set overrides the build information, typically from main's ldflags variables.
// Empty values are ignored.
func Set(v, commit, date string) {
	if v != "" && v != "dev" {
		version = v
	}
	if commit != "" {
		gitCommit = commit
	}
	if date != "" {
		buildDate = date
	}
}
