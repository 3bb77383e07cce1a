package main

import (
	"github.com/tacogips/stubgen/internal/build"
	"github.com/tacogips/stubgen/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

func main() {
	// Set version info from build-time variables
	build.Set(version, gitCommit, buildDate)

	// Execute the root command
	cli.Execute()
}
