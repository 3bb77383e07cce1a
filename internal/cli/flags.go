package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig  = "config"
	FlagStubs   = "stubs"
	FlagUsers   = "users"
	FlagWorkDir = "workdir"
	FlagNoColor = "no-color"
	FlagQuiet   = "quiet"
	FlagDebug   = "debug"
	FlagShort   = "short"
	FlagJSON    = "json"

	// Flag descriptions
	DescConfig  = "Path to config file"
	DescStubs   = "Directory containing stub templates"
	DescUsers   = "User list file, one full name per line"
	DescWorkDir = "Directory files are generated in"
	DescNoColor = "Disable colored output"
	DescQuiet   = "Suppress non-error output"
	DescDebug   = "Enable debug logging"
)
