package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tacogips/stubgen/internal/build"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display version information for stubgen.

Examples:
  stubgen version
  stubgen version --short
  stubgen version --json`,
	RunE: runVersion,
}

// Version command flags
var (
	versionShort bool
	versionJSON  bool
)

func init() {
	// Flags for version
	versionCmd.Flags().BoolVar(&versionShort, FlagShort, false, "Show version number only")
	versionCmd.Flags().BoolVar(&versionJSON, FlagJSON, false, "Output as JSON")
}

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

func currentVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   build.Version(),
		GoVersion: runtime.Version(),
		Commit:    build.GitCommit(),
		BuildDate: build.BuildDate(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	return writeVersion(cmd.OutOrStdout(), currentVersionInfo(), versionShort, versionJSON)
}

func writeVersion(out io.Writer, info VersionInfo, short, asJSON bool) error {
	if short {
		fmt.Fprintln(out, info.Version)
		return nil
	}

	if asJSON {
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal version info: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	// Normal output
	fmt.Fprintf(out, "stubgen version %s\n", info.Version)
	fmt.Fprintf(out, "Built with: %s\n", info.GoVersion)
	fmt.Fprintf(out, "Commit: %s\n", info.Commit)
	fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
	fmt.Fprintf(out, "OS/Arch: %s/%s\n", info.OS, info.Arch)

	return nil
}
