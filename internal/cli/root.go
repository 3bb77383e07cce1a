package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/stubgen/internal/debug"
)

// Global flags
var (
	globalConfigPath string
	globalStubsDir   string
	globalUsersFile  string
	globalWorkDir    string
	globalNoColor    bool
	globalQuiet      bool
	globalDebug      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stubgen",
	Short: "Interactive code stub generator",
	Long: `stubgen creates source files from stub templates.

Running stubgen starts an interactive session that:
  1. Asks who you are (from the user list)
  2. Lists the stub types found in the stub directory
  3. Asks for a file name and a short description
  4. Generates the files and moves them to a directory you choose

Stub templates are files such as ClassStub.h and ClassStub.cpp. The stub
name, NAME, "Insert description here..." and MM/DD/YYYY are replaced in
every generated file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
	RunE: runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer debug.Sync()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		printError(err)
		debug.Sync()
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&globalConfigPath, FlagConfig, "c", "", DescConfig)
	rootCmd.PersistentFlags().StringVar(&globalStubsDir, FlagStubs, "", DescStubs)
	rootCmd.PersistentFlags().StringVar(&globalUsersFile, FlagUsers, "", DescUsers)
	rootCmd.PersistentFlags().StringVar(&globalWorkDir, FlagWorkDir, "", DescWorkDir)
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFromFlags(cmd)
	if err != nil {
		return err
	}
	return RunSession(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
}

// printError prints an error message to stderr
func printError(err error) {
	printErrorMsg(fmt.Sprintf("Error: %v", err))
}
