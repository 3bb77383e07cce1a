package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tacogips/stubgen/internal/stub/catalog"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available stub types",
	Long: `List the stub types found in the stub directory.

Each entry shows its menu number, label, identifier and file extensions.

Examples:
  stubgen list
  stubgen list --stubs ./Templates`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFromFlags(cmd)
	if err != nil {
		return err
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	if globalQuiet {
		return nil
	}
	printCatalog(cmd.OutOrStdout(), cat)
	return nil
}

// printCatalog writes the numbered stub menu.
func printCatalog(out io.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(out, formatHeader("Stubs in "+cat.Dir()))
	for i, e := range cat.Entries() {
		fmt.Fprintf(out, "%d. %s %s %s\n", i+1, e.Label,
			formatMuted("("+e.Identifier+")"), strings.Join(e.Extensions(), " "))
	}
}
