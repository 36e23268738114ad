package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/karmanyte/matlens/diagram"
)

var catalogFile string

var rootCmd = &cobra.Command{
	Use:   "matlens",
	Short: "Interactive diagrams of matrix arithmetic",
	Long: `matlens renders interactive, didactic diagrams of matrix arithmetic:
multiplication with the dot product worked out term by term, transposition
with mirrored axes, and row-/column-major packing of a matrix into a flat
literal.

Diagrams come from a built-in catalog or a YAML definition file.`,
}

// Execute runs the root command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "YAML catalog file (default: built-in set)")
}

// loadCatalog builds the catalog from --catalog or the built-in definitions.
func loadCatalog() (*diagram.Catalog, error) {
	defs := diagram.DefaultDefinitions()
	if catalogFile != "" {
		loaded, err := diagram.LoadDefinitionsFile(catalogFile)
		if err != nil {
			return nil, err
		}
		defs = loaded
	}

	return diagram.NewCatalog(defs)
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
