package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog entries",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		printError("load catalog", err)
		return err
	}
	defs := cat.Definitions()
	for i, def := range defs {
		fmt.Printf("%d. %s (%s)\n", i+1, def.Name, def.Kind)
	}

	return nil
}
