// List command for the stockroom CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/shelftools/stockroom/internal/menu"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items with stock values and a total",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := loadInventory()
		if err != nil {
			fail(err)
		}

		if flagJSON {
			return printJSON(st.List())
		}
		menu.RenderTable(os.Stdout, st)
		return nil
	},
}
