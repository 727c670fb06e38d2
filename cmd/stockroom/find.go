// Find command for the stockroom CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelftools/stockroom/internal/menu"
)

var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Look up an item by name",
	Long:  `Find looks up a single item by its name, matched case-insensitively.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := loadInventory()
		if err != nil {
			fail(err)
		}

		item, ok := st.FindByName(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "not found: %q\n", args[0])
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(item)
		}
		menu.RenderItem(os.Stdout, item)
		return nil
	},
}
