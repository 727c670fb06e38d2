// Remove command for the stockroom CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove an item from the inventory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, path, err := loadInventory()
		if err != nil {
			fail(err)
		}

		if err := st.Remove(args[0]); err != nil {
			fail(err)
		}
		if err := saveInventory(st, path); err != nil {
			fail(err)
		}

		fmt.Printf("Removed %q.\n", args[0])
		return nil
	},
}
