// Update command for the stockroom CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shelftools/stockroom/pkg/types"
)

var updateCmd = &cobra.Command{
	Use:   "update <name> <quantity>",
	Short: "Set an item's stock to an absolute level",
	Long: `Update sets the named item's quantity to an absolute value. Zero is
valid and marks the item as out of stock without deleting it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			fail(fmt.Errorf("%w: %q", types.ErrInvalidQuantity, args[1]))
		}

		st, path, err := loadInventory()
		if err != nil {
			fail(err)
		}

		if err := st.UpdateQuantity(args[0], qty); err != nil {
			fail(err)
		}
		if err := saveInventory(st, path); err != nil {
			fail(err)
		}

		fmt.Printf("%q quantity set to %d.\n", args[0], qty)
		return nil
	},
}
