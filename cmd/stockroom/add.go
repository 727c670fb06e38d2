// Add command for the stockroom CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shelftools/stockroom/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <quantity> <price>",
	Short: "Add a new item or restock an existing one",
	Long: `Add records a delivery of an item. If the name is already stocked the
existing record is restocked: the quantity grows by the given amount and
the price is replaced. Names are matched case-insensitively.

Example:
  stockroom add "Sourdough Loaf" 12 6.50`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		qty, err := strconv.Atoi(args[1])
		if err != nil {
			fail(fmt.Errorf("%w: %q", types.ErrInvalidQuantity, args[1]))
		}
		price, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			fail(fmt.Errorf("%w: %q", types.ErrInvalidPrice, args[2]))
		}

		st, path, err := loadInventory()
		if err != nil {
			fail(err)
		}

		_, existed := st.FindByName(name)
		if err := st.Add(name, qty, price); err != nil {
			fail(err)
		}
		if err := saveInventory(st, path); err != nil {
			fail(err)
		}

		item, _ := st.FindByName(name)
		if flagJSON {
			return printJSON(item)
		}
		if existed {
			fmt.Printf("Restocked %q: qty=%d, price=%.2f\n", item.Name, item.Quantity, item.Price)
		} else {
			fmt.Printf("Added %q: qty=%d, price=%.2f\n", item.Name, item.Quantity, item.Price)
		}
		return nil
	},
}
