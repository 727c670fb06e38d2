// Total command for the stockroom CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Show the total inventory value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := loadInventory()
		if err != nil {
			fail(err)
		}

		if flagJSON {
			return printJSON(map[string]float64{"total_value": st.TotalValue()})
		}
		fmt.Printf("Total inventory value: $%.2f\n", st.TotalValue())
		return nil
	},
}
