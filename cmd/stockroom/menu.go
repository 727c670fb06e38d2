// Interactive menu command for the stockroom CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelftools/stockroom/internal/menu"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the interactive inventory menu",
	Long: `Menu opens the interactive session: the inventory file is loaded once,
all actions run against the in-memory store, and the file is rewritten only
when the session ends with "save & exit".`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	st, path, err := loadInventory()
	if err != nil {
		fail(err)
	}
	fmt.Printf("Loaded %d item(s) from %s.\n", st.Len(), path)

	save := menu.New(st, os.Stdin, os.Stdout).Run()
	if !save {
		return nil
	}

	if err := saveInventory(st, path); err != nil {
		fail(err)
	}
	fmt.Printf("%d item(s) saved to %s.\n", st.Len(), path)
	return nil
}
