package menu

import (
	"fmt"
	"io"

	"github.com/shelftools/stockroom/pkg/store"
	"github.com/shelftools/stockroom/pkg/types"
)

const tableSep = "  -----------------------------------------------------------------\n"

// RenderTable prints the store as an aligned table with a per-item stock
// value column and a TOTAL row. Money columns round to two decimals for
// display only.
func RenderTable(w io.Writer, st *store.Store) {
	items := st.List()
	if len(items) == 0 {
		fmt.Fprintln(w, "  (inventory is empty)")
		return
	}

	fmt.Fprintf(w, "\n  %-30s %8s %10s %14s\n", "Name", "Qty", "Price ($)", "Value ($)")
	fmt.Fprint(w, tableSep)
	for _, item := range items {
		fmt.Fprintf(w, "  %-30s %8d %10.2f %14.2f\n", item.Name, item.Quantity, item.Price, item.Value())
	}
	fmt.Fprint(w, tableSep)
	fmt.Fprintf(w, "  %-30s %8s %10s %14.2f\n\n", "TOTAL", "", "", st.TotalValue())
}

// RenderItem prints a single item with its stock value.
func RenderItem(w io.Writer, item types.Item) {
	fmt.Fprintf(w, "  %-30s qty=%-6d price=$%.2f  stock value=$%.2f\n",
		item.Name, item.Quantity, item.Price, item.Value())
}
