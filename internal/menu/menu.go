// Package menu implements the interactive inventory session: the numbered
// action menu, input prompts, and table rendering. The session reads from
// an injected reader and writes to an injected writer, so the loop runs the
// same against a terminal or a test script.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shelftools/stockroom/pkg/store"
	"github.com/shelftools/stockroom/pkg/types"
)

const menuText = `
  1. List all items
  2. Add / restock item
  3. Remove item
  4. Update quantity
  5. Search item
  6. Show total inventory value
  7. Save & exit
  8. Exit without saving
`

// Session drives the interactive menu over a single store. The store is
// mutated in memory only; persisting it on exit is the caller's job.
type Session struct {
	store *store.Store
	in    *bufio.Scanner
	out   io.Writer
}

// New returns a session reading commands from in and printing to out.
func New(st *store.Store, in io.Reader, out io.Writer) *Session {
	return &Session{
		store: st,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loops over the menu until the user exits or input ends. It returns
// true when the user chose "save & exit", false otherwise.
func (s *Session) Run() bool {
	for {
		fmt.Fprint(s.out, menuText)
		choice, ok := s.readLine("Choice: ")
		if !ok {
			return false
		}

		switch choice {
		case "1":
			RenderTable(s.out, s.store)
		case "2":
			s.actionAdd()
		case "3":
			s.actionRemove()
		case "4":
			s.actionUpdate()
		case "5":
			s.actionSearch()
		case "6":
			fmt.Fprintf(s.out, "  Total inventory value: $%.2f\n", s.store.TotalValue())
		case "7":
			return true
		case "8":
			fmt.Fprintln(s.out, "Exiting without saving.")
			return false
		default:
			fmt.Fprintf(s.out, "Unknown option %q. Try 1-8.\n", choice)
		}
	}
}

// readLine prompts and returns the next trimmed input line. The second
// return value is false once input is exhausted.
func (s *Session) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Session) actionAdd() {
	name, ok := s.readLine("  Item name  : ")
	if !ok || name == "" {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	qtyStr, ok := s.readLine("  Quantity   : ")
	if !ok {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	qty, err := parseQuantity(qtyStr)
	if err != nil || qty == 0 {
		fmt.Fprintln(s.out, "Invalid quantity - cancelled.")
		return
	}
	priceStr, ok := s.readLine("  Price ($)  : ")
	if !ok {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	price, err := parsePrice(priceStr)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid price - cancelled.")
		return
	}

	_, existed := s.store.FindByName(name)
	if err := s.store.Add(name, qty, price); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	item, _ := s.store.FindByName(name)
	if existed {
		fmt.Fprintf(s.out, "Restocked %q: qty=%d, price=%.2f\n", item.Name, item.Quantity, item.Price)
	} else {
		fmt.Fprintf(s.out, "Added %q: qty=%d, price=%.2f\n", item.Name, item.Quantity, item.Price)
	}
}

func (s *Session) actionRemove() {
	name, ok := s.readLine("  Item name to remove: ")
	if !ok || name == "" {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	if err := s.store.Remove(name); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintf(s.out, "Removed %q.\n", name)
}

func (s *Session) actionUpdate() {
	name, ok := s.readLine("  Item name    : ")
	if !ok || name == "" {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	qtyStr, ok := s.readLine("  New quantity : ")
	if !ok {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	qty, err := parseQuantity(qtyStr)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid quantity - cancelled.")
		return
	}
	if err := s.store.UpdateQuantity(name, qty); err != nil {
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	fmt.Fprintf(s.out, "%q quantity set to %d.\n", name, qty)
}

func (s *Session) actionSearch() {
	name, ok := s.readLine("  Search name: ")
	if !ok || name == "" {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}
	item, found := s.store.FindByName(name)
	if !found {
		fmt.Fprintf(s.out, "  Not found: %q\n", name)
		return
	}
	RenderItem(s.out, item)
}

// parseQuantity parses a stock count typed by the user: a non-negative
// base-10 integer with no trailing garbage, at most types.MaxQuantity.
func parseQuantity(s string) (int, error) {
	qty, err := strconv.Atoi(s)
	if err != nil {
		return 0, types.ErrInvalidQuantity
	}
	if qty < 0 || qty > types.MaxQuantity {
		return 0, types.ErrInvalidQuantity
	}
	return qty, nil
}

// parsePrice parses a unit price typed by the user: a non-negative decimal
// number with no trailing garbage, at most types.MaxPrice.
func parsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, types.ErrInvalidPrice
	}
	if !(price >= 0 && price <= types.MaxPrice) {
		return 0, types.ErrInvalidPrice
	}
	return price, nil
}
