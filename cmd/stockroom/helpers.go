// Shared helpers for stockroom CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/shelftools/stockroom/internal/csvfile"
	"github.com/shelftools/stockroom/pkg/store"
	"github.com/shelftools/stockroom/pkg/types"
)

// loadInventory resolves the inventory file path and loads it. A missing
// file yields an empty store. Per-line warnings go to stderr; they never
// fail the load. The returned path is where a later save must write.
func loadInventory() (*store.Store, string, error) {
	path, err := resolveFile()
	if err != nil {
		return nil, "", fmt.Errorf("resolve inventory file: %w", err)
	}

	res, err := csvfile.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("load inventory: %w", err)
	}
	printWarnings(res.Warnings)
	return res.Store, path, nil
}

// printWarnings reports skipped lines on stderr.
func printWarnings(warnings []csvfile.Warning) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
}

// saveInventory writes the store back to the inventory file.
func saveInventory(st *store.Store, path string) error {
	if err := csvfile.Save(st, path); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	return nil
}

// isUserError reports whether err is a validation or lookup failure caused
// by the user's input, as opposed to a system failure.
func isUserError(err error) bool {
	return errors.Is(err, types.ErrInvalidName) ||
		errors.Is(err, types.ErrInvalidQuantity) ||
		errors.Is(err, types.ErrInvalidPrice) ||
		errors.Is(err, types.ErrNotFound) ||
		errors.Is(err, types.ErrCapacityExceeded)
}

// fail prints err to stderr and exits with the matching exit code.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	if isUserError(err) {
		os.Exit(exitUserError)
	}
	os.Exit(exitSysError)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
