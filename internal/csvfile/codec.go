// Package csvfile reads and writes the inventory file. The format is one
// item per line as name,quantity,price, UTF-8, newline-terminated. Blank
// lines and lines starting with '#' are comments. There is no quoting or
// escaping: a name containing a comma is not representable.
package csvfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/shelftools/stockroom/pkg/store"
	"github.com/shelftools/stockroom/pkg/types"
)

// header is the comment line written at the top of every saved file. Load
// skips it like any other comment.
const header = "# Stockroom inventory - format: name,quantity,price"

// Warning records a line that Load skipped and why. Skipped lines never
// fail the load; the caller decides whether and where to report them.
type Warning struct {
	Line   int
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Reason)
}

// Result is the outcome of a Load: the populated store, the number of
// records accepted, and the per-line warnings accumulated on the way.
type Result struct {
	Store    *store.Store
	Loaded   int
	Warnings []Warning
}

// Load reads the inventory file at path into a fresh store. A missing file
// is the documented startup default and yields an empty store with no
// error; any other open or read failure aborts the load. Malformed lines,
// out-of-range fields, and duplicate names are skipped with a warning, the
// first occurrence of a name winning. Once the store is full the remaining
// lines are dropped after a single warning.
func Load(path string) (Result, error) {
	res := Result{Store: store.New()}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, nil
		}
		return res, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	// ReadString grows with the line, so an oversized record reaches the
	// name-length check below instead of failing the whole read the way a
	// fixed-limit scanner would.
	reader := bufio.NewReader(f)
	lineno := 0
	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return res, fmt.Errorf("reading %s: %w", path, readErr)
		}
		if raw != "" {
			lineno++
			if full := res.addLine(lineno, raw); full {
				break
			}
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
	}

	res.Loaded = res.Store.Len()
	return res, nil
}

// addLine validates one raw input line and inserts the record when it
// passes, recording a warning otherwise. It returns true once the store is
// full, which stops the read loop.
func (r *Result) addLine(lineno int, raw string) bool {
	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, "#") {
		return false
	}

	if r.Store.Len() >= r.Store.Capacity() {
		r.warn(lineno, fmt.Sprintf("capacity (%d) reached; remaining lines ignored", r.Store.Capacity()))
		return true
	}

	item, reason := parseLine(line)
	if reason != "" {
		r.warn(lineno, reason)
		return false
	}
	if _, ok := r.Store.FindByName(item.Name); ok {
		r.warn(lineno, fmt.Sprintf("duplicate name %q", item.Name))
		return false
	}
	if err := r.Store.Insert(item); err != nil {
		// Unreachable given the checks above; kept so a future rule
		// added to Insert cannot silently drop records.
		r.warn(lineno, err.Error())
	}
	return false
}

// parseLine splits and validates one record line. It returns the parsed
// item, or a non-empty reason describing the first violated rule.
func parseLine(line string) (types.Item, string) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return types.Item{}, fmt.Sprintf("malformed record (%d fields, want 3)", len(fields))
	}

	name := strings.TrimSpace(fields[0])
	qtyStr := strings.TrimSpace(fields[1])
	priceStr := strings.TrimSpace(fields[2])

	if len(name) == 0 || len(name) > types.MaxNameLen {
		return types.Item{}, "invalid name length"
	}

	qty, err := strconv.Atoi(qtyStr)
	if err != nil || qty < 0 || qty > types.MaxQuantity {
		return types.Item{}, fmt.Sprintf("invalid quantity %q", qtyStr)
	}

	// The inverted comparison also rejects NaN, which ParseFloat accepts.
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || !(price >= 0 && price <= types.MaxPrice) {
		return types.Item{}, fmt.Sprintf("invalid price %q", priceStr)
	}

	return types.Item{Name: name, Quantity: qty, Price: price}, ""
}

// Save overwrites the file at path with the store's current state: the
// header comment, then one line per item in store order, prices formatted
// to exactly two decimals. The write is a plain truncate and rewrite; a
// failure part way through leaves a partial file behind, which the loader's
// per-line tolerance copes with.
func Save(st *store.Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	buf := bufio.NewWriter(f)
	fmt.Fprintln(buf, header)
	for _, item := range st.List() {
		fmt.Fprintf(buf, "%s,%d,%.2f\n", item.Name, item.Quantity, item.Price)
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func (r *Result) warn(line int, reason string) {
	r.Warnings = append(r.Warnings, Warning{Line: line, Reason: reason})
}
