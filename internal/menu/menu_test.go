package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shelftools/stockroom/pkg/store"
)

// runScript feeds the given lines to a session over st and returns the
// session result and everything it printed.
func runScript(t *testing.T, st *store.Store, lines ...string) (bool, string) {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	save := New(st, in, &out).Run()
	return save, out.String()
}

func TestSessionAddAndSave(t *testing.T) {
	st := store.New()
	save, out := runScript(t, st, "2", "Pear", "10", "2.00", "7")
	if !save {
		t.Fatal("save & exit must report save=true")
	}
	if !strings.Contains(out, `Added "Pear"`) {
		t.Fatalf("missing add confirmation in output:\n%s", out)
	}

	item, ok := st.FindByName("Pear")
	if !ok {
		t.Fatal("expected Pear in store")
	}
	if item.Quantity != 10 || item.Price != 2.00 {
		t.Fatalf("got qty=%d price=%v", item.Quantity, item.Price)
	}
}

func TestSessionRestock(t *testing.T) {
	st := store.New()
	if err := st.Add("Pear", 10, 2.00); err != nil {
		t.Fatal(err)
	}

	save, out := runScript(t, st, "2", "pear", "5", "2.50", "8")
	if save {
		t.Fatal("exit without saving must report save=false")
	}
	if !strings.Contains(out, `Restocked "Pear"`) {
		t.Fatalf("missing restock confirmation in output:\n%s", out)
	}

	item, _ := st.FindByName("Pear")
	if item.Quantity != 15 || item.Price != 2.50 {
		t.Fatalf("got qty=%d price=%v", item.Quantity, item.Price)
	}
}

func TestSessionCancellations(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"blank name cancels add", []string{"2", "", "8"}, "Cancelled."},
		{"bad quantity cancels add", []string{"2", "Pear", "lots", "8"}, "Invalid quantity - cancelled."},
		{"zero quantity cancels add", []string{"2", "Pear", "0", "8"}, "Invalid quantity - cancelled."},
		{"bad price cancels add", []string{"2", "Pear", "10", "1.2.3", "8"}, "Invalid price - cancelled."},
		{"bad quantity cancels update", []string{"4", "Pear", "-3", "8"}, "Invalid quantity - cancelled."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.New()
			_, out := runScript(t, st, tt.lines...)
			if !strings.Contains(out, tt.want) {
				t.Fatalf("output missing %q:\n%s", tt.want, out)
			}
			if st.Len() != 0 {
				t.Fatalf("cancelled action mutated the store: %d items", st.Len())
			}
		})
	}
}

func TestSessionRemoveAndUpdate(t *testing.T) {
	st := store.New()
	if err := st.Add("Pear", 10, 2.50); err != nil {
		t.Fatal(err)
	}

	save, _ := runScript(t, st, "4", "Pear", "0", "3", "Pear", "7")
	if !save {
		t.Fatal("expected save=true")
	}
	if st.Len() != 0 {
		t.Fatalf("expected empty store, got %d items", st.Len())
	}
}

func TestSessionSearch(t *testing.T) {
	st := store.New()
	if err := st.Add("Apple", 100, 0.99); err != nil {
		t.Fatal(err)
	}

	_, out := runScript(t, st, "5", "apple", "5", "Ghost", "8")
	if !strings.Contains(out, "Apple") || !strings.Contains(out, "stock value=$99.00") {
		t.Fatalf("missing search hit in output:\n%s", out)
	}
	if !strings.Contains(out, `Not found: "Ghost"`) {
		t.Fatalf("missing search miss in output:\n%s", out)
	}
}

func TestSessionUnknownChoice(t *testing.T) {
	_, out := runScript(t, store.New(), "9", "8")
	if !strings.Contains(out, "Unknown option") {
		t.Fatalf("missing unknown-option message:\n%s", out)
	}
}

func TestSessionEOFExitsWithoutSaving(t *testing.T) {
	var out bytes.Buffer
	save := New(store.New(), strings.NewReader(""), &out).Run()
	if save {
		t.Fatal("EOF must not save")
	}
}

func TestRenderTable(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		var out bytes.Buffer
		RenderTable(&out, store.New())
		if !strings.Contains(out.String(), "(inventory is empty)") {
			t.Fatalf("unexpected output:\n%s", out.String())
		}
	})

	t.Run("items and total row", func(t *testing.T) {
		st := store.New()
		if err := st.Add("Apple", 100, 0.99); err != nil {
			t.Fatal(err)
		}
		if err := st.Add("Bread", 40, 3.50); err != nil {
			t.Fatal(err)
		}

		var out bytes.Buffer
		RenderTable(&out, st)
		got := out.String()
		for _, want := range []string{"Apple", "Bread", "TOTAL", "239.00"} {
			if !strings.Contains(got, want) {
				t.Fatalf("output missing %q:\n%s", want, got)
			}
		}
	})
}
