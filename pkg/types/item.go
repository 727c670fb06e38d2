// Package types defines the Item record, its field limits, and the standard
// error values shared by the store and the file codec.
package types

// Field limits. Names are measured in bytes, not runes, to match the
// on-disk format contract.
const (
	MaxItems    = 500
	MaxNameLen  = 63
	MaxQuantity = 1_000_000
	MaxPrice    = 1e9
)

// Item is one stocked product. The name is the item's identity, compared
// case-insensitively; the store never holds two items with the same name.
type Item struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Value returns the stock value of the item: quantity times unit price.
func (i Item) Value() float64 {
	return float64(i.Quantity) * i.Price
}
