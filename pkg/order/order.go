package order

import "strings"

// RawRow is one line of the input matrix, parsed but never mutated.
type RawRow struct {
	// Line is the 1-based line number in the source file (header is line 1).
	Line       int
	Customer   string
	Parent     string
	ShipDate   string
	Notes      string
	Quantities map[string]string
}

// Order is a contiguous run of rows sharing one customer. The customer and
// ship-date text come from the row that opened the order.
type Order struct {
	Customer string
	ShipDate string
	Rows     []RawRow

	notes []string
}

// Notes returns the order's consolidated rep notes, joined in row order.
func (o *Order) Notes() string {
	return strings.Join(o.notes, " | ")
}

// LineItem is one (parent, size, quantity) tuple exploded from a row.
type LineItem struct {
	Parent string
	Size   string
	Qty    int
}

// LineItems explodes every row of the order, in row order.
func (o *Order) LineItems(cols []SizeColumn) []LineItem {
	var items []LineItem
	for _, r := range o.Rows {
		items = append(items, r.Explode(cols)...)
	}
	return items
}
