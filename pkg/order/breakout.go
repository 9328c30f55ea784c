package order

import (
	"fmt"
	"strconv"
	"strings"

	"ost/pkg/table"
)

// DanglingRowError means a continuation row (blank customer) appeared before
// any order was opened. The sheet is structurally broken; fixing it by hand
// beats guessing which order the row belongs to.
type DanglingRowError struct {
	Line int
}

func (e *DanglingRowError) Error() string {
	return fmt.Sprintf("row %d continues an order, but no order is open (blank Customer before the first order row)", e.Line)
}

// FromTable folds the sheet's rows into Orders in file order. A non-empty
// Customer cell starts a new order; a blank one extends the open order.
// Rows that are entirely empty (no customer, parent, notes, or quantities)
// are padding and are skipped.
func FromTable(tbl *table.Table, cols []SizeColumn) ([]*Order, error) {
	custCol, ok := tbl.FindColumn("Customer")
	if !ok {
		return nil, fmt.Errorf("order sheet missing required column %q", "Customer")
	}
	parentCol, ok := tbl.FindColumn("Parent SKU")
	if !ok {
		return nil, fmt.Errorf("order sheet missing required column %q", "Parent SKU")
	}
	shipCol, ok := tbl.FindColumn("Ship Date")
	if !ok {
		return nil, fmt.Errorf("order sheet missing required column %q", "Ship Date")
	}
	notesCol, _ := tbl.FindColumn("Rep Notes")

	var (
		orders []*Order
		cur    *Order
	)
	for i, row := range tbl.Rows {
		raw := RawRow{
			Line:       i + 2,
			Customer:   strings.TrimSpace(row[custCol]),
			Parent:     strings.ToUpper(strings.TrimSpace(row[parentCol])),
			ShipDate:   strings.TrimSpace(row[shipCol]),
			Notes:      strings.TrimSpace(row[notesCol]),
			Quantities: make(map[string]string, len(cols)),
		}
		for _, c := range cols {
			raw.Quantities[c.Header] = strings.TrimSpace(row[c.Header])
		}

		if raw.empty() {
			continue
		}

		if raw.Customer != "" {
			cur = &Order{Customer: raw.Customer, ShipDate: raw.ShipDate}
			orders = append(orders, cur)
		} else if cur == nil {
			return nil, &DanglingRowError{Line: raw.Line}
		}

		cur.Rows = append(cur.Rows, raw)
		if raw.Notes != "" {
			cur.notes = append(cur.notes, raw.Notes)
		}
	}
	return orders, nil
}

func (r RawRow) empty() bool {
	if r.Customer != "" || r.Parent != "" || r.Notes != "" || r.ShipDate != "" {
		return false
	}
	for _, q := range r.Quantities {
		if q != "" {
			return false
		}
	}
	return true
}

// Explode converts the row into long form: one LineItem per size column with
// a quantity greater than zero. Blank, zero, and non-numeric cells produce no
// item. A row without a parent SKU produces nothing regardless of quantities.
func (r RawRow) Explode(cols []SizeColumn) []LineItem {
	if r.Parent == "" {
		return nil
	}
	var items []LineItem
	for _, c := range cols {
		qty := parseQty(r.Quantities[c.Header])
		if qty <= 0 {
			continue
		}
		items = append(items, LineItem{Parent: r.Parent, Size: c.Size, Qty: qty})
	}
	return items
}

func parseQty(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// Sheets sometimes export quantities as floats ("2.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}
