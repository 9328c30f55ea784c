package catalog

import (
	"fmt"
	"strings"

	"ost/pkg/table"
)

// Options configures the exclusion filters applied after the join.
type Options struct {
	StatusColumns []string
	StatusValue   string
	Collection    string
	SKUSubstring  string
}

// badSentinels are key values that mean "no data" in hand-maintained sheets.
var badSentinels = map[string]bool{
	"":     true,
	"N/A":  true,
	"#N/A": true,
	"NA":   true,
	"NONE": true,
}

// BuildRecords left-joins the master catalog against the external-ID export
// (master.SKU = export."Internal Reference") and applies the exclusion
// filters. The returned records may still contain (parent, size) duplicates;
// BuildIndex resolves those.
func BuildRecords(master, variants *table.Table, opts Options) ([]Record, JoinStats, error) {
	cols := make(map[string]string, 3)
	for _, req := range []string{"SKU (Parent)", "Size Abbreviation", "SKU"} {
		h, ok := master.FindColumn(req)
		if !ok {
			return nil, JoinStats{}, fmt.Errorf("master catalog missing required column %q", req)
		}
		cols[req] = h
	}

	extIDs, err := extIDLookup(variants)
	if err != nil {
		return nil, JoinStats{}, err
	}

	var (
		records []Record
		stats   JoinStats
		seen    = map[string]bool{}
	)
	for _, row := range master.Rows {
		sku := strings.ToUpper(strings.TrimSpace(row[cols["SKU"]]))
		extID := extIDs[sku]

		// Join stats count distinct child SKUs, matched or not.
		if sku != "" && !seen[sku] {
			seen[sku] = true
			stats.Total++
			if extID != "" {
				stats.Matched++
			}
		}

		if excluded(row, opts) {
			continue
		}

		parent := strings.ToUpper(strings.TrimSpace(row[cols["SKU (Parent)"]]))
		size := strings.ToUpper(strings.TrimSpace(row[cols["Size Abbreviation"]]))
		if badSentinels[parent] || badSentinels[size] {
			continue
		}

		records = append(records, Record{
			Parent: parent,
			Size:   size,
			SKU:    sku,
			UPC:    strings.TrimSpace(row["UPC"]),
			ExtID:  extID,
		})
	}
	return records, stats, nil
}

// extIDLookup builds the "Internal Reference" → ID map from the export.
// Duplicate references keep the first row carrying a non-empty ID.
func extIDLookup(variants *table.Table) (map[string]string, error) {
	refCol, ok := variants.FindColumn("Internal Reference")
	if !ok {
		return nil, fmt.Errorf("external-ID export missing required column %q", "Internal Reference")
	}
	idCol, ok := variants.FindColumn("ID")
	if !ok {
		return nil, fmt.Errorf("external-ID export missing required column %q", "ID")
	}

	lookup := make(map[string]string, len(variants.Rows))
	for _, row := range variants.Rows {
		ref := strings.ToUpper(strings.TrimSpace(row[refCol]))
		if ref == "" {
			continue
		}
		id := strings.TrimSpace(row[idCol])
		if existing, dup := lookup[ref]; dup && existing != "" {
			continue
		}
		if _, dup := lookup[ref]; dup && id == "" {
			continue
		}
		lookup[ref] = id
	}
	return lookup, nil
}

func excluded(row table.Row, opts Options) bool {
	for _, col := range opts.StatusColumns {
		if opts.StatusValue != "" && strings.EqualFold(strings.TrimSpace(row[col]), opts.StatusValue) {
			return true
		}
	}
	if opts.Collection != "" && strings.EqualFold(strings.TrimSpace(row["Collection"]), opts.Collection) {
		return true
	}
	if opts.SKUSubstring != "" && strings.Contains(strings.ToUpper(row["SKU"]), strings.ToUpper(opts.SKUSubstring)) {
		return true
	}
	return false
}
