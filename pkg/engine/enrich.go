// Package engine joins exploded line items against the master catalog and
// resolves customer names against the registry.
package engine

import (
	"ost/pkg/catalog"
	"ost/pkg/order"
)

// DefaultSizeFallbacks are the only defined substitutions, applied when the
// exact (parent, size) lookup misses. They are directed: S→SM never implies
// SM→S, and a fallback is never chained onto another fallback.
var DefaultSizeFallbacks = map[string]string{
	"S": "SM",
	"L": "LXL",
}

// ResolvedItem is a line item that found its catalog record.
type ResolvedItem struct {
	Parent string
	Size   string
	Qty    int
	SKU    string
	UPC    string
	ExtID  string
}

// Combo identifies a (parent, size) pair that stayed unmatched after the
// fallback chain.
type Combo struct {
	Parent string
	Size   string
}

// EnrichResult carries the resolved items plus the per-item diagnostics the
// run summary accumulates.
type EnrichResult struct {
	Items        []ResolvedItem
	Unmatched    []Combo
	MissingExtID int
}

// Enrich resolves each line item against the index, applying the fallback
// chain on a miss. Unmatched combinations are reported, not fatal; matched
// items lacking an external ID are counted separately and still emitted.
func Enrich(ix *catalog.Index, items []order.LineItem, fallbacks map[string]string) EnrichResult {
	if fallbacks == nil {
		fallbacks = DefaultSizeFallbacks
	}

	var res EnrichResult
	for _, li := range items {
		rec, ok := ix.Lookup(li.Parent, li.Size)
		if !ok {
			if sub, has := fallbacks[li.Size]; has {
				rec, ok = ix.Lookup(li.Parent, sub)
			}
		}
		if !ok {
			res.Unmatched = append(res.Unmatched, Combo{Parent: li.Parent, Size: li.Size})
			continue
		}
		if rec.ExtID == "" {
			res.MissingExtID++
		}
		res.Items = append(res.Items, ResolvedItem{
			Parent: li.Parent,
			Size:   li.Size,
			Qty:    li.Qty,
			SKU:    rec.SKU,
			UPC:    rec.UPC,
			ExtID:  rec.ExtID,
		})
	}
	return res
}
