package catalog

import "sort"

// Index provides lookup of catalog records by (parent, size) and by parent.
// It is immutable once built and safe to reuse across sequential runs.
type Index struct {
	byKey    map[string]*Record
	byParent map[string][]*Record
	sizes    []string
}

func indexKey(parent, size string) string {
	return parent + "\x00" + size
}

// BuildIndex deduplicates records on (parent, size) and builds the lookups.
// Tie-break is deterministic: a record with an external ID beats one without,
// then a record with a UPC, then the first seen in file order.
func BuildIndex(records []Record) *Index {
	ix := &Index{
		byKey:    make(map[string]*Record, len(records)),
		byParent: make(map[string][]*Record),
	}

	order := make([]string, 0, len(records))
	for i := range records {
		rec := &records[i]
		key := indexKey(rec.Parent, rec.Size)
		existing, ok := ix.byKey[key]
		if !ok {
			ix.byKey[key] = rec
			order = append(order, key)
			continue
		}
		if rank(rec) > rank(existing) {
			ix.byKey[key] = rec
		}
	}

	sizeSet := map[string]bool{}
	for _, key := range order {
		rec := ix.byKey[key]
		ix.byParent[rec.Parent] = append(ix.byParent[rec.Parent], rec)
		sizeSet[rec.Size] = true
	}
	for s := range sizeSet {
		ix.sizes = append(ix.sizes, s)
	}
	sort.Strings(ix.sizes)
	return ix
}

func rank(r *Record) int {
	n := 0
	if r.ExtID != "" {
		n += 2
	}
	if r.UPC != "" {
		n++
	}
	return n
}

// Lookup returns the record for an exact (parent, size) key.
func (ix *Index) Lookup(parent, size string) (*Record, bool) {
	rec, ok := ix.byKey[indexKey(parent, size)]
	return rec, ok
}

// Parent returns all records under a parent SKU, in first-seen order.
func (ix *Index) Parent(parent string) []*Record {
	return ix.byParent[parent]
}

// Sizes returns the distinct size vocabulary of the catalog, sorted.
func (ix *Index) Sizes() []string {
	return ix.sizes
}

// Len returns the number of (parent, size) keys in the index.
func (ix *Index) Len() int {
	return len(ix.byKey)
}
