package catalog

// Record identifies one sellable unit: a size-specific child SKU under a
// parent, optionally carrying the UPC and the external ID assigned by the
// downstream import system. ExtID is empty when the catalog row failed to
// join against the external-ID export.
type Record struct {
	Parent string
	Size   string
	SKU    string
	UPC    string
	ExtID  string
}

// JoinStats reports how many catalog SKUs found an external ID.
type JoinStats struct {
	Total   int
	Matched int
}

// Percent returns the match rate as a percentage, 0 for an empty catalog.
func (s JoinStats) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Matched) / float64(s.Total) * 100
}
