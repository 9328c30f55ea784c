// Package report accumulates per-run diagnostics contributed by every
// pipeline stage and logs the operator-facing summary. The collector is
// passed explicitly through the stages; there is no ambient global state.
package report

import (
	"log"
	"sort"

	"github.com/google/uuid"
)

// Combo is an unmatched (parent SKU, size) combination.
type Combo struct {
	Parent string
	Size   string
}

// UnmatchedCustomer is a customer name no registry tier matched, plus the
// nearest registry name as a triage hint.
type UnmatchedCustomer struct {
	Name       string
	Suggestion string
}

// Summary is the end-of-run report for one order file. It is always produced,
// even when some items were dropped, so operators can triage incomplete
// output without re-running.
type Summary struct {
	RunID string
	Input string

	CatalogTotal   int
	CatalogMatched int

	Orders     int
	Rows       int
	OutputRows int

	UnmatchedCombos    []Combo
	MissingExtID       int
	UnmatchedCustomers []UnmatchedCustomer
	ShipDateDefaults   int
	UnknownRep         bool
	RepPrefix          string

	comboSeen map[Combo]bool
}

// New creates a Summary for one input file with a fresh run ID.
func New(input string) *Summary {
	return &Summary{
		RunID:     uuid.NewString(),
		Input:     input,
		comboSeen: make(map[Combo]bool),
	}
}

// AddCombo records an unmatched (parent, size) combination, deduplicated.
func (s *Summary) AddCombo(parent, size string) {
	c := Combo{Parent: parent, Size: size}
	if s.comboSeen[c] {
		return
	}
	s.comboSeen[c] = true
	s.UnmatchedCombos = append(s.UnmatchedCombos, c)
}

// AddUnmatchedCustomer records a customer name that no tier matched.
func (s *Summary) AddUnmatchedCustomer(name, suggestion string) {
	for _, u := range s.UnmatchedCustomers {
		if u.Name == name {
			return
		}
	}
	s.UnmatchedCustomers = append(s.UnmatchedCustomers, UnmatchedCustomer{Name: name, Suggestion: suggestion})
}

// CatalogRate returns the external-ID join match rate in percent.
func (s *Summary) CatalogRate() float64 {
	if s.CatalogTotal == 0 {
		return 0
	}
	return float64(s.CatalogMatched) / float64(s.CatalogTotal) * 100
}

// SortedCombos returns the unmatched combinations sorted by parent, then size.
func (s *Summary) SortedCombos() []Combo {
	combos := make([]Combo, len(s.UnmatchedCombos))
	copy(combos, s.UnmatchedCombos)
	sort.Slice(combos, func(i, j int) bool {
		if combos[i].Parent != combos[j].Parent {
			return combos[i].Parent < combos[j].Parent
		}
		return combos[i].Size < combos[j].Size
	})
	return combos
}

// Log writes the run summary to the operator log.
func (s *Summary) Log() {
	log.Printf("run %s: %s: %d rows, %d orders, %d output rows", s.RunID, s.Input, s.Rows, s.Orders, s.OutputRows)
	log.Printf("run %s: catalog external-ID join: %d/%d SKUs matched (%.1f%%)", s.RunID, s.CatalogMatched, s.CatalogTotal, s.CatalogRate())

	if len(s.UnmatchedCombos) > 0 {
		for _, c := range s.SortedCombos() {
			log.Printf("WARN: run %s: unmatched combo: Parent=%s, Size=%s", s.RunID, c.Parent, c.Size)
		}
		log.Printf("WARN: run %s: %d parent/size combinations had no match in master and were dropped", s.RunID, len(s.UnmatchedCombos))
	}
	if s.MissingExtID > 0 {
		log.Printf("WARN: run %s: %d resolved SKUs have no external ID (blank in output)", s.RunID, s.MissingExtID)
	}
	for _, u := range s.UnmatchedCustomers {
		if u.Suggestion != "" {
			log.Printf("WARN: run %s: unmatched customer: %q (closest registry name: %q)", s.RunID, u.Name, u.Suggestion)
		} else {
			log.Printf("WARN: run %s: unmatched customer: %q", s.RunID, u.Name)
		}
	}
	if s.ShipDateDefaults > 0 {
		log.Printf("WARN: run %s: %d ship dates defaulted to tomorrow", s.RunID, s.ShipDateDefaults)
	}
	if s.UnknownRep {
		log.Printf("WARN: run %s: unknown salesperson prefix %q; using \"Unknown\"", s.RunID, s.RepPrefix)
	}
}
