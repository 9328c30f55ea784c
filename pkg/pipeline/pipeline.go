// Package pipeline sequences ingestion, catalog build, breakout, enrichment,
// customer matching, date normalization, and output assembly for one order
// file at a time.
package pipeline

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ost/pkg/catalog"
	"ost/pkg/config"
	"ost/pkg/contacts"
	"ost/pkg/engine"
	"ost/pkg/order"
	"ost/pkg/report"
	"ost/pkg/table"
)

// Pipeline holds the master catalog index and the customer matcher, both
// built once and reused read-only across sequential Run calls.
type Pipeline struct {
	cfg       config.Config
	index     *catalog.Index
	joinStats catalog.JoinStats
	matcher   *engine.Matcher
	salesReps map[string]string

	now func() time.Time
}

// New loads and reconciles the master data and the customer registry.
func New(cfg config.Config, masterPath, variantsPath, contactsPath string) (*Pipeline, error) {
	log.Println("Building master SKU list with external IDs...")

	master, warns, err := table.ReadFile(masterPath)
	if err != nil {
		return nil, fmt.Errorf("master catalog: %w", err)
	}
	logWarnings(masterPath, warns)
	master.Normalize()

	variants, warns, err := table.ReadFile(variantsPath)
	if err != nil {
		return nil, fmt.Errorf("external-ID export: %w", err)
	}
	logWarnings(variantsPath, warns)
	variants.Normalize()

	records, stats, err := catalog.BuildRecords(master, variants, catalog.Options{
		StatusColumns: cfg.Exclusions.StatusColumns,
		StatusValue:   cfg.Exclusions.StatusValue,
		Collection:    cfg.Exclusions.Collection,
		SKUSubstring:  cfg.Exclusions.SKUSubstring,
	})
	if err != nil {
		return nil, err
	}
	ix := catalog.BuildIndex(records)
	log.Printf("External-ID join: %d/%d SKUs matched (%.1f%%); %d catalog records indexed",
		stats.Matched, stats.Total, stats.Percent(), ix.Len())

	registry, err := contacts.Load(contactsPath)
	if err != nil {
		return nil, fmt.Errorf("contacts registry: %w", err)
	}
	log.Printf("Loaded %d contacts", len(registry))

	reps := make(map[string]string, len(cfg.SalesReps))
	for prefix, name := range cfg.SalesReps {
		reps[strings.ToUpper(prefix)] = name
	}

	return &Pipeline{
		cfg:       cfg,
		index:     ix,
		joinStats: stats,
		matcher:   engine.NewMatcher(registry),
		salesReps: reps,
		now:       time.Now,
	}, nil
}

// Run processes one order file start to finish and writes its output file.
// The returned summary is populated even on partial runs; a nil summary means
// the run failed on a structural error before any processing happened.
func (p *Pipeline) Run(orderPath string) (*report.Summary, error) {
	sum := report.New(filepath.Base(orderPath))
	sum.CatalogTotal = p.joinStats.Total
	sum.CatalogMatched = p.joinStats.Matched

	tbl, warns, err := table.ReadFile(orderPath)
	if err != nil {
		return nil, err
	}
	logWarnings(orderPath, warns)
	tbl.Normalize()
	sum.Rows = len(tbl.Rows)

	sizeCols, err := order.DetectSizeColumns(tbl.Headers, p.index.Sizes(), p.cfg.SizeAliases)
	if err != nil {
		return nil, err
	}

	orders, err := order.FromTable(tbl, sizeCols)
	if err != nil {
		return nil, err
	}
	sum.Orders = len(orders)

	salesperson, prefix, known := p.salesperson(orderPath)
	if !known {
		sum.UnknownRep = true
		sum.RepPrefix = prefix
		log.Printf("WARN: unknown salesperson prefix %q in file %q; using %q", prefix, filepath.Base(orderPath), salesperson)
	}

	var out []OutputRow
	for _, o := range orders {
		match := p.matcher.Match(o.Customer)
		if match.Tier == engine.TierNone {
			sum.AddUnmatchedCustomer(o.Customer, match.Suggestion)
		}

		shipDate, defaulted := order.NormalizeShipDate(o.ShipDate, p.now())
		if defaulted {
			sum.ShipDateDefaults++
		}

		res := engine.Enrich(p.index, o.LineItems(sizeCols), p.cfg.SizeFallbacks)
		for _, c := range res.Unmatched {
			sum.AddCombo(c.Parent, c.Size)
		}
		sum.MissingExtID += res.MissingExtID

		first := true
		for _, it := range res.Items {
			row := OutputRow{
				SKU:        it.SKU,
				Quantity:   it.Qty,
				ExternalID: it.ExtID,
			}
			if first {
				row.Salesperson = salesperson
				row.SalesTeam = p.cfg.SalesTeam
				row.Name = o.Customer
				row.ID = match.ID
				row.Tags = p.cfg.Tag
				row.RepNotes = repNotes(shipDate, match.Annotation, o.Notes())
				first = false
			}
			out = append(out, row)
		}
	}
	sum.OutputRows = len(out)

	outPath := p.outputPath(orderPath)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	if err := WriteCSV(outPath, out); err != nil {
		return nil, err
	}
	log.Printf("Wrote %d rows -> %s", len(out), outPath)

	return sum, nil
}

// repNotes combines the ship date, the customer-match annotation, and the
// order's consolidated notes into the first-row rep-notes string.
func repNotes(shipDate, annotation, notes string) string {
	parts := []string{"Ship: " + shipDate}
	if annotation != "" {
		parts = append(parts, annotation)
	}
	if notes != "" {
		parts = append(parts, notes)
	}
	return strings.Join(parts, " | ")
}

// salesperson infers the rep from the filename prefix: the token before the
// first '-' or '.' is looked up whole, then by its first two characters.
func (p *Pipeline) salesperson(path string) (name, prefix string, known bool) {
	stem, _, _ := strings.Cut(filepath.Base(path), ".")
	token, _, _ := strings.Cut(stem, "-")
	prefix = strings.ToUpper(token)

	if name, ok := p.salesReps[prefix]; ok {
		return name, prefix, true
	}
	if len(prefix) > 2 {
		if name, ok := p.salesReps[prefix[:2]]; ok {
			return name, prefix[:2], true
		}
	}
	return "Unknown", prefix, false
}

func (p *Pipeline) outputPath(orderPath string) string {
	base := filepath.Base(orderPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(p.cfg.OutputDir, "output-"+stem+".csv")
}

func logWarnings(path string, warns []table.ParseWarning) {
	for _, w := range warns {
		log.Printf("WARN: %s row %d: %s (skipped)", filepath.Base(path), w.Row, w.Message)
	}
}
