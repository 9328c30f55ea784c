package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// OutputRow is one line of the import file. Order-level fields are populated
// only on the first row of each order; continuation rows leave them blank.
type OutputRow struct {
	Salesperson string
	SalesTeam   string
	Name        string
	ID          string
	SKU         string
	Quantity    int
	ExternalID  string
	Tags        string
	RepNotes    string
}

var outputHeaders = []string{
	"Salesperson", "Sales Team", "Name", "ID", "SKU", "Quantity", "External ID", "Tags", "Rep Notes",
}

// WriteCSV writes the output file, overwriting any prior output for the same
// input name. A header-only file is written when no rows resolved, so a run
// always leaves evidence of having completed.
func WriteCSV(path string, rows []OutputRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(outputHeaders); err != nil {
		f.Close()
		return fmt.Errorf("write output header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.Salesperson,
			r.SalesTeam,
			r.Name,
			r.ID,
			r.SKU,
			strconv.Itoa(r.Quantity),
			r.ExternalID,
			r.Tags,
			r.RepNotes,
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("write output row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush output %s: %w", path, err)
	}
	return f.Close()
}
