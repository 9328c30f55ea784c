package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Row maps a column header to the cell value for one data row.
type Row map[string]string

// Table is a normalized tabular file: ordered headers plus one Row per line.
type Table struct {
	Headers []string
	Rows    []Row
}

// ParseWarning represents a non-fatal issue encountered while reading a file.
type ParseWarning struct {
	Row     int
	Message string
}

// skuColumns are upper-cased during normalization so SKU joins are
// insensitive to how the sheet author typed them.
var skuColumns = []string{"Parent SKU", "SKU", "SKU (Parent)", "Size Abbreviation", "Internal Reference"}

// ReadFile reads a tabular file into a Table. Dispatch is by extension:
// .xlsx workbooks go through excelize, everything else is treated as CSV and
// run through the encoding fallback chain.
func ReadFile(path string) (*Table, []ParseWarning, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, _, err := Decode(data)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, nil, err
	}
	return ParseCSV(text)
}

// ParseCSV parses CSV text into a Table. Real-world exports are messy, so the
// reader is lenient: lazy quotes, variable field counts padded or truncated to
// the header width, and per-row parse errors demoted to warnings.
func ParseCSV(text string) (*Table, []ParseWarning, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("empty file: no header row found")
		}
		return nil, nil, fmt.Errorf("read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	tbl := &Table{Headers: headers}
	var warnings []ParseWarning
	rowNum := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			warnings = append(warnings, ParseWarning{Row: rowNum, Message: fmt.Sprintf("parse error: %v", err)})
			continue
		}
		tbl.Rows = append(tbl.Rows, rowFromRecord(headers, record))
	}
	return tbl, warnings, nil
}

func rowFromRecord(headers, record []string) Row {
	row := make(Row, len(headers))
	for i, h := range headers {
		if i < len(record) {
			row[h] = record[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

// Normalize trims every cell and upper-cases SKU-like columns in place.
// Headers are already trimmed at parse time. Numeric cells are untouched
// beyond whitespace.
func (t *Table) Normalize() {
	upper := make(map[string]bool, len(skuColumns))
	for _, h := range t.Headers {
		for _, s := range skuColumns {
			if strings.EqualFold(h, s) {
				upper[h] = true
			}
		}
	}
	for _, row := range t.Rows {
		for h, v := range row {
			v = strings.TrimSpace(v)
			if upper[h] {
				v = strings.ToUpper(v)
			}
			row[h] = v
		}
	}
}

// FindColumn returns the actual header matching name case-insensitively.
func (t *Table) FindColumn(name string) (string, bool) {
	for _, h := range t.Headers {
		if strings.EqualFold(h, name) {
			return h, true
		}
	}
	return "", false
}
