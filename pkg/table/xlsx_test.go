package table

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "orders.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadFileXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Customer", "Parent SKU", "Ship Date", "S (SM)", "M"},
		{"Acme Co", "tshirt1", "ASAP", 2, 0},
	})
	tbl, warns, err := ReadFile(path)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	tbl.Normalize()
	row := tbl.Rows[0]
	if row["Customer"] != "Acme Co" {
		t.Errorf("unexpected customer: %q", row["Customer"])
	}
	if row["Parent SKU"] != "TSHIRT1" {
		t.Errorf("SKU column not upper-cased: %q", row["Parent SKU"])
	}
	if row["S (SM)"] != "2" || row["M"] != "0" {
		t.Errorf("numeric cells not read as text: %v", row)
	}
}

func TestReadFileXLSXShortRowsPadded(t *testing.T) {
	// GetRows drops trailing empty cells, so short rows must be padded back
	// out to the header width.
	path := writeWorkbook(t, [][]interface{}{
		{"A", "B", "C"},
		{"1"},
	})
	tbl, _, err := ReadFile(path)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(tbl.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(tbl.Rows))
	}
	if tbl.Rows[0]["A"] != "1" || tbl.Rows[0]["B"] != "" || tbl.Rows[0]["C"] != "" {
		t.Fatalf("short row not padded: %v", tbl.Rows[0])
	}
}
