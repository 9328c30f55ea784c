package table

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseCSVTrimsHeaders(t *testing.T) {
	tbl, warns, err := ParseCSV(" Customer , Parent SKU \nAcme,TSHIRT1\n")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if tbl.Headers[0] != "Customer" || tbl.Headers[1] != "Parent SKU" {
		t.Fatalf("headers not trimmed: %v", tbl.Headers)
	}
}

func TestParseCSVRaggedRows(t *testing.T) {
	tbl, _, err := ParseCSV("A,B,C\n1,2\n1,2,3,4\n")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Rows))
	}
	if tbl.Rows[0]["C"] != "" {
		t.Fatalf("short row not padded: %v", tbl.Rows[0])
	}
	if tbl.Rows[1]["C"] != "3" {
		t.Fatalf("long row not truncated to headers: %v", tbl.Rows[1])
	}
}

func TestParseCSVEmpty(t *testing.T) {
	if _, _, err := ParseCSV(""); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestNormalizeUppercasesSKUColumns(t *testing.T) {
	tbl, _, err := ParseCSV("Customer,Parent SKU,Notes\n Acme , tshirt1 , keep Case \n")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	tbl.Normalize()
	row := tbl.Rows[0]
	if row["Customer"] != "Acme" {
		t.Errorf("cell not trimmed: %q", row["Customer"])
	}
	if row["Parent SKU"] != "TSHIRT1" {
		t.Errorf("SKU column not upper-cased: %q", row["Parent SKU"])
	}
	if row["Notes"] != "keep Case" {
		t.Errorf("non-SKU column changed case: %q", row["Notes"])
	}
}

func TestFindColumn(t *testing.T) {
	tbl := &Table{Headers: []string{"Customer", "Ship Date"}}
	if h, ok := tbl.FindColumn("ship date"); !ok || h != "Ship Date" {
		t.Fatalf("case-insensitive lookup failed: %q %v", h, ok)
	}
	if _, ok := tbl.FindColumn("Missing"); ok {
		t.Fatal("unexpected match")
	}
}

func TestReadFileCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.csv")
	if err := os.WriteFile(path, []byte("Customer,Parent SKU\nAcme,T1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tbl, _, err := ReadFile(path)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(tbl.Rows) != 1 || tbl.Rows[0]["Customer"] != "Acme" {
		t.Fatalf("unexpected table: %+v", tbl)
	}
}
