package contacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"ost/pkg/table"
)

func TestFromTable(t *testing.T) {
	tbl := &table.Table{
		Headers: []string{"Name", "ID", "Is a Company"},
		Rows: []table.Row{
			{"Name": "Acme Co", "ID": "101", "Is a Company": "True"},
			{"Name": "John Smith", "ID": "102", "Is a Company": "False"},
			{"Name": "", "ID": "103", "Is a Company": "True"}, // nameless rows dropped
		},
	}
	list, err := FromTable(tbl)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(list))
	}
	if !list[0].IsCompany || list[0].ID != "101" {
		t.Fatalf("unexpected first contact: %+v", list[0])
	}
	if list[1].IsCompany {
		t.Fatalf("individual flagged as company: %+v", list[1])
	}
}

func TestFromTableMissingColumns(t *testing.T) {
	tbl := &table.Table{Headers: []string{"Name"}}
	if _, err := FromTable(tbl); err == nil {
		t.Fatal("expected error for missing ID column")
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.csv")
	data := "Name,ID,Is a Company\nAcme Co,101,True\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	list, err := Load(path)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Acme Co" {
		t.Fatalf("unexpected contacts: %+v", list)
	}
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.db")

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	const schema = `CREATE TABLE contacts (name TEXT, id TEXT, is_company INTEGER)`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	rows := []struct {
		name      string
		id        string
		isCompany int
	}{
		{"Acme Co", "101", 1},
		{"John Smith", "102", 0},
	}
	for _, r := range rows {
		if _, err := db.Exec(`INSERT INTO contacts (name, id, is_company) VALUES (?, ?, ?)`, r.name, r.id, r.isCompany); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(list))
	}
	if list[0].Name != "Acme Co" || !list[0].IsCompany {
		t.Fatalf("unexpected first contact: %+v", list[0])
	}
	if list[1].IsCompany {
		t.Fatalf("individual flagged as company: %+v", list[1])
	}
}
