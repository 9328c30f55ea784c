// Package contacts loads the customer registry the matcher resolves against.
// The registry arrives either as a CSV export or as a SQLite contacts
// database, chosen by file extension.
package contacts

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"ost/pkg/table"
)

// Contact is one registry entry.
type Contact struct {
	Name      string `db:"name"`
	ID        string `db:"id"`
	IsCompany bool   `db:"is_company"`
}

// Load reads the registry from path, dispatching on extension.
func Load(path string) ([]Contact, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return FromSQLite(path)
	}
	tbl, _, err := table.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tbl.Normalize()
	return FromTable(tbl)
}

// FromTable converts a contacts CSV export. Required columns: Name, ID.
// The "Is a Company" flag accepts the export's "True" as well as 1/yes.
func FromTable(tbl *table.Table) ([]Contact, error) {
	nameCol, ok := tbl.FindColumn("Name")
	if !ok {
		return nil, fmt.Errorf("contacts file missing required column %q", "Name")
	}
	idCol, ok := tbl.FindColumn("ID")
	if !ok {
		return nil, fmt.Errorf("contacts file missing required column %q", "ID")
	}
	companyCol, _ := tbl.FindColumn("Is a Company")

	var list []Contact
	for _, row := range tbl.Rows {
		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			continue
		}
		list = append(list, Contact{
			Name:      name,
			ID:        strings.TrimSpace(row[idCol]),
			IsCompany: isTrue(row[companyCol]),
		})
	}
	return list, nil
}

func isTrue(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// FromSQLite reads the registry from a contacts database. Rowid order keeps
// tie-breaking identical to the CSV path.
func FromSQLite(path string) ([]Contact, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open contacts db %s: %w", path, err)
	}
	defer db.Close()

	var list []Contact
	const q = `SELECT name, id, is_company FROM contacts ORDER BY rowid`
	if err := db.Select(&list, q); err != nil {
		return nil, fmt.Errorf("query contacts db %s: %w", path, err)
	}
	return list, nil
}
