// Package sink mirrors a prepared table into SQLite so the merged
// dataset can be queried without re-parsing the CSV.
package sink

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/uitlabs/laptop-dataprep/table"
)

// TableName is the SQLite table the merged dataset lands in.
const TableName = "laptops"

// WriteSQLite replaces the laptops table in the database at path with
// the given table, one TEXT column per CSV column. All rows go in one
// transaction, so the table is either fully replaced or untouched.
func WriteSQLite(path string, t table.Table) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	cols := make([]string, len(t.Headers))
	names := make([]string, len(t.Headers))
	marks := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		// Quoted identifiers: catalog headers carry spaces and parens.
		names[i] = fmt.Sprintf("%q", h)
		cols[i] = names[i] + " TEXT"
		marks[i] = "?"
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", TableName)); err != nil {
		return err
	}
	if _, err := tx.Exec(fmt.Sprintf("CREATE TABLE %s (%s)", TableName, strings.Join(cols, ", "))); err != nil {
		return err
	}

	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		TableName, strings.Join(names, ", "), strings.Join(marks, ", "),
	))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range t.Rows {
		vals := make([]any, len(t.Headers))
		for i, h := range t.Headers {
			vals[i] = row[h]
		}
		if _, err := stmt.Exec(vals...); err != nil {
			return err
		}
	}
	return tx.Commit()
}
