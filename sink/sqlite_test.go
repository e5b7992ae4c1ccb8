package sink

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uitlabs/laptop-dataprep/table"
)

func TestWriteSQLiteRoundTrip(t *testing.T) {
	tab := table.Table{
		Headers: []string{"model_name", "ram(GB)", "ProgramList"},
		Rows: []map[string]string{
			{"model_name": "MacBook Pro 14", "ram(GB)": "16", "ProgramList": "Xcode"},
			{"model_name": "IdeaPad 3", "ram(GB)": "8", "ProgramList": ""},
		},
	}
	path := filepath.Join(t.TempDir(), "merged.db")
	require.NoError(t, WriteSQLite(path, tab))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM laptops").Scan(&n))
	assert.Equal(t, 2, n)

	var ram string
	require.NoError(t, db.QueryRow(`SELECT "ram(GB)" FROM laptops WHERE model_name = ?`, "MacBook Pro 14").Scan(&ram))
	assert.Equal(t, "16", ram)
}

func TestWriteSQLiteReplacesPreviousTable(t *testing.T) {
	tab := table.Table{
		Headers: []string{"model_name"},
		Rows:    []map[string]string{{"model_name": "Aspire 5"}},
	}
	path := filepath.Join(t.TempDir(), "merged.db")
	require.NoError(t, WriteSQLite(path, tab))
	require.NoError(t, WriteSQLite(path, tab))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM laptops").Scan(&n))
	assert.Equal(t, 1, n)
}
