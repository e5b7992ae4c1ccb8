package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSVStripsBOMAndPadsShortRows(t *testing.T) {
	path := writeFile(t, "in.csv", "\xEF\xBB\xBFmodel_name,ram(GB),graphics\nMacBook Air,8\n")

	tab, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"model_name", "ram(GB)", "graphics"}, tab.Headers)
	require.Len(t, tab.Rows, 1)
	assert.Equal(t, "MacBook Air", tab.Rows[0]["model_name"])
	assert.Equal(t, "", tab.Rows[0]["graphics"])
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	in := Table{
		Headers: []string{"model_name", "ram(GB)", "resolution (pixels)"},
		Rows: []map[string]string{
			{"model_name": "ThinkPad T14", "ram(GB)": "16", "resolution (pixels)": "1920 x 1080"},
			{"model_name": "Aspire 5", "ram(GB)": "8", "resolution (pixels)": ""},
		},
	}
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteCSV(path, in))

	out, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, in.Headers, out.Headers)
	assert.Equal(t, in.Rows, out.Rows)
}

func TestLoadDispatchesXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey.xlsx")
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	for i, rec := range [][]string{
		{"What is the laptop model you primarily use?", "Major"},
		{"MacBook Pro", "Software Engineering"},
	} {
		for c, v := range rec {
			cell, err := excelize.CoordinatesToCellName(c+1, i+1)
			require.NoError(t, err)
			require.NoError(t, x.SetCellStr(sheet, cell, v))
		}
	}
	require.NoError(t, x.SaveAs(path))

	tab, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"What is the laptop model you primarily use?", "Major"}, tab.Headers)
	require.Len(t, tab.Rows, 1)
	assert.Equal(t, "MacBook Pro", tab.Rows[0]["What is the laptop model you primarily use?"])
}
