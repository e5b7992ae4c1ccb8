package table

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is one delimited file held fully in memory: the header row in
// its original order plus one map per data row. Rows shorter than the
// header load with "" for the missing cells, so row[h] is always safe.
type Table struct {
	Path    string
	Headers []string
	Rows    []map[string]string
}

// Load reads a tabular file, picking the reader from the extension.
// Google Forms exports arrive as .xlsx, everything else here is CSV.
func Load(path string) (Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(path)
	}
	return LoadCSV(path)
}

// LoadCSV reads a CSV file whose first row is the header.
func LoadCSV(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Table{}, err
	}
	b = bytes.TrimPrefix(b, []byte{0xEF, 0xBB, 0xBF})
	r := csv.NewReader(bytes.NewReader(b))
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if errors.Is(err, io.EOF) {
		// no header row at all: an empty table, not a fault
		return Table{Path: path}, nil
	}
	if err != nil {
		return Table{}, fmt.Errorf("read header of %s: %w", path, err)
	}
	var rows []map[string]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("read %s: %w", path, err)
		}
		rows = append(rows, asRow(headers, rec))
	}
	return Table{Path: path, Headers: headers, Rows: rows}, nil
}

// LoadXLSX reads the first sheet of a workbook, first row as header.
func LoadXLSX(path string) (Table, error) {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, err
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	recs, err := x.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}
	if len(recs) == 0 {
		return Table{}, fmt.Errorf("read header of %s: sheet %q is empty", path, sheet)
	}
	headers := recs[0]
	rows := make([]map[string]string, 0, len(recs)-1)
	for _, rec := range recs[1:] {
		rows = append(rows, asRow(headers, rec))
	}
	return Table{Path: path, Headers: headers, Rows: rows}, nil
}

func asRow(headers, rec []string) map[string]string {
	row := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(rec) {
			row[h] = rec[i]
		} else {
			row[h] = ""
		}
	}
	return row
}

// WriteCSV serializes the table in header order. All records are built
// before the file is created, so a bad row never leaves a partial file.
func WriteCSV(path string, t Table) error {
	recs := make([][]string, 0, len(t.Rows)+1)
	recs = append(recs, t.Headers)
	for _, row := range t.Rows {
		rec := make([]string, len(t.Headers))
		for i, h := range t.Headers {
			rec[i] = row[h]
		}
		recs = append(recs, rec)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(recs); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
