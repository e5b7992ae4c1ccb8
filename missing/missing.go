// Package missing counts null/empty/sentinel cells per column of a
// loaded table and renders the report the downstream notebooks expect.
package missing

import (
	"fmt"
	"io"
	"strings"

	"github.com/uitlabs/laptop-dataprep/table"
)

// Sentinel spellings counted as missing, compared after trimming and
// case folding. Unlike the merge imputer this list is folded: the
// analyzer runs over arbitrary exports, not just our own catalog.
var sentinels = map[string]struct{}{
	"nan":     {},
	"none":    {},
	"null":    {},
	"missing": {},
	"":        {},
}

// Report holds per-column missing-cell counts for one file.
type Report struct {
	TotalRows int
	Columns   []ColumnCount
}

// ColumnCount pairs a column with its missing-cell count.
type ColumnCount struct {
	Name    string
	Missing int
}

// Analyze counts absent and sentinel cells per column, in header order.
func Analyze(t table.Table) Report {
	counts := make(map[string]int, len(t.Headers))
	for _, row := range t.Rows {
		for _, h := range t.Headers {
			v := strings.ToLower(strings.TrimSpace(row[h]))
			if _, ok := sentinels[v]; ok {
				counts[h]++
			}
		}
	}
	rep := Report{TotalRows: len(t.Rows)}
	for _, h := range t.Headers {
		rep.Columns = append(rep.Columns, ColumnCount{Name: h, Missing: counts[h]})
	}
	return rep
}

// Print writes the report. Columns with no missing cells print a bare
// zero, the rest print count and percentage of total rows.
func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "Total Rows: %d\n", r.TotalRows)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Missing Values per Column:")
	for _, c := range r.Columns {
		if c.Missing > 0 {
			pct := float64(c.Missing) / float64(r.TotalRows) * 100
			fmt.Fprintf(w, "%s: %d (%.2f%%)\n", c.Name, c.Missing, pct)
		} else {
			fmt.Fprintf(w, "%s: 0\n", c.Name)
		}
	}
}
