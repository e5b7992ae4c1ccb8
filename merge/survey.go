package merge

import (
	"fmt"
	"strings"

	"github.com/uitlabs/laptop-dataprep/table"
)

// SurveyEntry is one respondent's answer set, projected down to the
// fields the merge needs. Read-only after construction.
type SurveyEntry struct {
	NormalizedModel string
	Major           string
	Activities      string
	ProgramList     string
}

// surveyColumns maps the projected fields back to the verbose question
// headers the form export writes.
type surveyColumns struct {
	Model       string
	Major       string
	Activities  string
	ProgramList string
}

// bindSurveyColumns locates the survey questions by header keyword.
// The export writes full question text into the header row, so columns
// are found by case-folded containment, not by exact name. Every
// keyword of an entry must appear in the same header.
func bindSurveyColumns(headers []string) (surveyColumns, error) {
	find := func(keywords ...string) (string, error) {
		for _, h := range headers {
			folded := strings.ToLower(h)
			found := true
			for _, kw := range keywords {
				if !strings.Contains(folded, kw) {
					found = false
					break
				}
			}
			if found {
				return h, nil
			}
		}
		return "", fmt.Errorf(`no header contains "%s"`, strings.Join(keywords, `" and "`))
	}

	var cols surveyColumns
	var err error
	if cols.Model, err = find("laptop model"); err != nil {
		return cols, err
	}
	if cols.Major, err = find("major"); err != nil {
		return cols, err
	}
	if cols.Activities, err = find("activities"); err != nil {
		return cols, err
	}
	if cols.ProgramList, err = find("specialized software", "list"); err != nil {
		return cols, err
	}
	return cols, nil
}

// LoadSurvey projects raw survey rows down to SurveyEntry values,
// preserving their order. An unmappable header aborts the merge before
// any output is written.
func LoadSurvey(t table.Table) ([]SurveyEntry, error) {
	cols, err := bindSurveyColumns(t.Headers)
	if err != nil {
		return nil, err
	}
	entries := make([]SurveyEntry, 0, len(t.Rows))
	for _, row := range t.Rows {
		entries = append(entries, SurveyEntry{
			NormalizedModel: Normalize(row[cols.Model]),
			Major:           row[cols.Major],
			Activities:      row[cols.Activities],
			ProgramList:     row[cols.ProgramList],
		})
	}
	return entries, nil
}
