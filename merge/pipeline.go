package merge

import (
	"fmt"

	"github.com/uitlabs/laptop-dataprep/table"
)

// Run merges the hardware catalog with the usage survey and writes the
// result to outPath. The returned table is the merged catalog, for
// callers that want to feed it into a further sink.
func Run(laptopPath, surveyPath, outPath string) (table.Table, error) {
	surveyRaw, err := table.Load(surveyPath)
	if err != nil {
		return table.Table{}, err
	}
	entries, err := LoadSurvey(surveyRaw)
	if err != nil {
		return table.Table{}, fmt.Errorf("survey %s: %w", surveyPath, err)
	}

	catalog, err := table.Load(laptopPath)
	if err != nil {
		return table.Table{}, err
	}
	for _, row := range catalog.Rows {
		ImputeHardware(row)
		Annotate(row, entries)
	}
	catalog.Headers = append(catalog.Headers, ColMajor, ColActivities, ColProgramList)

	if err := table.WriteCSV(outPath, catalog); err != nil {
		return table.Table{}, err
	}
	return catalog, nil
}
