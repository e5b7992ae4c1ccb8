package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/uitlabs/laptop-dataprep/merge"
	"github.com/uitlabs/laptop-dataprep/sink"
)

var (
	laptopFile string
	surveyFile string
	outFile    string
	sqliteFile string
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge the hardware catalog with the usage survey",
	Long: `Merge joins laptop.csv with the survey export by fuzzy model-name
matching, fills missing hardware fields, infers Major/Activities/
ProgramList for unmatched rows and writes the merged CSV.`,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVarP(&laptopFile, "laptop", "l", "", "hardware catalog CSV (default "+defaultLaptopName+" in the dataset dir)")
	mergeCmd.Flags().StringVarP(&surveyFile, "survey", "s", "", "survey export, .csv or .xlsx (default the Forms export in the dataset dir)")
	mergeCmd.Flags().StringVarP(&outFile, "out", "o", "", "merged output CSV (default "+defaultMergedName+" in the dataset dir)")
	mergeCmd.Flags().StringVar(&sqliteFile, "sqlite", "", "also mirror the merged table into this SQLite database")
}

func runMerge(cmd *cobra.Command, args []string) error {
	laptop := datasetPath(laptopFile, defaultLaptopName)
	survey := datasetPath(surveyFile, defaultSurveyName)
	out := datasetPath(outFile, defaultMergedName)

	// A missing input is reported, not raised: the run still exits 0.
	for _, f := range []string{laptop, survey} {
		if _, err := os.Stat(f); err != nil {
			log.Printf("Error: %s not found.", f)
			return nil
		}
	}

	merged, err := merge.Run(laptop, survey, out)
	if err != nil {
		return fmt.Errorf("merge: %w", err)
	}
	log.Printf("Successfully merged data to %s", out)

	if sqliteFile != "" {
		if err := sink.WriteSQLite(sqliteFile, merged); err != nil {
			return fmt.Errorf("sqlite mirror: %w", err)
		}
		log.Printf("Mirrored %d rows into %s", len(merged.Rows), sqliteFile)
	}
	return nil
}
