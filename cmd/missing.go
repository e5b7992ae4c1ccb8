package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uitlabs/laptop-dataprep/missing"
	"github.com/uitlabs/laptop-dataprep/table"
)

var missingFile string

var missingCmd = &cobra.Command{
	Use:   "missing",
	Short: "Count missing values per column of a delimited file",
	// Faults are reported to stdout; the command always exits zero.
	Run: runMissing,
}

func init() {
	missingCmd.Flags().StringVarP(&missingFile, "file", "f", "", "file to analyze (default the merged output in the dataset dir)")
}

func runMissing(cmd *cobra.Command, args []string) {
	path := datasetPath(missingFile, defaultMergedName)
	fmt.Printf("Analyzing %s...\n", path)

	t, err := table.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Printf("File not found: %s\n", path)
		} else {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}
	if len(t.Rows) == 0 {
		fmt.Println("No data found.")
		return
	}
	missing.Analyze(t).Print(os.Stdout)
}
