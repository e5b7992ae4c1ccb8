package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "laptop-dataprep",
	Short: "Prepare the UIT laptop study datasets",
	Long: `laptop-dataprep merges the laptop hardware catalog with the student
usage survey export and reports missing values in delimited files.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// datasetDir roots the default file locations. Overridable through the
// environment (or a .env file) for runs outside the repo checkout.
var datasetDir = "dataset"

// Default file names inside the dataset directory. The survey name is
// the literal Google Forms export name, kept verbatim.
const (
	defaultLaptopName = "laptop.csv"
	defaultSurveyName = "UIT Student Laptop Usage Survey (Responses) - Form responses 1.csv"
	defaultMergedName = "merged_laptop_data_cleaned.csv"
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(missingCmd)
}

func initConfig() {
	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	if dir := os.Getenv("DATASET_DIR"); dir != "" {
		datasetDir = dir
	}
}

// datasetPath resolves a path flag: explicit flag value wins, otherwise
// the named default under the dataset directory.
func datasetPath(flagVal, name string) string {
	if flagVal != "" {
		return flagVal
	}
	return filepath.Join(datasetDir, name)
}
