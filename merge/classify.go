package merge

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tier is the coarse capability class of one catalog record. It is
// recomputed on demand, never persisted.
type Tier string

const (
	TierHigh Tier = "high"
	TierMid  Tier = "mid"
	TierLow  Tier = "low"
)

// Bundle is the descriptive text attached to a tier. Domain data, not
// logic; the table lives in bundles.yaml.
type Bundle struct {
	Major       string `yaml:"major"`
	Activities  string `yaml:"activities"`
	ProgramList string `yaml:"program_list"`
}

//go:embed bundles.yaml
var bundlesYAML []byte

var bundles map[Tier]Bundle

func init() {
	if err := yaml.Unmarshal(bundlesYAML, &bundles); err != nil {
		panic(fmt.Errorf("bundles.yaml: %w", err))
	}
	for _, tier := range []Tier{TierHigh, TierMid, TierLow} {
		if _, ok := bundles[tier]; !ok {
			panic(fmt.Errorf("bundles.yaml: no %s bundle", tier))
		}
	}
}

// Classify derives the tier from RAM and GPU text. RAM that does not
// parse as an integer counts as 0.
func Classify(row map[string]string) Tier {
	ram, _ := strconv.Atoi(strings.TrimSpace(row[colRAM]))
	gpu := strings.ToLower(row[colGraphics])

	high := ram >= 16 ||
		strings.Contains(gpu, "rtx") ||
		strings.Contains(gpu, "gtx") ||
		strings.Contains(gpu, "radeon rx")
	switch {
	case high:
		return TierHigh
	case ram >= 8:
		return TierMid
	default:
		return TierLow
	}
}

// Inferred returns the descriptive bundle for the record's tier.
func Inferred(row map[string]string) Bundle {
	return bundles[Classify(row)]
}
