package merge

import "strings"

// Catalog column names, fixed by the laptop.csv export.
const (
	colModel      = "model_name"
	colRAM        = "ram(GB)"
	colGraphics   = "graphics"
	colProcessor  = "processor_name"
	colScreenSize = "screen_size(inches)"
	colResolution = "resolution (pixels)"
)

// Placeholder spellings that count as missing in the catalog file.
// Case-sensitive: the source data uses exactly these.
var placeholders = map[string]struct{}{
	"Missing": {},
	"NULL":    {},
	"null":    {},
	"None":    {},
	"":        {},
}

func isPlaceholder(v string) bool {
	_, ok := placeholders[v]
	return ok
}

// ImputeHardware fills absent or placeholder hardware cells in place.
// Graphics is guessed from the processor text, the rest get the most
// common retail values.
func ImputeHardware(row map[string]string) {
	if isPlaceholder(row[colGraphics]) {
		proc := strings.ToLower(row[colProcessor])
		switch {
		case strings.Contains(proc, "intel"):
			row[colGraphics] = "Intel Integrated Graphics"
		case strings.Contains(proc, "amd"), strings.Contains(proc, "ryzen"):
			row[colGraphics] = "AMD Radeon Graphics"
		default:
			row[colGraphics] = "Integrated Graphics"
		}
	}
	if isPlaceholder(row[colScreenSize]) {
		row[colScreenSize] = "15.6"
	}
	if isPlaceholder(row[colResolution]) {
		row[colResolution] = "1920 x 1080"
	}
}
