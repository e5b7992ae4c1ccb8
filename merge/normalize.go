package merge

import (
	"regexp"
	"strings"
)

var nonAlnumRE = regexp.MustCompile(`[^a-z0-9]`)

// Normalize projects a free-text model name onto its comparison key:
// lowercased, alphanumerics only. Never shown to the user.
func Normalize(name string) string {
	return nonAlnumRE.ReplaceAllString(strings.ToLower(name), "")
}
