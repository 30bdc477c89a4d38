package reconcile

import (
	"regexp"
	"strings"
)

// Production catalogs name jacket artwork "<Title> Cover".
var coverSuffix = regexp.MustCompile(`(?i)\s+cover\s*$`)

// CleanTitle strips a trailing "Cover" suffix from a title,
// case-insensitively. Titles without the suffix pass through unchanged.
func CleanTitle(title string) string {
	return strings.TrimSpace(coverSuffix.ReplaceAllString(title, ""))
}
