package internal

import (
	"regexp"
	"strings"
)

var pageMarkerRegex = regexp.MustCompile(`## Page \d+:`)

// Paginate splits a comic script on its "## Page N:" headings. The markers are dropped,
// blank fragments are skipped and order is preserved. A script without markers comes
// back as a single page.
func Paginate(script string) []string {
	var pages []string
	for _, fragment := range pageMarkerRegex.Split(script, -1) {
		if strings.TrimSpace(fragment) != "" {
			pages = append(pages, fragment)
		}
	}

	if len(pages) == 0 {
		return []string{script}
	}
	return pages
}
