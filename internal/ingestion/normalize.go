// Package ingestion turns uploaded documents into the normalized plain
// text the analysis core expects: bullet characters unified, whitespace
// collapsed, page numbers removed. It also extracts raw text from PDF,
// DOCX, and plain-text uploads.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	bulletChars    = regexp.MustCompile(`[•●○◦▪▫►▻◆◇★☆✓✔✕✖✗✘→]`)
	inlineSpace    = regexp.MustCompile(`[ \t]+`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	pageNumberLine = regexp.MustCompile(`\n\s*\d+\s*\n`)
)

// NormalizeText normalizes extracted document text for the analysis core:
// exotic bullet characters become dashes, runs of spaces collapse, stray
// page-number lines vanish, and blank lines are dropped.
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	// CRLF before anything else so line-based rules see plain newlines.
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	text = bulletChars.ReplaceAllString(text, "-")
	text = inlineSpace.ReplaceAllString(text, " ")
	text = excessNewlines.ReplaceAllString(text, "\n\n")
	text = pageNumberLine.ReplaceAllString(text, "\n")

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
