package ingestion

import (
	"regexp"
	"strings"
)

// jdNoisePatterns mark section headers whose content adds nothing to
// matching: perks, company boilerplate, EEO statements, application
// instructions, compensation.
var jdNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(benefits|perks|what we offer)`),
	regexp.MustCompile(`(?i)^(about us|about the company|who we are)`),
	regexp.MustCompile(`(?i)^(equal opportunity|eeo|diversity)`),
	regexp.MustCompile(`(?i)^(how to apply|to apply)`),
	regexp.MustCompile(`(?i)^(salary|compensation|pay range)`),
}

// jdSectionHeader loosely matches a capitalized section heading, used to
// exit a skipped noise block when a new non-noise section starts.
var jdSectionHeader = regexp.MustCompile(`^[A-Z][A-Za-z\s]+:?\s*$`)

const maxHeaderLength = 50

// CleanJD strips noise sections from pasted job-description text before
// intelligence extraction. Lines inside a noise section are dropped until
// the next recognizable non-noise heading.
func CleanJD(text string) string {
	var kept []string
	skipping := false

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if matchesNoise(trimmed) {
			skipping = true
		} else if len(trimmed) < maxHeaderLength && jdSectionHeader.MatchString(trimmed) {
			skipping = false
		}

		if !skipping {
			kept = append(kept, line)
		}
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func matchesNoise(line string) bool {
	for _, pattern := range jdNoisePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
