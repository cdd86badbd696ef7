// Package jdintel extracts structured intelligence from job-description
// text: role, seniority, hard/soft skills, named tools, and tiered ATS
// keywords. All matching is deterministic lexicon and pattern scanning;
// there is no statistical model, so identical input always produces
// identical output.
package jdintel

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	// defaultRole is returned when no line of the JD qualifies as a title.
	defaultRole = "Software Engineer"
	// maxRoleLineLength is the upper bound for a line to count as a title.
	maxRoleLineLength = 100
	// roleScanLines is how many leading lines are considered for the title.
	roleScanLines = 5
	// maxKeywords caps each keyword tier.
	maxKeywords = 10
	// primaryFrequency is the repetition threshold that promotes a hard
	// skill to a primary keyword.
	primaryFrequency = 2
	// acronymLength is the skill-name length at or below which the matched
	// term is upper-cased instead of title-cased (preserves SQL, AWS, GCP).
	acronymLength = 3
)

var (
	rolePrefix = regexp.MustCompile(`(?i)^(job\s+title|position|role):\s*`)
	wordToken  = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)
)

// Extract parses job-description text into JDIntelligence. It is total:
// text with no recognizable signal yields the default role, mid seniority,
// and empty skill lists rather than an error.
func Extract(text string) types.JDIntelligence {
	textLower := strings.ToLower(text)

	hardSkills := extractHardSkills(textLower)

	return types.JDIntelligence{
		Role:       extractRole(text),
		Seniority:  detectSeniority(text),
		HardSkills: hardSkills,
		SoftSkills: extractSoftSkills(textLower),
		Tools:      extractTools(textLower),
		Keywords:   extractKeywords(textLower, hardSkills),
	}
}

// extractRole returns the job title: the first of the leading lines that is
// non-empty and shorter than the threshold, stripped of a "Job Title:" style
// prefix.
func extractRole(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > roleScanLines {
		lines = lines[:roleScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || utf8.RuneCountInString(line) >= maxRoleLineLength {
			continue
		}
		line = strings.TrimSpace(rolePrefix.ReplaceAllString(line, ""))
		if line != "" {
			return line
		}
	}

	return defaultRole
}

// detectSeniority returns the first seniority level, in declared order,
// with any indicator pattern matching anywhere in the text. Declared order
// is the tie-break: no "most specific" resolution is attempted.
func detectSeniority(text string) types.Seniority {
	for _, entry := range seniorityLexicon {
		for _, pattern := range entry.patterns {
			if pattern.MatchString(text) {
				return entry.level
			}
		}
	}
	return types.SeniorityMid
}

// extractHardSkills scans the lexicon for whole-word occurrences and
// returns display-cased matches in lexicon order.
func extractHardSkills(textLower string) []string {
	var found []string
	for i, pattern := range hardSkillPatterns {
		if pattern.MatchString(textLower) {
			found = append(found, displayCase(hardSkillLexicon[i]))
		}
	}
	return found
}

// extractSoftSkills scans the soft-skill lexicon; matches are title-cased.
func extractSoftSkills(textLower string) []string {
	var found []string
	for i, pattern := range softSkillPatterns {
		if pattern.MatchString(textLower) {
			found = append(found, titleCase(softSkillLexicon[i]))
		}
	}
	return found
}

// extractTools collects named tool mentions via the alternation patterns,
// deduplicated in discovery order.
func extractTools(textLower string) []string {
	var tools []string
	seen := make(map[string]bool)
	for _, pattern := range toolPatterns {
		for _, match := range pattern.FindAllStringSubmatch(textLower, -1) {
			tool := strings.TrimSpace(match[1])
			if tool != "" && !seen[tool] {
				tools = append(tools, tool)
				seen[tool] = true
			}
		}
	}
	return tools
}

// extractKeywords splits the extracted hard skills into primary and
// secondary tiers by token frequency. A skill whose lowercase form occurs
// at least twice among the JD's word tokens is primary; everything else is
// secondary. Both tiers keep hard-skill discovery order and are capped.
// Multi-word skills never tokenize to a single word, so they always land in
// the secondary tier; this is a known boundary of the frequency split.
func extractKeywords(textLower string, hardSkills []string) types.Keywords {
	frequency := make(map[string]int)
	for _, word := range wordToken.FindAllString(textLower, -1) {
		frequency[word]++
	}

	keywords := types.Keywords{Primary: []string{}, Secondary: []string{}}
	for _, skill := range hardSkills {
		if frequency[strings.ToLower(skill)] >= primaryFrequency {
			keywords.Primary = append(keywords.Primary, skill)
		} else {
			keywords.Secondary = append(keywords.Secondary, skill)
		}
	}

	if len(keywords.Primary) > maxKeywords {
		keywords.Primary = keywords.Primary[:maxKeywords]
	}
	if len(keywords.Secondary) > maxKeywords {
		keywords.Secondary = keywords.Secondary[:maxKeywords]
	}
	return keywords
}

// displayCase renders a lexicon entry for output: short entries are
// upper-cased to preserve acronyms, longer ones are title-cased.
func displayCase(skill string) string {
	if utf8.RuneCountInString(skill) <= acronymLength {
		return strings.ToUpper(skill)
	}
	return titleCase(skill)
}

// titleCase upper-cases every letter that follows a non-letter and
// lower-cases the rest, so "spring boot" becomes "Spring Boot" and
// "node.js" becomes "Node.Js".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
