package rewriting

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	whitespaceRun     = regexp.MustCompile(`\s+`)
	yearsMention      = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?`)
	yearsClause       = regexp.MustCompile(`(?i)\d+\s*\+?\s*years?\s*(of\s+)?experience\.?`)
	numberedBullet    = regexp.MustCompile(`^\d+\.\s*`)
	skillEntryPattern = regexp.MustCompile(`[\w\s+#.]+`)
)

// weakVerbReplacements maps weak bullet openers to strong action verbs.
// Checked in order; the first prefix match wins.
var weakVerbReplacements = []struct {
	weak   string
	strong string
}{
	{"responsible for", "Managed"},
	{"worked on", "Developed"},
	{"helped with", "Contributed to"},
	{"involved in", "Participated in"},
	{"participated in", "Contributed to"},
	{"did", "Executed"},
	{"made", "Created"},
	{"got", "Achieved"},
	{"used", "Utilized"},
	{"wanted to", "Aimed to"},
	{"was part of", "Collaborated on"},
	{"handled", "Managed"},
}

var strongActionVerbs = []string{
	"Developed", "Led", "Created", "Built", "Designed",
	"Implemented", "Managed", "Achieved", "Delivered",
	"Engineered", "Architected", "Optimized", "Streamlined",
	"Spearheaded", "Executed", "Utilized", "Deployed",
}

// stripBulletMarker reports whether line is a bullet and returns its text
// without the leading marker.
func stripBulletMarker(line string) (string, bool) {
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") {
		return strings.TrimSpace(strings.TrimLeft(line, "-• ")), true
	}
	if numberedBullet.MatchString(line) {
		return strings.TrimSpace(numberedBullet.ReplaceAllString(line, "")), true
	}
	return "", false
}

// ruleBasedSummary rewrites a summary without an LLM. When the summary
// states years of experience and target keywords exist, it is rebuilt
// around both; otherwise it is cleaned up and returned.
func ruleBasedSummary(summary string, keywords []string) string {
	summary = strings.TrimSpace(whitespaceRun.ReplaceAllString(summary, " "))

	years := yearsMention.FindStringSubmatch(summary)
	if len(keywords) > 0 && years != nil {
		relevant := head(keywords, 3)
		keywordStr := relevant[0]
		if len(relevant) > 1 {
			keywordStr = strings.Join(relevant[:len(relevant)-1], ", ") + " and " + relevant[len(relevant)-1]
		}

		base := strings.TrimSpace(yearsClause.ReplaceAllString(summary, ""))
		if base != "" {
			return "Results-driven professional with " + years[1] + "+ years of experience specializing in " + keywordStr + ". " + base
		}
		return "Results-driven professional with " + years[1] + "+ years of experience in " + keywordStr + "."
	}

	if summary != "" && !strings.HasSuffix(summary, ".") {
		summary += "."
	}
	return summary
}

// ruleBasedBullet rewrites a bullet without an LLM: weak openers are
// replaced with strong verbs, and bullets that still lack an action verb
// are restructured around a mentioned target keyword when one exists.
func ruleBasedBullet(bullet string, keywords []string) string {
	bullet = strings.TrimSpace(bullet)
	if bullet == "" {
		return bullet
	}

	lower := strings.ToLower(bullet)
	for _, repl := range weakVerbReplacements {
		if strings.HasPrefix(lower, repl.weak) {
			bullet = repl.strong + bullet[len(repl.weak):]
			break
		}
	}

	if !startsWithActionVerb(bullet) {
		lower = strings.ToLower(bullet)
		enhanced := false
		for _, keyword := range keywords {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				bullet = "Utilized " + keyword + " expertise to " + lowerFirst(bullet)
				enhanced = true
				break
			}
		}
		if !enhanced {
			bullet = "Developed " + lowerFirst(bullet)
		}
	}

	return upperFirst(bullet)
}

func startsWithActionVerb(bullet string) bool {
	fields := strings.Fields(bullet)
	if len(fields) == 0 {
		return false
	}
	first := strings.ToLower(fields[0])
	for _, verb := range strongActionVerbs {
		if first == strings.ToLower(verb) {
			return true
		}
	}
	return false
}

func lowerFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
