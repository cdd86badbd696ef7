package jdintel

import (
	"regexp"

	"github.com/jonathan/ats-optimizer/internal/types"
)

// hardSkillLexicon is the fixed technology vocabulary scanned for
// whole-word occurrence. Slice order is the discovery order surfaced in
// every downstream list (keywords, gap truncation), so entries must not be
// reordered.
var hardSkillLexicon = []string{
	// Languages
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "golang",
	"rust", "ruby", "php", "swift", "kotlin", "scala", "r", "sql", "html", "css",

	// Frameworks
	"react", "angular", "vue", "node.js", "nodejs", "express", "django", "flask",
	"fastapi", "spring", "spring boot", ".net", "rails", "laravel", "nextjs",

	// Databases
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "dynamodb",
	"oracle", "sql server", "sqlite", "cassandra", "neo4j",

	// Cloud & DevOps
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "k8s",
	"terraform", "ansible", "jenkins", "gitlab", "github actions", "ci/cd",

	// Data & ML
	"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn", "spark",
	"hadoop", "kafka", "airflow", "machine learning", "deep learning",

	// Tools
	"git", "jira", "confluence", "figma", "postman", "linux", "unix",
}

// softSkillLexicon is the fixed interpersonal/process vocabulary.
var softSkillLexicon = []string{
	"leadership", "communication", "teamwork", "problem solving",
	"analytical", "collaboration", "mentoring", "agile", "scrum",
	"project management", "stakeholder management", "presentation",
	"critical thinking", "attention to detail", "time management",
}

// seniorityLexicon holds the per-level indicator patterns, tested in
// declared order; the first level with any match anywhere in the text wins.
var seniorityLexicon = []struct {
	level    types.Seniority
	patterns []*regexp.Regexp
}{
	{types.SenioritySenior, compilePatterns(`\bsenior\b`, `\bsr\.?\b`, `\blead\b`, `\bstaff\b`)},
	{types.SeniorityMid, compilePatterns(`\bmid[\s-]?level\b`, `\bintermediate\b`)},
	{types.SeniorityJunior, compilePatterns(`\bjunior\b`, `\bjr\.?\b`, `\bentry[\s-]?level\b`)},
	{types.SeniorityPrincipal, compilePatterns(`\bprincipal\b`, `\barchitect\b`, `\bdirector\b`)},
}

// toolPatterns name specific collaboration, design, and observability
// tools. These are matched as explicit alternations rather than through the
// hard-skill lexicon.
var toolPatterns = compilePatterns(
	`\b(jira|confluence|slack|teams)\b`,
	`\b(vs\s*code|visual studio|intellij|pycharm)\b`,
	`\b(figma|sketch|adobe\s+\w+)\b`,
	`\b(datadog|splunk|new relic|grafana)\b`,
)

// hardSkillPatterns and softSkillPatterns are the compiled whole-word
// forms of the lexicons, index-aligned with their source slices.
var (
	hardSkillPatterns = compileLexicon(hardSkillLexicon)
	softSkillPatterns = compileLexicon(softSkillLexicon)
)

func compilePatterns(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+expr))
	}
	return compiled
}

func compileLexicon(entries []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(entries))
	for _, entry := range entries {
		compiled = append(compiled, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(entry)+`\b`))
	}
	return compiled
}
