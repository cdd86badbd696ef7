package types

// Seniority is the detected experience level of a job description.
type Seniority string

// Seniority levels in extractor priority order.
const (
	SenioritySenior    Seniority = "senior"
	SeniorityMid       Seniority = "mid"
	SeniorityJunior    Seniority = "junior"
	SeniorityPrincipal Seniority = "principal"
)

// Keywords holds ATS keywords split by importance. Primary keywords appear
// repeatedly in the JD text and are likely filter terms; secondary keywords
// are single mentions used for ranking. The two lists are disjoint and
// capped at ten entries each, in hard-skill discovery order.
type Keywords struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// JDIntelligence is the structured output of JD extraction. Created once
// per job description, immutable thereafter.
type JDIntelligence struct {
	Role       string    `json:"role"`
	Seniority  Seniority `json:"seniority"`
	HardSkills []string  `json:"hard_skills"`
	SoftSkills []string  `json:"soft_skills"`
	Tools      []string  `json:"tools"`
	Keywords   Keywords  `json:"keywords"`
}
