package types

// Weak bullet issue identifiers.
const (
	IssueMissingActionVerb = "missing_action_verb"
	IssueNoMetrics         = "no_metrics"
	IssuePassiveVoice      = "passive_voice"
	IssueTooShort          = "too_short"
)

// WeakBullet is an experience fragment flagged for stylistic deficiencies.
type WeakBullet struct {
	Index  int      `json:"index"`
	Text   string   `json:"text"`
	Issues []string `json:"issues"`
}

// GapReport describes the skill and content gap between a resume and a JD.
// It is an ephemeral analysis output, never persisted by the core.
type GapReport struct {
	Critical      []string     `json:"critical"`
	Optional      []string     `json:"optional"`
	WeakBullets   []WeakBullet `json:"weak_bullets"`
	MatchedSkills []string     `json:"matched_skills"`
	MissingCount  int          `json:"missing_count"`
}

// ScoreBreakdown itemizes the compatibility score by dimension.
// Each value is in [0,100].
type ScoreBreakdown struct {
	Keywords int `json:"keywords"`
	Sections int `json:"sections"`
	Format   int `json:"format"`
	Quality  int `json:"quality"`
}

// ScoreReport is the result of scoring a resume against a JD.
// Improvements hold the positive findings, RemainingGaps the negative ones,
// both in sub-scorer emission order (keywords, sections, format, quality).
type ScoreReport struct {
	Score         int            `json:"score"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
	Improvements  []string       `json:"improvements"`
	RemainingGaps []string       `json:"remaining_gaps"`
}
