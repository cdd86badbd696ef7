// Package llm provides the text-generation client used by the resume
// rewriter. The client is an interface so rewriting stays testable without
// network access; the analysis core never touches this package.
package llm

// ModelTier selects the capability level for a generation call.
type ModelTier string

const (
	// TierLite is for mechanical transforms: single-bullet rewrites.
	TierLite ModelTier = "lite"
	// TierStandard is for tasks needing more judgement: summary rewriting,
	// batch bullet optimization.
	TierStandard ModelTier = "standard"
)

// Config holds the model selection per tier.
type Config struct {
	Models map[ModelTier]string
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
		},
	}
}

// Model returns the model name for a tier, falling back to the standard
// tier when the requested one is not configured.
func (c *Config) Model(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	return c.Models[TierStandard]
}
