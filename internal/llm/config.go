// Package llm provides centralized LLM configuration and client abstractions
// for the announcement analysis collaborator.
package llm

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for short announcements: headline-only summaries
	TierLite ModelTier = "lite"
	// TierStandard is for typical announcement bodies
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long filings that need more context window
	TierAdvanced ModelTier = "advanced"
)

// Tier ladder thresholds in characters of announcement text. Announcement
// text is double-byte heavy, so characters track token usage closely enough
// to pick a tier.
const (
	liteMaxChars     = 800
	standardMaxChars = 8000
)

// TierForContent picks a model tier from the length of the text to analyze.
func TierForContent(content string) ModelTier {
	n := len([]rune(content))
	switch {
	case n <= liteMaxChars:
		return TierLite
	case n <= standardMaxChars:
		return TierStandard
	default:
		return TierAdvanced
	}
}

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string),
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
