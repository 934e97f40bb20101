// Package llm provides the language-model client used for CV text
// extraction, tailoring and cover-letter generation. The model is treated
// as an opaque prompt-in/text-out service.
package llm

// ModelTier represents the capability level requested for an operation.
type ModelTier string

const (
	// TierLite is for simple transformations: cleanup, short labels.
	TierLite ModelTier = "lite"
	// TierStandard is for structured extraction.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for rewriting and generation.
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider.
type Provider string

// Supported providers.
const (
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
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

// GetModel returns the model name for a tier, falling back through
// standard and lite when the tier is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	return c.Models[TierLite]
}
