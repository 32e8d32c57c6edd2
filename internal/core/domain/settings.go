package domain

const unknownDescription = "Unknown"

// AIProvider identifies an AI service provider for embeddings or LLM oracles.
type AIProvider string

// Available AI providers.
const (
	// AIProviderGemini is the Google Gemini cloud API.
	AIProviderGemini AIProvider = "gemini"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGemini, AIProviderOpenAI:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderGemini:
		return "Google Gemini (cloud)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	default:
		return unknownDescription
	}
}

// LLMSettings holds LLM oracle provider configuration.
type LLMSettings struct {
	// Provider is the LLM service provider.
	Provider AIProvider

	// Model is the generation model name.
	Model string

	// APIKey is the provider API key.
	APIKey string
}

// IsConfigured returns true if the LLM provider is set up.
func (s LLMSettings) IsConfigured() bool {
	return s.Provider.IsValid() && s.APIKey != ""
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// APIKey is the provider API key.
	APIKey string
}

// IsConfigured returns true if the embedding provider is set up.
func (s EmbeddingSettings) IsConfigured() bool {
	return s.Provider.IsValid() && s.APIKey != ""
}

// RetrievalSettings holds retrieval pipeline tuning knobs.
type RetrievalSettings struct {
	// TopK is the default number of documents to retrieve.
	TopK int

	// Lambda is the MMR relevance/diversity trade-off in [0,1].
	Lambda float64
}

// DefaultRetrievalSettings returns the standard retrieval tuning.
func DefaultRetrievalSettings() RetrievalSettings {
	return RetrievalSettings{
		TopK:   5,
		Lambda: 0.7,
	}
}
