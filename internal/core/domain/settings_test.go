package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAIProvider_IsValid(t *testing.T) {
	assert.True(t, AIProviderGemini.IsValid())
	assert.True(t, AIProviderOpenAI.IsValid())
	assert.False(t, AIProvider("anthropic").IsValid())
	assert.False(t, AIProvider("").IsValid())
}

func TestAIProvider_Description(t *testing.T) {
	assert.Equal(t, "Google Gemini (cloud)", AIProviderGemini.Description())
	assert.Equal(t, "OpenAI (cloud)", AIProviderOpenAI.Description())
	assert.Equal(t, "Unknown", AIProvider("other").Description())
}

func TestLLMSettings_IsConfigured(t *testing.T) {
	assert.True(t, LLMSettings{Provider: AIProviderGemini, APIKey: "key"}.IsConfigured())
	assert.False(t, LLMSettings{Provider: AIProviderGemini}.IsConfigured())
	assert.False(t, LLMSettings{APIKey: "key"}.IsConfigured())
}

func TestEmbeddingSettings_IsConfigured(t *testing.T) {
	assert.True(t, EmbeddingSettings{Provider: AIProviderOpenAI, APIKey: "key"}.IsConfigured())
	assert.False(t, EmbeddingSettings{Provider: AIProvider("bad"), APIKey: "key"}.IsConfigured())
}

func TestDefaultRetrievalSettings(t *testing.T) {
	settings := DefaultRetrievalSettings()

	assert.Equal(t, 5, settings.TopK)
	assert.Equal(t, 0.7, settings.Lambda)
}
