// Package ai provides factory functions for creating AI service adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/mizan-labs/mizan-cli/internal/adapters/driven/llm/gemini"
	openaillm "github.com/mizan-labs/mizan-cli/internal/adapters/driven/llm/openai"
	"github.com/mizan-labs/mizan-cli/internal/core/domain"
	"github.com/mizan-labs/mizan-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity
// validation.
const pingTimeout = 5 * time.Second

// CreateAndValidateLLMService creates an LLM service and validates
// connectivity. Returns an error with guidance when the provider is
// misconfigured or unreachable.
func CreateAndValidateLLMService(ctx context.Context, settings domain.LLMSettings) (driven.LLMService, error) {
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: LLM provider not configured. Run 'mizan settings' to fix",
			domain.ErrOracleUnavailable)
	}

	svc, err := CreateLLMService(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'mizan settings' to fix",
			domain.ErrOracleUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := svc.Ping(pingCtx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'mizan settings' to fix",
			domain.ErrOracleUnavailable, err)
	}

	return svc, nil
}

// CreateAndValidateEmbeddingService creates an embedding service and
// validates connectivity.
func CreateAndValidateEmbeddingService(ctx context.Context, settings domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	if !settings.IsConfigured() {
		return nil, fmt.Errorf("%w: embedding provider not configured. Run 'mizan settings' to fix",
			domain.ErrEmbeddingUnavailable)
	}

	svc, err := CreateEmbeddingService(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w. Run 'mizan settings' to fix",
			domain.ErrEmbeddingUnavailable, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := svc.Ping(pingCtx); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w). Run 'mizan settings' to fix",
			domain.ErrEmbeddingUnavailable, err)
	}

	return svc, nil
}

// CreateLLMService creates the appropriate LLM service based on settings.
func CreateLLMService(ctx context.Context, settings domain.LLMSettings) (driven.LLMService, error) {
	switch settings.Provider {
	case domain.AIProviderGemini:
		return gemini.NewLLMService(ctx, gemini.LLMConfig{
			APIKey: settings.APIKey,
			Model:  settings.Model,
		})

	case domain.AIProviderOpenAI:
		return openaillm.NewLLMService(openaillm.LLMConfig{
			APIKey: settings.APIKey,
			Model:  settings.Model,
		})

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}
}

// CreateEmbeddingService creates the appropriate embedding service based
// on settings.
func CreateEmbeddingService(ctx context.Context, settings domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	switch settings.Provider {
	case domain.AIProviderGemini:
		return gemini.NewEmbeddingService(ctx, gemini.EmbeddingConfig{
			APIKey: settings.APIKey,
			Model:  settings.Model,
		})

	case domain.AIProviderOpenAI:
		return openaillm.NewEmbeddingService(openaillm.EmbeddingConfig{
			APIKey: settings.APIKey,
			Model:  settings.Model,
		})

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", settings.Provider)
	}
}
