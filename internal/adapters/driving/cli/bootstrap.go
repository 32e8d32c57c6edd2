package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mizan-labs/mizan-cli/internal/adapters/driven/ai"
	"github.com/mizan-labs/mizan-cli/internal/adapters/driven/config/file"
	"github.com/mizan-labs/mizan-cli/internal/adapters/driven/oracle"
	"github.com/mizan-labs/mizan-cli/internal/adapters/driven/storage/sqlite"
	"github.com/mizan-labs/mizan-cli/internal/core/domain"
	"github.com/mizan-labs/mizan-cli/internal/core/ports/driven"
	"github.com/mizan-labs/mizan-cli/internal/core/services"
	"github.com/mizan-labs/mizan-cli/internal/corpus"
	"github.com/mizan-labs/mizan-cli/internal/index/bm25"
	"github.com/mizan-labs/mizan-cli/internal/index/flat"
	"github.com/mizan-labs/mizan-cli/internal/lexicon"
	"github.com/mizan-labs/mizan-cli/internal/logger"
)

// Config keys.
const (
	keyLLMProvider       = "llm.provider"
	keyLLMModel          = "llm.model"
	keyLLMAPIKey         = "llm.api_key"
	keyEmbeddingProvider = "embedding.provider"
	keyEmbeddingModel    = "embedding.model"
	keyEmbeddingAPIKey   = "embedding.api_key"
	keyRetrievalTopK     = "retrieval.top_k"
	keyRetrievalLambda   = "retrieval.lambda"
	keyServerAddr        = "server.addr"
)

// app bundles the assembled assistant with the resources it holds open.
type app struct {
	assistant *services.Assistant
	prompts   *file.PromptStore
	config    *file.ConfigStore
	retrieval domain.RetrievalSettings

	llm      driven.LLMService
	embedder driven.EmbeddingService
}

// close releases every service the app holds.
func (a *app) close() {
	if a.llm != nil {
		a.llm.Close() //nolint:errcheck
	}
	if a.embedder != nil {
		a.embedder.Close() //nolint:errcheck
	}
	if a.prompts != nil {
		a.prompts.Close() //nolint:errcheck
	}
}

// buildAssistant assembles the full pipeline: providers, corpus
// snapshot, indexes, lexicon and oracles. It fails fast on anything the
// pipeline cannot recover from at query time.
func buildAssistant(ctx context.Context) (*app, error) {
	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}

	llmSettings, embeddingSettings := loadProviderSettings(cfg)

	llmSvc, err := ai.CreateAndValidateLLMService(ctx, llmSettings)
	if err != nil {
		return nil, err
	}

	embedSvc, err := ai.CreateAndValidateEmbeddingService(ctx, embeddingSettings)
	if err != nil {
		llmSvc.Close() //nolint:errcheck
		return nil, err
	}

	a := &app{config: cfg, llm: llmSvc, embedder: embedSvc}

	prompts, err := file.NewPromptStore(subdir("prompts"))
	if err != nil {
		a.close()
		return nil, fmt.Errorf("opening prompt store: %w", err)
	}
	a.prompts = prompts

	snapshot, err := loadSnapshot(ctx)
	if err != nil {
		a.close()
		return nil, err
	}
	if snapshot.Dimensions() != embedSvc.Dimensions() {
		a.close()
		return nil, fmt.Errorf("%w: corpus embeddings have %d dimensions, %s produces %d",
			domain.ErrCorpusMisaligned, snapshot.Dimensions(), embedSvc.ModelName(), embedSvc.Dimensions())
	}

	engine := bm25.New(snapshot.Contents())
	vectors, err := flat.New(snapshot.Embeddings())
	if err != nil {
		a.close()
		return nil, fmt.Errorf("building vector index: %w", err)
	}

	suite, err := oracle.NewSuite(llmSvc, prompts)
	if err != nil {
		a.close()
		return nil, err
	}

	a.retrieval = loadRetrievalSettings(cfg)

	assistant, err := services.NewAssistant(services.AssistantDeps{
		Snapshot:   snapshot,
		Engine:     engine,
		Vectors:    vectors,
		Embedder:   embedSvc,
		Lexicon:    loadLexicon(),
		Intents:    suite,
		Languages:  suite,
		Rewriter:   suite,
		Router:     suite,
		Scorer:     suite,
		Verifier:   suite,
		Generator:  suite,
		Translator: suite,
		Catalogue:  loadCatalogue(),
		Lambda:     a.retrieval.Lambda,
	})
	if err != nil {
		a.close()
		return nil, err
	}

	a.assistant = assistant
	return a, nil
}

// loadSnapshot reads the ingested corpus once and freezes it. The store
// is closed afterwards; query-time code never touches it.
func loadSnapshot(ctx context.Context) (*corpus.Snapshot, error) {
	store, err := sqlite.NewStore(subdir("data"))
	if err != nil {
		return nil, fmt.Errorf("opening corpus store: %w", err)
	}
	defer store.Close()

	articles, err := store.LoadArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	snapshot, err := corpus.NewSnapshot(articles)
	if err != nil {
		return nil, fmt.Errorf("building corpus snapshot (run 'mizan ingest' first?): %w", err)
	}
	logger.Info("Corpus snapshot: %d articles, %d dimensions", snapshot.Len(), snapshot.Dimensions())
	return snapshot, nil
}

// loadProviderSettings reads provider configuration, falling back to
// conventional environment variables for API keys.
func loadProviderSettings(cfg *file.ConfigStore) (domain.LLMSettings, domain.EmbeddingSettings) {
	llm := domain.LLMSettings{
		Provider: domain.AIProvider(cfg.GetString(keyLLMProvider)),
		Model:    cfg.GetString(keyLLMModel),
		APIKey:   cfg.GetString(keyLLMAPIKey),
	}
	if llm.Provider == "" {
		llm.Provider = domain.AIProviderGemini
	}
	if llm.APIKey == "" {
		llm.APIKey = apiKeyFromEnv(llm.Provider)
	}

	embedding := domain.EmbeddingSettings{
		Provider: domain.AIProvider(cfg.GetString(keyEmbeddingProvider)),
		Model:    cfg.GetString(keyEmbeddingModel),
		APIKey:   cfg.GetString(keyEmbeddingAPIKey),
	}
	if embedding.Provider == "" {
		embedding.Provider = llm.Provider
	}
	if embedding.APIKey == "" {
		embedding.APIKey = apiKeyFromEnv(embedding.Provider)
	}

	return llm, embedding
}

// loadRetrievalSettings reads retrieval tuning, with defaults for unset
// values.
func loadRetrievalSettings(cfg *file.ConfigStore) domain.RetrievalSettings {
	settings := domain.DefaultRetrievalSettings()
	if topK := cfg.GetInt(keyRetrievalTopK); topK > 0 {
		settings.TopK = topK
	}
	if lambda := cfg.GetFloat(keyRetrievalLambda); lambda > 0 && lambda <= 1 {
		settings.Lambda = lambda
	}
	return settings
}

// loadLexicon loads a user lexicon when one exists, otherwise the
// embedded legal-domain defaults.
func loadLexicon() driven.Lexicon {
	path := filepath.Join(resolveConfigDir(), "lexicon.toml")
	if _, err := os.Stat(path); err == nil {
		lex, err := lexicon.LoadFile(path)
		if err != nil {
			logger.Warn("Loading lexicon %s failed: %v (using defaults)", path, err)
			return lexicon.Default()
		}
		logger.Debug("Loaded lexicon from %s", path)
		return lex
	}
	return lexicon.Default()
}

// loadCatalogue loads a user code catalogue when one exists, otherwise
// the embedded Tunisian codes.
func loadCatalogue() domain.CodeCatalogue {
	path := filepath.Join(resolveConfigDir(), "catalogue.toml")
	if _, err := os.Stat(path); err == nil {
		catalogue, err := file.LoadCatalogue(path)
		if err != nil {
			logger.Warn("Loading catalogue %s failed: %v (using defaults)", path, err)
			return domain.DefaultCatalogue()
		}
		logger.Debug("Loaded catalogue from %s (%d codes)", path, len(catalogue))
		return catalogue
	}
	return domain.DefaultCatalogue()
}

// apiKeyFromEnv returns the conventional environment API key for a
// provider.
func apiKeyFromEnv(provider domain.AIProvider) string {
	switch provider {
	case domain.AIProviderGemini:
		return os.Getenv("GEMINI_API_KEY")
	case domain.AIProviderOpenAI:
		return os.Getenv("OPENAI_API_KEY")
	default:
		return ""
	}
}

// resolveConfigDir returns the effective config directory.
func resolveConfigDir() string {
	if configDir != "" {
		return configDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".mizan")
}

// subdir returns a path under the config directory, or "" to let the
// adapter apply its own default when no --config-dir was given.
func subdir(name string) string {
	if configDir == "" {
		return ""
	}
	return filepath.Join(configDir, name)
}
