package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mizan-labs/mizan-cli/internal/adapters/driven/ai"
	"github.com/mizan-labs/mizan-cli/internal/adapters/driven/config/file"
	"github.com/mizan-labs/mizan-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure AI providers and retrieval tuning.

Use subcommands to configure specific settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsLLMCmd = &cobra.Command{
	Use:   "llm",
	Short: "Configure the LLM provider",
	Long:  `Configure the provider that powers the pipeline oracles.`,
	RunE:  runSettingsLLM,
}

var settingsEmbeddingCmd = &cobra.Command{
	Use:   "embedding",
	Short: "Configure the embedding provider",
	Long:  `Configure the provider used for query and corpus embeddings.`,
	RunE:  runSettingsEmbedding,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsLLMCmd)
	settingsCmd.AddCommand(settingsEmbeddingCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	llm, embedding := loadProviderSettings(cfg)
	retrieval := loadRetrievalSettings(cfg)

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", llm.Provider.Description())
	cmd.Printf("  Model: %s\n", valueOrDefault(llm.Model))
	cmd.Printf("  API Key: %s\n", maskedOrUnset(llm.APIKey))
	cmd.Printf("  Status: %s\n", configuredStatus(llm.IsConfigured()))
	cmd.Println()

	cmd.Println("[Embedding]")
	cmd.Printf("  Provider: %s\n", embedding.Provider.Description())
	cmd.Printf("  Model: %s\n", valueOrDefault(embedding.Model))
	cmd.Printf("  API Key: %s\n", maskedOrUnset(embedding.APIKey))
	cmd.Printf("  Status: %s\n", configuredStatus(embedding.IsConfigured()))
	cmd.Println()

	cmd.Println("[Retrieval]")
	cmd.Printf("  Top K: %d\n", retrieval.TopK)
	cmd.Printf("  MMR lambda: %.2f\n", retrieval.Lambda)
	cmd.Println()

	cmd.Printf("Config file: %s\n", cfg.Path())
	return nil
}

func runSettingsLLM(cmd *cobra.Command, _ []string) error {
	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	settings, err := promptProvider(cmd, "LLM")
	if err != nil {
		return err
	}

	llm := domain.LLMSettings{Provider: settings.provider, Model: settings.model, APIKey: settings.apiKey}
	cmd.Println("Validating...")
	if svc, err := ai.CreateAndValidateLLMService(cmd.Context(), llm); err != nil {
		return err
	} else {
		svc.Close() //nolint:errcheck
	}

	if err := cfg.Set(keyLLMProvider, llm.Provider.String()); err != nil {
		return err
	}
	if err := cfg.Set(keyLLMModel, llm.Model); err != nil {
		return err
	}
	if err := cfg.Set(keyLLMAPIKey, llm.APIKey); err != nil {
		return err
	}

	cmd.Println("LLM provider configured.")
	return nil
}

func runSettingsEmbedding(cmd *cobra.Command, _ []string) error {
	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	settings, err := promptProvider(cmd, "embedding")
	if err != nil {
		return err
	}

	embedding := domain.EmbeddingSettings{Provider: settings.provider, Model: settings.model, APIKey: settings.apiKey}
	cmd.Println("Validating...")
	if svc, err := ai.CreateAndValidateEmbeddingService(cmd.Context(), embedding); err != nil {
		return err
	} else {
		svc.Close() //nolint:errcheck
	}

	if err := cfg.Set(keyEmbeddingProvider, embedding.Provider.String()); err != nil {
		return err
	}
	if err := cfg.Set(keyEmbeddingModel, embedding.Model); err != nil {
		return err
	}
	if err := cfg.Set(keyEmbeddingAPIKey, embedding.APIKey); err != nil {
		return err
	}

	cmd.Println("Embedding provider configured. Re-run 'mizan ingest' if the model changed.")
	return nil
}

// providerInput holds interactively collected provider settings.
type providerInput struct {
	provider domain.AIProvider
	model    string
	apiKey   string
}

// promptProvider interactively collects provider, model and API key.
func promptProvider(cmd *cobra.Command, kind string) (providerInput, error) {
	reader := bufio.NewReader(os.Stdin)

	cmd.Printf("Select %s provider:\n", kind)
	cmd.Printf("  1. %s\n", domain.AIProviderGemini.Description())
	cmd.Printf("  2. %s\n", domain.AIProviderOpenAI.Description())
	cmd.Print("Choice [1]: ")

	provider := domain.AIProviderGemini
	if readLine(reader) == "2" {
		provider = domain.AIProviderOpenAI
	}

	cmd.Print("Model (empty for provider default): ")
	model := readLine(reader)

	cmd.Print("API key: ")
	apiKey := readPassword()
	cmd.Println()
	if apiKey == "" {
		return providerInput{}, fmt.Errorf("API key is required")
	}

	return providerInput{provider: provider, model: model, apiKey: apiKey}, nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Read without echo when attached to a terminal.
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func maskedOrUnset(key string) string {
	if key == "" {
		return "(not set)"
	}
	return maskAPIKey(key)
}

func valueOrDefault(model string) string {
	if model == "" {
		return "(provider default)"
	}
	return model
}

func configuredStatus(ok bool) string {
	if ok {
		return "configured"
	}
	return "not configured"
}
