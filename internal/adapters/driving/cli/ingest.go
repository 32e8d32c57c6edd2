package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mizan-labs/mizan-cli/internal/adapters/driven/ai"
	"github.com/mizan-labs/mizan-cli/internal/adapters/driven/config/file"
	"github.com/mizan-labs/mizan-cli/internal/adapters/driven/storage/sqlite"
	"github.com/mizan-labs/mizan-cli/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [directory]",
	Short: "Ingest a corpus directory",
	Long: `Ingests legal-code articles into the corpus store.

Expected layout: one directory per code, one '<name>.txt' file per
article, with an optional '<name>.ar.txt' Arabic translation alongside.

  corpus/
    code-statut-personnel/
      article-31.txt
      article-31.ar.txt

English content is embedded with the configured embedding provider.
Running services only see the new corpus after a restart.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	_, embeddingSettings := loadProviderSettings(cfg)

	embedder, err := ai.CreateAndValidateEmbeddingService(ctx, embeddingSettings)
	if err != nil {
		return err
	}
	defer embedder.Close()

	store, err := sqlite.NewStore(subdir("data"))
	if err != nil {
		return fmt.Errorf("opening corpus store: %w", err)
	}
	defer store.Close()

	loader, err := ingest.NewLoader(embedder, store)
	if err != nil {
		return err
	}

	count, err := loader.Run(ctx, args[0])
	if err != nil {
		return fmt.Errorf("ingestion failed after %d articles: %w", count, err)
	}

	cmd.Printf("Ingested %d articles into %s\n", count, store.Path())
	return nil
}
