// Package cli provides the cobra command-line interface for Mizan.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mizan-labs/mizan-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "mizan",
	Short: "Tunisian legal assistant",
	Long: `Mizan answers questions about Tunisian law, grounded in the
articles of the Tunisian legal codes.

Questions run through a retrieval pipeline: hybrid keyword and semantic
search over the ingested corpus, diversification, reranking and
relevance verification, then grounded answer generation. Arabic
questions are answered in Arabic.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// .env is optional; environment variables win either way.
		godotenv.Load() //nolint:errcheck
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.mizan)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
