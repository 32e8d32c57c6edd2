package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mizan-labs/mizan-cli/internal/adapters/driving/httpapi"
	"github.com/mizan-labs/mizan-cli/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Starts the HTTP API server exposing the answer pipeline.

Endpoint:
  POST /query  {"query": "...", "top_k": 5, "memory": [...]}

The corpus snapshot is built once at startup; run 'mizan ingest' and
restart to pick up corpus changes.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8000)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := buildAssistant(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	// Long-running process: pick up prompt edits without a restart.
	if err := a.prompts.Watch(); err != nil {
		logger.Warn("Prompt hot-reload unavailable: %v", err)
	}

	addr := serveAddr
	if addr == "" {
		addr = a.config.GetString(keyServerAddr)
	}

	server, err := httpapi.NewServer(a.assistant, addr)
	if err != nil {
		return err
	}
	return server.Run(ctx)
}
