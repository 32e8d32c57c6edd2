package cli

import (
	"github.com/spf13/cobra"

	"github.com/mizan-labs/mizan-cli/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive chat with conversation memory",
	Long: `Starts an interactive chat session. The session keeps a rolling
conversation memory, so follow-up questions like "tell me more" are
resolved against earlier turns.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	a, err := buildAssistant(cmd.Context())
	if err != nil {
		return err
	}
	defer a.close()

	return tui.Run(a.assistant, a.retrieval.TopK)
}
