package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var askTopK int

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a one-shot legal question",
	Long: `Runs a single question through the answer pipeline and prints the
answer with its supporting articles. For follow-up questions with
conversation context, use 'mizan chat'.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of supporting articles to retrieve")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := buildAssistant(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	topK := askTopK
	if topK <= 0 {
		topK = a.retrieval.TopK
	}

	answer, err := a.assistant.Ask(ctx, args[0], topK, nil)
	if err != nil {
		return fmt.Errorf("answering question: %w", err)
	}

	cmd.Println(answer.Text)

	if len(answer.Documents) > 0 {
		cmd.Println()
		cmd.Println("Supporting articles:")
		for i, doc := range answer.Documents {
			cmd.Printf("  [%d] %s/%s (%.2f)\n", i+1, doc.Article.Code, doc.Article.Name, doc.Score)
		}
	}

	return nil
}
