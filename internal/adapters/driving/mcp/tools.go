package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Query string `json:"query" jsonschema:"the legal question to answer"`
	TopK  int    `json:"top_k,omitempty" jsonschema:"number of supporting articles to retrieve (default 5)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer    string           `json:"answer"`
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// DocumentOutput represents one supporting article.
type DocumentOutput struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question about Tunisian law, grounded in legal-code articles",
	}, s.handleAsk)
}

// handleAsk handles the ask tool invocation. Each call is a standalone
// turn; MCP clients carry their own conversation state.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Assistant.Ask(ctx, input.Query, input.TopK, nil)
	if err != nil {
		return nil, AskOutput{}, err
	}

	output := AskOutput{
		Answer:    answer.Text,
		Documents: make([]DocumentOutput, len(answer.Documents)),
		Count:     len(answer.Documents),
	}
	for i, doc := range answer.Documents {
		output.Documents[i] = DocumentOutput{
			Code:    doc.Article.Code,
			Name:    doc.Article.Name,
			Content: doc.Article.Content,
			Score:   doc.Score,
		}
	}

	return nil, output, nil
}
