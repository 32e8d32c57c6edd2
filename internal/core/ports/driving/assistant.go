package driving

import (
	"context"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
)

// AssistantService answers legal questions over the ingested corpus.
type AssistantService interface {
	// Ask runs the full retrieval-and-answer pipeline for one turn.
	// The returned answer always carries its supporting documents sorted
	// by descending score; terminal outcomes (casual turn, nothing
	// found, nothing verified) return a fixed message with an empty
	// document list and a nil error.
	Ask(ctx context.Context, query string, topK int, memory domain.Memory) (domain.Answer, error)
}
