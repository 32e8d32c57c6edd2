package driven

import (
	"context"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
)

// Oracle ports wrap external model services behind typed request/response
// contracts. Every call is a single attempt: implementations never retry,
// and callers recover failures at the stage boundary with the stage's
// defined fallback.

// IntentDecision is the result of classifying a conversation turn.
type IntentDecision struct {
	// Casual is true when the turn is conversational rather than a
	// substantive legal question.
	Casual bool

	// Reply is the ready-to-return conversational reply. Only set when
	// Casual is true.
	Reply string
}

// IntentClassifier decides whether a turn needs the retrieval pipeline
// at all, or can be answered conversationally.
type IntentClassifier interface {
	Classify(ctx context.Context, query, history string) (IntentDecision, error)
}

// LanguageDecision is the result of language detection.
type LanguageDecision struct {
	// Language is the detected source language of the query.
	Language domain.Language

	// Query is the working-language query: the original when already in
	// the working language, otherwise its translation.
	Query string
}

// LanguageDetector detects the query language and translates non-working
// language queries to the working language.
type LanguageDetector interface {
	Detect(ctx context.Context, query string) (LanguageDecision, error)
}

// QueryRewriter resolves pronouns, ellipsis and implicit references using
// the conversation history and the code catalogue as grounding vocabulary,
// producing a standalone search query.
type QueryRewriter interface {
	Rewrite(ctx context.Context, query, history string, catalogue domain.CodeCatalogue) (string, error)
}

// CodeRouter narrows a query to a subset of topical codes. An empty result
// is a valid, common outcome and means the caller must fall back to the
// full corpus.
type CodeRouter interface {
	Route(ctx context.Context, query string, catalogue domain.CodeCatalogue) ([]string, error)
}

// CrossScorer assigns a fine-grained relevance score to each
// (query, document) pair. Scores are raw and get min-max normalised by
// the caller.
type CrossScorer interface {
	Score(ctx context.Context, query string, documents []string) ([]float64, error)
}

// RelevanceVerifier filters ranked documents down to those relevant to
// the query. The returned indices are 1-based positions into the given
// document list; non-numeric tokens in the oracle reply are discarded,
// out-of-range positions are the caller's concern. A reply that does not
// follow the wire contract at all surfaces as
// domain.ErrUnparsableOracleReply.
type RelevanceVerifier interface {
	Verify(ctx context.Context, query string, documents []string) ([]int, error)
}

// AnswerRequest carries everything the generation oracle needs.
type AnswerRequest struct {
	// Documents are the verified grounding passages, best first.
	Documents []string

	// Query is the working-language query as the user asked it
	// (translated but not rewritten).
	Query string

	// History is the formatted recent conversation.
	History string
}

// AnswerGenerator produces the final grounded answer.
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, req AnswerRequest) (string, error)
}

// Translator translates free text to the given target language,
// preserving legal terminology.
type Translator interface {
	Translate(ctx context.Context, text string, target domain.Language) (string, error)
}
