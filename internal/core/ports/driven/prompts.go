package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a
	// sensible default or an error, depending on whether the prompt is
	// required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next
	// access. Useful when prompts may have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptIntentGate classifies a turn as casual vs. substantive.
	// Placeholders: %s (query), %s (history).
	PromptIntentGate = "intent_gate"

	// PromptLanguageDetect detects Arabic queries and translates them.
	// Placeholder: %s (query).
	PromptLanguageDetect = "language_detect"

	// PromptQueryRewrite resolves conversational references into a
	// standalone query. Placeholders: %s (query), %s (history),
	// %s (catalogue).
	PromptQueryRewrite = "query_rewrite"

	// PromptCodeRouting maps a query onto topical code identifiers.
	// Placeholders: %s (catalogue), %s (query).
	PromptCodeRouting = "code_routing"

	// PromptCrossScore scores each document's relevance to the query.
	// Placeholders: %s (documents), %s (query).
	PromptCrossScore = "cross_score"

	// PromptRelevanceVerify selects relevant document indices.
	// Placeholders: %s (documents), %s (query).
	PromptRelevanceVerify = "relevance_verify"

	// PromptAnswer generates the grounded final answer.
	// Placeholders: %s (history), %s (documents), %s (query).
	PromptAnswer = "answer"

	// PromptTranslate translates text to a target language.
	// Placeholders: %s (language), %s (text).
	PromptTranslate = "translate"
)
