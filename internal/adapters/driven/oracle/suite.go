package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
	"github.com/mizan-labs/mizan-cli/internal/core/ports/driven"
)

// Ensure Suite implements every oracle port.
var (
	_ driven.IntentClassifier  = (*Suite)(nil)
	_ driven.LanguageDetector  = (*Suite)(nil)
	_ driven.QueryRewriter     = (*Suite)(nil)
	_ driven.CodeRouter        = (*Suite)(nil)
	_ driven.CrossScorer       = (*Suite)(nil)
	_ driven.RelevanceVerifier = (*Suite)(nil)
	_ driven.AnswerGenerator   = (*Suite)(nil)
	_ driven.Translator        = (*Suite)(nil)
)

// Generation options per oracle. Classification and extraction run cold;
// synthesis and translation get room to write.
var (
	classifyOpts  = driven.GenerateOptions{MaxTokens: 256, Temperature: 0}
	rewriteOpts   = driven.GenerateOptions{MaxTokens: 256, Temperature: 0.3}
	answerOpts    = driven.GenerateOptions{MaxTokens: 2048, Temperature: 0.3}
	translateOpts = driven.GenerateOptions{MaxTokens: 2048, Temperature: 0}
)

// Suite implements all oracle ports over one raw LLM service and a
// prompt store. It is stateless and safe for concurrent use.
type Suite struct {
	llm     driven.LLMService
	prompts driven.PromptStore
}

// NewSuite creates the oracle suite. The prompt store may be nil, in
// which case embedded default prompts are used.
func NewSuite(llm driven.LLMService, prompts driven.PromptStore) (*Suite, error) {
	if llm == nil {
		return nil, domain.ErrOracleUnavailable
	}
	return &Suite{llm: llm, prompts: prompts}, nil
}

// Classify decides whether a turn is casual conversation.
func (s *Suite) Classify(ctx context.Context, query, history string) (driven.IntentDecision, error) {
	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptIntentGate, defaultIntentGatePrompt), query, history)
	reply, err := s.llm.Generate(ctx, prompt, classifyOpts)
	if err != nil {
		return driven.IntentDecision{}, fmt.Errorf("intent gate: %w", err)
	}
	return parseIntent(reply), nil
}

// Detect detects the query language, translating Arabic queries to the
// working language.
func (s *Suite) Detect(ctx context.Context, query string) (driven.LanguageDecision, error) {
	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptLanguageDetect, defaultLanguageDetectPrompt), query)
	reply, err := s.llm.Generate(ctx, prompt, classifyOpts)
	if err != nil {
		return driven.LanguageDecision{}, fmt.Errorf("language detect: %w", err)
	}
	return parseLanguage(reply, query), nil
}

// Rewrite resolves conversational references into a standalone query.
func (s *Suite) Rewrite(ctx context.Context, query, history string, catalogue domain.CodeCatalogue) (string, error) {
	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptQueryRewrite, defaultQueryRewritePrompt),
		query, history, catalogue.Describe())
	reply, err := s.llm.Generate(ctx, prompt, rewriteOpts)
	if err != nil {
		return "", fmt.Errorf("query rewrite: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// Route narrows a query to relevant code identifiers. An empty result
// means the full corpus.
func (s *Suite) Route(ctx context.Context, query string, catalogue domain.CodeCatalogue) ([]string, error) {
	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptCodeRouting, defaultCodeRoutingPrompt),
		catalogue.Describe(), query)
	reply, err := s.llm.Generate(ctx, prompt, classifyOpts)
	if err != nil {
		return nil, fmt.Errorf("code routing: %w", err)
	}
	return parseCodes(reply, catalogue), nil
}

// Score assigns a relevance score to each (query, document) pair.
func (s *Suite) Score(ctx context.Context, query string, documents []string) ([]float64, error) {
	if len(documents) == 0 {
		return nil, nil
	}
	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptCrossScore, defaultCrossScorePrompt),
		formatDocuments(documents), query)
	reply, err := s.llm.Generate(ctx, prompt, classifyOpts)
	if err != nil {
		return nil, fmt.Errorf("cross score: %w", err)
	}
	return parseScores(reply, len(documents))
}

// Verify selects the 1-based indices of documents relevant to the query.
func (s *Suite) Verify(ctx context.Context, query string, documents []string) ([]int, error) {
	if len(documents) == 0 {
		return nil, nil
	}
	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptRelevanceVerify, defaultRelevanceVerifyPrompt),
		formatDocuments(documents), query)
	reply, err := s.llm.Generate(ctx, prompt, classifyOpts)
	if err != nil {
		return nil, fmt.Errorf("relevance verify: %w", err)
	}
	return parseIndices(reply)
}

// GenerateAnswer produces the final grounded answer.
func (s *Suite) GenerateAnswer(ctx context.Context, req driven.AnswerRequest) (string, error) {
	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptAnswer, defaultAnswerPrompt),
		req.History, formatDocuments(req.Documents), req.Query)
	reply, err := s.llm.Generate(ctx, prompt, answerOpts)
	if err != nil {
		return "", fmt.Errorf("answer generation: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// Translate translates text to the target language.
func (s *Suite) Translate(ctx context.Context, text string, target domain.Language) (string, error) {
	prompt := fmt.Sprintf(s.loadPrompt(driven.PromptTranslate, defaultTranslatePrompt),
		target.String(), text)
	reply, err := s.llm.Generate(ctx, prompt, translateOpts)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// loadPrompt loads a prompt from the store, falling back to the embedded
// default when the store is missing or fails.
func (s *Suite) loadPrompt(name, fallback string) string {
	if s.prompts == nil {
		return fallback
	}
	prompt, err := s.prompts.Load(name)
	if err != nil || strings.TrimSpace(prompt) == "" {
		return fallback
	}
	return prompt
}
