package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
	"github.com/mizan-labs/mizan-cli/internal/core/ports/driven"
	"github.com/mizan-labs/mizan-cli/internal/core/ports/driving"
	"github.com/mizan-labs/mizan-cli/internal/corpus"
	"github.com/mizan-labs/mizan-cli/internal/logger"
)

// Ensure Assistant implements the interface.
var _ driving.AssistantService = (*Assistant)(nil)

// DefaultTopK is the number of documents to retrieve when the caller
// does not specify one.
const DefaultTopK = 5

// Fixed user-facing messages for terminal outcomes. Each empty-result
// condition gets its own wording so callers can tell "nothing found"
// from "found but unverifiable" from "ambiguous query".
const (
	msgNoResults = "No relevant documents found for the given query."

	msgNoCandidates = "While I found some documents, none seem directly relevant to your query. " +
		"Could you please provide more specific details about what you're looking for?"

	msgNoVerified = "I found some potential matches, but couldn't verify their relevance to your query. " +
		"Could you please rephrase your question?"

	msgProcessingIssue = "I encountered an issue processing your query. " +
		"Could you please try asking in a different way?"

	msgGenerationEmpty = "The assistant did not return a response. Please try again."
)

// AssistantDeps carries the collaborators of the Assistant.
// Snapshot, engine, vectors, embedder, lexicon and every oracle are
// required; the catalogue defaults to the Tunisian codes and lambda to
// DefaultLambda when zero.
type AssistantDeps struct {
	Snapshot *corpus.Snapshot
	Engine   driven.SearchEngine
	Vectors  driven.VectorIndex
	Embedder driven.EmbeddingService
	Lexicon  driven.Lexicon

	Intents    driven.IntentClassifier
	Languages  driven.LanguageDetector
	Rewriter   driven.QueryRewriter
	Router     driven.CodeRouter
	Scorer     driven.CrossScorer
	Verifier   driven.RelevanceVerifier
	Generator  driven.AnswerGenerator
	Translator driven.Translator

	Catalogue domain.CodeCatalogue
	Lambda    float64
}

// Assistant answers legal questions through a strictly sequential
// retrieval-and-answer pipeline. It holds no per-request mutable state;
// concurrent requests share only the read-only corpus snapshot.
type Assistant struct {
	snapshot *corpus.Snapshot
	engine   driven.SearchEngine
	vectors  driven.VectorIndex
	embedder driven.EmbeddingService
	lexicon  driven.Lexicon

	intents    driven.IntentClassifier
	languages  driven.LanguageDetector
	rewriter   driven.QueryRewriter
	router     driven.CodeRouter
	scorer     driven.CrossScorer
	verifier   driven.RelevanceVerifier
	generator  driven.AnswerGenerator
	translator driven.Translator

	catalogue domain.CodeCatalogue
	lambda    float64
}

// NewAssistant creates the assistant service.
func NewAssistant(deps AssistantDeps) (*Assistant, error) {
	switch {
	case deps.Snapshot == nil:
		return nil, errors.New("assistant: corpus snapshot is required")
	case deps.Engine == nil || deps.Vectors == nil:
		return nil, errors.New("assistant: search engine and vector index are required")
	case deps.Embedder == nil:
		return nil, domain.ErrEmbeddingUnavailable
	case deps.Intents == nil || deps.Languages == nil || deps.Rewriter == nil ||
		deps.Router == nil || deps.Scorer == nil || deps.Verifier == nil ||
		deps.Generator == nil || deps.Translator == nil:
		return nil, domain.ErrOracleUnavailable
	}

	catalogue := deps.Catalogue
	if catalogue == nil {
		catalogue = domain.DefaultCatalogue()
	}
	lambda := deps.Lambda
	if lambda == 0 {
		lambda = DefaultLambda
	}
	lexicon := deps.Lexicon
	if lexicon == nil {
		return nil, errors.New("assistant: lexicon is required")
	}

	return &Assistant{
		snapshot:   deps.Snapshot,
		engine:     deps.Engine,
		vectors:    deps.Vectors,
		embedder:   deps.Embedder,
		lexicon:    lexicon,
		intents:    deps.Intents,
		languages:  deps.Languages,
		rewriter:   deps.Rewriter,
		router:     deps.Router,
		scorer:     deps.Scorer,
		verifier:   deps.Verifier,
		generator:  deps.Generator,
		translator: deps.Translator,
		catalogue:  catalogue,
		lambda:     lambda,
	}, nil
}

// Ask runs the full pipeline for one conversation turn.
func (a *Assistant) Ask(ctx context.Context, query string, topK int, memory domain.Memory) (domain.Answer, error) {
	logger.Section("Ask")
	logger.Debug("Query: %q, topK: %d, memory: %d turns", query, topK, len(memory))

	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Answer{}, domain.ErrInvalidInput
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	history := memory.Format()

	// Stage 1: intent gate. Casual turns never reach retrieval. The
	// gate fails open: a classifier error must not block a legal query.
	decision, err := a.intents.Classify(ctx, query, history)
	if err != nil {
		logger.Warn("Intent gate failed: %v (continuing)", err)
	} else if decision.Casual {
		logger.Info("Casual turn, short-circuiting")
		return domain.Answer{Text: decision.Reply}, nil
	}

	// Stage 2: language normalisation. Failure defaults to the working
	// language rather than blocking the request.
	lang := domain.LanguageEnglish
	working := query
	if ld, err := a.languages.Detect(ctx, query); err != nil {
		logger.Warn("Language detection failed: %v (assuming %s)", err, lang)
	} else {
		lang = ld.Language
		working = ld.Query
	}
	logger.Debug("Language: %s, working query: %q", lang, working)

	// Stage 3: query rewrite. Failure is a pipeline soft error.
	rewritten, err := a.rewriter.Rewrite(ctx, working, history, a.catalogue)
	if err != nil {
		logger.Warn("Query rewrite failed: %v", err)
		return a.terminal(ctx, msgProcessingIssue, lang), nil
	}
	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		rewritten = working
	}
	logger.Info("Rewritten query: %q", rewritten)

	// Stages 4-5: code routing and hybrid retrieval.
	candidates, queryEmbedding, err := a.retrieve(ctx, rewritten, topK)
	if err != nil {
		return domain.Answer{}, err
	}
	if len(candidates) == 0 {
		logger.Info("No retrieval candidates")
		return a.terminal(ctx, msgNoResults, lang), nil
	}

	// Stage 6: MMR diversification. Without a query embedding the
	// selection degrades to the top lexical candidates.
	var selected []candidate
	if queryEmbedding == nil {
		if len(candidates) > topK {
			candidates = candidates[:topK]
		}
		selected = candidates
	} else {
		embeddings := make([][]float32, len(candidates))
		for i, c := range candidates {
			embeddings[i] = c.embedding
		}
		for _, idx := range maximalMarginalRelevance(queryEmbedding, embeddings, topK, a.lambda) {
			selected = append(selected, candidates[idx])
		}
	}
	logger.Debug("MMR selected: %d documents", len(selected))

	// Stage 7: rerank.
	ranked := a.rerank(ctx, rewritten, selected, queryEmbedding)

	// Stage 8: relevance verification.
	verified, terminalMsg := a.verify(ctx, rewritten, ranked)
	if terminalMsg != "" {
		return a.terminal(ctx, terminalMsg, lang), nil
	}

	// Stage 9: answer synthesis.
	contents := make([]string, len(verified))
	for i, v := range verified {
		contents[i] = v.Article.Content
	}
	text, err := a.generator.GenerateAnswer(ctx, driven.AnswerRequest{
		Documents: contents,
		Query:     working,
		History:   history,
	})
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil {
			logger.Warn("Answer generation failed: %v", err)
		}
		text = msgGenerationEmpty
	}

	// Stage 10: localisation.
	if lang.NeedsLocalisation() {
		text = a.localise(ctx, text, lang)
		verified = a.localiseDocuments(verified)
	}

	return domain.Answer{Text: text, Documents: verified}, nil
}

// rerank cross-scores the selected documents, min-max normalises and
// sorts descending. When the scoring oracle fails, the MMR ordering is
// kept with raw query-similarity scores.
func (a *Assistant) rerank(ctx context.Context, query string, selected []candidate, queryEmbedding []float32) []domain.ScoredArticle {
	contents := make([]string, len(selected))
	for i, c := range selected {
		contents[i] = a.snapshot.Article(c.ordinal).Content
	}

	scores, err := a.scorer.Score(ctx, query, contents)
	if err != nil || len(scores) != len(selected) {
		if err != nil {
			logger.Warn("Cross-scoring failed: %v (keeping retrieval order)", err)
		} else {
			logger.Warn("Cross-scoring returned %d scores for %d documents (keeping retrieval order)",
				len(scores), len(selected))
		}
		scores = make([]float64, len(selected))
		for i, c := range selected {
			scores[i] = a.similarity(queryEmbedding, c)
		}
	}

	scores = normaliseScores(scores)

	ranked := make([]domain.ScoredArticle, len(selected))
	for i, c := range selected {
		ranked[i] = domain.ScoredArticle{
			Article: a.snapshot.Article(c.ordinal),
			Score:   scores[i],
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// similarity returns the query-document inner product, or zero when no
// query embedding is available.
func (a *Assistant) similarity(queryEmbedding []float32, c candidate) float64 {
	if queryEmbedding == nil {
		return 0
	}
	var sum float64
	for i := range queryEmbedding {
		sum += float64(queryEmbedding[i]) * float64(c.embedding[i])
	}
	return sum
}

// verify runs the relevance verification oracle and maps its outcome to
// either a verified subset or a terminal message. The returned subset is
// re-sorted by the pre-verification score.
func (a *Assistant) verify(ctx context.Context, query string, ranked []domain.ScoredArticle) ([]domain.ScoredArticle, string) {
	contents := make([]string, len(ranked))
	for i, r := range ranked {
		contents[i] = r.Article.Content
	}

	indices, err := a.verifier.Verify(ctx, query, contents)
	if err != nil {
		logger.Warn("Relevance verification failed: %v", err)
		return nil, msgProcessingIssue
	}

	if len(indices) == 0 {
		logger.Info("Verifier returned no indices")
		return nil, msgNoCandidates
	}

	var verified []domain.ScoredArticle
	for _, idx := range indices {
		if idx >= 1 && idx <= len(ranked) {
			verified = append(verified, ranked[idx-1])
		}
	}
	if len(verified) == 0 {
		logger.Info("No verifier index mapped to a valid position")
		return nil, msgNoVerified
	}

	sort.SliceStable(verified, func(i, j int) bool {
		return verified[i].Score > verified[j].Score
	})
	logger.Debug("Verified documents: %d", len(verified))
	return verified, ""
}

// terminal builds a terminal answer with an empty document list,
// localising the message when needed.
func (a *Assistant) terminal(ctx context.Context, msg string, lang domain.Language) domain.Answer {
	if lang.NeedsLocalisation() {
		msg = a.localise(ctx, msg, lang)
	}
	return domain.Answer{Text: msg}
}

// localise translates text to the given language, keeping the working
// language text on oracle failure.
func (a *Assistant) localise(ctx context.Context, text string, lang domain.Language) string {
	translated, err := a.translator.Translate(ctx, text, lang)
	if err != nil || strings.TrimSpace(translated) == "" {
		logger.Warn("Translation failed: %v (returning working-language text)", err)
		return text
	}
	return translated
}

// localiseDocuments swaps each document's content for its Arabic mapping
// from the identity-keyed side table, falling back to the working
// language content when no mapping exists.
func (a *Assistant) localiseDocuments(docs []domain.ScoredArticle) []domain.ScoredArticle {
	out := make([]domain.ScoredArticle, len(docs))
	for i, d := range docs {
		out[i] = d
		if arabic, ok := a.snapshot.Arabic(d.Article.ID()); ok {
			out[i].Article.Content = arabic
		}
	}
	return out
}
