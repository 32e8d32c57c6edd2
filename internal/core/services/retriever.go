package services

import (
	"context"
	"fmt"

	"github.com/mizan-labs/mizan-cli/internal/logger"
)

// poolFactor controls the candidate pool size: each retrieval branch
// keeps the top poolFactor*topK documents before merging.
const poolFactor = 10

// candidate is a retrieved document before diversification: its corpus
// ordinal and its embedding, carried forward for MMR.
type candidate struct {
	ordinal   int
	embedding []float32
}

// retrieve runs code routing and hybrid lexical+vector retrieval for the
// rewritten query. It returns the deduplicated candidate list and the
// query embedding (nil when embedding failed and retrieval degraded to
// lexical-only).
//
// An empty candidate list is a valid terminal outcome, not an error.
func (a *Assistant) retrieve(ctx context.Context, query string, topK int) ([]candidate, []float32, error) {
	logger.Section("Retrieval")

	// Code routing narrows the universe; failure or an empty result
	// falls back to the full corpus. Routing is a precision
	// optimisation, not a correctness filter.
	codes, err := a.router.Route(ctx, query, a.catalogue)
	if err != nil {
		logger.Warn("Code routing failed: %v (falling back to all codes)", err)
		codes = nil
	}
	logger.Debug("Routed codes: %v", codes)

	ordinals := a.snapshot.OrdinalsForCodes(codes)
	if len(ordinals) == 0 {
		logger.Warn("No documents under routed codes")
		return nil, nil, nil
	}
	logger.Debug("Routed universe: %d documents", len(ordinals))

	pool := poolFactor * topK

	// Lexical branch scores the synonym-expanded query.
	expanded := a.lexicon.Expand(query)
	logger.Debug("Expanded query: %q", expanded)
	lexHits, lexErr := a.engine.Search(ctx, expanded, ordinals, pool)
	if lexErr != nil {
		logger.Warn("Lexical retrieval failed: %v", lexErr)
	} else {
		logger.Debug("Lexical hits: %d", len(lexHits))
	}

	// Vector branch scores the unexpanded query.
	queryEmbedding, embErr := a.embedder.Embed(ctx, query)
	var vectorOrdinals []int
	vectorFailed := false
	if embErr != nil {
		logger.Warn("Query embedding failed: %v (lexical-only retrieval)", embErr)
		queryEmbedding = nil
		vectorFailed = true
	} else {
		hits, vecErr := a.vectors.Search(ctx, queryEmbedding, ordinals, pool)
		if vecErr != nil {
			logger.Warn("Vector retrieval failed: %v", vecErr)
			vectorFailed = true
		} else {
			logger.Debug("Vector hits: %d", len(hits))
			vectorOrdinals = make([]int, len(hits))
			for i, h := range hits {
				vectorOrdinals[i] = h.Ordinal
			}
		}
	}

	if lexErr != nil && vectorFailed {
		return nil, nil, fmt.Errorf("retrieval: both lexical and vector branches failed: %w", lexErr)
	}

	// Union the branches, lexical first, deduplicating by document
	// identity. First occurrence wins; embeddings are carried forward
	// for MMR.
	seen := make(map[int]bool)
	var merged []candidate
	for _, hit := range lexHits {
		if seen[hit.Ordinal] {
			continue
		}
		seen[hit.Ordinal] = true
		merged = append(merged, candidate{ordinal: hit.Ordinal, embedding: a.snapshot.Embedding(hit.Ordinal)})
	}
	for _, ord := range vectorOrdinals {
		if seen[ord] {
			continue
		}
		seen[ord] = true
		merged = append(merged, candidate{ordinal: ord, embedding: a.snapshot.Embedding(ord)})
	}

	logger.Debug("Merged candidates: %d", len(merged))
	return merged, queryEmbedding, nil
}
