// Package corpus holds the immutable in-memory snapshot of the ingested
// legal corpus. The snapshot is built once at startup and shared read-only
// across all request-scoped pipeline invocations, so query processing
// needs no locking.
package corpus

import (
	"fmt"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
)

// Snapshot is the read-only view of the corpus: articles, their
// embeddings and their code membership, aligned by ordinal, plus the
// Arabic side table keyed by article identity.
//
// The constructor validates alignment; a Snapshot that exists is whole.
type Snapshot struct {
	articles   []domain.Article
	embeddings [][]float32
	codes      []string
	arabic     map[domain.ArticleID]string
	dimensions int
}

// NewSnapshot builds a snapshot from ingested articles.
// Every article must carry content, a code and an embedding of the same
// dimensionality; anything else is a misaligned corpus and the snapshot
// refuses to build.
func NewSnapshot(articles []domain.Article) (*Snapshot, error) {
	if len(articles) == 0 {
		return nil, domain.ErrCorpusEmpty
	}

	dim := len(articles[0].Embedding)
	if dim == 0 {
		return nil, fmt.Errorf("%w: article %q has no embedding", domain.ErrCorpusMisaligned, articles[0].Name)
	}

	s := &Snapshot{
		articles:   make([]domain.Article, len(articles)),
		embeddings: make([][]float32, len(articles)),
		codes:      make([]string, len(articles)),
		arabic:     make(map[domain.ArticleID]string),
		dimensions: dim,
	}

	for i, a := range articles {
		if a.Content == "" || a.Code == "" {
			return nil, fmt.Errorf("%w: article %d missing content or code", domain.ErrCorpusMisaligned, i)
		}
		if len(a.Embedding) != dim {
			return nil, fmt.Errorf("%w: article %d has dimension %d, want %d",
				domain.ErrCorpusMisaligned, i, len(a.Embedding), dim)
		}
		s.articles[i] = a
		s.embeddings[i] = a.Embedding
		s.codes[i] = a.Code
		if a.ContentArabic != "" {
			s.arabic[a.ID()] = a.ContentArabic
		}
	}

	return s, nil
}

// Len returns the number of articles in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.articles)
}

// Dimensions returns the embedding dimensionality.
func (s *Snapshot) Dimensions() int {
	return s.dimensions
}

// Article returns the article at the given ordinal.
func (s *Snapshot) Article(ordinal int) domain.Article {
	return s.articles[ordinal]
}

// Embedding returns the embedding at the given ordinal.
func (s *Snapshot) Embedding(ordinal int) []float32 {
	return s.embeddings[ordinal]
}

// Embeddings returns the full ordinal-aligned embedding matrix.
func (s *Snapshot) Embeddings() [][]float32 {
	return s.embeddings
}

// Contents returns the ordinal-aligned working-language contents.
func (s *Snapshot) Contents() []string {
	contents := make([]string, len(s.articles))
	for i := range s.articles {
		contents[i] = s.articles[i].Content
	}
	return contents
}

// AllOrdinals returns every ordinal in snapshot order.
func (s *Snapshot) AllOrdinals() []int {
	ordinals := make([]int, len(s.articles))
	for i := range ordinals {
		ordinals[i] = i
	}
	return ordinals
}

// OrdinalsForCodes returns the ordinals of articles whose code is in the
// given set. An empty code set means routing found nothing and falls back
// to the full corpus, never to an empty subset.
func (s *Snapshot) OrdinalsForCodes(codes []string) []int {
	if len(codes) == 0 {
		return s.AllOrdinals()
	}

	member := make(map[string]bool, len(codes))
	for _, c := range codes {
		member[c] = true
	}

	var ordinals []int
	for i, code := range s.codes {
		if member[code] {
			ordinals = append(ordinals, i)
		}
	}
	return ordinals
}

// Arabic returns the Arabic content for the given article identity, if a
// mapping exists.
func (s *Snapshot) Arabic(id domain.ArticleID) (string, bool) {
	content, ok := s.arabic[id]
	return content, ok
}
