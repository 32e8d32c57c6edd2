// Package memory provides in-memory store implementations, used in tests
// and anywhere persistence is not needed.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
	"github.com/mizan-labs/mizan-cli/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an in-memory implementation of driven.CorpusStore.
type CorpusStore struct {
	mu       sync.RWMutex
	articles map[domain.ArticleID]domain.Article
}

// NewCorpusStore creates a new in-memory corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{
		articles: make(map[domain.ArticleID]domain.Article),
	}
}

// SaveArticles stores or replaces articles by identity.
func (s *CorpusStore) SaveArticles(_ context.Context, articles []domain.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, article := range articles {
		s.articles[article.ID()] = article
	}
	return nil
}

// LoadArticles returns every stored article, ordered by identity to
// match the persistent store's stable ordering.
func (s *CorpusStore) LoadArticles(_ context.Context) ([]domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	articles := make([]domain.Article, 0, len(s.articles))
	for _, article := range s.articles {
		articles = append(articles, article)
	}
	sort.Slice(articles, func(i, j int) bool {
		if articles[i].Code != articles[j].Code {
			return articles[i].Code < articles[j].Code
		}
		return articles[i].Name < articles[j].Name
	})
	return articles, nil
}

// Count returns the number of stored articles.
func (s *CorpusStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles), nil
}

// Close releases resources.
func (s *CorpusStore) Close() error {
	return nil
}
