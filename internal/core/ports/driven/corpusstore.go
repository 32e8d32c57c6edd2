package driven

import (
	"context"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
)

// CorpusStore persists ingested articles with their embeddings.
// Backed by SQLite; written only by the offline ingestion job and read
// once at startup to build the corpus snapshot.
type CorpusStore interface {
	// SaveArticles stores or replaces articles by identity.
	SaveArticles(ctx context.Context, articles []domain.Article) error

	// LoadArticles returns every ingested article.
	LoadArticles(ctx context.Context) ([]domain.Article, error)

	// Count returns the number of ingested articles.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
