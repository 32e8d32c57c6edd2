// Package ingest implements the offline corpus ingestion job: it walks
// a directory of per-code article files, embeds the English content and
// persists the result to the corpus store. Query-time code never runs
// any of this.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
	"github.com/mizan-labs/mizan-cli/internal/core/ports/driven"
	"github.com/mizan-labs/mizan-cli/internal/logger"
)

// embedBatchSize bounds one embedding request.
const embedBatchSize = 16

// arabicSuffix marks the Arabic translation file of an article.
const arabicSuffix = ".ar.txt"

// Loader reads a corpus directory and ingests it into the store.
//
// Layout: one directory per code, one `<name>.txt` file per article,
// with an optional `<name>.ar.txt` Arabic translation alongside it.
type Loader struct {
	embedder driven.EmbeddingService
	store    driven.CorpusStore
}

// NewLoader creates an ingestion loader.
func NewLoader(embedder driven.EmbeddingService, store driven.CorpusStore) (*Loader, error) {
	if embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}
	if store == nil {
		return nil, fmt.Errorf("ingest: corpus store is required")
	}
	return &Loader{embedder: embedder, store: store}, nil
}

// Run ingests every article under dir. Returns the number of articles
// ingested. Ingestion is all-or-nothing per batch; a failed batch aborts
// the run with the store unchanged for that batch.
func (l *Loader) Run(ctx context.Context, dir string) (int, error) {
	logger.Section("Ingest")
	logger.Info("Corpus directory: %s", dir)

	articles, err := l.collect(dir)
	if err != nil {
		return 0, err
	}
	if len(articles) == 0 {
		return 0, fmt.Errorf("%w: no articles under %s", domain.ErrCorpusEmpty, dir)
	}
	logger.Info("Collected %d articles", len(articles))

	total := 0
	for start := 0; start < len(articles); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(articles) {
			end = len(articles)
		}
		batch := articles[start:end]

		texts := make([]string, len(batch))
		for i, article := range batch {
			texts[i] = article.Content
		}

		embeddings, err := l.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return total, fmt.Errorf("embedding batch %d-%d: %w", start, end, err)
		}
		for i := range batch {
			batch[i].Embedding = embeddings[i]
		}

		if err := l.store.SaveArticles(ctx, batch); err != nil {
			return total, fmt.Errorf("saving batch %d-%d: %w", start, end, err)
		}
		total += len(batch)
		logger.Debug("Ingested %d/%d", total, len(articles))
	}

	logger.Info("Ingestion complete: %d articles", total)
	return total, nil
}

// collect walks the corpus directory and reads article contents.
func (l *Loader) collect(dir string) ([]domain.Article, error) {
	codeDirs, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}

	var articles []domain.Article
	for _, codeDir := range codeDirs {
		if !codeDir.IsDir() {
			continue
		}
		code := codeDir.Name()

		entries, err := os.ReadDir(filepath.Join(dir, code))
		if err != nil {
			return nil, fmt.Errorf("reading code directory %s: %w", code, err)
		}

		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() || !strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, arabicSuffix) {
				continue
			}

			content, err := os.ReadFile(filepath.Join(dir, code, name))
			if err != nil {
				return nil, fmt.Errorf("reading article %s/%s: %w", code, name, err)
			}
			if strings.TrimSpace(string(content)) == "" {
				logger.Warn("Skipping empty article %s/%s", code, name)
				continue
			}

			article := domain.Article{
				Code:    code,
				Name:    strings.TrimSuffix(name, ".txt"),
				Content: strings.TrimSpace(string(content)),
			}

			arabicPath := filepath.Join(dir, code, article.Name+arabicSuffix)
			if arabic, err := os.ReadFile(arabicPath); err == nil {
				article.ContentArabic = strings.TrimSpace(string(arabic))
			}

			articles = append(articles, article)
		}
	}

	return articles, nil
}
