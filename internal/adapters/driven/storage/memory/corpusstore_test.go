package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
)

func TestCorpusStore_SaveAndLoadOrdered(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	err := store.SaveArticles(ctx, []domain.Article{
		{Code: "code-travail", Name: "article-2", Content: "b", Embedding: []float32{1}},
		{Code: "code-penal", Name: "article-264", Content: "a", Embedding: []float32{1}},
		{Code: "code-travail", Name: "article-1", Content: "c", Embedding: []float32{1}},
	})
	require.NoError(t, err)

	loaded, err := store.LoadArticles(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "code-penal", loaded[0].Code)
	assert.Equal(t, "article-1", loaded[1].Name)
	assert.Equal(t, "article-2", loaded[2].Name)
}

func TestCorpusStore_ReplacesByIdentity(t *testing.T) {
	store := NewCorpusStore()
	ctx := context.Background()

	article := domain.Article{Code: "code-penal", Name: "article-264", Content: "old", Embedding: []float32{1}}
	require.NoError(t, store.SaveArticles(ctx, []domain.Article{article}))

	article.Content = "new"
	require.NoError(t, store.SaveArticles(ctx, []domain.Article{article}))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	loaded, err := store.LoadArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", loaded[0].Content)
}

func TestCorpusStore_Empty(t *testing.T) {
	store := NewCorpusStore()

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	loaded, err := store.LoadArticles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
