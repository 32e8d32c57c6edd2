package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
)

func testArticles() []domain.Article {
	return []domain.Article{
		{Code: "code-travail", Name: "article-1", Content: "Employment contract.", ContentArabic: "عقد الشغل", Embedding: []float32{1, 0}},
		{Code: "code-travail", Name: "article-2", Content: "Working hours.", Embedding: []float32{0, 1}},
		{Code: "code-penal", Name: "article-264", Content: "Theft.", Embedding: []float32{1, 1}},
	}
}

func TestNewSnapshot_EmptyCorpus(t *testing.T) {
	_, err := NewSnapshot(nil)

	assert.ErrorIs(t, err, domain.ErrCorpusEmpty)
}

func TestNewSnapshot_MissingEmbedding(t *testing.T) {
	articles := []domain.Article{{Code: "code-travail", Name: "article-1", Content: "text"}}

	_, err := NewSnapshot(articles)

	assert.ErrorIs(t, err, domain.ErrCorpusMisaligned)
}

func TestNewSnapshot_MismatchedDimensions(t *testing.T) {
	articles := testArticles()
	articles[2].Embedding = []float32{1, 1, 1}

	_, err := NewSnapshot(articles)

	assert.ErrorIs(t, err, domain.ErrCorpusMisaligned)
}

func TestNewSnapshot_MissingContentOrCode(t *testing.T) {
	articles := testArticles()
	articles[1].Content = ""

	_, err := NewSnapshot(articles)

	assert.ErrorIs(t, err, domain.ErrCorpusMisaligned)
}

func TestSnapshot_Accessors(t *testing.T) {
	s, err := NewSnapshot(testArticles())
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.Dimensions())
	assert.Equal(t, "article-264", s.Article(2).Name)
	assert.Equal(t, []float32{0, 1}, s.Embedding(1))
	assert.Equal(t, []string{"Employment contract.", "Working hours.", "Theft."}, s.Contents())
	assert.Equal(t, []int{0, 1, 2}, s.AllOrdinals())
}

func TestOrdinalsForCodes(t *testing.T) {
	s, err := NewSnapshot(testArticles())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, s.OrdinalsForCodes([]string{"code-travail"}))
	assert.Equal(t, []int{2}, s.OrdinalsForCodes([]string{"code-penal"}))
	assert.Empty(t, s.OrdinalsForCodes([]string{"code-des-eaux"}))
}

func TestOrdinalsForCodes_EmptySetFallsBackToFullCorpus(t *testing.T) {
	s, err := NewSnapshot(testArticles())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, s.OrdinalsForCodes(nil))
}

func TestArabic(t *testing.T) {
	s, err := NewSnapshot(testArticles())
	require.NoError(t, err)

	content, ok := s.Arabic(domain.ArticleID{Code: "code-travail", Name: "article-1"})
	assert.True(t, ok)
	assert.Equal(t, "عقد الشغل", content)

	_, ok = s.Arabic(domain.ArticleID{Code: "code-travail", Name: "article-2"})
	assert.False(t, ok)
}
