package flat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
)

func testEmbeddings() [][]float32 {
	return [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0.6, 0.8, 0},
	}
}

func TestNew_EmptyCorpus(t *testing.T) {
	_, err := New(nil)

	assert.ErrorIs(t, err, domain.ErrCorpusEmpty)
}

func TestNew_MismatchedDimensions(t *testing.T) {
	_, err := New([][]float32{{1, 0}, {1, 0, 0}})

	assert.ErrorIs(t, err, domain.ErrCorpusMisaligned)
}

func TestSearch_OrdersBySimilarity(t *testing.T) {
	idx, err := New(testEmbeddings())
	require.NoError(t, err)

	hits, err := idx.Search(context.Background(), []float32{0, 1, 0}, []int{0, 1, 2}, 3)

	require.NoError(t, err)
	require.Len(t, hits, 3)
	assert.Equal(t, 1, hits[0].Ordinal)
	assert.Equal(t, 2, hits[1].Ordinal)
	assert.Equal(t, 0, hits[2].Ordinal)
}

func TestSearch_RestrictsToGivenOrdinals(t *testing.T) {
	idx, err := New(testEmbeddings())
	require.NoError(t, err)

	hits, err := idx.Search(context.Background(), []float32{0, 1, 0}, []int{0, 99}, 3)

	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, 0, hits[0].Ordinal)
}

func TestSearch_QueryDimensionMismatch(t *testing.T) {
	idx, err := New(testEmbeddings())
	require.NoError(t, err)

	_, err = idx.Search(context.Background(), []float32{1, 0}, []int{0}, 1)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDotProduct(t *testing.T) {
	assert.InDelta(t, 0.8, DotProduct([]float32{0, 1, 0}, []float32{0.6, 0.8, 0}), 1e-6)
}
