// Package flat implements an exhaustive inner-product vector index over
// the corpus snapshot. With unit-normalised embeddings the inner product
// equals the cosine similarity, so a flat scan gives exact nearest
// neighbours without approximation.
package flat

import (
	"context"
	"fmt"
	"sort"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
	"github.com/mizan-labs/mizan-cli/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// Index holds the ordinal-aligned embedding matrix.
type Index struct {
	embeddings [][]float32
	dimensions int
}

// New builds a flat index over the given embeddings. All vectors must
// share the same dimensionality.
func New(embeddings [][]float32) (*Index, error) {
	if len(embeddings) == 0 {
		return nil, domain.ErrCorpusEmpty
	}
	dim := len(embeddings[0])
	for i, e := range embeddings {
		if len(e) != dim {
			return nil, fmt.Errorf("%w: embedding %d has dimension %d, want %d",
				domain.ErrCorpusMisaligned, i, len(e), dim)
		}
	}
	return &Index{embeddings: embeddings, dimensions: dim}, nil
}

// Dimensions returns the embedding dimensionality.
func (idx *Index) Dimensions() int {
	return idx.dimensions
}

// Search returns the k nearest documents to the query vector among the
// given ordinals, by inner product, best first.
func (idx *Index) Search(_ context.Context, query []float32, ordinals []int, k int) ([]driven.VectorHit, error) {
	if len(query) != idx.dimensions {
		return nil, fmt.Errorf("%w: query has dimension %d, want %d",
			domain.ErrInvalidInput, len(query), idx.dimensions)
	}
	if k <= 0 || len(ordinals) == 0 {
		return nil, nil
	}

	hits := make([]driven.VectorHit, 0, len(ordinals))
	for _, ord := range ordinals {
		if ord < 0 || ord >= len(idx.embeddings) {
			continue
		}
		hits = append(hits, driven.VectorHit{
			Ordinal:    ord,
			Similarity: DotProduct(query, idx.embeddings[ord]),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// DotProduct computes the inner product of two equal-length vectors.
func DotProduct(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
