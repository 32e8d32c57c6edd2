package driven

import "context"

// VectorIndex provides similarity search over the corpus embeddings.
// Like SearchEngine, results are ordinal-based and restricted to a
// routed subset.
type VectorIndex interface {
	// Search returns the k nearest documents to the query vector among
	// the given ordinals, by inner product, best first.
	Search(ctx context.Context, query []float32, ordinals []int, k int) ([]VectorHit, error)
}

// VectorHit is a similarity search result.
type VectorHit struct {
	// Ordinal is the matched document's position in the corpus snapshot.
	Ordinal int

	// Similarity is the inner product with the query vector. For
	// unit-normalised vectors this equals the cosine similarity.
	Similarity float64
}
