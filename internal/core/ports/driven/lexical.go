package driven

import "context"

// SearchEngine provides lexical (BM25) scoring over the corpus.
// Scoring is ordinal-based: hits refer to positions in the corpus
// snapshot, and every query is restricted to a routed subset of
// ordinals.
type SearchEngine interface {
	// Search scores the query against the corpus and returns the top
	// limit hits among the given ordinals, best first. An empty ordinal
	// slice yields no hits; routing fallback is the caller's concern.
	Search(ctx context.Context, query string, ordinals []int, limit int) ([]SearchHit, error)
}

// SearchHit is a lexical scoring result.
type SearchHit struct {
	// Ordinal is the matched document's position in the corpus snapshot.
	Ordinal int

	// Score is the BM25 relevance score.
	Score float64
}

// Lexicon expands a query with lexically related terms from a fixed
// ontology. Expansion applies to lexical scoring only; vector scoring
// always uses the unexpanded query.
type Lexicon interface {
	Expand(query string) string
}
