// Package bm25 implements an in-memory BM25 (Okapi) lexical index over the
// corpus snapshot. The index is built once at startup and is read-only
// thereafter; every query scores against a routed subset of ordinals.
package bm25

import (
	"context"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/mizan-labs/mizan-cli/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.SearchEngine = (*Index)(nil)

// BM25 free parameters. Standard Okapi defaults.
const (
	k1 = 1.5
	b  = 0.75
)

// Index is a BM25 scorer over a fixed document list.
type Index struct {
	termFreqs []map[string]int // per-document term frequencies
	docLens   []float64
	avgDocLen float64
	docFreq   map[string]int // number of documents containing each term
	n         int
}

// New builds a BM25 index over the given documents. Document order
// defines the ordinals used in search results.
func New(documents []string) *Index {
	idx := &Index{
		termFreqs: make([]map[string]int, len(documents)),
		docLens:   make([]float64, len(documents)),
		docFreq:   make(map[string]int),
		n:         len(documents),
	}

	var totalLen float64
	for i, doc := range documents {
		tokens := Tokenize(doc)
		freqs := make(map[string]int, len(tokens))
		for _, t := range tokens {
			freqs[t]++
		}
		idx.termFreqs[i] = freqs
		idx.docLens[i] = float64(len(tokens))
		totalLen += float64(len(tokens))
		for t := range freqs {
			idx.docFreq[t]++
		}
	}
	if idx.n > 0 {
		idx.avgDocLen = totalLen / float64(idx.n)
	}

	return idx
}

// Tokenize lowercases text and splits it on non-letter, non-digit runes.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Search scores the query against the corpus and returns the top limit
// hits among the given ordinals, best first. Documents matching no query
// term carry no lexical signal and are omitted rather than padded in at
// score zero; the vector branch ranks those.
func (idx *Index) Search(_ context.Context, query string, ordinals []int, limit int) ([]driven.SearchHit, error) {
	if limit <= 0 || len(ordinals) == 0 {
		return nil, nil
	}

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil, nil
	}

	hits := make([]driven.SearchHit, 0, len(ordinals))
	for _, ord := range ordinals {
		if ord < 0 || ord >= idx.n {
			continue
		}
		if score := idx.score(tokens, ord); score > 0 {
			hits = append(hits, driven.SearchHit{Ordinal: ord, Score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

// score computes the BM25 score of one document for the query tokens.
// Uses the +1 idf variant so scores stay non-negative for common terms.
func (idx *Index) score(queryTokens []string, ordinal int) float64 {
	freqs := idx.termFreqs[ordinal]
	docLen := idx.docLens[ordinal]

	var score float64
	for _, t := range queryTokens {
		tf := float64(freqs[t])
		if tf == 0 {
			continue
		}
		df := float64(idx.docFreq[t])
		idf := math.Log(1 + (float64(idx.n)-df+0.5)/(df+0.5))
		score += idf * (tf * (k1 + 1)) / (tf + k1*(1-b+b*docLen/idx.avgDocLen))
	}
	return score
}
