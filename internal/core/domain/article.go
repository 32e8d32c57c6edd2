package domain

// ArticleID is the stable identity of a legal article: the code it belongs
// to plus the article name within that code.
type ArticleID struct {
	// Code is the topical code identifier, e.g. "code-statut-personnel".
	Code string

	// Name is the article name within the code, e.g. "article-31".
	Name string
}

// Article represents a single legal-code article in the corpus.
// Articles are immutable once ingested; their lifecycle is owned entirely
// by the offline ingestion job.
type Article struct {
	// Code is the topical code this article belongs to.
	Code string

	// Name is the article name within the code.
	Name string

	// Content is the working-language (English) text. Required.
	Content string

	// ContentArabic is the Arabic text, when a translation exists.
	ContentArabic string

	// Embedding is the precomputed unit-normalised embedding of Content.
	Embedding []float32
}

// ID returns the stable identity of the article.
func (a Article) ID() ArticleID {
	return ArticleID{Code: a.Code, Name: a.Name}
}

// ScoredArticle pairs an article with a stage-scoped relevance score.
// Score domains differ between stages (raw inner product, BM25, normalised
// rerank score) and must not be compared across stages.
type ScoredArticle struct {
	Article Article
	Score   float64
}

// Answer is the final pipeline result: the answer text and the verified
// supporting articles, sorted by descending score.
type Answer struct {
	// Text is the generated (or terminal fallback) answer.
	Text string

	// Documents are the surviving articles with their rerank scores,
	// ordered by descending score.
	Documents []ScoredArticle
}
