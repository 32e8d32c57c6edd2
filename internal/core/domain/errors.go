package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorpusEmpty indicates the corpus store holds no articles.
	// The pipeline cannot serve queries before ingestion has run.
	ErrCorpusEmpty = errors.New("corpus is empty")

	// ErrCorpusMisaligned indicates articles and embeddings disagree in
	// count or dimensionality. The snapshot refuses to build rather than
	// serve a partially populated index.
	ErrCorpusMisaligned = errors.New("corpus arrays misaligned")

	// ErrOracleUnavailable indicates an LLM oracle is not configured.
	ErrOracleUnavailable = errors.New("oracle unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Vector retrieval is disabled without embeddings.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrUnparsableOracleReply indicates an oracle response that does not
	// follow its wire contract at all. Stages map this to their defined
	// terminal state, never to the caller.
	ErrUnparsableOracleReply = errors.New("unparsable oracle reply")
)
