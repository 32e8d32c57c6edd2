package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
	"github.com/mizan-labs/mizan-cli/internal/core/ports/driven"
)

// stubLLM returns a canned reply and records the last prompt and options.
type stubLLM struct {
	reply      string
	err        error
	lastPrompt string
	lastOpts   driven.GenerateOptions
}

func (s *stubLLM) Generate(_ context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	s.lastPrompt = prompt
	s.lastOpts = opts
	return s.reply, s.err
}

func (s *stubLLM) ModelName() string          { return "stub" }
func (s *stubLLM) Ping(context.Context) error { return nil }
func (s *stubLLM) Close() error               { return nil }

func TestNewSuite_RequiresLLM(t *testing.T) {
	_, err := NewSuite(nil, nil)

	assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
}

func TestSuite_ClassifyInterpolatesQueryAndHistory(t *testing.T) {
	llm := &stubLLM{reply: "FALSE Hi there!"}
	suite, err := NewSuite(llm, nil)
	require.NoError(t, err)

	decision, err := suite.Classify(context.Background(), "hello", "Human: hi")

	require.NoError(t, err)
	assert.True(t, decision.Casual)
	assert.Equal(t, "Hi there!", decision.Reply)
	assert.Contains(t, llm.lastPrompt, `"hello"`)
	assert.Contains(t, llm.lastPrompt, "Human: hi")
	assert.Equal(t, classifyOpts, llm.lastOpts)
}

func TestSuite_GenerateErrorsAreWrapped(t *testing.T) {
	llm := &stubLLM{err: errors.New("quota exceeded")}
	suite, err := NewSuite(llm, nil)
	require.NoError(t, err)

	_, err = suite.Rewrite(context.Background(), "q", "", domain.DefaultCatalogue())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "query rewrite")
}

func TestSuite_ScoreEmptyDocuments(t *testing.T) {
	suite, err := NewSuite(&stubLLM{}, nil)
	require.NoError(t, err)

	scores, err := suite.Score(context.Background(), "q", nil)

	require.NoError(t, err)
	assert.Nil(t, scores)
}

func TestSuite_VerifyFormatsNumberedDocuments(t *testing.T) {
	llm := &stubLLM{reply: "Relevant Document Indices:\n[1]"}
	suite, err := NewSuite(llm, nil)
	require.NoError(t, err)

	indices, err := suite.Verify(context.Background(), "q", []string{"first", "second"})

	require.NoError(t, err)
	assert.Equal(t, []int{1}, indices)
	assert.Contains(t, llm.lastPrompt, "Document 1:\nfirst")
	assert.Contains(t, llm.lastPrompt, "Document 2:\nsecond")
}

func TestSuite_GenerateAnswerUsesAnswerOptions(t *testing.T) {
	llm := &stubLLM{reply: "  The answer.  "}
	suite, err := NewSuite(llm, nil)
	require.NoError(t, err)

	answer, err := suite.GenerateAnswer(context.Background(), driven.AnswerRequest{
		Query:     "What is theft?",
		Documents: []string{"Article 264."},
	})

	require.NoError(t, err)
	assert.Equal(t, "The answer.", answer)
	assert.Equal(t, answerOpts, llm.lastOpts)
}

// stubPromptStore serves a fixed template for every name.
type stubPromptStore struct{ template string }

func (s *stubPromptStore) Load(string) (string, error) { return s.template, nil }
func (s *stubPromptStore) Reload()                     {}

func TestSuite_PrefersStorePromptOverDefault(t *testing.T) {
	llm := &stubLLM{reply: "TRUE"}
	suite, err := NewSuite(llm, &stubPromptStore{template: "custom gate %s %s"})
	require.NoError(t, err)

	_, err = suite.Classify(context.Background(), "query", "history")

	require.NoError(t, err)
	assert.Equal(t, "custom gate query history", llm.lastPrompt)
}

func TestSuite_BlankStorePromptFallsBackToDefault(t *testing.T) {
	llm := &stubLLM{reply: "TRUE"}
	suite, err := NewSuite(llm, &stubPromptStore{template: "   "})
	require.NoError(t, err)

	_, err = suite.Classify(context.Background(), "query", "history")

	require.NoError(t, err)
	assert.Contains(t, llm.lastPrompt, "query")
	assert.NotEqual(t, "   ", llm.lastPrompt)
}
