package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
)

// mockAssistant returns a canned answer and records the last call.
type mockAssistant struct {
	answer     domain.Answer
	err        error
	lastQuery  string
	lastTopK   int
	lastMemory domain.Memory
}

func (m *mockAssistant) Ask(_ context.Context, query string, topK int, memory domain.Memory) (domain.Answer, error) {
	m.lastQuery = query
	m.lastTopK = topK
	m.lastMemory = memory
	return m.answer, m.err
}

func newTestServer(t *testing.T, assistant *mockAssistant) *Server {
	t.Helper()

	server, err := NewServer(assistant, DefaultAddr)
	require.NoError(t, err)
	return server
}

func TestHandleQuery_HappyPath(t *testing.T) {
	assistant := &mockAssistant{
		answer: domain.Answer{
			Text: "Theft is punished under article 264.",
			Documents: []domain.ScoredArticle{
				{Article: domain.Article{Code: "code-penal", Name: "article-264", Content: "Theft."}, Score: 0.9},
			},
		},
	}
	server := newTestServer(t, assistant)

	body := `{"query": "What is theft?", "top_k": 3, "memory": [{"role": "user", "content": "hi"}]}`
	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(body))
	rec := httptest.NewRecorder()

	server.handleQuery(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp queryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Theft is punished under article 264.", resp.Answer)
	require.Len(t, resp.RetrievedDocuments, 1)
	assert.Equal(t, "code-penal/article-264", resp.RetrievedDocuments[0].Header)
	assert.Equal(t, "Theft.", resp.RetrievedDocuments[0].Content)

	assert.Equal(t, "What is theft?", assistant.lastQuery)
	assert.Equal(t, 3, assistant.lastTopK)
	require.Len(t, assistant.lastMemory, 1)
	assert.Equal(t, domain.RoleUser, assistant.lastMemory[0].Role)
}

func TestHandleQuery_EmptyQuery(t *testing.T) {
	server := newTestServer(t, &mockAssistant{})

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query": "   "}`))
	rec := httptest.NewRecorder()

	server.handleQuery(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleQuery_MalformedBody(t *testing.T) {
	server := newTestServer(t, &mockAssistant{})

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	server.handleQuery(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleQuery_InvalidInputMapsTo400(t *testing.T) {
	server := newTestServer(t, &mockAssistant{err: domain.ErrInvalidInput})

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query": "q"}`))
	rec := httptest.NewRecorder()

	server.handleQuery(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleQuery_InternalErrorIsGeneric(t *testing.T) {
	server := newTestServer(t, &mockAssistant{err: errors.New("quota exceeded for project legal-rag")})

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query": "q"}`))
	rec := httptest.NewRecorder()

	server.handleQuery(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "quota")
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(t, &mockAssistant{})

	rec := httptest.NewRecorder()
	server.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestNewServer_RequiresAssistant(t *testing.T) {
	_, err := NewServer(nil, "")

	assert.Error(t, err)
}
