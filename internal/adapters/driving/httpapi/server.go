// Package httpapi exposes the answer pipeline over HTTP.
// One endpoint: POST /query. Conversation memory travels with each
// request; the server itself holds no session state.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
	"github.com/mizan-labs/mizan-cli/internal/core/ports/driving"
	"github.com/mizan-labs/mizan-cli/internal/logger"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8000"

// Server serves the query API.
type Server struct {
	assistant  driving.AssistantService
	httpServer *http.Server
}

// NewServer creates a new HTTP API server.
func NewServer(assistant driving.AssistantService, addr string) (*Server, error) {
	if assistant == nil {
		return nil, errors.New("httpapi: assistant service is required")
	}
	if addr == "" {
		addr = DefaultAddr
	}

	s := &Server{assistant: assistant}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /query", s.handleQuery)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Run starts the server and blocks until the context is cancelled or an
// error occurs.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	logger.Info("HTTP API listening on %s", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// message is one conversation turn in the request payload.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// queryRequest is the POST /query payload.
type queryRequest struct {
	Query  string    `json:"query"`
	TopK   int       `json:"top_k"`
	Memory []message `json:"memory"`
}

// retrievedDocument is one supporting article in the response.
type retrievedDocument struct {
	Header  string `json:"header"`
	Content string `json:"content"`
}

// queryResponse is the POST /query response payload.
type queryResponse struct {
	Answer             string              `json:"answer"`
	RetrievedDocuments []retrievedDocument `json:"retrieved_documents"`
}

// handleQuery runs one pipeline turn. Internal failures map to a generic
// 500; details stay in the server log.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("[%s] Bad request body: %v", requestID, err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	logger.Info("[%s] Query: %q, top_k: %d, memory: %d turns", requestID, req.Query, req.TopK, len(req.Memory))

	memory := make(domain.Memory, 0, len(req.Memory))
	for _, m := range req.Memory {
		memory = append(memory, domain.Turn{Role: domain.Role(m.Role), Content: m.Content})
	}

	answer, err := s.assistant.Ask(r.Context(), req.Query, req.TopK, memory)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			http.Error(w, "query is required", http.StatusBadRequest)
			return
		}
		logger.Warn("[%s] Pipeline failed: %v", requestID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	resp := queryResponse{
		Answer:             answer.Text,
		RetrievedDocuments: make([]retrievedDocument, len(answer.Documents)),
	}
	for i, doc := range answer.Documents {
		resp.RetrievedDocuments[i] = retrievedDocument{
			Header:  fmt.Sprintf("%s/%s", doc.Article.Code, doc.Article.Name),
			Content: doc.Article.Content,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Warn("[%s] Encoding response failed: %v", requestID, err)
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok")) //nolint:errcheck
}
