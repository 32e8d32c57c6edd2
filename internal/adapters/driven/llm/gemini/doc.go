// Package gemini provides LLM and embedding service adapters using the
// Google Gemini API.
package gemini
