// Package openai provides LLM and embedding service adapters using the
// OpenAI API.
package openai
