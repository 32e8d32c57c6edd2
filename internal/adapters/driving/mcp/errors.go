// Package mcp provides an MCP (Model Context Protocol) server adapter
// for Mizan. It lets AI assistants ask grounded Tunisian legal questions
// through the answer pipeline.
package mcp

import "errors"

// ErrMissingAssistantService is returned when the assistant service is
// not provided.
var ErrMissingAssistantService = errors.New("mcp: assistant service is required")
