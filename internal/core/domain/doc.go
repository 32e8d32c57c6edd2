// Package domain contains the core business entities and rules for the
// legal question answering pipeline. It has no dependencies on adapters
// or external services.
package domain
