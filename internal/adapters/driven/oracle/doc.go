// Package oracle implements the typed model-oracle ports on top of a raw
// LLM service and a prompt store. Each oracle is one prompt, one
// generation call and one parser; there are no retries.
package oracle
