package domain

import (
	"fmt"
	"strings"
)

// Role identifies the author of a conversation turn.
type Role string

// Conversation roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Turn is a single message in a conversation.
type Turn struct {
	Role    Role
	Content string
}

// Memory is an ordered conversation history, oldest first.
type Memory []Turn

// HistoryWindow is the number of most recent turns used for prompting.
// Older turns are kept by callers but never reach the oracles.
const HistoryWindow = 10

// Format renders the most recent turns for inclusion in oracle prompts.
// Returns the empty string when the memory is empty.
func (m Memory) Format() string {
	if len(m) == 0 {
		return ""
	}

	window := m
	if len(window) > HistoryWindow {
		window = window[len(window)-HistoryWindow:]
	}

	var b strings.Builder
	b.WriteString("\nPrevious conversation:\n")
	for i, turn := range window {
		speaker := "Assistant"
		if turn.Role == RoleUser {
			speaker = "Human"
		}
		b.WriteString(fmt.Sprintf("%s: %s", speaker, turn.Content))
		if i < len(window)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
