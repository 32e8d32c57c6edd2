package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_FormatEmpty(t *testing.T) {
	assert.Empty(t, Memory{}.Format())
	assert.Empty(t, Memory(nil).Format())
}

func TestMemory_FormatLabelsSpeakers(t *testing.T) {
	memory := Memory{
		{Role: RoleUser, Content: "What is theft?"},
		{Role: RoleAssistant, Content: "Theft is defined in the penal code."},
	}

	formatted := memory.Format()

	assert.Equal(t, "\nPrevious conversation:\nHuman: What is theft?\nAssistant: Theft is defined in the penal code.", formatted)
}

func TestMemory_FormatWindowsRecentTurns(t *testing.T) {
	var memory Memory
	for i := 0; i < HistoryWindow+4; i++ {
		memory = append(memory, Turn{Role: RoleUser, Content: "turn"})
	}

	formatted := memory.Format()

	assert.Equal(t, HistoryWindow, strings.Count(formatted, "Human: turn"))
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleAssistant.IsValid())
	assert.False(t, Role("system").IsValid())
}
