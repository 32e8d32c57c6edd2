// Package tui provides the interactive chat surface. It keeps the
// rolling conversation memory so follow-up questions reach the pipeline
// with their context.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mizan-labs/mizan-cli/internal/core/domain"
	"github.com/mizan-labs/mizan-cli/internal/core/ports/driving"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("105"))
	userStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	assistantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	docStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	hintStyle      = lipgloss.NewStyle().Faint(true)
)

// answerMsg carries one completed pipeline turn back into the update
// loop.
type answerMsg struct {
	query  string
	answer domain.Answer
	err    error
}

// ChatModel is the bubbletea model for the chat surface.
type ChatModel struct {
	assistant driving.AssistantService
	topK      int

	input      textinput.Model
	memory     domain.Memory
	transcript []string
	waiting    bool
	width      int
}

// NewChatModel creates the chat model.
func NewChatModel(assistant driving.AssistantService, topK int) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Ask about Tunisian law..."
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 70

	return ChatModel{
		assistant: assistant,
		topK:      topK,
		input:     ti,
		width:     80,
	}
}

// Init starts the cursor blink.
func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key and answer messages.
func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 10
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				return m, nil
			}
			m.input.SetValue("")
			m.transcript = append(m.transcript, userStyle.Render("You: ")+query)
			m.waiting = true
			return m, m.ask(query)
		}

	case answerMsg:
		m.waiting = false
		if msg.err != nil {
			m.transcript = append(m.transcript, errorStyle.Render("Error: ")+msg.err.Error())
			return m, nil
		}
		m.memory = append(m.memory,
			domain.Turn{Role: domain.RoleUser, Content: msg.query},
			domain.Turn{Role: domain.RoleAssistant, Content: msg.answer.Text},
		)
		m.transcript = append(m.transcript, assistantStyle.Render("Mizan: ")+msg.answer.Text)
		for _, doc := range msg.answer.Documents {
			m.transcript = append(m.transcript,
				docStyle.Render(fmt.Sprintf("  [%s/%s] (%.2f)", doc.Article.Code, doc.Article.Name, doc.Score)))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the transcript and input line.
func (m ChatModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mizan - Tunisian legal assistant"))
	b.WriteString("\n\n")

	for _, line := range m.transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(hintStyle.Render("Thinking..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter: send • esc: quit"))
	return b.String()
}

// ask runs one pipeline turn off the update loop. The memory snapshot is
// taken before the user turn so the query itself is not duplicated into
// the history.
func (m ChatModel) ask(query string) tea.Cmd {
	memory := make(domain.Memory, len(m.memory))
	copy(memory, m.memory)
	assistant := m.assistant
	topK := m.topK

	return func() tea.Msg {
		answer, err := assistant.Ask(context.Background(), query, topK, memory)
		return answerMsg{query: query, answer: answer, err: err}
	}
}

// Run starts the chat program and blocks until the user quits.
func Run(assistant driving.AssistantService, topK int) error {
	program := tea.NewProgram(NewChatModel(assistant, topK), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
