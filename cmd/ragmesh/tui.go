package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hupe1980/ragmesh"
)

// turn is one rendered exchange in the transcript.
type turn struct {
	query  string
	answer string
}

// answerMsg carries the completion result back into the update loop.
type answerMsg struct {
	query  string
	answer string
	err    error
}

// chatModel is the Bubble Tea model for the interactive chat.
type chatModel struct {
	mesh     *ragmesh.RAGMesh
	input    textinput.Model
	viewport viewport.Model
	turns    []turn
	summary  []string
	status   string
	ready    bool
	waiting  bool
}

func newChatModel(mesh *ragmesh.RAGMesh, summary []string) chatModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return chatModel{
		mesh:     mesh,
		input:    ti,
		viewport: vp,
		summary:  summary,
		status:   "Documents loaded. Ask away.",
	}
}

// Init initializes the model (text input cursor blink).
func (m chatModel) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		headerLines := 1 + len(m.summary)
		reserved := headerLines + 1 + qh + 1 // status line and a spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width)
		m.viewport.Height = maxInt(3, vh-th)
		m.viewport.SetContent(m.renderTranscript())
		return m, nil

	case answerMsg:
		m.waiting = false
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			return m, nil
		}
		m.turns = append(m.turns, turn{query: msg.query, answer: msg.answer})
		m.status = "Ready."
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" && !m.waiting {
				m.input.SetValue("")
				m.waiting = true
				m.status = "Thinking..."
				return m, askCmd(m.mesh, q)
			}
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// askCmd runs the retrieval-augmented completion off the update loop.
func askCmd(mesh *ragmesh.RAGMesh, query string) tea.Cmd {
	return func() tea.Msg {
		answer, err := mesh.Respond(context.Background(), sessionID, query)
		return answerMsg{query: query, answer: answer, err: err}
	}
}

// View renders the TUI layout and current transcript.
func (m chatModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("RAGMesh Chat")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Join(m.summary, "\n"))
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + summary + "\n" + transcript + "\n" + input + "\n" + status
}

func (m chatModel) renderTranscript() string {
	if len(m.turns) == 0 {
		return "No questions yet."
	}
	var b strings.Builder
	for i, t := range m.turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(userStyle.Render("You: ") + t.query)
		b.WriteString("\n\n")
		b.WriteString(assistantStyle.Render("Assistant: ") + t.answer)
	}
	return b.String()
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	assistantStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
