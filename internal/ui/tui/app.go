package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vrylskyj/abook/internal/assistant"
)

// maxTranscript caps the scrollback kept in memory.
const maxTranscript = 200

type model struct {
	theme Theme
	deps  Deps

	input      textinput.Model
	transcript []string

	width  int
	height int

	quitting bool
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	ti := textinput.New()
	ti.Prompt = assistant.Prompt
	ti.Placeholder = "add John 1234567890"
	ti.CharLimit = 120
	ti.Focus()

	return model{
		theme:      DefaultTheme(),
		deps:       deps,
		input:      ti,
		transcript: []string{assistant.Banner},
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			line := m.input.Value()
			m.input.Reset()
			return m.dispatch(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) dispatch(line string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.transcript = append(m.transcript, "> "+line)
	reply := m.deps.Assistant.Handle(line)
	if reply.Text != "" {
		m.transcript = append(m.transcript, reply.Text)
	}
	if n := len(m.transcript); n > maxTranscript {
		m.transcript = m.transcript[n-maxTranscript:]
	}

	if reply.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return assistant.Farewell + "\n"
	}

	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("abook") + "\n" +
		m.theme.Subtitle.Render("Assistant bot — contacts and birthdays") + "\n"

	body := m.theme.Card.Render(m.renderTranscript())
	help := m.theme.Help.Render("enter dispatch • esc/ctrl+c quit")

	return wrap.Render(header + "\n" + body + "\n" + m.input.View() + "\n" + help)
}

func (m model) renderTranscript() string {
	lines := m.transcript

	// Keep the tail that fits the window, leaving room for header and input.
	if m.height > 0 {
		visible := m.height - 10
		if visible < 3 {
			visible = 3
		}
		if len(lines) > visible {
			lines = lines[len(lines)-visible:]
		}
	}

	out := make([]string, len(lines))
	maxLen := 0
	if m.width > 0 {
		maxLen = m.width - 8
	}
	for i, l := range lines {
		if maxLen > 0 {
			l = clampString(l, maxLen)
		}
		if strings.HasPrefix(l, "> ") {
			out[i] = m.theme.Input.Render(l)
		} else {
			out[i] = m.theme.Reply.Render(l)
		}
	}
	return strings.Join(out, "\n")
}
