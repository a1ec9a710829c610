// Package playground implements the interactive terminal playground for the
// stack container: a prompt, a transcript, and a live rendering of the
// stack being manipulated.
package playground

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	keys "github.com/stax-cli/stax/key"
	"github.com/stax-cli/stax/log"
	"github.com/stax-cli/stax/script"
	"github.com/stax-cli/stax/stack"
)

// keymap defines the keyboard interactions available in the playground.
type keymap struct {
	submit, quit, clear, complete key.Binding
}

func newKeymap() keymap {
	return keymap{
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "quit"),
		),
		clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear transcript"),
		),
		complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete command"),
		),
	}
}

// model is the bubbletea state for a playground session.
type model struct {
	stack      *stack.Stack[string]
	input      textinput.Model
	transcript viewport.Model
	lines      []string
	suggestion mo.Option[string]
	keymap     keymap

	width, height int
	ready         bool
}

func newModel() *model {
	input := textinput.New()
	input.Prompt = viper.GetString(keys.PlayPrompt)
	input.Placeholder = "push 1"
	input.Focus()

	return &model{
		stack:      stack.New[string](),
		input:      input,
		suggestion: mo.None[string](),
		keymap:     newKeymap(),
	}
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.quit):
			return m, tea.Quit

		case key.Matches(msg, m.keymap.clear):
			m.lines = nil
			m.syncTranscript()
			return m, nil

		case key.Matches(msg, m.keymap.complete):
			if suggestion, ok := m.suggestion.Get(); ok {
				m.input.SetValue(suggestion + " ")
				m.input.CursorEnd()
				m.refreshSuggestion()
			}
			return m, nil

		case key.Matches(msg, m.keymap.submit):
			m.submit()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestion()
	return m, cmd
}

// submit evaluates the current input line against the session stack and
// appends the exchange to the transcript.
func (m *model) submit() {
	line := m.input.Value()
	m.input.Reset()
	m.suggestion = mo.None[string]()

	output, err := script.Apply(m.stack, line)
	if line == "" || (output == "" && err == nil) {
		return
	}

	m.appendExchange(line, output, err)
	log.Debugf("playground: %q -> %q (err: %v)", line, output, err)
}

func (m *model) appendExchange(line, output string, err error) {
	m.lines = append(m.lines, renderInput(line))
	if err != nil {
		m.lines = append(m.lines, renderError(err))
	} else {
		m.lines = append(m.lines, renderOutput(output))
	}

	// Cap the transcript at the configured size, oldest lines first out.
	limit := viper.GetInt(keys.PlayTranscriptSize)
	if limit > 0 && len(m.lines) > limit {
		m.lines = m.lines[len(m.lines)-limit:]
	}

	m.syncTranscript()
	if m.ready {
		m.transcript.GotoBottom()
	}
}

// refreshSuggestion recomputes the completion hint for the first token of
// the current input.
func (m *model) refreshSuggestion() {
	value := m.input.Value()
	m.suggestion = mo.None[string]()

	if value == "" {
		return
	}

	matches := script.Complete(value)
	if len(matches) > 0 && matches[0] != value {
		m.suggestion = mo.Some(matches[0])
	}
}

func (m *model) resize(width, height int) {
	m.width, m.height = width, height

	transcriptHeight := height - chromeHeight(m.stackPanelHeight())
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	if !m.ready {
		m.transcript = viewport.New(width, transcriptHeight)
		m.ready = true
	} else {
		m.transcript.Width = width
		m.transcript.Height = transcriptHeight
	}
	m.syncTranscript()
}

// Run starts an interactive playground session and blocks until it exits.
func Run() error {
	program := tea.NewProgram(newModel(), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("playground: %w", err)
	}
	return nil
}
