// Package fullscreen provides the Bubble Tea full-screen scoring surface.
package fullscreen

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Iterator scores a word list and renders the result to w.
type Iterator interface {
	Iterate(w io.Writer, words []string) error
}

// Decorator supplies the banner, notes and prompt around iterations.
type Decorator interface {
	WriteBanner(w io.Writer) error
	WriteExitNote(w io.Writer) error
	Prompt() string
}

// Model implements the Bubble Tea full-screen loop.
type Model struct {
	iter       Iterator
	input      textinput.Model
	view       viewport.Model
	transcript bytes.Buffer
	prompt     string

	width  int
	height int
	ready  bool
	err    error
}

// NewModel renders the banner, the exit note and the first iteration for words.
func NewModel(iter Iterator, deco Decorator, words []string) (*Model, error) {
	m := &Model{
		iter:   iter,
		prompt: deco.Prompt(),
	}
	if err := deco.WriteBanner(&m.transcript); err != nil {
		return nil, err
	}
	if err := deco.WriteExitNote(&m.transcript); err != nil {
		return nil, err
	}
	if err := iter.Iterate(&m.transcript, words); err != nil {
		return nil, err
	}

	m.input = textinput.New()
	m.input.Prompt = m.prompt
	m.input.Focus()
	return m, nil
}

// Err returns the error that stopped the loop, if any.
func (m *Model) Err() error {
	return m.err
}

// Transcript returns everything printed so far, without the live prompt.
func (m *Model) Transcript() string {
	return m.transcript.String()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.view, cmd = m.view.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return m.transcript.String() + m.input.View()
	}
	return m.view.View() + "\n" + m.input.View()
}

func (m *Model) submit() tea.Cmd {
	line := m.input.Value()
	m.input.Reset()
	fmt.Fprintf(&m.transcript, "%s%s\n", m.prompt, line)
	if err := m.iter.Iterate(&m.transcript, strings.Fields(line)); err != nil {
		m.err = err
		return tea.Quit
	}
	m.syncView()
	return nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	bodyHeight := height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	if !m.ready {
		m.view = viewport.New(width, bodyHeight)
		m.ready = true
	} else {
		m.view.Width = width
		m.view.Height = bodyHeight
	}
	m.input.Width = width - lipgloss.Width(m.prompt) - 1
	m.syncView()
}

func (m *Model) syncView() {
	if !m.ready {
		return
	}
	m.view.SetContent(strings.TrimSuffix(m.transcript.String(), "\n"))
	m.view.GotoBottom()
}
