package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthlab/mortcalc/internal/calculation"
	"github.com/hearthlab/mortcalc/internal/parse"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.submit()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit parses the current query and recomputes the breakdown in place.
func (m *Model) submit() {
	m.query = m.input.Value()
	m.result = nil
	m.missing = nil
	m.err = nil
	if m.query == "" {
		return
	}

	m.inputs = parse.ParseQuery(m.query, m.defaults)

	result, err := m.composer.ComposePITI(m.inputs, calculation.ComposeOptions{})
	if err != nil {
		var insufficient *calculation.InsufficientInputsError
		if errors.As(err, &insufficient) {
			m.missing = insufficient.Missing
		} else {
			m.err = err
		}
		return
	}
	m.result = result
}
