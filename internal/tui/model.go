// Package tui is the interactive calculator: type a query, see the parsed
// inputs and PITI breakdown update on each Enter.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthlab/mortcalc/internal/calculation"
	"github.com/hearthlab/mortcalc/internal/domain"
	"github.com/hearthlab/mortcalc/internal/lookup"
)

// Model represents the entire application state.
type Model struct {
	input textinput.Model

	// Calculation collaborators
	composer *calculation.Composer
	defaults domain.Defaults

	// Last submitted query and its outcome. Exactly one of result and
	// missing is populated after a submit; err covers domain errors.
	query   string
	inputs  domain.LoanInputs
	result  *domain.PaymentResult
	missing []string
	err     error

	// Terminal dimensions
	width  int
	height int
}

// NewModel creates a new application model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = `price 900k down 20% at 6.25 30 years zip 92688`
	ti.CharLimit = 120
	ti.Width = 64
	ti.Focus()

	defaults := domain.DefaultExtractDefaults()
	table := lookup.NewTable()

	return Model{
		input:    ti,
		composer: calculation.NewComposer(table, table, defaults),
		defaults: defaults,
		width:    80,
		height:   24,
	}
}

// Init initializes the model (required by tea.Model interface).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
