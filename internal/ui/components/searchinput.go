package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordmaster/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput as a live search field.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates a styled, unfocused search input.
func NewSearchInput(placeholder string, charLimit int) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return SearchInput{Model: ti}
}

// Focus puts the input into editing mode.
func (s *SearchInput) Focus() tea.Cmd {
	return s.Model.Focus()
}

// Blur leaves editing mode, keeping the current term.
func (s *SearchInput) Blur() {
	s.Model.Blur()
}

// Focused reports whether the input is capturing keystrokes.
func (s SearchInput) Focused() bool {
	return s.Model.Focused()
}

// Update handles messages while focused.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the search field with a leading marker.
func (s SearchInput) View() string {
	marker := lipgloss.NewStyle().Foreground(theme.TextDim).Render("⌕ ")
	return marker + s.Model.View()
}

// Value returns the current search term.
func (s SearchInput) Value() string {
	return s.Model.Value()
}

// Clear resets the search term.
func (s *SearchInput) Clear() {
	s.Model.SetValue("")
}
