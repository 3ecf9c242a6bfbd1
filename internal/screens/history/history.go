package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordmaster/internal/query"
	"github.com/abhisek/wordmaster/internal/router"
	"github.com/abhisek/wordmaster/internal/screen"
	"github.com/abhisek/wordmaster/internal/store"
	"github.com/abhisek/wordmaster/internal/ui/components"
	"github.com/abhisek/wordmaster/internal/ui/layout"
	"github.com/abhisek/wordmaster/internal/ui/theme"
	"github.com/abhisek/wordmaster/internal/word"
)

// historyLoadedMsg carries the refreshed collection, newest first.
type historyLoadedMsg struct {
	Words []word.Word
}

// HistoryScreen lists every word ever generated, newest first, with
// time-window filters, search, and an expandable card per row.
type HistoryScreen struct {
	repo     *store.Repo
	all      []word.Word
	filter   int // index into query.Filters
	search   components.SearchInput
	selected int
	expanded bool
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo *store.Repo) *HistoryScreen {
	return &HistoryScreen{
		repo:   repo,
		search: components.NewSearchInput("Search words...", 64),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		words, err := s.repo.List(context.Background(), store.SortRecentFirst)
		if err != nil {
			words = nil
		}
		return historyLoadedMsg{Words: words}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Filter"},
		{Key: "/", Description: "Search"},
		{Key: "Enter", Description: "Details"},
		{Key: "F", Description: "Favorite"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.all = msg.Words
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if s.search.Focused() {
			return s.handleSearchKey(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *HistoryScreen) handleSearchKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		s.search.Blur()
		return s, nil
	case "esc":
		s.search.Clear()
		s.search.Blur()
		s.clampSelection()
		return s, nil
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.clampSelection()
	return s, cmd
}

func (s *HistoryScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "/":
		return s, s.search.Focus()
	case "tab":
		s.filter = (s.filter + 1) % len(query.Filters)
		s.clampSelection()
		return s, nil
	case "shift+tab":
		s.filter = (s.filter + len(query.Filters) - 1) % len(query.Filters)
		s.clampSelection()
		return s, nil
	case "up", "k":
		if s.selected > 0 {
			s.selected--
			s.expanded = false
		}
		return s, nil
	case "down", "j":
		if s.selected < len(s.currentView())-1 {
			s.selected++
			s.expanded = false
		}
		return s, nil
	case "enter":
		s.expanded = !s.expanded
		return s, nil
	case "f":
		s.toggleCurrent(func(w word.Word) store.Patch {
			v := !w.IsFavorite
			return store.Patch{IsFavorite: &v}
		})
		return s, nil
	case "l":
		s.toggleCurrent(func(w word.Word) store.Patch {
			v := !w.IsLearned
			return store.Patch{IsLearned: &v}
		})
		return s, nil
	}
	return s, nil
}

// toggleCurrent patches the selected word optimistically and reverts
// the in-memory copy if the durable write fails.
func (s *HistoryScreen) toggleCurrent(patch func(word.Word) store.Patch) {
	view := s.currentView()
	if s.selected < 0 || s.selected >= len(view) {
		return
	}
	target := view[s.selected]
	p := patch(target)

	prevAll := s.all
	next := make([]word.Word, len(s.all))
	copy(next, s.all)
	for i := range next {
		if next[i].ID == target.ID {
			next[i] = p.Apply(next[i])
		}
	}
	s.all = next
	s.clampSelection()

	if _, err := s.repo.Update(context.Background(), target.ID, p); err != nil {
		s.all = prevAll
		s.clampSelection()
	}
}

func (s *HistoryScreen) clampSelection() {
	n := len(s.currentView())
	if s.selected >= n {
		s.selected = n - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// currentView projects the collection through the active filter and search.
func (s *HistoryScreen) currentView() []word.Word {
	view := query.Apply(s.all, query.Filters[s.filter], time.Now())
	return query.Search(view, s.search.Value())
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Filter tabs.
	var tabs []string
	for i, f := range query.Filters {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.filter {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(f.Label()))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "  ·  ")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.search.View()))
	b.WriteString("\n\n")

	view := s.currentView()
	if len(view) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No words here yet.")))
		return b.String()
	}

	for i, w := range view {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		markers := ""
		if w.IsFavorite {
			markers += " " + theme.Favorited.Render("♥")
		}
		if w.IsLearned {
			markers += " " + theme.Learned.Render("✓")
		}

		line := fmt.Sprintf("%s%-18s %s  %s%s",
			prefix,
			w.Word,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(w.CreatedDate.Format("Jan 02, 2006")),
			lipgloss.NewStyle().Foreground(difficultyColor(w.Difficulty)).Render(string(w.Difficulty)),
			markers)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i == s.selected && s.expanded {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				components.RenderWordCard(w, 0, 0)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func difficultyColor(d word.Difficulty) color.Color {
	switch d {
	case word.DifficultyBeginner:
		return theme.Beginner
	case word.DifficultyAdvanced:
		return theme.Advanced
	default:
		return theme.Intermediate
	}
}
