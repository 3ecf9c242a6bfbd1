package favorites

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordmaster/internal/navigator"
	"github.com/abhisek/wordmaster/internal/query"
	"github.com/abhisek/wordmaster/internal/router"
	"github.com/abhisek/wordmaster/internal/screen"
	"github.com/abhisek/wordmaster/internal/store"
	"github.com/abhisek/wordmaster/internal/ui/components"
	"github.com/abhisek/wordmaster/internal/ui/layout"
	"github.com/abhisek/wordmaster/internal/ui/theme"
	"github.com/abhisek/wordmaster/internal/word"
)

// favoritesLoadedMsg carries the refreshed favorites view.
type favoritesLoadedMsg struct {
	Words []word.Word
}

// FavoritesScreen browses the favorited words as cards, newest first,
// with live substring search.
type FavoritesScreen struct {
	repo   *store.Repo
	nav    *navigator.Navigator
	search components.SearchInput
	all    []word.Word
	loaded bool
}

var _ screen.Screen = (*FavoritesScreen)(nil)
var _ screen.KeyHintProvider = (*FavoritesScreen)(nil)

// New creates a FavoritesScreen.
func New(repo *store.Repo) *FavoritesScreen {
	return &FavoritesScreen{
		repo:   repo,
		nav:    navigator.New(nil),
		search: components.NewSearchInput("Search favorites...", 64),
	}
}

func (s *FavoritesScreen) Init() tea.Cmd {
	return func() tea.Msg {
		words, err := s.repo.List(context.Background(), store.SortRecentFirst)
		if err != nil {
			words = nil
		}
		return favoritesLoadedMsg{Words: words}
	}
}

func (s *FavoritesScreen) Title() string {
	return "Favorites"
}

func (s *FavoritesScreen) KeyHints() []layout.KeyHint {
	if s.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Browse"},
		{Key: "/", Description: "Search"},
		{Key: "F", Description: "Unfavorite"},
		{Key: "L", Description: "Learned"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *FavoritesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case favoritesLoadedMsg:
		s.all = msg.Words
		s.loaded = true
		s.nav.Reset(s.currentView())
		return s, nil

	case tea.KeyMsg:
		if s.search.Focused() {
			return s.handleSearchKey(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *FavoritesScreen) handleSearchKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		s.search.Blur()
		return s, nil
	case "esc":
		s.search.Clear()
		s.search.Blur()
		s.nav.OnViewChange(s.currentView())
		return s, nil
	}

	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.nav.OnViewChange(s.currentView())
	return s, cmd
}

func (s *FavoritesScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "/":
		return s, s.search.Focus()
	case "right", "n":
		s.nav.Next()
		return s, nil
	case "left", "p":
		s.nav.Previous()
		return s, nil
	case "f":
		s.unfavoriteCurrent()
		return s, nil
	case "l":
		s.toggleLearnedCurrent()
		return s, nil
	}
	return s, nil
}

// unfavoriteCurrent removes the card under the cursor from the view
// immediately, then attempts the durable write. On failure the word is
// restored and the cursor returns to it.
func (s *FavoritesScreen) unfavoriteCurrent() {
	cur, ok := s.nav.Current()
	if !ok {
		return
	}

	prevAll := s.all
	s.setFavorite(cur.ID, false)
	s.nav.OnViewChange(s.currentView())

	off := false
	if _, err := s.repo.Update(context.Background(), cur.ID, store.Patch{IsFavorite: &off}); err != nil {
		s.all = prevAll
		s.nav.OnViewChange(s.currentView())
	}
}

func (s *FavoritesScreen) toggleLearnedCurrent() {
	cur, ok := s.nav.Current()
	if !ok {
		return
	}

	v := !cur.IsLearned
	for i := range s.all {
		if s.all[i].ID == cur.ID {
			s.all[i].IsLearned = v
		}
	}
	s.nav.OnViewChange(s.currentView())

	if _, err := s.repo.Update(context.Background(), cur.ID, store.Patch{IsLearned: &v}); err != nil {
		for i := range s.all {
			if s.all[i].ID == cur.ID {
				s.all[i].IsLearned = !v
			}
		}
		s.nav.OnViewChange(s.currentView())
	}
}

func (s *FavoritesScreen) setFavorite(id string, v bool) {
	// Copy-on-write so a failed update can restore the previous slice.
	next := make([]word.Word, len(s.all))
	copy(next, s.all)
	for i := range next {
		if next[i].ID == id {
			next[i].IsFavorite = v
		}
	}
	s.all = next
}

// currentView projects the collection to favorites matching the search term.
func (s *FavoritesScreen) currentView() []word.Word {
	view := query.Apply(s.all, query.FilterFavorites, time.Now())
	return query.Search(view, s.search.Value())
}

func (s *FavoritesScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("Loading favorites...")
	}

	searchLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.search.View())

	cur, ok := s.nav.Current()
	if !ok {
		empty := "No favorites yet. Mark words with F while browsing."
		if s.search.Value() != "" {
			empty = "No favorites match your search."
		}
		body := lipgloss.NewStyle().
			Width(width).
			Height(height-2).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(empty)
		return searchLine + "\n" + body
	}

	card := lipgloss.NewStyle().
		Width(width).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(components.RenderWordCard(cur, s.nav.Index()+1, s.nav.Len()))

	return searchLine + "\n" + card
}
