package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordmaster/internal/router"
	"github.com/abhisek/wordmaster/internal/screen"
	"github.com/abhisek/wordmaster/internal/screens/favorites"
	"github.com/abhisek/wordmaster/internal/screens/generate"
	"github.com/abhisek/wordmaster/internal/screens/history"
	"github.com/abhisek/wordmaster/internal/session"
	"github.com/abhisek/wordmaster/internal/store"
	"github.com/abhisek/wordmaster/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	total      int
	favorites  int
	learned    int
	llmReady   bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. When no word supply is configured the
// generate entry is disabled and a banner explains how to enable it.
func New(repo *store.Repo, gsess *session.GenerationSession, llmReady bool) *HomeScreen {
	var total, favs, learned int
	if words, err := repo.List(context.Background(), ""); err == nil {
		total = len(words)
		for _, w := range words {
			if w.IsFavorite {
				favs++
			}
			if w.IsLearned {
				learned++
			}
		}
	}

	menuLabels := []string{"GENERATE WORDS", "FAVORITES", "HISTORY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Disabled: !llmReady, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: generate.New(repo, gsess)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: favorites.New(repo)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(repo)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		total:      total,
		favorites:  favs,
		learned:    learned,
		llmReady:   llmReady,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw))
	sections = append(sections, renderStatsBar(h.total, h.favorites, h.learned, cw))

	disabled := map[int]bool{0: !h.llmReady}
	sections = append(sections, renderMenuButtons(h.menuLabels, h.menu.Selected, cw, disabled))

	if !h.llmReady {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")
	return renderCentered(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
